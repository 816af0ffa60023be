package bounded

import "math/rand/v2"

// Source 外部提供的随机数源
// ClosedUnit 必须返回闭区间[0,1]内均匀分布的数，两端均可取到
type Source interface {
	ClosedUnit() float64
}

// Sample 从随机源取一个样本并通过 New 校验
// 随机源违反约定时返回 *OutOfRangeError
func Sample[F Float](src Source) (Unit[F], error) {
	return newOp("Sample", F(src.ClosedUnit()))
}

// MustSample 与 Sample 相同，随机源越界时panic
func MustSample[F Float](src Source) Unit[F] {
	u, err := Sample[F](src)
	if err != nil {
		panic(err)
	}
	return u
}

// closedSteps 闭区间采样的网格精度，与float64尾数位数一致
const closedSteps = 1 << 53

// RandSource 将 math/rand/v2 的生成器适配为 Source
// 与 *rand.Rand 一样不是并发安全的
type RandSource struct {
	r *rand.Rand
}

// NewRandSource 创建以PCG为底层、给定种子的随机源，相同种子产生相同序列
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// WrapRand 包装已有的生成器
func WrapRand(r *rand.Rand) *RandSource {
	return &RandSource{r: r}
}

// ClosedUnit 在 {0, 1/2^53, ..., 1} 上等概率取值
func (s *RandSource) ClosedUnit() float64 {
	return float64(s.r.Uint64N(closedSteps+1)) / closedSteps
}
