package bounded

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Unit 取值被限制在闭区间[0,1]内的浮点数
//
// 设计特点：
//   - 不可变值类型：所有运算都返回新值，不会修改接收者
//   - 字段不可导出：只能通过构造函数得到实例，零值即为0，同样满足约束
//   - 泛型实现：F 可以是 float32 或 float64 (以及以它们为底层类型的自定义类型)
//
// 使用场景：
//   - 概率、比例、权重
//   - 遗传算法中的交叉率、变异率及其混合、缩放
//
// 示例用法：
//
//	p, err := bounded.New(0.4)
//	if err != nil {
//	    return err
//	}
//	q := p.SaturatingAdd(bounded.MustNew(0.7)) // 1
//
// 注意事项：
//   - 公开构造入口总是校验，越界直接返回 OutOfRangeError，从不截断
//   - 派生运算结果通过内部校验，默认构建下越界会panic，见 SetChecks
type Unit[F Float] struct {
	v F
}

// Unit32 单精度实例
type Unit32 = Unit[float32]

// Unit64 双精度实例
type Unit64 = Unit[float64]

// New 校验并构造一个 Unit
// 参数: v - 任意浮点数
// 返回: 0 <= v <= 1 时返回对应的 Unit，否则返回 *OutOfRangeError (NaN 同样被拒绝)
func New[F Float](v F) (Unit[F], error) {
	return newOp("New", v)
}

func newOp[F Float](op string, v F) (Unit[F], error) {
	if !inRange(v) {
		return Unit[F]{}, outOfRange(op, v)
	}
	return Unit[F]{v: v}, nil
}

// MustNew 与 New 相同，越界时panic
// 适用于常量或已知合法的输入
func MustNew[F Float](v F) Unit[F] {
	u, err := New(v)
	if err != nil {
		panic(err)
	}
	return u
}

// NewSlice 批量构造，每个越界元素都会贡献一个错误
// 返回: 全部合法时返回等长切片；否则返回nil以及合并后的错误
func NewSlice[F Float](vs []F) ([]Unit[F], error) {
	var err error
	out := make([]Unit[F], len(vs))
	for i, v := range vs {
		u, e := newOp("NewSlice", v)
		if e != nil {
			err = multierr.Append(err, errors.WithMessagef(e, "index %d", i))
			continue
		}
		out[i] = u
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FromRatio 以 num/den 构造 Unit
// den 为0时比值为Inf或NaN，与其他越界情况一样返回 *OutOfRangeError
func FromRatio[F Float](num, den F) (Unit[F], error) {
	return newOp("FromRatio", num/den)
}

// Zero 常量0
func Zero[F Float]() Unit[F] { return Unit[F]{v: 0} }

// One 常量1
func One[F Float]() Unit[F] { return Unit[F]{v: 1} }

// Center 常量0.5
func Center[F Float]() Unit[F] { return Unit[F]{v: 0.5} }

// Get 返回原始浮点值，读取时再次校验约束
func (u Unit[F]) Get() F {
	return checked(u.v, "Get").v
}
