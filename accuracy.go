package bounded

// 浮点数精度比较工具
//
// Unit 的运算结果经过浮点舍入，直接使用 Equal 比较可能产生误差。
// 这里提供基于误差阈值的比较方法，阈值本身也是一个 Unit。
//
// 注意事项：
//   - ApproxEq 使用严格小于：距离恰好等于阈值时视为不相等
//   - Near 使用 Epsilon，NearLow 使用 LowEpsilon

const (
	// Epsilon 高精度比较阈值
	// 值：0.00000001 (10^-8)
	// 适用场景：概率、权重的数值校验
	Epsilon = 0.00000001

	// LowEpsilon 低精度比较阈值
	// 值：0.01 (10^-2)
	// 适用场景：一般业务逻辑、百分比展示
	LowEpsilon = 0.01
)

// ApproxEq 判断两个值是否近似相等
//
// 比较逻辑：Distance(u, other) < eps
//
// 参数：
//
//	other - 另一个值
//	eps   - 误差阈值
//
// 返回值：
//
//	true  - 两值距离严格小于 eps
//	false - 距离大于或等于 eps
//
// 示例：
//
//	MustNew(0.6).SaturatingSub(MustNew(0.5)).ApproxEq(MustNew(0.1), MustNew(0.001)) // true
//	MustNew(0.5).ApproxEq(MustNew(0.75), MustNew(0.25))                              // false，距离等于阈值
func (u Unit[F]) ApproxEq(other, eps Unit[F]) bool {
	return u.Distance(other).v < eps.v
}

// Near 使用 Epsilon 判断两个值是否近似相等
func Near[F Float](a, b Unit[F]) bool {
	return a.Distance(b).v < F(Epsilon)
}

// NearLow 使用 LowEpsilon 判断两个值是否近似相等
//
// 示例：
//
//	NearLow(MustNew(0.5), MustNew(0.505)) // true
//	NearLow(MustNew(0.5), MustNew(0.52))  // false
func NearLow[F Float](a, b Unit[F]) bool {
	return a.Distance(b).v < F(LowEpsilon)
}
