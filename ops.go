package bounded

// 派生运算
//
// 每个运算的公式即其契约。输入都在[0,1]内时结果在数学上不会越界，
// 因此结果只经过内部校验(checked)，而不是公开构造函数。

// Distance 两值之差的绝对值: |u - other|
func (u Unit[F]) Distance(other Unit[F]) Unit[F] {
	return checked(abs(u.v-other.v), "Distance")
}

// Average 两值的平均数: (a + b) / 2
func Average[F Float](a, b Unit[F]) Unit[F] {
	return checked((a.v+b.v)/2, "Average")
}

// Average 等价于 Average(u, other)
func (u Unit[F]) Average(other Unit[F]) Unit[F] { return Average(u, other) }

// SaturatingAdd 饱和加法: min(1, u + other)，只在上界截断
func (u Unit[F]) SaturatingAdd(other Unit[F]) Unit[F] {
	return checked(min(1, u.v+other.v), "SaturatingAdd")
}

// SaturatingSub 饱和减法: max(0, u - other)，只在下界截断
func (u Unit[F]) SaturatingSub(other Unit[F]) Unit[F] {
	return checked(max(0, u.v-other.v), "SaturatingSub")
}

// Mul 乘积: u * other，两个[0,1]内的数之积仍在[0,1]内
func (u Unit[F]) Mul(other Unit[F]) Unit[F] {
	return checked(u.v*other.v, "Mul")
}

// ScaleUp 按比例向1靠拢: u + (1 - u) * b
// b为0时不变，b为1时得到1
func (u Unit[F]) ScaleUp(b Unit[F]) Unit[F] {
	return checked(u.v+(1-u.v)*b.v, "ScaleUp")
}

// ScaleDown 按比例向0靠拢: u - u * b
// b为0时不变，b为1时得到0
func (u Unit[F]) ScaleDown(b Unit[F]) Unit[F] {
	return checked(u.v-u.v*b.v, "ScaleDown")
}

// Inv 取补: 1 - u
func (u Unit[F]) Inv() Unit[F] {
	return checked(1-u.v, "Inv")
}

// Round 小于0.5得0，否则得1 (0.5 向上取整为1)
func (u Unit[F]) Round() Unit[F] {
	if u.v < Center[F]().v {
		return Zero[F]()
	}
	return One[F]()
}

// Lerp 线性插值: a * (1 - t) + b * t
// t为0时精确得到a，t为1时精确得到b；结果被限制在a与b之间，消除舍入带来的微小越界
func Lerp[F Float](a, b, t Unit[F]) Unit[F] {
	v := a.v*(1-t.v) + b.v*t.v
	lo, hi := min(a.v, b.v), max(a.v, b.v)
	return checked(min(hi, max(lo, v)), "Lerp")
}
