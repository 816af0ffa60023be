package bounded

import "golang.org/x/exp/constraints"

// Float 泛型类型约束,包含单精度与双精度浮点数
// Unit 的取值类型必须满足该约束
type Float interface {
	constraints.Float
}

// abs 返回给定浮点数的绝对值
// 泛型函数,可用于任何满足Float约束的类型
// 参数: x - 任意浮点数
// 返回: x的绝对值
func abs[F Float](x F) F {
	if x < 0 {
		return -x
	}
	return x
}

// inRange 判断x是否位于闭区间[0,1]内
// NaN与任何数比较均为false,因此不会通过检查
func inRange[F Float](x F) bool {
	return x >= 0 && x <= 1
}
