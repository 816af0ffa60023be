package bounded

import (
	"reflect"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// bitSize 返回F的位宽(32或64)
func bitSize[F Float]() int {
	return reflect.TypeFor[F]().Bits()
}

// Float64 转换为float64，对两种精度都是无损的
func (u Unit[F]) Float64() float64 {
	return float64(u.Get())
}

// Float32 转换为float32，Unit64 会损失精度
// 舍入到最近值不会越过0和1
func (u Unit[F]) Float32() float32 {
	return float32(u.Get())
}

// Convert 在两种精度之间转换
// 拓宽是无损的，收窄可能损失精度；结果重新经过区间校验
func Convert[To, From Float](u Unit[From]) Unit[To] {
	return checked(To(u.Get()), "Convert")
}

// Decimal 返回存储值对应的最短十进制表示
func (u Unit[F]) Decimal() decimal.Decimal {
	if bitSize[F]() == 32 {
		return decimal.NewFromFloat32(float32(u.Get()))
	}
	return decimal.NewFromFloat(float64(u.Get()))
}

// String 返回能唯一还原该值的最短文本
func (u Unit[F]) String() string {
	return strconv.FormatFloat(float64(u.v), 'g', -1, bitSize[F]())
}

// Percent 按语言习惯格式化为百分比
//
// 示例：
//
//	MustNew(0.25).Percent(language.English)                            // "25%"
//	MustNew(0.125).Percent(language.English, number.MaxFractionDigits(1)) // "12.5%"
func (u Unit[F]) Percent(tag language.Tag, opts ...number.Option) string {
	return message.NewPrinter(tag).Sprint(number.Percent(u.Float64(), opts...))
}
