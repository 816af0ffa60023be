package bounded

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// grid 返回[0,1]上步长为1/n的所有点
func grid[F Float](n int) []Unit[F] {
	out := make([]Unit[F], 0, n+1)
	for i := 0; i <= n; i++ {
		out = append(out, MustNew(F(i)/F(n)))
	}
	return out
}

func assertInRange[F Float](t *testing.T, op string, u Unit[F]) {
	t.Helper()
	v := u.Get()
	assert.Truef(t, v >= 0 && v <= 1, "%s produced %v", op, v)
}

func testRangeClosure[F Float](t *testing.T) {
	src := NewRandSource(7)
	points := grid[F](40)
	for i := 0; i < 100; i++ {
		points = append(points, MustSample[F](src))
	}
	for _, a := range points {
		assertInRange(t, "Inv", a.Inv())
		assertInRange(t, "Round", a.Round())
		for _, b := range points {
			assertInRange(t, "Distance", a.Distance(b))
			assertInRange(t, "Average", Average(a, b))
			assertInRange(t, "SaturatingAdd", a.SaturatingAdd(b))
			assertInRange(t, "SaturatingSub", a.SaturatingSub(b))
			assertInRange(t, "Mul", a.Mul(b))
			assertInRange(t, "ScaleUp", a.ScaleUp(b))
			assertInRange(t, "ScaleDown", a.ScaleDown(b))
			assertInRange(t, "Lerp", Lerp(a, b, Center[F]()))
		}
	}
}

func TestRangeClosure(t *testing.T) {
	t.Run("float64", testRangeClosure[float64])
	t.Run("float32", testRangeClosure[float32])
}

func TestDistance(t *testing.T) {
	a, b := MustNew(0.25), MustNew(0.75)
	assert.Equal(t, 0.5, a.Distance(b).Get())
	assert.Equal(t, a.Distance(b), b.Distance(a))
	assert.Equal(t, 1.0, Zero[float64]().Distance(One[float64]()).Get())
}

func TestAverage(t *testing.T) {
	a, b := MustNew(0.25), MustNew(0.5)
	assert.Equal(t, 0.375, Average(a, b).Get())
	assert.Equal(t, Average(a, b), Average(b, a))
	assert.Equal(t, Average(a, b), a.Average(b))
	assert.Equal(t, 1.0, Average(One[float64](), One[float64]()).Get())
}

func TestSaturatingAdd(t *testing.T) {
	assert.InDelta(t, 0.9, MustNew(0.4).SaturatingAdd(MustNew(0.5)).Get(), Epsilon)
	assert.Equal(t, One[float64](), MustNew(0.4).SaturatingAdd(MustNew(0.6)))
	assert.Equal(t, One[float64](), MustNew(0.4).SaturatingAdd(MustNew(0.7)))
	assert.Equal(t, One[float64](), One[float64]().SaturatingAdd(One[float64]()))
	assert.Equal(t, float32(1), MustNew(float32(0.4)).SaturatingAdd(MustNew(float32(0.7))).Get())
}

func TestSaturatingSub(t *testing.T) {
	assert.Equal(t, Zero[float64](), MustNew(0.3).SaturatingSub(MustNew(0.5)))
	assert.Equal(t, 0.25, MustNew(0.75).SaturatingSub(MustNew(0.5)).Get())
	assert.Equal(t, Zero[float64](), Zero[float64]().SaturatingSub(One[float64]()))
}

func TestMul(t *testing.T) {
	assert.Equal(t, 0.125, MustNew(0.25).Mul(MustNew(0.5)).Get())
	assert.Equal(t, Zero[float64](), MustNew(0.7).Mul(Zero[float64]()))
	assert.Equal(t, MustNew(0.7), MustNew(0.7).Mul(One[float64]()))
}

func testScaleIdentities[F Float](t *testing.T) {
	for _, a := range grid[F](100) {
		assert.Equal(t, a, a.ScaleUp(Zero[F]()), "ScaleUp(%v, 0)", a)
		assert.Equal(t, a, a.ScaleDown(Zero[F]()), "ScaleDown(%v, 0)", a)
		assert.Equal(t, One[F](), a.ScaleUp(One[F]()), "ScaleUp(%v, 1)", a)
		assert.Equal(t, Zero[F](), a.ScaleDown(One[F]()), "ScaleDown(%v, 1)", a)
	}
}

func TestScale(t *testing.T) {
	t.Run("float64", testScaleIdentities[float64])
	t.Run("float32", testScaleIdentities[float32])

	assert.Equal(t, 0.625, MustNew(0.25).ScaleUp(MustNew(0.5)).Get())
	assert.Equal(t, 0.375, MustNew(0.75).ScaleDown(MustNew(0.5)).Get())
	assert.Equal(t, One[float64](), Zero[float64]().ScaleUp(One[float64]()))
	assert.Equal(t, One[float64](), One[float64]().ScaleDown(Zero[float64]()))
}

func TestInv(t *testing.T) {
	assert.Equal(t, 0.25, MustNew(0.75).Inv().Get())
	assert.Equal(t, One[float64](), Zero[float64]().Inv())

	for _, v := range []float64{0, 0.125, 0.25, 0.5, 0.6, 0.75, 0.9, 0.999, 1} {
		a := MustNew(v)
		assert.Equal(t, a, a.Inv().Inv(), "Inv(Inv(%v))", v)
	}
	for _, a := range grid[float64](1000) {
		assert.True(t, Near(a, a.Inv().Inv()), "Inv(Inv(%v))", a)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, One[float64](), MustNew(0.5).Round())
	assert.Equal(t, Zero[float64](), MustNew(0.49999).Round())
	assert.Equal(t, Zero[float64](), Zero[float64]().Round())
	assert.Equal(t, One[float64](), One[float64]().Round())
	assert.Equal(t, One[float32](), MustNew(float32(0.5)).Round())
}

func TestLerp(t *testing.T) {
	a, b := MustNew(0.2), MustNew(0.6)
	assert.Equal(t, a, Lerp(a, b, Zero[float64]()))
	assert.Equal(t, b, Lerp(a, b, One[float64]()))
	assert.InDelta(t, 0.4, Lerp(a, b, Center[float64]()).Get(), Epsilon)
	assert.InDelta(t, 0.5, Lerp(b, a, MustNew(0.25)).Get(), Epsilon)

	for _, x := range grid[float64](20) {
		for _, y := range grid[float64](20) {
			v := Lerp(x, y, MustNew(0.3))
			require.True(t, v.GreaterEq(Min(x, y)) && v.LessEq(Max(x, y)))
		}
	}
}

func TestScenarios(t *testing.T) {
	assert.InDelta(t, 0.9, MustNew(0.4).SaturatingAdd(MustNew(0.5)).Get(), 1e-12)
	assert.True(t, MustNew(0.6).SaturatingSub(MustNew(0.5)).ApproxEq(MustNew(0.1), MustNew(0.001)))
	assert.Equal(t, One[float64](), MustNew(0.0).ScaleUp(MustNew(1.0)))
	assert.Equal(t, One[float64](), MustNew(1.0).ScaleDown(MustNew(0.0)))
}
