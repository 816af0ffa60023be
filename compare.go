package bounded

import "cmp"

// Min 返回较小者；相等时返回a
func Min[F Float](a, b Unit[F]) Unit[F] {
	if b.v < a.v {
		return b
	}
	return a
}

// Max 返回较大者；相等时返回a
func Max[F Float](a, b Unit[F]) Unit[F] {
	if b.v > a.v {
		return b
	}
	return a
}

// Min 等价于 Min(u, other)
func (u Unit[F]) Min(other Unit[F]) Unit[F] { return Min(u, other) }

// Max 等价于 Max(u, other)
func (u Unit[F]) Max(other Unit[F]) Unit[F] { return Max(u, other) }

// Compare 返回 -1、0、+1，可直接用于 slices.SortFunc
func Compare[F Float](a, b Unit[F]) int {
	return cmp.Compare(a.v, b.v)
}

func (u Unit[F]) Equal(other Unit[F]) bool     { return u.v == other.v }
func (u Unit[F]) Less(other Unit[F]) bool      { return u.v < other.v }
func (u Unit[F]) LessEq(other Unit[F]) bool    { return u.v <= other.v }
func (u Unit[F]) Greater(other Unit[F]) bool   { return u.v > other.v }
func (u Unit[F]) GreaterEq(other Unit[F]) bool { return u.v >= other.v }
