package common

// ClampInt limits v to [lo, hi]. When lo > hi the result is hi.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// FloorDiv divides rounding toward negative infinity, so world
// coordinates left of the origin map to negative tile indices.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
