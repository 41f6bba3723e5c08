package strtod

// buildMantissa assembles the initial binary64 mantissa from the lexer's
// truncated 9+7 digit split (y, z) and the total significant digit count
// nd, per spec.md §4.2/§4.3's shared first step. k is min(nd, dblDig+1)
// and is also needed by the approximation phase's exponent bookkeeping.
func buildMantissa(y, z uint32, nd int) (rv float64, k int) {
	k = nd
	if k > dblDig+1 {
		k = dblDig + 1
	}
	rv = float64(y)
	if k > 9 {
		rv = tens[k-9]*rv + float64(z)
	}
	return rv, k
}

// fastPath attempts spec.md §4.2's direct computation: one or two exact
// float64 multiplications/divisions against the powers-of-ten table. ok is
// false when the preconditions don't hold or no direct branch applies, in
// which case the slow path must run, continuing from rv.
func fastPath(rv float64, nd int, e int32) (result float64, ok bool) {
	if nd > dblDig {
		return 0, false
	}
	// Flt_Rounds == 1 always holds for Go's float64 arithmetic, which is
	// round-to-nearest-even per IEEE-754.
	if e == 0 {
		return rv, true
	}
	if e > 0 {
		if e <= tenPmax {
			return rv * tens[e], true
		}
		i := dblDig - nd
		if int(e) <= tenPmax+i {
			e -= int32(i)
			return rv * tens[i] * tens[e], true
		}
		return 0, false
	}
	if e >= -tenPmax {
		return rv / tens[-e], true
	}
	return 0, false
}
