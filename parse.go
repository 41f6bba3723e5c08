package strtod

// ParseFloat64 parses the longest valid decimal-number prefix of b into a
// correctly-rounded binary64, per spec.md's grammar: optional leading
// whitespace, an optional sign, digits, an optional '.', more digits, and
// an optional decimal exponent. ok is false when b has no such prefix at
// all (including an empty slice, a lone sign, or a leading byte that isn't
// whitespace, a sign, a digit, or '.'). Input is treated as NUL-terminated:
// scanning stops at the first NUL byte even if b is longer.
//
// ParseFloat64 never recognizes "inf", "infinity", "nan", hexadecimal
// floats, or digit-group separators: the scan stops at the first byte that
// cannot continue a decimal number, so "inf" is not parsed while "0x1p0"
// parses as 0 and "1_000" as 1.
func ParseFloat64(b []byte) (float64, bool) {
	res, ok := lex(b)
	if !ok {
		return 0, false
	}
	if res.zero {
		v := 0.0
		if res.neg {
			v = -v
		}
		return v, true
	}

	rv, k := buildMantissa(res.y, res.z, res.nd)
	if v, ok := fastPath(rv, res.nd, res.e); ok {
		if res.neg {
			v = -v
		}
		return v, true
	}

	v := slowPath(b, res, rv, k)
	if res.neg {
		v = -v
	}
	return v, true
}

// ParseFloat64String is ParseFloat64 for a string input; it converts s to a
// byte slice, which copies it.
func ParseFloat64String(s string) (float64, bool) {
	return ParseFloat64([]byte(s))
}
