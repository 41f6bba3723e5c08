package strtod

// cursor is a byte-slice lexer position: peeking past the end yields the
// sentinel NUL byte, and a NUL byte in the input itself also ends the
// numeric form, matching spec's "input terminates at the first NUL byte".
type cursor struct {
	b   []byte
	off int
}

func (c *cursor) peek() byte {
	if c.off >= len(c.b) {
		return 0
	}
	return c.b[c.off]
}

func (c *cursor) bump() {
	c.off++
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lexResult carries everything the fast and slow paths need out of the
// lexer: the sign, the truncated 9+7 digit mantissa (y, z), the total
// significant digit count nd, the position of the decimal point nd0, and
// the effective decimal exponent e. digitsOff is the offset of the first
// significant digit, kept so that s2b can re-walk the original run to
// build the full-precision mantissa without re-lexing.
type lexResult struct {
	neg       bool
	zero      bool // the value is a plain (possibly signed) zero; y/z/e unused
	y, z      uint32
	nd, nd0   int
	e         int32
	digitsOff int
	end       int // offset just past the consumed numeric form
}

// lex scans the longest valid decimal-number prefix of b starting at
// offset 0, per the grammar in spec.md §6. ok is false only when no valid
// prefix exists at all (empty input, a sign with nothing after it, or a
// leading byte that is neither whitespace, sign, digit, nor '.').
//
// This is a direct transliteration of the reference parser's parse_impl
// (original_source/src/lib.rs), preserving its nz0/nz/nf bookkeeping: nf
// accumulates how many fractional digit positions were consumed by the
// significant-digit run (folding in skipped leading fractional zeros), and
// is subtracted from the decimal exponent at the end.
func lex(b []byte) (res lexResult, ok bool) {
	c := cursor{b: b}

	for {
		switch c.peek() {
		case 0:
			return lexResult{}, false
		case '+', '-':
			res.neg = c.peek() == '-'
			c.bump()
			if c.peek() == 0 {
				return lexResult{}, false
			}
		case '\t', '\n', '\v', '\f', '\r', ' ':
			c.bump()
			continue
		}
		break
	}

	start := c.off

	nz0 := false
	if c.peek() == '0' {
		nz0 = true
		c.bump()
		for c.peek() == '0' {
			c.bump()
		}
		if c.peek() == 0 {
			res.end = c.off
			res.zero = true
			return res, true
		}
	}

	digitsOff := c.off
	var y, z uint32
	var nd int
	ch := c.peek()
	for isDigit(ch) {
		switch {
		case nd < 9:
			y = 10*y + uint32(ch-'0')
		case nd < 16:
			z = 10*z + uint32(ch-'0')
		}
		nd++
		c.bump()
		ch = c.peek()
	}

	nd0 := nd
	nz := 0
	nf := 0

	if ch == '.' {
		c.bump()
		ch = c.peek()
		if nd == 0 {
			for ch == '0' {
				c.bump()
				ch = c.peek()
				nz++
			}
			if ch > '0' && ch <= '9' {
				digitsOff = c.off
				nf += nz
				nz = 0
			}
		}
		for isDigit(ch) {
			nz++
			if ch > '0' {
				nf += nz
				for i := 1; i < nz; i++ {
					switch {
					case nd < 9:
						y *= 10
					case nd < dblDig+1:
						z *= 10
					}
					nd++
				}
				switch {
				case nd < 9:
					y = 10*y + uint32(ch-'0')
				case nd < dblDig+1:
					z = 10*z + uint32(ch-'0')
				}
				nd++
				nz = 0
			}
			c.bump()
			ch = c.peek()
		}
	}

	var e int32
	if ch == 'e' || ch == 'E' {
		if nd == 0 && nz == 0 && !nz0 {
			res.end = c.off
			res.neg = false
			res.zero = c.off > start
			return res, res.zero
		}
		c.bump()
		ch = c.peek()
		esign := false
		if ch == '+' || ch == '-' {
			esign = ch == '-'
			c.bump()
			ch = c.peek()
		}
		if isDigit(ch) {
			for ch == '0' {
				c.bump()
				ch = c.peek()
			}
			if ch > '0' && ch <= '9' {
				expStart := c.off
				l := int64(ch - '0')
				c.bump()
				ch = c.peek()
				for isDigit(ch) {
					l = l*10 + int64(ch-'0')
					c.bump()
					ch = c.peek()
				}
				if c.off-expStart > 8 || l > 19999 {
					l = 19999
				}
				e = int32(l)
				if esign {
					e = -e
				}
			}
		}
	}

	if nd == 0 {
		if nz == 0 && !nz0 {
			res.neg = false
		}
		res.end = c.off
		res.zero = c.off > start
		return res, res.zero
	}

	e -= int32(nf)
	if nd0 == 0 {
		nd0 = nd
	}

	res.y, res.z = y, z
	res.nd, res.nd0 = nd, nd0
	res.e = e
	res.digitsOff = digitsOff
	res.end = c.off
	return res, true
}
