package strtod

import "fmt"

// bigInt is a minimal non-negative arbitrary-precision integer, stored as a
// little-endian slice of 32-bit limbs, with a sign flag used only by diff.
//
// Invariant: len(x) >= 1; x has no leading (high-index) zero limb except
// when the value is zero, in which case len(x) == 1 and x[0] == 0.
// mult, leftShift, diff and d2b call norm before returning; multAddSmall
// (and so s2b, and pow5Mult when it only multiplies by 5, 25 or 125) does
// not trim.
type bigInt struct {
	x    []uint32
	sign bool
}

func (x *bigInt) validate() {
	if !debugStrtod {
		panic("validate called but debugStrtod is not set")
	}
	if len(x.x) == 0 {
		panic("bigInt with empty limb slice")
	}
	if len(x.x) > 1 && x.x[len(x.x)-1] == 0 {
		panic("bigInt with un-normalized leading zero limb")
	}
}

// norm trims leading (high-index) zero limbs, leaving exactly one zero
// limb when the value is zero.
func (x *bigInt) norm() *bigInt {
	n := len(x.x)
	for n > 1 && x.x[n-1] == 0 {
		n--
	}
	x.x = x.x[:n]
	if debugStrtod {
		x.validate()
	}
	return x
}

// newBigInt returns a bigInt with the single value v.
func newBigInt(v uint32) *bigInt {
	return &bigInt{x: []uint32{v}}
}

// multAddSmall sets x to x*m + a, in place.
func (x *bigInt) multAddSmall(m uint32, a uint32) *bigInt {
	carry := uint64(a)
	for i, w := range x.x {
		y := uint64(w)*uint64(m) + carry
		carry = y >> 32
		x.x[i] = uint32(y)
	}
	if carry != 0 {
		x.x = append(x.x, uint32(carry))
	}
	if debugStrtod {
		x.validate()
	}
	return x
}

// s2b builds the bigInt holding the full integer formed by the nd
// significant digits of b starting at off (the first significant digit),
// skipping the single '.' byte when the run crosses from the integer part
// (nd0 digits) into the fractional part. y9 is the value of the first
// (up to) 9 digits, already accumulated by the lexer.
func s2b(b []byte, off int, nd0, nd int, y9 uint32) *bigInt {
	r := newBigInt(y9)
	i := 9
	if i < nd0 {
		off += 9
		for ; i < nd0; i++ {
			r.multAddSmall(10, uint32(b[off]-'0'))
			off++
		}
		off++ // skip '.'
	} else {
		off += 10 // 9 digits plus the '.' that immediately follows them
	}
	for ; i < nd; i++ {
		r.multAddSmall(10, uint32(b[off]-'0'))
		off++
	}
	if debugStrtod {
		r.validate()
	}
	return r
}

// mult returns a*b.
func mult(a, b *bigInt) *bigInt {
	if len(a.x) < len(b.x) {
		a, b = b, a
	}
	c := &bigInt{x: make([]uint32, len(a.x)+len(b.x))}
	for xb, y := range b.x {
		if y == 0 {
			continue
		}
		var carry uint64
		xc := xb
		for xa := 0; xa < len(a.x); xa++ {
			z := uint64(a.x[xa])*uint64(y) + uint64(c.x[xc]) + carry
			carry = z >> 32
			c.x[xc] = uint32(z)
			xc++
		}
		c.x[xc] = uint32(carry)
	}
	return c.norm()
}

// leftShift returns b shifted left by k bits.
func leftShift(b *bigInt, k int32) *bigInt {
	r := &bigInt{x: make([]uint32, k>>5, int(k>>5)+len(b.x)+1)}
	k &= 0x1f
	if k != 0 {
		k1 := 32 - uint(k)
		var carry uint32
		for _, w := range b.x {
			r.x = append(r.x, w<<uint(k)|carry)
			carry = w >> k1
		}
		r.x = append(r.x, carry)
	} else {
		r.x = append(r.x, b.x...)
	}
	return r.norm()
}

// cmp compares the magnitudes of a and b: -1, 0, or 1.
func cmp(a, b *bigInt) int {
	if d := len(a.x) - len(b.x); d != 0 {
		if d < 0 {
			return -1
		}
		return 1
	}
	for i := len(a.x) - 1; i >= 0; i-- {
		if a.x[i] != b.x[i] {
			if a.x[i] < b.x[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// diff returns a-b as a signed magnitude: the result's sign is true when
// b > a (i.e. the "true" difference is negative).
func diff(a, b *bigInt) *bigInt {
	if cmp(a, b) == 0 {
		return newBigInt(0)
	}
	neg := false
	if cmp(a, b) < 0 {
		a, b = b, a
		neg = true
	}
	c := &bigInt{sign: neg, x: make([]uint32, 0, len(a.x))}
	var borrow uint64
	i := 0
	for ; i < len(b.x); i++ {
		y := uint64(a.x[i]) - uint64(b.x[i]) - borrow
		borrow = (y >> 32) & 1
		c.x = append(c.x, uint32(y))
	}
	for ; i < len(a.x); i++ {
		y := uint64(a.x[i]) - borrow
		borrow = (y >> 32) & 1
		c.x = append(c.x, uint32(y))
	}
	return c.norm()
}

// pow5Mult returns b * 5**k.
func pow5Mult(b *bigInt, k int32) *bigInt {
	if i := k & 3; i != 0 {
		b.multAddSmall(p05[i-1], 0)
	}
	k >>= 2
	if k == 0 {
		return b
	}
	p5 := newBigInt(625)
	for {
		if k&1 != 0 {
			b = mult(b, p5)
		}
		k >>= 1
		if k == 0 {
			break
		}
		p5 = mult(p5, p5)
	}
	return b
}

// d2b decomposes rv's mantissa into a bigInt b such that rv == b * 2**e,
// also reporting bits, the effective bit length of b. Subnormals are
// handled by not setting the implicit leading 1.
func d2b(rv u) (b *bigInt, e int32, bits uint32) {
	b = &bigInt{x: make([]uint32, 0, 2)}

	z := rv.word0() & fracMask
	w := rv.word0() & 0x7fffffff // clear the sign bit, which d2b ignores
	de := w >> 20
	if de != 0 {
		z |= expMsk1
	}

	y := rv.word1()
	var k uint32
	if y != 0 {
		k = lo0bits(&y)
		if k != 0 {
			b.x = append(b.x, y|z<<(32-k))
			z >>= k
		} else {
			b.x = append(b.x, y)
		}
		if z != 0 {
			b.x = append(b.x, z)
		}
	} else {
		k = lo0bits(&z)
		b.x = append(b.x, z)
		k += 32
	}
	b.norm()

	if de != 0 {
		e = int32(de) - bias - (p - 1) + int32(k)
		bits = p - k
	} else {
		e = int32(de) - bias - (p - 1) + 1 + int32(k)
		bits = 32*uint32(len(b.x)) - hi0bits(b.x[len(b.x)-1])
	}
	return b, e, bits
}

// b2d converts the top bits of a into a binary64 d in [1, 2) and returns e,
// the bit length of a's most significant limb:
// a == d * 2**(e-1+32*(len(a.x)-1)) (up to the low-order bits b2d discards).
func b2d(a *bigInt) (d float64, e int32) {
	xa := len(a.x) - 1
	y := a.x[xa]
	k := hi0bits(y)
	e = 32 - int32(k)

	var r u
	if k < ebits {
		var w uint32
		if xa > 0 {
			xa--
			w = a.x[xa]
		}
		r.setWord0(exp1 | y>>(ebits-k))
		r.setWord1(y<<((32-ebits)+k) | w>>(ebits-k))
		return r.d, e
	}

	var z uint32
	if xa > 0 {
		xa--
		z = a.x[xa]
	}
	k -= ebits
	if k != 0 {
		var y2 uint32
		if xa > 0 {
			xa--
			y2 = a.x[xa]
		}
		r.setWord0(exp1 | y<<k | z>>(32-k))
		r.setWord1(z<<k | y2>>(32-k))
	} else {
		r.setWord0(exp1 | y)
		r.setWord1(z)
	}
	return r.d, e
}

// ratio returns a/b as a float64, accurate to within a few ULPs: exact
// enough to drive the refinement loop's convergence test.
func ratio(a, b *bigInt) float64 {
	da, ka := b2d(a)
	db, kb := b2d(b)
	ua, ub := u{d: da}, u{d: db}

	k := ka - kb + 32*int32(len(a.x)-len(b.x))
	if k > 0 {
		ua.setWord0(ua.word0() + uint32(k)*expMsk1)
	} else {
		k = -k
		ub.setWord0(ub.word0() + uint32(k)*expMsk1)
	}
	return ua.d / ub.d
}

func (x *bigInt) String() string {
	return fmt.Sprintf("%v", x.x)
}
