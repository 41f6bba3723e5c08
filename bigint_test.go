package strtod

import (
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBigIntMultAddSmall(t *testing.T) {
	b := newBigInt(123)
	b.multAddSmall(10, 4)
	assert.Equal(t, uint32(1234), b.x[0])
}

func TestBigIntMultAddSmallCarries(t *testing.T) {
	b := newBigInt(0xffffffff)
	b.multAddSmall(10, 9)
	assert.Equal(t, 2, len(b.x))
}

func TestBigIntMult(t *testing.T) {
	a := newBigInt(1000000)
	c := mult(a, a)
	assert.Equal(t, uint32(1000000000000&0xffffffff), c.x[0])
	assert.Equal(t, uint32(1000000000000>>32), c.x[1])
}

func TestBigIntCmp(t *testing.T) {
	a := newBigInt(5)
	b := newBigInt(10)
	assert.Equal(t, -1, cmp(a, b))
	assert.Equal(t, 1, cmp(b, a))
	assert.Equal(t, 0, cmp(a, a))
}

func TestBigIntDiff(t *testing.T) {
	a := newBigInt(10)
	b := newBigInt(3)
	d := diff(a, b)
	assert.False(t, d.sign)
	assert.Equal(t, uint32(7), d.x[0])

	d2 := diff(b, a)
	assert.True(t, d2.sign)
	assert.Equal(t, uint32(7), d2.x[0])

	d3 := diff(a, a)
	assert.Equal(t, uint32(0), d3.x[0])
}

func TestBigIntLeftShift(t *testing.T) {
	b := newBigInt(1)
	s := leftShift(b, 40)
	// 1 << 40 needs two limbs: bit 40 lands in the second limb.
	assert.Equal(t, 2, len(s.x))
	assert.Equal(t, uint32(0), s.x[0])
	assert.Equal(t, uint32(1<<8), s.x[1])
}

func TestBigIntPow5Mult(t *testing.T) {
	b := newBigInt(1)
	r := pow5Mult(b, 3) // 5^3 = 125
	assert.Equal(t, uint32(125), r.x[0])

	b2 := newBigInt(1)
	r2 := pow5Mult(b2, 10) // 5^10 = 9765625
	assert.Equal(t, uint32(9765625), r2.x[0])
}

func TestBigIntS2B(t *testing.T) {
	b := []byte("12345")
	r := s2b(b, 0, 5, 5, 12345)
	assert.Equal(t, uint32(12345), r.x[0])
}

func TestBigIntS2BWithFraction(t *testing.T) {
	// "3.14159" with digits significant from offset 0, nd0=1 (one integer
	// digit), nd=6 total; y9 is the lexer's already-accumulated value.
	b := []byte("3.14159")
	r := s2b(b, 0, 1, 6, 314159)
	assert.Equal(t, uint32(314159), r.x[0])
}

func TestBigIntMultCarryAcrossLimbs(t *testing.T) {
	a := newBigInt(0xFFFFFFFF)
	b := newBigInt(2)
	got := mult(a, b)
	want := []uint32{0xFFFFFFFE, 1}
	if diff := gocmp.Diff(want, got.x); diff != "" {
		t.Errorf("mult(0xFFFFFFFF, 2) limbs mismatch (-want +got):\n%s", diff)
	}
}

func TestBigIntD2BExactPowerOfTwo(t *testing.T) {
	// 8.0 == 1 * 2**3: d2b should decompose it to the single-limb mantissa
	// 1 with binary exponent 3 and a one-bit-significant mantissa.
	b, e, bits := d2b(u{d: 8.0})
	assert.Equal(t, []uint32{1}, b.x)
	assert.Equal(t, int32(3), e)
	assert.Equal(t, uint32(1), bits)
}
