package strtod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexBasic(t *testing.T) {
	res, ok := lex([]byte("123.456e7"))
	require.True(t, ok)
	assert.False(t, res.neg)
	assert.False(t, res.zero)
	assert.Equal(t, 6, res.nd)
	assert.Equal(t, 3, res.nd0)
}

func TestLexSignAndWhitespace(t *testing.T) {
	res, ok := lex([]byte("   -42"))
	require.True(t, ok)
	assert.True(t, res.neg)
	assert.Equal(t, 2, res.nd)
}

func TestLexLeadingZeroSkip(t *testing.T) {
	res, ok := lex([]byte("000123"))
	require.True(t, ok)
	assert.Equal(t, 3, res.nd)
	assert.Equal(t, uint32(123), res.y)
}

func TestLexAllZero(t *testing.T) {
	for _, in := range []string{"0", "00", "0.0", "0.000", "-0"} {
		res, ok := lex([]byte(in))
		require.True(t, ok, "lex(%q)", in)
		assert.True(t, res.zero, "lex(%q).zero", in)
	}
}

func TestLexFractionOnly(t *testing.T) {
	// Trailing fractional zeros after the last nonzero digit don't change
	// the value, so the lexer drops them from nd/y rather than folding
	// them into the exponent: "120" with its insignificant trailing zero
	// collapses to the digit pair (1,2) scaled by e.
	res, ok := lex([]byte(".00120"))
	require.True(t, ok)
	assert.Equal(t, 2, res.nd)
	assert.Equal(t, uint32(12), res.y)
	assert.Equal(t, int32(-4), res.e)
}

func TestLexExponentClamp(t *testing.T) {
	res, ok := lex([]byte("1e999999999"))
	require.True(t, ok)
	assert.Equal(t, int32(19999), res.e)

	res, ok = lex([]byte("1e-999999999"))
	require.True(t, ok)
	assert.Equal(t, int32(-19999), res.e)
}

func TestLexExponentOnlyIsZero(t *testing.T) {
	// A '.' before the exponent is a consumed zero prefix; an exponent with
	// nothing at all before it is not a number.
	res, ok := lex([]byte(".e5"))
	require.True(t, ok)
	assert.True(t, res.zero)

	_, ok = lex([]byte("e5"))
	assert.False(t, ok)
}

func TestLexNulTerminates(t *testing.T) {
	res, ok := lex([]byte("4\x0012"))
	require.True(t, ok)
	assert.Equal(t, 1, res.nd)
	assert.Equal(t, uint32(4), res.y)
}

func TestLexBareDotIsZero(t *testing.T) {
	res, ok := lex([]byte("."))
	require.True(t, ok)
	assert.True(t, res.zero)
	assert.False(t, res.neg)
}

func TestLexInvalidLeadingByte(t *testing.T) {
	for _, in := range []string{"", "+", "-", "x5", "  ", "+x"} {
		_, ok := lex([]byte(in))
		assert.False(t, ok, "lex(%q) should fail", in)
	}
}
