package strtod

// IEEE-754 binary64 layout and rounding constants, named after the ones
// David Gay's dtoa.c (and its descendants, including original_source's
// dtoa.c-derived Rust port) use throughout the refinement loop.
const (
	p           = 53   // precision in bits, including the implicit leading 1
	bias        = 1023 // exponent bias
	emin        = -1022 // minimum unbiased (normal) exponent
	ebits       = 11    // width of the biased exponent field
	dblDig      = 15    // DBL_DIG: guaranteed round-trippable significant decimal digits
	tenPmax     = 22    // largest k such that 10**k is exact in binary64
	dblMax10Exp = 308   // DBL_MAX_10_EXP
	dblMaxExp   = 1024
	nBigtens    = 5 // len(bigtens) == len(tinytens)
	log2P       = 1 // log2(FLT_RADIX), FLT_RADIX == 2
	fltRadix    = 2

	fracMask   = 0xfffff    // 20 fraction bits of the high word
	expMsk1    = 0x100000   // value of the lowest exponent bit, in the high word
	expMask    = 0x7ff00000 // biased exponent field, in the high word
	exp1       = 0x3ff00000 // high word of 1.0 (biased exponent of 0)
	bndryMask  = 0xfffff    // fraction mask used for "mantissa is a power of two" tests
	bndryMask1 = 0xfffff
	lsb        = 1
	tiny1      = 1

	scaleBit = 0x10 // bit of |e1|>>4 that arms the 2*P end-scale
)

// big0/big1 are the high/low words of the largest finite binary64,
// written when the approximation phase's scale-up step detects overflow.
var (
	big0 = uint32(fracMask | expMsk1*(dblMaxExp+bias-1))
	big1 = uint32(0xffffffff)
)

// tens[i] = 10**i, exact in binary64 for i in [0, tenPmax].
var tens = [tenPmax + 1]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22,
}

// bigtens[j] = 10**(16 * 2**j), used to decompose large decimal exponents
// during the approximation phase.
var bigtens = [nBigtens]float64{1e16, 1e32, 1e64, 1e128, 1e256}

// tinytens is bigtens' reciprocal table. The last entry is not a plain
// 1e-256: whenever it is used, the approximation phase also arms a deferred
// 2**(2*P) descaling step (see slowpath.go), so this entry is pre-scaled by
// 2**(2*P) = (2**53)**2 relative to the naive reciprocal, to keep
// intermediate products out of the subnormal range until the final
// descaling multiplication undoes it.
var tinytens = [nBigtens]float64{
	1e-16, 1e-32, 1e-64, 1e-128,
	9007199254740992.0 * 9007199254740992e-256,
}

// p05[i] = 5**(i+1), used by pow5Mult's low two bits of the exponent.
var p05 = [3]uint32{5, 25, 125}
