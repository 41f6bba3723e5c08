/*
Package strtod implements correctly-rounded conversion of decimal textual
floating-point numbers to IEEE-754 binary64 values.

The implementation is a direct descendant of David Gay's dtoa/strtod and
inherits its accuracy guarantee: for any input the returned float64 differs
from the exact mathematical value of the decimal text by at most half a unit
in the last place (ULP), with ties broken to even.

The package exposes a single operation:

	v, ok := strtod.ParseFloat64(b)

ParseFloat64 lexes the longest valid decimal-number prefix of b, computes a
fast approximation using ordinary float64 multiplications against a table of
exact powers of ten, and — whenever that approximation cannot be proven
correctly rounded — refines it to the correctly-rounded result using
arbitrary-precision integer arithmetic over both the decimal and the binary
representation of the value.

There is no support for "NaN", "Inf", hexadecimal floats, digit-group
separators, or non-ASCII input. Input that starts with "NaN", "Inf" or any
other non-numeric byte is reported as unparsed; a hexadecimal float or a
digit-grouped number yields only its leading decimal prefix. Trailing bytes
after a valid numeric prefix are ignored, and a NUL byte always ends the
numeric form:

	strtod.ParseFloat64([]byte("4\x0012")) // 4.0, true
	strtod.ParseFloat64([]byte("0x1p0"))   // 0, true
	strtod.ParseFloat64([]byte("NaN"))     // 0, false

Overflow and underflow are not reported as errors: a magnitude too large to
represent yields ±Inf, and a magnitude too small yields ±0, matching the
behavior of IEEE-754 arithmetic itself.

ParseFloat64 is a pure function of its input: it performs no I/O, holds no
state across calls, and is safe for unsynchronized concurrent use.
*/
package strtod
