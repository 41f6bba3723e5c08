package strtod

import "fmt"

// classifyRefine maps a cmp result to the refineCase it corresponds to.
func classifyRefine(c int) refineCase {
	switch {
	case c < 0:
		return caseLess
	case c == 0:
		return caseEqual
	default:
		return caseGreater
	}
}

// debugAssertRefineCase panics when rc disagrees with the actual ordering
// of delta against bs, catching a mismatch between the refine loop's
// switch and the classification passed alongside it. A no-op unless
// debugStrtod is set.
func debugAssertRefineCase(rc refineCase, delta, bs *bigInt) {
	c := cmp(delta, bs)
	switch rc {
	case caseLess:
		if c >= 0 {
			panic(fmt.Sprintf("refineCase %v inconsistent with cmp result %d", rc, c))
		}
	case caseEqual:
		if c != 0 {
			panic(fmt.Sprintf("refineCase %v inconsistent with cmp result %d", rc, c))
		}
	case caseGreater:
		if c <= 0 {
			panic(fmt.Sprintf("refineCase %v inconsistent with cmp result %d", rc, c))
		}
	}
}

// parser carries the two pieces of state the refinement algorithm mutates
// as it closes in on the correctly-rounded result: the sign, decided once
// by the lexer, and the running binary64 approximation rv.
type parser struct {
	neg bool
	rv  u
}

// overflow sets rv to +Inf's bit pattern.
func (ps *parser) overflow() {
	ps.rv.setWord0(expMask)
	ps.rv.setWord1(0)
}

// dropDown steps rv down to the next representable binary64 below it, used
// when rv is (or rounds to) an exact power of two and the true value lies
// just below the boundary. Returns true when the step underflows rv to
// exact zero, in which case rv.d has already been set and the caller
// should stop immediately rather than run the final descale multiply.
func (ps *parser) dropDown(scale int32) bool {
	if scale != 0 {
		l := ps.rv.word0() & expMask
		if l <= uint32((2*p+1)*expMsk1) {
			if l > uint32((p+2)*expMsk1) {
				return false
			}
			ps.rv.d = 0
			return true
		}
	}
	l := (ps.rv.word0() & expMask) - expMsk1
	ps.rv.setWord0(l | bndryMask1)
	ps.rv.setWord1(0xffffffff)
	return false
}

// approximate runs spec.md §4.3's approximation phase: it scales rv by
// whole powers of ten (via the tens/bigtens/tinytens tables) to land rv
// within a handful of ULPs of the true value, reporting the end scale the
// refinement loop must later undo. done is true when overflow or an exact
// underflow to zero was already detected, in which case rv.d holds the
// final answer and the refinement loop must not run.
func (ps *parser) approximate(e1 int32) (scale int32, done bool) {
	if e1 > 0 {
		i := e1 & 15
		if i != 0 {
			ps.rv.d *= tens[i]
		}
		e1 &^= 15
		if e1 != 0 {
			if e1 > dblMax10Exp {
				ps.overflow()
				return 0, true
			}
			e1 >>= 4
			j := int32(0)
			for e1 > 1 {
				if e1&1 != 0 {
					ps.rv.d *= bigtens[j]
				}
				j++
				e1 >>= 1
			}
			w := ps.rv.word0() - p*expMsk1
			ps.rv.setWord0(w)
			ps.rv.d *= bigtens[j]
			z := ps.rv.word0() & expMask
			if z > expMsk1*(dblMaxExp+bias-p) {
				ps.overflow()
				return 0, true
			}
			if z > expMsk1*(dblMaxExp+bias-1-p) {
				ps.rv.setWord0(big0)
				ps.rv.setWord1(big1)
			} else {
				w = ps.rv.word0() + p*expMsk1
				ps.rv.setWord0(w)
			}
		}
	} else if e1 < 0 {
		e1 = -e1
		i := e1 & 15
		if i != 0 {
			ps.rv.d /= tens[i]
		}
		e1 >>= 4
		if e1 != 0 {
			if e1 >= 1<<nBigtens {
				ps.rv.d = 0
				return 0, true
			}
			if e1&scaleBit != 0 {
				scale = 2 * p
			}
			j := int32(0)
			for e1 > 0 {
				if e1&1 != 0 {
					ps.rv.d *= tinytens[j]
				}
				j++
				e1 >>= 1
			}
			if scale != 0 {
				jj := 2*p + 1 - int32((ps.rv.word0()&expMask)>>20)
				if jj > 0 {
					if jj >= 32 {
						ps.rv.setWord1(0)
						if jj >= 53 {
							ps.rv.setWord0((p + 2) * expMsk1)
						} else {
							w := ps.rv.word0() & (uint32(0xffffffff) << uint(jj-32))
							ps.rv.setWord0(w)
						}
					} else {
						w := ps.rv.word1() & (uint32(0xffffffff) << uint(jj))
						ps.rv.setWord1(w)
					}
					if ps.rv.d == 0 {
						return 0, true
					}
				}
			}
		}
	}
	return scale, false
}

// refine runs spec.md §4.4's refinement loop: it repeatedly compares the
// exact decimal value bd0 * 10**e against rv using bigInt arithmetic and
// moves rv (by one ULP in the tie and boundary cases, otherwise by a
// correction proportional to the measured error) until the gap is provably
// within the correctly-rounded tolerance.
func (ps *parser) refine(bd0 *bigInt, e int32, scale int32) float64 {
refineLoop:
	for {
		bd := &bigInt{x: append([]uint32(nil), bd0.x...), sign: bd0.sign}
		bb, bbe, bbbits := d2b(ps.rv)
		bs := newBigInt(1)

		var bb2, bb5, bd2, bd5 int32
		if e >= 0 {
			bd2, bd5 = e, e
		} else {
			bb2, bb5 = -e, -e
		}
		if bbe >= 0 {
			bb2 += bbe
		} else {
			bd2 -= bbe
		}
		bs2 := bb2

		j := bbe - scale
		i := j + int32(bbbits) - 1
		if i < emin {
			j += p - emin
		} else {
			j = p + 1 - int32(bbbits)
		}
		bb2 += j
		bd2 += j
		bd2 += scale

		m := bb2
		if bd2 < m {
			m = bd2
		}
		if m > bs2 {
			m = bs2
		}
		if m > 0 {
			bb2 -= m
			bd2 -= m
			bs2 -= m
		}

		if bb5 > 0 {
			bs = pow5Mult(bs, bb5)
			bb = mult(bs, bb)
		}
		if bb2 > 0 {
			bb = leftShift(bb, bb2)
		}
		if bd5 > 0 {
			bd = pow5Mult(bd, bd5)
		}
		if bd2 > 0 {
			bd = leftShift(bd, bd2)
		}
		if bs2 > 0 {
			bs = leftShift(bs, bs2)
		}

		delta := diff(bb, bd)
		dsign := delta.sign
		delta.sign = false

		c := cmp(delta, bs)
		if debugStrtod {
			debugAssertRefineCase(classifyRefine(c), delta, bs)
		}

		switch {
		case c < 0:
			if dsign || ps.rv.word1() != 0 || ps.rv.word0()&bndryMask != 0 ||
				(ps.rv.word0()&expMask) <= (2*p+1)*expMsk1 {
				break refineLoop
			}
			if len(delta.x) <= 1 && delta.x[0] == 0 {
				break refineLoop
			}
			delta = leftShift(delta, log2P)
			if cmp(delta, bs) > 0 {
				if ps.dropDown(scale) {
					return ps.rv.d
				}
			}
			break refineLoop

		case c == 0:
			if dsign {
				if ps.rv.word0()&bndryMask1 == bndryMask1 {
					yv := ps.rv.word0() & expMask
					want := uint32(0xffffffff)
					if scale != 0 && yv <= 2*p*expMsk1 {
						want = uint32(0xffffffff) << uint(2*p+1-(yv>>20))
					}
					if ps.rv.word1() == want {
						w := (ps.rv.word0() & expMask) + expMsk1
						ps.rv.setWord0(w)
						ps.rv.setWord1(0)
						break refineLoop
					}
				}
			} else if ps.rv.word0()&bndryMask == 0 && ps.rv.word1() == 0 {
				if ps.dropDown(scale) {
					return ps.rv.d
				}
				break refineLoop
			}
			// In the scaled subnormal range rv's last significant bit sits
			// above the mantissa's bit 0, and one step is that bit's weight.
			lsbBits, step := uint64(lsb), ulp(ps.rv)
			if yv := (ps.rv.word0() & expMask) >> 20; scale != 0 && yv <= 2*p {
				lsbBits <<= 2*p + 1 - yv
				step *= float64(lsbBits)
			}
			if (uint64(ps.rv.word0())<<32|uint64(ps.rv.word1()))&lsbBits == 0 {
				break refineLoop
			}
			if dsign {
				ps.rv.d += step
			} else {
				ps.rv.d -= step
				if ps.rv.d == 0 {
					return ps.rv.d
				}
			}
			break refineLoop

		default:
			aadj := ratio(delta, bs)
			var aadj1 float64
			switch {
			case aadj > 2:
				aadj *= 0.5
				if dsign {
					aadj1 = aadj
				} else {
					aadj1 = -aadj
				}
				// Flt_Rounds == 1 for Go's float64 arithmetic, so the
				// reference's Flt_Rounds == 0 correction never applies here.
			case dsign:
				aadj = 1
				aadj1 = 1
			case ps.rv.word1() != 0 || ps.rv.word0()&bndryMask != 0:
				if ps.rv.word1() == tiny1 && ps.rv.word0() == 0 {
					ps.rv.d = 0
					return ps.rv.d
				}
				aadj = 1
				aadj1 = -1
			default:
				if aadj < 2/float64(fltRadix) {
					aadj = 1 / float64(fltRadix)
				} else {
					aadj *= 0.5
				}
				aadj1 = -aadj
			}

			yv := ps.rv.word0() & expMask
			if yv == expMsk1*(dblMaxExp+bias-1) {
				rv0 := ps.rv
				w := ps.rv.word0() - p*expMsk1
				ps.rv.setWord0(w)
				ps.rv.d += aadj1 * ulp(ps.rv)
				if (ps.rv.word0() & expMask) >= expMsk1*(dblMaxExp+bias-p) {
					if rv0.word0() == big0 && rv0.word1() == big1 {
						ps.overflow()
						return ps.rv.d
					}
					ps.rv.setWord0(big0)
					ps.rv.setWord1(big1)
					continue refineLoop
				}
				w = ps.rv.word0() + p*expMsk1
				ps.rv.setWord0(w)
			} else {
				if scale != 0 && yv <= 2*p*expMsk1 {
					if aadj <= 0x7fffffff {
						z := uint32(aadj)
						if z == 0 {
							z = 1
						}
						aadj = float64(z)
						if dsign {
							aadj1 = aadj
						} else {
							aadj1 = -aadj
						}
					}
					var a1 u
					a1.d = aadj1
					a1.setWord0(a1.word0() + uint32(2*p+1)*expMsk1 - yv)
					aadj1 = a1.d
				}
				ps.rv.d += aadj1 * ulp(ps.rv)
			}

			if scale == 0 {
				z := ps.rv.word0() & expMask
				if yv == z {
					l := int32(aadj)
					aadj -= float64(l)
					if dsign || ps.rv.word1() != 0 || ps.rv.word0()&bndryMask != 0 {
						if aadj < 0.4999999 || aadj > 0.5000001 {
							break refineLoop
						}
					} else if aadj < 0.4999999/float64(fltRadix) {
						break refineLoop
					}
				}
			}
		}
	}

	if scale != 0 {
		var rv0 u
		rv0.setWord0(exp1 - 2*p*expMsk1)
		rv0.setWord1(0)
		ps.rv.d *= rv0.d
	}
	return ps.rv.d
}

// slowPath runs the approximation phase followed, when needed, by the
// refinement loop, per spec.md §4.3-4.4. rv0/k are the fast path's initial
// mantissa and digit count (buildMantissa's results); b/res are the raw
// input and the lexer's result, needed to build the exact decimal value.
func slowPath(b []byte, res lexResult, rv0 float64, k int) float64 {
	ps := &parser{rv: u{d: rv0}}
	e1 := res.e + int32(res.nd-k)

	scale, done := ps.approximate(e1)
	if done {
		return ps.rv.d
	}

	bd0 := s2b(b, res.digitsOff, res.nd0, res.nd, res.y)
	return ps.refine(bd0, res.e, scale)
}
