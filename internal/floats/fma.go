package floats

import "math"

// FMA64 returns a*b+c with a single rounding.
func FMA64(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}

// FMA32 returns a*b+c with a single rounding to binary32. The binary64
// product of two binary32 values is exact; the sum is taken round-to-odd in
// binary64 so that the final conversion rounds the true result once.
func FMA32(a, b, c float32) float32 {
	p := float64(a) * float64(b)
	return float32(addRoundToOdd(p, float64(c)))
}

// FMA16 returns a*b+c with a single rounding to binary16.
func FMA16(a, b, c Float16) Float16 {
	p := a.Float64() * b.Float64()
	return FromFloat64(addRoundToOdd(p, c.Float64()))
}

// addRoundToOdd returns p+c rounded to odd: exact sums are returned as-is,
// inexact sums land on the neighbor with an odd significand. Narrowing an
// odd-rounded binary64 sum to 24 or fewer significand bits then matches a
// single correct rounding of the exact sum.
func addRoundToOdd(p, c float64) float64 {
	s := p + c
	if math.IsNaN(s) || math.IsInf(s, 0) {
		return s
	}
	// Knuth two-sum recovers the exact residual of the addition.
	bp := s - c
	bc := s - bp
	r := (p - bp) + (c - bc)
	if r == 0 {
		return s
	}
	if s == 0 {
		// The exact sum is a tiny nonzero value that rounded to zero;
		// the odd neighbor is the smallest subnormal of its sign.
		return math.Copysign(math.Float64frombits(1), r)
	}
	b := math.Float64bits(s)
	if b&1 != 0 {
		return s
	}
	// Step one ulp toward the exact sum. Both neighbors of an
	// even-significand value have odd significands, including across
	// power-of-two boundaries.
	up := r > 0
	if math.Signbit(s) {
		if up {
			b--
		} else {
			b++
		}
	} else {
		if up {
			b++
		} else {
			b--
		}
	}
	return math.Float64frombits(b)
}
