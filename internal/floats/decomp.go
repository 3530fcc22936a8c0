package floats

import "math"

// Decompose/compose and integer/fraction splits, the primitives portable
// formatting and numeric algorithms build on.

// Frexp64 splits x into mantissa in [0.5, 1) and exponent with
// x = mant * 2^exp. Zeros, infinities and NaN return themselves with a zero
// exponent.
func Frexp64(x float64) (mant float64, exp int) {
	return math.Frexp(x)
}

// Ldexp64 composes mant * 2^exp.
func Ldexp64(mant float64, exp int) float64 {
	return math.Ldexp(mant, exp)
}

// Modf64 splits x into integer and fractional parts, both carrying x's sign.
func Modf64(x float64) (integer, frac float64) {
	return math.Modf(x)
}

// Frexp32 is Frexp64 at binary32 precision.
func Frexp32(x float32) (mant float32, exp int) {
	m, e := math.Frexp(float64(x))
	return float32(m), e
}

// Ldexp32 composes mant * 2^exp rounded to binary32.
func Ldexp32(mant float32, exp int) float32 {
	return float32(math.Ldexp(float64(mant), exp))
}

// Modf32 splits x into integer and fractional parts.
func Modf32(x float32) (integer, frac float32) {
	i, f := math.Modf(float64(x))
	return float32(i), float32(f)
}

// Frexp16 splits a binary16 value; the mantissa is exact in binary16.
func Frexp16(x Float16) (mant Float16, exp int) {
	m, e := math.Frexp(x.Float64())
	return FromFloat64(m), e
}

// Ldexp16 composes mant * 2^exp rounded to binary16.
func Ldexp16(mant Float16, exp int) Float16 {
	return FromFloat64(math.Ldexp(mant.Float64(), exp))
}

// Modf16 splits a binary16 value into integer and fractional parts.
func Modf16(x Float16) (integer, frac Float16) {
	i, f := math.Modf(x.Float64())
	return FromFloat64(i), FromFloat64(f)
}

// Hypot64 returns sqrt(a*a + b*b) without intermediate overflow.
func Hypot64(a, b float64) float64 {
	return math.Hypot(a, b)
}

// Hypot32 returns sqrt(a*a + b*b) at binary32 precision.
func Hypot32(a, b float32) float32 {
	return float32(math.Hypot(float64(a), float64(b)))
}

// Sqrt64 returns the square root; negative input yields NaN.
func Sqrt64(x float64) float64 {
	return math.Sqrt(x)
}

// Sqrt32 returns the square root at binary32 precision.
func Sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
