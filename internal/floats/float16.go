package floats

import (
	"math"
	"math/bits"
)

// Float16 is an IEEE-754 binary16 value carried as its bit pattern:
// 1 sign bit, 5 exponent bits, 10 significand bits.
type Float16 uint16

const (
	f16SignMask = 0x8000
	f16ExpMask  = 0x7c00
	f16MantMask = 0x03ff
	f16ExpBias  = 15

	f16PosInf = 0x7c00
	f16NegInf = 0xfc00
	f16QNaN   = 0x7e00
)

// FromBits16 reinterprets a bit pattern as a Float16.
func FromBits16(b uint16) Float16 { return Float16(b) }

// Bits returns the bit pattern.
func (f Float16) Bits() uint16 { return uint16(f) }

// Inf16 returns the binary16 infinity with the given sign.
func Inf16(sign int) Float16 {
	if sign < 0 {
		return f16NegInf
	}
	return f16PosInf
}

// NaN16 returns a quiet binary16 NaN.
func NaN16() Float16 { return f16QNaN }

// Zero16 returns the binary16 zero with the given sign.
func Zero16(negative bool) Float16 {
	if negative {
		return f16SignMask
	}
	return 0
}

// FromFloat64 converts with round-to-nearest-ties-to-even, producing
// subnormals near zero and infinities on overflow.
func FromFloat64(x float64) Float16 {
	b := math.Float64bits(x)
	sign := Float16(b>>48) & f16SignMask
	exp := int(b >> 52 & 0x7ff)
	mant := b & (1<<52 - 1)

	if exp == 0x7ff {
		if mant == 0 {
			return sign | f16PosInf
		}
		// Quiet NaN; the top payload bits ride along but are
		// implementation-defined.
		return sign | f16QNaN | Float16(mant>>42)&f16MantMask
	}
	if exp == 0 {
		// float64 subnormals sit far below the smallest binary16
		// subnormal and cannot reach a rounding tie.
		return sign
	}

	e := exp - 1023
	m := mant | 1<<52

	if e >= 16 {
		return sign | f16PosInf
	}
	var shift int
	var comb uint32
	if e >= -14 {
		// Normal target: 11-bit significand, exponent field e+15.
		shift = 42
		comb = uint32(e+f16ExpBias)<<10 | uint32(m>>shift)&f16MantMask
	} else {
		// Subnormal target: the significand loses one bit per step
		// below 2^-14.
		shift = 28 - e
		if shift >= 64 {
			// Entirely sticky; magnitude is nonzero but rounds down.
			return sign
		}
		comb = uint32(m >> shift)
	}
	rest := m & (1<<shift - 1)
	halfway := uint64(1) << (shift - 1)
	if rest > halfway || (rest == halfway && comb&1 == 1) {
		// A carry out of the significand walks into the exponent
		// field, which is exactly the rounding IEEE asks for; it can
		// turn the largest finite value into infinity.
		comb++
	}
	return sign | Float16(comb)
}

// FromFloat32 converts with round-to-nearest-ties-to-even. The route through
// float64 is exact, so the value is rounded once.
func FromFloat32(x float32) Float16 {
	return FromFloat64(float64(x))
}

// Float64 widens exactly; every binary16 value is representable in binary64.
func (f Float16) Float64() float64 {
	sign := uint64(f&f16SignMask) << 48
	exp := int(f >> 10 & 0x1f)
	mant := uint64(f & f16MantMask)

	switch exp {
	case 0x1f:
		if mant == 0 {
			return math.Float64frombits(sign | 0x7ff0000000000000)
		}
		return math.Float64frombits(sign | 0x7ff8000000000000 | mant<<42)
	case 0:
		if mant == 0 {
			return math.Float64frombits(sign)
		}
		// Normalize the subnormal significand.
		l := bits.Len64(mant)
		e := uint64(l - 25 + 1023)
		frac := (mant - 1<<(l-1)) << (52 - (l - 1))
		return math.Float64frombits(sign | e<<52 | frac)
	default:
		e := uint64(exp - f16ExpBias + 1023)
		return math.Float64frombits(sign | e<<52 | mant<<42)
	}
}

// Float32 widens exactly.
func (f Float16) Float32() float32 {
	return float32(f.Float64())
}

// IsNaN reports whether f is a NaN of either sign.
func (f Float16) IsNaN() bool {
	return f&f16ExpMask == f16ExpMask && f&f16MantMask != 0
}

// IsInf reports whether f is an infinity matching sign (+1, -1, or 0 for
// either).
func (f Float16) IsInf(sign int) bool {
	switch {
	case sign > 0:
		return f == f16PosInf
	case sign < 0:
		return f == f16NegInf
	default:
		return f == f16PosInf || f == f16NegInf
	}
}

// Signbit reports whether the sign bit is set.
func (f Float16) Signbit() bool { return f&f16SignMask != 0 }

// Eq is IEEE equality: NaN compares false to everything including itself,
// and the two zeros compare equal.
func (f Float16) Eq(g Float16) bool {
	return f.Float64() == g.Float64()
}

// Lt is IEEE less-than; false whenever either operand is NaN.
func (f Float16) Lt(g Float16) bool {
	return f.Float64() < g.Float64()
}

// Neg flips the sign bit; -NaN stays NaN, -0 and +0 swap.
func (f Float16) Neg() Float16 { return f ^ f16SignMask }

// Add returns f+g rounded once to binary16.
func (f Float16) Add(g Float16) Float16 {
	return FromFloat64(f.Float64() + g.Float64())
}

// Sub returns f-g rounded once to binary16.
func (f Float16) Sub(g Float16) Float16 {
	return FromFloat64(f.Float64() - g.Float64())
}

// Mul returns f*g rounded once to binary16.
func (f Float16) Mul(g Float16) Float16 {
	return FromFloat64(f.Float64() * g.Float64())
}

// Div returns f/g; nonzero/zero yields infinity, 0/0 yields NaN.
func (f Float16) Div(g Float16) Float16 {
	return FromFloat64(f.Float64() / g.Float64())
}

// Sqrt returns the square root; negative input yields NaN.
func (f Float16) Sqrt() Float16 {
	return FromFloat64(math.Sqrt(f.Float64()))
}
