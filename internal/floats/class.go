package floats

import "math"

// Class partitions every float bit pattern into exactly one category.
type Class uint8

const (
	// ClassNaN covers every NaN pattern, quiet or signaling.
	ClassNaN Class = iota
	// ClassNegInf is negative infinity.
	ClassNegInf
	// ClassNegNormal covers finite normal negatives.
	ClassNegNormal
	// ClassNegSubnormal covers subnormal negatives.
	ClassNegSubnormal
	// ClassNegZero is the zero with the sign bit set.
	ClassNegZero
	// ClassPosZero is the zero without the sign bit.
	ClassPosZero
	// ClassPosSubnormal covers subnormal positives.
	ClassPosSubnormal
	// ClassPosNormal covers finite normal positives.
	ClassPosNormal
	// ClassPosInf is positive infinity.
	ClassPosInf
)

// String returns a human-readable name for the class.
func (c Class) String() string {
	switch c {
	case ClassNaN:
		return "nan"
	case ClassNegInf:
		return "-inf"
	case ClassNegNormal:
		return "-normal"
	case ClassNegSubnormal:
		return "-subnormal"
	case ClassNegZero:
		return "-zero"
	case ClassPosZero:
		return "+zero"
	case ClassPosSubnormal:
		return "+subnormal"
	case ClassPosNormal:
		return "+normal"
	case ClassPosInf:
		return "+inf"
	default:
		return "invalid"
	}
}

// Classify64 places a binary64 value into its class.
func Classify64(x float64) Class {
	b := math.Float64bits(x)
	exp := b >> 52 & 0x7ff
	mant := b & (1<<52 - 1)
	neg := b>>63 != 0
	switch {
	case exp == 0x7ff && mant != 0:
		return ClassNaN
	case exp == 0x7ff:
		return pick(neg, ClassNegInf, ClassPosInf)
	case exp == 0 && mant == 0:
		return pick(neg, ClassNegZero, ClassPosZero)
	case exp == 0:
		return pick(neg, ClassNegSubnormal, ClassPosSubnormal)
	default:
		return pick(neg, ClassNegNormal, ClassPosNormal)
	}
}

// Classify32 places a binary32 value into its class.
func Classify32(x float32) Class {
	b := math.Float32bits(x)
	exp := b >> 23 & 0xff
	mant := b & (1<<23 - 1)
	neg := b>>31 != 0
	switch {
	case exp == 0xff && mant != 0:
		return ClassNaN
	case exp == 0xff:
		return pick(neg, ClassNegInf, ClassPosInf)
	case exp == 0 && mant == 0:
		return pick(neg, ClassNegZero, ClassPosZero)
	case exp == 0:
		return pick(neg, ClassNegSubnormal, ClassPosSubnormal)
	default:
		return pick(neg, ClassNegNormal, ClassPosNormal)
	}
}

// Class places a binary16 value into its class.
func (f Float16) Class() Class {
	exp := f & f16ExpMask
	mant := f & f16MantMask
	neg := f.Signbit()
	switch {
	case exp == f16ExpMask && mant != 0:
		return ClassNaN
	case exp == f16ExpMask:
		return pick(neg, ClassNegInf, ClassPosInf)
	case exp == 0 && mant == 0:
		return pick(neg, ClassNegZero, ClassPosZero)
	case exp == 0:
		return pick(neg, ClassNegSubnormal, ClassPosSubnormal)
	default:
		return pick(neg, ClassNegNormal, ClassPosNormal)
	}
}

// IsSubnormal reports whether c is one of the subnormal classes.
func (c Class) IsSubnormal() bool {
	return c == ClassNegSubnormal || c == ClassPosSubnormal
}

// IsZero reports whether c is one of the zero classes.
func (c Class) IsZero() bool {
	return c == ClassNegZero || c == ClassPosZero
}

// IsFinite reports whether c is neither NaN nor an infinity.
func (c Class) IsFinite() bool {
	return c != ClassNaN && c != ClassNegInf && c != ClassPosInf
}

func pick(neg bool, n, p Class) Class {
	if neg {
		return n
	}
	return p
}
