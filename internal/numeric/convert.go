package numeric

import (
	"fmt"
	"math"

	"fortio.org/safecast"
)

// Widening conversions are plain Go conversions and always lossless; the
// functions here cover the lossy directions, each in a checked and an
// unchecked form. The unchecked forms reinterpret or truncate bits and
// perform no validation; misuse is a caller error by contract.

// Narrow converts Src to Dst, failing when the value is outside Dst's range.
func Narrow[Dst, Src Integer](v Src) (Dst, error) {
	out, err := safecast.Conv[Dst](v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	return out, nil
}

// Truncate converts Src to Dst keeping the low bits, discarding the rest.
func Truncate[Dst, Src Integer](v Src) Dst {
	return Dst(v)
}

// ReinterpretChecked moves a value across the signed/unsigned boundary at
// the same width, failing when the value is not representable in Dst.
func ReinterpretChecked[Dst, Src Integer](v Src) (Dst, error) {
	if BitWidth[Dst]() != BitWidth[Src]() {
		return 0, fmt.Errorf("%w: reinterpret across widths %d and %d",
			ErrOverflow, BitWidth[Src](), BitWidth[Dst]())
	}
	return Narrow[Dst](v)
}

// Reinterpret moves a bit pattern across the signed/unsigned boundary at the
// same width with no range check.
func Reinterpret[Dst, Src Integer](v Src) Dst {
	return Dst(v)
}

// ToFloat64 converts an integer to float64: exact whenever the magnitude
// fits the 53-bit mantissa, round-to-nearest otherwise.
func ToFloat64[T Integer](v T) float64 {
	if IsSigned[T]() {
		return float64(int64(v))
	}
	return float64(toWord(v))
}

// FromFloat64Trunc truncates f toward zero and converts to T, failing on
// NaN and on out-of-range input.
func FromFloat64Trunc[T Integer](f float64) (T, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("%w: NaN has no integer value", ErrOverflow)
	}
	t := math.Trunc(f)
	if IsSigned[T]() {
		// The bound 2^(width-1) is exact in float64; comparing against a
		// rounded MaxOf would admit unrepresentable values.
		limit := math.Ldexp(1, BitWidth[T]()-1)
		if t < -limit || t >= limit {
			return 0, fmt.Errorf("%w: %g outside [%g, %g)", ErrOverflow, t, -limit, limit)
		}
		return T(int64(t)), nil
	}
	limit := math.Ldexp(1, BitWidth[T]())
	if t < 0 || t >= limit {
		return 0, fmt.Errorf("%w: %g outside [0, %g)", ErrOverflow, t, limit)
	}
	return T(uint64(t)), nil
}

// FromFloat64TruncUnchecked truncates toward zero with no range check.
func FromFloat64TruncUnchecked[T Integer](f float64) T {
	return T(math.Trunc(f))
}
