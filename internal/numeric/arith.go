package numeric

// Checked arithmetic returns the wrapped result together with an overflow
// flag; callers inspect the flag and react. Wrapping arithmetic is plain
// mod-2^width reduction. Saturating arithmetic clamps to the type's range.

// CheckedAdd returns a+b and whether the true sum is unrepresentable.
func CheckedAdd[T Integer](a, b T) (T, bool) {
	s := a + b
	if b >= 0 {
		return s, s < a
	}
	return s, s > a
}

// CheckedSub returns a-b and whether the true difference is unrepresentable.
func CheckedSub[T Integer](a, b T) (T, bool) {
	d := a - b
	if b >= 0 {
		return d, d > a
	}
	return d, d < a
}

// CheckedMul returns a*b and whether the true product is unrepresentable.
func CheckedMul[T Integer](a, b T) (T, bool) {
	p := a * b
	if a == 0 || b == 0 {
		return p, false
	}
	// MIN / -1 faults on signed types; resolve the a == -1 column directly.
	if IsSigned[T]() && a == ^T(0) {
		return p, b == MinOf[T]()
	}
	return p, p/a != b
}

// CheckedNeg returns -a and whether negation overflows (signed MIN, or any
// nonzero unsigned value).
func CheckedNeg[T Integer](a T) (T, bool) {
	if !IsSigned[T]() {
		return -a, a != 0
	}
	return -a, a == MinOf[T]()
}

// CheckedAbs returns the absolute value of a and whether it overflows
// (signed MIN has no representable magnitude).
func CheckedAbs[T Signed](a T) (T, bool) {
	if a == MinOf[T]() {
		return a, true
	}
	if a < 0 {
		return -a, false
	}
	return a, false
}

// WrappingAdd returns (a+b) mod 2^width.
func WrappingAdd[T Integer](a, b T) T { return a + b }

// WrappingSub returns (a-b) mod 2^width.
func WrappingSub[T Integer](a, b T) T { return a - b }

// WrappingMul returns (a*b) mod 2^width.
func WrappingMul[T Integer](a, b T) T { return a * b }

// WrappingNeg returns the two's-complement negation of a.
func WrappingNeg[T Integer](a T) T { return -a }

// SaturatingAdd returns a+b clamped to [MinOf, MaxOf].
func SaturatingAdd[T Integer](a, b T) T {
	s, over := CheckedAdd(a, b)
	if !over {
		return s
	}
	if b >= 0 {
		return MaxOf[T]()
	}
	return MinOf[T]()
}

// SaturatingSub returns a-b clamped to [MinOf, MaxOf].
func SaturatingSub[T Integer](a, b T) T {
	d, over := CheckedSub(a, b)
	if !over {
		return d
	}
	if b >= 0 {
		return MinOf[T]()
	}
	return MaxOf[T]()
}

// SaturatingMul returns a*b clamped to [MinOf, MaxOf].
func SaturatingMul[T Integer](a, b T) T {
	p, over := CheckedMul(a, b)
	if !over {
		return p
	}
	if (a < 0) != (b < 0) {
		return MinOf[T]()
	}
	return MaxOf[T]()
}
