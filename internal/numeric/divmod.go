package numeric

// Div returns a/b truncated toward zero. Division by zero is a reported
// failure, never a silent special value.
func Div[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if IsSigned[T]() && a == MinOf[T]() && b == ^T(0) {
		// MIN / -1 wraps; keep the quotient well-defined.
		return MinOf[T](), nil
	}
	return a / b, nil
}

// Rem returns a%b with the sign of the dividend (truncating convention).
func Rem[T Integer](a, b T) (T, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	if IsSigned[T]() && a == MinOf[T]() && b == ^T(0) {
		return 0, nil
	}
	return a % b, nil
}

// CheckedDiv is Div with the MIN/-1 wrap surfaced as an overflow flag
// instead of silently wrapping.
func CheckedDiv[T Integer](a, b T) (q T, overflowed bool, err error) {
	if b == 0 {
		return 0, false, ErrDivisionByZero
	}
	if IsSigned[T]() && a == MinOf[T]() && b == ^T(0) {
		return MinOf[T](), true, nil
	}
	return a / b, false, nil
}
