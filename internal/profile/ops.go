package profile

import (
	"fmt"

	"prism/internal/numeric"
)

// Ops applies the profile's mode to the bare operators for one integer
// type. In checked mode overflow surfaces as numeric.ErrOverflow; the
// other modes never fail.
type Ops[T numeric.Integer] struct {
	Mode Mode
}

// OpsFor builds the operator set for a profile.
func OpsFor[T numeric.Integer](p Profile) Ops[T] {
	return Ops[T]{Mode: p.Mode}
}

// Add applies the configured mode to a + b.
func (o Ops[T]) Add(a, b T) (T, error) {
	switch o.Mode {
	case ModeWrapping:
		return numeric.WrappingAdd(a, b), nil
	case ModeSaturating:
		return numeric.SaturatingAdd(a, b), nil
	default:
		s, overflow := numeric.CheckedAdd(a, b)
		if overflow {
			return 0, fmt.Errorf("%w: %v + %v", numeric.ErrOverflow, a, b)
		}
		return s, nil
	}
}

// Sub applies the configured mode to a - b.
func (o Ops[T]) Sub(a, b T) (T, error) {
	switch o.Mode {
	case ModeWrapping:
		return numeric.WrappingSub(a, b), nil
	case ModeSaturating:
		return numeric.SaturatingSub(a, b), nil
	default:
		s, overflow := numeric.CheckedSub(a, b)
		if overflow {
			return 0, fmt.Errorf("%w: %v - %v", numeric.ErrOverflow, a, b)
		}
		return s, nil
	}
}

// Mul applies the configured mode to a * b.
func (o Ops[T]) Mul(a, b T) (T, error) {
	switch o.Mode {
	case ModeWrapping:
		return numeric.WrappingMul(a, b), nil
	case ModeSaturating:
		return numeric.SaturatingMul(a, b), nil
	default:
		p, overflow := numeric.CheckedMul(a, b)
		if overflow {
			return 0, fmt.Errorf("%w: %v * %v", numeric.ErrOverflow, a, b)
		}
		return p, nil
	}
}
