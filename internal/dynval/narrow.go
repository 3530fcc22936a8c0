package dynval

import (
	"fmt"
	"math"

	"prism/internal/numeric"
)

// NarrowList validates that every element of a list value can take the
// target kind and returns the retagged elements. Numeric literals cross
// the signed/unsigned line only when the payload fits; nothing is coerced
// silently.
func NarrowList(v Value, target Kind) ([]Value, error) {
	elems, err := v.AsList()
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(elems))
	for i, e := range elems {
		n, err := narrowOne(e, target)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

func narrowOne(v Value, target Kind) (Value, error) {
	if v.Kind == target {
		return v, nil
	}
	switch {
	case v.Kind == KindInt && target == KindUint:
		if v.Int < 0 {
			return Value{}, fmt.Errorf("%w: %d into uint", ErrNarrow, v.Int)
		}
		return MakeUint(uint64(v.Int)), nil
	case v.Kind == KindUint && target == KindInt:
		if v.Uint > math.MaxInt64 {
			return Value{}, fmt.Errorf("%w: %d into int", ErrNarrow, v.Uint)
		}
		return MakeInt(int64(v.Uint)), nil
	case v.Kind == KindBool && target == KindBit,
		v.Kind == KindBit && target == KindBool:
		return Value{Kind: target, Bool: v.Bool}, nil
	}
	return Value{}, fmt.Errorf("%w: %s into %s", ErrNarrow, v.Kind, target)
}

// NarrowInts narrows the elements of an integer list value into a concrete
// fixed-width type. The whole list fails when any element does not fit.
func NarrowInts[T numeric.Integer](v Value) ([]T, error) {
	elems, err := v.AsList()
	if err != nil {
		return nil, err
	}
	out := make([]T, len(elems))
	for i, e := range elems {
		switch e.Kind {
		case KindInt:
			n, err := numeric.Narrow[T](e.Int)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w: %d", i, ErrNarrow, e.Int)
			}
			out[i] = n
		case KindUint:
			n, err := numeric.Narrow[T](e.Uint)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w: %d", i, ErrNarrow, e.Uint)
			}
			out[i] = n
		default:
			return nil, fmt.Errorf("element %d: %w: have %s, want integer", i, ErrKind, e.Kind)
		}
	}
	return out, nil
}
