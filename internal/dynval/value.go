// Package dynval carries dynamically tagged values between literal
// evaluation and the typed value layer. A Value holds exactly one of the
// primitive shapes; consumers dispatch on Kind and narrow explicitly.
package dynval

import (
	"errors"
	"fmt"

	"prism/internal/scalar"
)

// Kind identifies the runtime shape of a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid value.
	KindInvalid Kind = iota
	// KindInt represents a signed integer value.
	KindInt
	// KindUint represents an unsigned integer value.
	KindUint
	// KindFloat represents a binary64 value.
	KindFloat
	// KindBool represents a boolean value.
	KindBool
	// KindBit represents a single-bit value.
	KindBit
	// KindScalar represents a Unicode scalar value.
	KindScalar
	// KindText represents a UTF-8 text value.
	KindText
	// KindBytes represents a raw byte value.
	KindBytes
	// KindList represents a homogeneous list of values.
	KindList
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindBit:
		return "bit"
	case KindScalar:
		return "scalar"
	case KindText:
		return "text"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

var (
	// ErrKind reports an accessor used against a value of another kind.
	ErrKind = errors.New("value kind mismatch")
	// ErrNarrow reports a list element that does not fit the target kind.
	ErrNarrow = errors.New("value does not fit target kind")
	// ErrAlreadySet reports a second write to a write-once cell.
	ErrAlreadySet = errors.New("cell already set")
)

// Value is a dynamically tagged primitive value.
type Value struct {
	Kind   Kind
	Int    int64         // for KindInt
	Uint   uint64        // for KindUint
	Float  float64       // for KindFloat
	Bool   bool          // for KindBool and KindBit
	Scalar scalar.Scalar // for KindScalar
	Text   string        // for KindText
	Bytes  []byte        // for KindBytes
	List   []Value       // for KindList
}

// IsZero returns true if this is a zero/invalid value.
func (v Value) IsZero() bool {
	return v.Kind == KindInvalid
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.Kind {
	case KindInvalid:
		return "<invalid>"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindUint:
		return fmt.Sprintf("%d", v.Uint)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindBit:
		if v.Bool {
			return "1"
		}
		return "0"
	case KindScalar:
		return fmt.Sprintf("U+%04X", uint32(v.Scalar))
	case KindText:
		return v.Text
	case KindBytes:
		return fmt.Sprintf("%d bytes", len(v.Bytes))
	case KindList:
		return fmt.Sprintf("list of %d", len(v.List))
	default:
		return fmt.Sprintf("<unknown:%d>", v.Kind)
	}
}

// MakeInt creates a signed integer value.
func MakeInt(n int64) Value {
	return Value{Kind: KindInt, Int: n}
}

// MakeUint creates an unsigned integer value.
func MakeUint(n uint64) Value {
	return Value{Kind: KindUint, Uint: n}
}

// MakeFloat creates a binary64 value.
func MakeFloat(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// MakeBool creates a boolean value.
func MakeBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// MakeBit creates a single-bit value.
func MakeBit(b bool) Value {
	return Value{Kind: KindBit, Bool: b}
}

// MakeScalar creates a Unicode scalar value.
func MakeScalar(s scalar.Scalar) Value {
	return Value{Kind: KindScalar, Scalar: s}
}

// MakeText creates a UTF-8 text value.
func MakeText(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// MakeBytes creates a raw byte value.
func MakeBytes(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: b}
}

// MakeList creates a list value.
func MakeList(elems ...Value) Value {
	return Value{Kind: KindList, List: elems}
}

// AsInt returns the signed integer payload.
func (v Value) AsInt() (int64, error) {
	if v.Kind != KindInt {
		return 0, fmt.Errorf("%w: have %s, want int", ErrKind, v.Kind)
	}
	return v.Int, nil
}

// AsUint returns the unsigned integer payload.
func (v Value) AsUint() (uint64, error) {
	if v.Kind != KindUint {
		return 0, fmt.Errorf("%w: have %s, want uint", ErrKind, v.Kind)
	}
	return v.Uint, nil
}

// AsFloat returns the binary64 payload.
func (v Value) AsFloat() (float64, error) {
	if v.Kind != KindFloat {
		return 0, fmt.Errorf("%w: have %s, want float", ErrKind, v.Kind)
	}
	return v.Float, nil
}

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, error) {
	if v.Kind != KindBool && v.Kind != KindBit {
		return false, fmt.Errorf("%w: have %s, want bool", ErrKind, v.Kind)
	}
	return v.Bool, nil
}

// AsList returns the list payload.
func (v Value) AsList() ([]Value, error) {
	if v.Kind != KindList {
		return nil, fmt.Errorf("%w: have %s, want list", ErrKind, v.Kind)
	}
	return v.List, nil
}
