package dynval

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"prism/internal/codec"
	"prism/internal/scalar"
)

// Snapshot interchange for tooling: a compact msgpack encoding of tagged
// values. Decoding re-validates every payload, so a snapshot from an
// untrusted source can never smuggle in a surrogate scalar, malformed text
// or an unknown kind.

type wireValue struct {
	Kind   uint8       `msgpack:"k"`
	Int    int64       `msgpack:"i,omitempty"`
	Uint   uint64      `msgpack:"u,omitempty"`
	Float  float64     `msgpack:"f,omitempty"`
	Bool   bool        `msgpack:"b,omitempty"`
	Scalar int32       `msgpack:"s,omitempty"`
	Text   string      `msgpack:"t,omitempty"`
	Bytes  []byte      `msgpack:"y,omitempty"`
	List   []wireValue `msgpack:"l,omitempty"`
}

// EncodeSnapshot serializes values for interchange.
func EncodeSnapshot(values []Value) ([]byte, error) {
	wire := make([]wireValue, len(values))
	for i, v := range values {
		w, err := toWire(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		wire[i] = w
	}
	return msgpack.Marshal(wire)
}

// DecodeSnapshot deserializes and validates a snapshot.
func DecodeSnapshot(data []byte) ([]Value, error) {
	var wire []wireValue
	if err := msgpack.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	out := make([]Value, len(wire))
	for i, w := range wire {
		v, err := fromWire(w)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func toWire(v Value) (wireValue, error) {
	w := wireValue{Kind: uint8(v.Kind)}
	switch v.Kind {
	case KindInt:
		w.Int = v.Int
	case KindUint:
		w.Uint = v.Uint
	case KindFloat:
		w.Float = v.Float
	case KindBool, KindBit:
		w.Bool = v.Bool
	case KindScalar:
		w.Scalar = int32(v.Scalar)
	case KindText:
		w.Text = v.Text
	case KindBytes:
		w.Bytes = v.Bytes
	case KindList:
		w.List = make([]wireValue, len(v.List))
		for i, e := range v.List {
			ew, err := toWire(e)
			if err != nil {
				return wireValue{}, fmt.Errorf("element %d: %w", i, err)
			}
			w.List[i] = ew
		}
	default:
		return wireValue{}, fmt.Errorf("%w: cannot encode %s", ErrKind, v.Kind)
	}
	return w, nil
}

func fromWire(w wireValue) (Value, error) {
	switch Kind(w.Kind) {
	case KindInt:
		return MakeInt(w.Int), nil
	case KindUint:
		return MakeUint(w.Uint), nil
	case KindFloat:
		return MakeFloat(w.Float), nil
	case KindBool:
		return MakeBool(w.Bool), nil
	case KindBit:
		return MakeBit(w.Bool), nil
	case KindScalar:
		s, err := scalar.New(rune(w.Scalar))
		if err != nil {
			return Value{}, err
		}
		return MakeScalar(s), nil
	case KindText:
		if err := codec.Validate([]byte(w.Text)); err != nil {
			return Value{}, err
		}
		return MakeText(w.Text), nil
	case KindBytes:
		return MakeBytes(w.Bytes), nil
	case KindList:
		elems := make([]Value, len(w.List))
		for i, ew := range w.List {
			e, err := fromWire(ew)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", i, err)
			}
			elems[i] = e
		}
		return MakeList(elems...), nil
	default:
		return Value{}, fmt.Errorf("%w: kind %d", ErrKind, w.Kind)
	}
}
