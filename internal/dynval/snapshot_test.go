package dynval

import (
	"errors"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"prism/internal/codec"
	"prism/internal/scalar"
)

func TestSnapshotRoundTrip(t *testing.T) {
	in := []Value{
		MakeInt(-7),
		MakeUint(7),
		MakeFloat(2.5),
		MakeBool(true),
		MakeBit(false),
		MakeScalar(scalar.NewLossy('🚀')),
		MakeText("héllo"),
		MakeBytes([]byte{0x00, 0xff}),
		MakeList(MakeInt(1), MakeList(MakeText("nested"))),
	}
	data, err := EncodeSnapshot(in)
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(in) {
		t.Fatalf("decoded %d values, want %d", len(out), len(in))
	}
	for i := range in {
		if in[i].String() != out[i].String() || in[i].Kind != out[i].Kind {
			t.Fatalf("value %d: got %s %q, want %s %q",
				i, out[i].Kind, out[i].String(), in[i].Kind, in[i].String())
		}
	}
}

func TestSnapshotRejectsInvalid(t *testing.T) {
	if _, err := EncodeSnapshot([]Value{{}}); !errors.Is(err, ErrKind) {
		t.Fatalf("encoding an invalid value err = %v, want ErrKind", err)
	}

	// Unknown kind tag.
	data, err := msgpack.Marshal([]wireValue{{Kind: 200}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeSnapshot(data); !errors.Is(err, ErrKind) {
		t.Fatalf("unknown kind err = %v, want ErrKind", err)
	}

	// Malformed UTF-8 smuggled into the text payload.
	data, err = msgpack.Marshal([]wireValue{{Kind: uint8(KindText), Text: "a\xffb"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeSnapshot(data); !errors.Is(err, codec.ErrInvalidUTF8) {
		t.Fatalf("malformed text err = %v, want ErrInvalidUTF8", err)
	}

	// Surrogate smuggled into the scalar payload.
	data, err = msgpack.Marshal([]wireValue{{Kind: uint8(KindScalar), Scalar: 0xD800}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeSnapshot(data); !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Fatalf("surrogate scalar err = %v, want ErrInvalidScalar", err)
	}

	if _, err := DecodeSnapshot([]byte{0xc1}); err == nil {
		t.Fatal("truncated snapshot should fail")
	}
}
