package scalar_test

import (
	"bytes"
	"errors"
	"testing"

	"prism/internal/scalar"
)

func TestConstructorPolicies(t *testing.T) {
	if _, err := scalar.New(0xD800); !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Fatal("surrogate must fail under the strict constructor")
	}
	if _, err := scalar.New(0x110000); !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Fatal("beyond U+10FFFF must fail")
	}
	if _, err := scalar.New(-1); !errors.Is(err, scalar.ErrInvalidScalar) {
		t.Fatal("negative must fail")
	}
	if s, err := scalar.New(0x10FFFF); err != nil || s.Rune() != 0x10FFFF {
		t.Fatalf("U+10FFFF is a valid scalar: %v", err)
	}
	if got := scalar.NewLossy(0xD800); got != scalar.Replacement {
		t.Fatalf("lossy constructor must substitute U+FFFD, got %#x", got)
	}
	if got := scalar.NewLossy('x'); got != 'x' {
		t.Fatalf("lossy constructor passes valid input through, got %#x", got)
	}
	if got := scalar.NewUnchecked('A'); got != 'A' {
		t.Fatalf("unchecked constructor, got %#x", got)
	}
}

func TestSurrogateBoundaries(t *testing.T) {
	for _, r := range []rune{0xD7FF, 0xE000} {
		if _, err := scalar.New(r); err != nil {
			t.Errorf("%#x must be valid: %v", r, err)
		}
	}
	for _, r := range []rune{0xD800, 0xDBFF, 0xDC00, 0xDFFF} {
		if _, err := scalar.New(r); err == nil {
			t.Errorf("%#x is a surrogate and must fail", r)
		}
	}
}

func TestEncodeUTF8Bands(t *testing.T) {
	tests := []struct {
		r    rune
		want []byte
	}{
		{0x24, []byte{0x24}},
		{0xA2, []byte{0xC2, 0xA2}},
		{0x20AC, []byte{0xE2, 0x82, 0xAC}},
		{0x1F680, []byte{0xF0, 0x9F, 0x9A, 0x80}},
	}
	for _, tt := range tests {
		s, err := scalar.New(tt.r)
		if err != nil {
			t.Fatal(err)
		}
		if got := s.AppendUTF8(nil); !bytes.Equal(got, tt.want) {
			t.Errorf("encode %#x = % x, want % x", tt.r, got, tt.want)
		}
		if got := s.UTF8Len(); got != len(tt.want) {
			t.Errorf("UTF8Len(%#x) = %d", tt.r, got)
		}
		back, n, err := scalar.DecodeFirst(tt.want)
		if err != nil || back != s || n != len(tt.want) {
			t.Errorf("decode % x = %#x, %d, %v", tt.want, back, n, err)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	bad := [][]byte{
		{0x80},                   // lone continuation
		{0xC2},                   // truncated 2-byte form
		{0xE2, 0x82},             // truncated 3-byte form
		{0xC0, 0xAF},             // overlong '/'
		{0xE0, 0x80, 0xAF},       // overlong, 3 bytes
		{0xED, 0xA0, 0x80},       // encoded surrogate U+D800
		{0xF4, 0x90, 0x80, 0x80}, // beyond U+10FFFF
	}
	for _, b := range bad {
		if _, _, err := scalar.DecodeFirst(b); !errors.Is(err, scalar.ErrMalformedUTF8) {
			t.Errorf("% x must be rejected, got %v", b, err)
		}
		if got, n := scalar.DecodeFirstLossy(b); got != scalar.Replacement || n != 1 {
			t.Errorf("lossy decode of % x = %#x, %d", b, got, n)
		}
	}
}

func TestDecodeGenuineReplacementChar(t *testing.T) {
	// A well-formed encoding of U+FFFD itself decodes normally.
	enc := []byte{0xEF, 0xBF, 0xBD}
	s, n, err := scalar.DecodeFirst(enc)
	if err != nil || s != scalar.Replacement || n != 3 {
		t.Fatalf("got %#x, %d, %v", s, n, err)
	}
}

func TestRoundTripSampledScalars(t *testing.T) {
	for r := rune(0); r <= 0x10FFFF; r += 0x101 {
		if !scalar.Valid(r) {
			continue
		}
		s := scalar.NewUnchecked(r)
		back, n, err := scalar.DecodeFirst(s.AppendUTF8(nil))
		if err != nil || back != s || n != s.UTF8Len() {
			t.Fatalf("round-trip %#x: %#x, %d, %v", r, back, n, err)
		}
	}
}
