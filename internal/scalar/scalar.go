// Package scalar implements the Unicode scalar value: a single code point in
// [0, 0x10FFFF] excluding the surrogate block, with UTF-8 encode/decode,
// property classification and case conversion.
package scalar

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidScalar reports a code point outside the scalar-value
	// range: negative, beyond 0x10FFFF, or a surrogate.
	ErrInvalidScalar = errors.New("invalid unicode scalar value")
	// ErrMalformedUTF8 reports a byte sequence that does not begin with
	// a well-formed UTF-8 encoding: bad continuation bytes, overlong
	// forms, or encoded surrogates.
	ErrMalformedUTF8 = errors.New("malformed utf-8 sequence")
)

// Replacement is the substitution scalar the lossy paths produce.
const Replacement Scalar = 0xFFFD

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	scalarMax    = 0x10FFFF
)

// Scalar is a Unicode scalar value. The zero value is U+0000.
type Scalar rune

// Valid reports whether r is in the scalar-value range.
func Valid(r rune) bool {
	if r < 0 || r > scalarMax {
		return false
	}
	return r < surrogateMin || r > surrogateMax
}

// New validates r into a Scalar, failing on surrogates and out-of-range
// input.
func New(r rune) (Scalar, error) {
	if !Valid(r) {
		return 0, fmt.Errorf("%w: %#x", ErrInvalidScalar, r)
	}
	return Scalar(r), nil
}

// NewLossy substitutes U+FFFD for invalid input.
func NewLossy(r rune) Scalar {
	if !Valid(r) {
		return Replacement
	}
	return Scalar(r)
}

// NewUnchecked wraps r without validation. The caller guarantees validity;
// passing an invalid code point is a caller error, not a reported fault.
func NewUnchecked(r rune) Scalar {
	return Scalar(r)
}

// Rune returns the code point.
func (s Scalar) Rune() rune { return rune(s) }

// String renders the scalar as its UTF-8 text.
func (s Scalar) String() string { return string(rune(s)) }

// UTF8Len returns the encoded length in bytes: 1 for values up to 0x7F, 2 up
// to 0x7FF, 3 up to 0xFFFF, 4 beyond.
func (s Scalar) UTF8Len() int {
	return utf8.RuneLen(rune(s))
}

// AppendUTF8 appends the scalar's 1-4 byte encoding to dst.
func (s Scalar) AppendUTF8(dst []byte) []byte {
	return utf8.AppendRune(dst, rune(s))
}

// DecodeFirst decodes the first scalar value from b, returning it and the
// number of bytes consumed. Malformed input fails; U+FFFD appearing in
// well-formed input decodes normally.
func DecodeFirst(b []byte) (Scalar, int, error) {
	if len(b) == 0 {
		return 0, 0, fmt.Errorf("%w: empty input", ErrMalformedUTF8)
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, fmt.Errorf("%w: at byte 0", ErrMalformedUTF8)
	}
	return Scalar(r), size, nil
}

// DecodeFirstLossy decodes the first scalar value, substituting U+FFFD for a
// malformed sequence and consuming one byte of it.
func DecodeFirstLossy(b []byte) (Scalar, int) {
	if len(b) == 0 {
		return Replacement, 0
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return Replacement, 1
	}
	return Scalar(r), size
}
