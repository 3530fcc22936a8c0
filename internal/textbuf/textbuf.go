// Package textbuf implements the mutable UTF-8 text buffer. The storage is
// valid UTF-8 after every mutating operation that completes without failing;
// operations that would break the encoding fail instead.
//
// Two index spaces exist: byte offsets (length is O(1)) and character
// offsets (length is O(n), cached between mutations). Equality and ordering
// are byte-sequence value semantics; locale-aware collation is out of scope.
package textbuf

import (
	"bytes"
	"errors"
	"fmt"
	"unicode/utf8"

	"prism/internal/codec"
	"prism/internal/scalar"
)

var (
	// ErrBounds reports an index or range outside the buffer's extent.
	ErrBounds = errors.New("index out of range")
	// ErrSplitRune reports a byte-range operation whose boundary falls
	// inside a multi-byte code point.
	ErrSplitRune = errors.New("byte range splits a code point")
)

// Buffer is an owned, growable UTF-8 string.
type Buffer struct {
	b       []byte
	charLen int // cached rune count; -1 when stale
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{charLen: 0}
}

// FromString copies s into a new buffer. Go source strings are assumed
// well-formed; input of unknown origin goes through FromBytes.
func FromString(s string) *Buffer {
	return &Buffer{b: []byte(s), charLen: -1}
}

// FromBytes copies b into a new buffer, failing unless b is valid UTF-8.
func FromBytes(b []byte) (*Buffer, error) {
	if err := codec.Validate(b); err != nil {
		return nil, err
	}
	return &Buffer{b: bytes.Clone(b), charLen: -1}, nil
}

// FromBytesLossy copies b, substituting U+FFFD for malformed sequences.
func FromBytesLossy(b []byte) *Buffer {
	return &Buffer{b: codec.Sanitize(b), charLen: -1}
}

// FromBytesUnchecked adopts b without validation or copying. The caller
// guarantees validity and ownership; misuse corrupts the buffer invariant.
func FromBytesUnchecked(b []byte) *Buffer {
	return &Buffer{b: b, charLen: -1}
}

// Len returns the byte length.
func (t *Buffer) Len() int { return len(t.b) }

// Cap returns the byte capacity.
func (t *Buffer) Cap() int { return cap(t.b) }

// CharLen returns the character count, computing and caching it on first
// use after a mutation.
func (t *Buffer) CharLen() int {
	if t.charLen < 0 {
		t.charLen = utf8.RuneCount(t.b)
	}
	return t.charLen
}

// String returns a copy of the contents.
func (t *Buffer) String() string { return string(t.b) }

// Bytes returns a copy of the contents; handing out the backing storage
// would let callers break the UTF-8 invariant.
func (t *Buffer) Bytes() []byte { return bytes.Clone(t.b) }

// Reserve grows the capacity so at least n more bytes fit without
// reallocation, for batching ahead of large concatenations.
func (t *Buffer) Reserve(n int) {
	if n <= cap(t.b)-len(t.b) {
		return
	}
	grown := make([]byte, len(t.b), len(t.b)+n)
	copy(grown, t.b)
	t.b = grown
}

// Append appends s, validating it first.
func (t *Buffer) Append(s string) error {
	if err := codec.Validate([]byte(s)); err != nil {
		return err
	}
	t.b = append(t.b, s...)
	t.charLen = -1
	return nil
}

// AppendScalar appends one scalar value, always 1-4 bytes.
func (t *Buffer) AppendScalar(s scalar.Scalar) {
	if t.charLen >= 0 {
		t.charLen++
	}
	t.b = s.AppendUTF8(t.b)
}

// InsertAt inserts s before the character at position pos (so pos 0
// prepends and pos CharLen appends).
func (t *Buffer) InsertAt(pos int, s string) error {
	if err := codec.Validate([]byte(s)); err != nil {
		return err
	}
	off, err := t.byteOffset(pos)
	if err != nil {
		return err
	}
	t.b = append(t.b[:off], append([]byte(s), t.b[off:]...)...)
	t.charLen = -1
	return nil
}

// RemoveRange removes the characters in [from, to).
func (t *Buffer) RemoveRange(from, to int) error {
	if from > to {
		return fmt.Errorf("%w: %d > %d", ErrBounds, from, to)
	}
	start, err := t.byteOffset(from)
	if err != nil {
		return err
	}
	end, err := t.byteOffset(to)
	if err != nil {
		return err
	}
	t.b = append(t.b[:start], t.b[end:]...)
	t.charLen = -1
	return nil
}

// ByteSplice replaces the byte range [off, off+n) with repl. The range
// boundaries must not split a code point and repl must be valid UTF-8.
func (t *Buffer) ByteSplice(off, n int, repl []byte) error {
	if off < 0 || n < 0 || off+n > len(t.b) {
		return fmt.Errorf("%w: bytes [%d, %d) of %d", ErrBounds, off, off+n, len(t.b))
	}
	if !t.boundary(off) || !t.boundary(off+n) {
		return fmt.Errorf("%w: bytes [%d, %d)", ErrSplitRune, off, off+n)
	}
	if err := codec.Validate(repl); err != nil {
		return err
	}
	out := make([]byte, 0, len(t.b)-n+len(repl))
	out = append(out, t.b[:off]...)
	out = append(out, repl...)
	out = append(out, t.b[off+n:]...)
	t.b = out
	t.charLen = -1
	return nil
}

// boundary reports whether off sits on a code-point boundary.
func (t *Buffer) boundary(off int) bool {
	return off == 0 || off == len(t.b) || utf8.RuneStart(t.b[off])
}

// byteOffset walks to the byte offset of character position pos.
func (t *Buffer) byteOffset(pos int) (int, error) {
	if pos < 0 {
		return 0, fmt.Errorf("%w: character %d", ErrBounds, pos)
	}
	off := 0
	for i := 0; i < pos; i++ {
		if off >= len(t.b) {
			return 0, fmt.Errorf("%w: character %d of %d", ErrBounds, pos, t.CharLen())
		}
		_, size := utf8.DecodeRune(t.b[off:])
		off += size
	}
	return off, nil
}
