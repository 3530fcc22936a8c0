// Package bytebuf implements the owned raw byte buffer and the non-owning
// view into it. A Buffer has no encoding constraint; it exists for binary
// payloads and secret material, with constant-time comparison and explicit
// zeroization. A View windows a contiguous range of a Buffer: mutation
// through the view mutates the origin, and a generation counter invalidates
// views once the origin changes shape underneath them.
package bytebuf

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
)

var (
	// ErrBounds reports an index or range outside the buffer's extent.
	ErrBounds = errors.New("index out of range")
	// ErrStaleView reports use of a view after a structural mutation of
	// its origin.
	ErrStaleView = errors.New("view invalidated by origin mutation")
)

// Buffer is an owned, growable sequence of raw bytes.
type Buffer struct {
	b []byte
	// gen counts structural mutations: anything that moves, adds or
	// removes bytes. In-place element writes do not count.
	gen uint64
}

// New returns an empty buffer.
func New() *Buffer { return &Buffer{} }

// WithCapacity returns an empty buffer with room for n bytes.
func WithCapacity(n int) *Buffer {
	return &Buffer{b: make([]byte, 0, n)}
}

// FromBytes copies b into a new buffer.
func FromBytes(b []byte) *Buffer {
	return &Buffer{b: bytes.Clone(b)}
}

// Len returns the number of bytes held.
func (u *Buffer) Len() int { return len(u.b) }

// Cap returns the capacity, tracked separately from the length.
func (u *Buffer) Cap() int { return cap(u.b) }

// Bytes returns a copy of the contents.
func (u *Buffer) Bytes() []byte { return bytes.Clone(u.b) }

// Get returns the byte at index i.
func (u *Buffer) Get(i int) (byte, error) {
	if i < 0 || i >= len(u.b) {
		return 0, fmt.Errorf("%w: %d of %d", ErrBounds, i, len(u.b))
	}
	return u.b[i], nil
}

// MustGet is Get for callers that have already established the bound; it
// panics out of range.
func (u *Buffer) MustGet(i int) byte {
	v, err := u.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Set writes the byte at index i in place.
func (u *Buffer) Set(i int, v byte) error {
	if i < 0 || i >= len(u.b) {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, len(u.b))
	}
	u.b[i] = v
	return nil
}

// MustSet is Set for callers that have already established the bound.
func (u *Buffer) MustSet(i int, v byte) {
	if err := u.Set(i, v); err != nil {
		panic(err)
	}
}

// Push appends one byte.
func (u *Buffer) Push(v byte) {
	u.b = append(u.b, v)
	u.gen++
}

// Append appends a run of bytes.
func (u *Buffer) Append(p []byte) {
	u.b = append(u.b, p...)
	u.gen++
}

// Pop removes and returns the final byte; ok is false on an empty buffer.
func (u *Buffer) Pop() (byte, bool) {
	if len(u.b) == 0 {
		return 0, false
	}
	v := u.b[len(u.b)-1]
	u.b = u.b[:len(u.b)-1]
	u.gen++
	return v, true
}

// Insert places p before index i.
func (u *Buffer) Insert(i int, p []byte) error {
	if i < 0 || i > len(u.b) {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, len(u.b))
	}
	u.b = append(u.b[:i], append(bytes.Clone(p), u.b[i:]...)...)
	u.gen++
	return nil
}

// Remove deletes the bytes in [from, to).
func (u *Buffer) Remove(from, to int) error {
	if from < 0 || to < from || to > len(u.b) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrBounds, from, to, len(u.b))
	}
	u.b = append(u.b[:from], u.b[to:]...)
	u.gen++
	return nil
}

// ReplaceRange substitutes the bytes in [from, to) with p; the lengths need
// not match.
func (u *Buffer) ReplaceRange(from, to int, p []byte) error {
	if from < 0 || to < from || to > len(u.b) {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrBounds, from, to, len(u.b))
	}
	out := make([]byte, 0, len(u.b)-(to-from)+len(p))
	out = append(out, u.b[:from]...)
	out = append(out, p...)
	out = append(out, u.b[to:]...)
	u.b = out
	u.gen++
	return nil
}

// Fill sets every byte to v.
func (u *Buffer) Fill(v byte) {
	for i := range u.b {
		u.b[i] = v
	}
}

// Truncate keeps the first n bytes.
func (u *Buffer) Truncate(n int) error {
	if n < 0 || n > len(u.b) {
		return fmt.Errorf("%w: %d of %d", ErrBounds, n, len(u.b))
	}
	u.b = u.b[:n]
	u.gen++
	return nil
}

// Equal compares byte-for-byte in time dependent on where the buffers
// differ; secret material goes through ConstantTimeEqual instead.
func (u *Buffer) Equal(o *Buffer) bool {
	return bytes.Equal(u.b, o.b)
}

// ConstantTimeEqual compares in time independent of the contents, for
// credentials and MACs. Differing lengths return false immediately; length
// is not treated as secret.
func (u *Buffer) ConstantTimeEqual(o *Buffer) bool {
	return subtle.ConstantTimeCompare(u.b, o.b) == 1
}

// Zeroize overwrites the full capacity, not just the length, then empties
// the buffer. The old contents are unrecoverable through this handle.
func (u *Buffer) Zeroize() {
	spare := u.b[:cap(u.b)]
	for i := range spare {
		spare[i] = 0
	}
	u.b = u.b[:0]
	u.gen++
}
