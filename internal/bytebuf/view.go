package bytebuf

import "fmt"

// View is a non-owning window over a contiguous byte range of a Buffer.
// Reads and writes go straight to the origin's storage. A structural
// mutation of the origin (push, insert, remove, zeroize) invalidates every
// outstanding view; stale views fail rather than touching moved storage.
type View struct {
	origin *Buffer
	off    int
	n      int
	gen    uint64
}

// Slice returns a view of the bytes [from, to).
func (u *Buffer) Slice(from, to int) (*View, error) {
	if from < 0 || to < from || to > len(u.b) {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrBounds, from, to, len(u.b))
	}
	return &View{origin: u, off: from, n: to - from, gen: u.gen}, nil
}

// Len returns the view's length.
func (v *View) Len() int { return v.n }

// valid checks the origin has not structurally changed since the view was
// taken.
func (v *View) valid() error {
	if v.gen != v.origin.gen {
		return ErrStaleView
	}
	return nil
}

// Get returns the byte at view index i.
func (v *View) Get(i int) (byte, error) {
	if err := v.valid(); err != nil {
		return 0, err
	}
	if i < 0 || i >= v.n {
		return 0, fmt.Errorf("%w: %d of %d", ErrBounds, i, v.n)
	}
	return v.origin.b[v.off+i], nil
}

// Set writes the byte at view index i; the write lands in the origin.
func (v *View) Set(i int, b byte) error {
	if err := v.valid(); err != nil {
		return err
	}
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, v.n)
	}
	v.origin.b[v.off+i] = b
	return nil
}

// Bytes returns a copy of the viewed range.
func (v *View) Bytes() ([]byte, error) {
	if err := v.valid(); err != nil {
		return nil, err
	}
	out := make([]byte, v.n)
	copy(out, v.origin.b[v.off:v.off+v.n])
	return out, nil
}

// Fill sets every byte of the viewed range in the origin.
func (v *View) Fill(b byte) error {
	if err := v.valid(); err != nil {
		return err
	}
	span := v.origin.b[v.off : v.off+v.n]
	for i := range span {
		span[i] = b
	}
	return nil
}

// Subview narrows the view to [from, to) of its own index space.
func (v *View) Subview(from, to int) (*View, error) {
	if err := v.valid(); err != nil {
		return nil, err
	}
	if from < 0 || to < from || to > v.n {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrBounds, from, to, v.n)
	}
	return &View{origin: v.origin, off: v.off + from, n: to - from, gen: v.gen}, nil
}
