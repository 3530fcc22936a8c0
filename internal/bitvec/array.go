package bitvec

import "fmt"

// Array is a packed bit sequence whose length is fixed at construction.
// It shares the Vector representation but exposes no growth operations.
type Array struct {
	v Vector
}

// NewArray returns an array of n zero bits.
func NewArray(n int) *Array {
	return &Array{v: Vector{words: make([]uint64, wordsFor(n)), n: n}}
}

// ArrayOf builds an array from explicit bit values.
func ArrayOf(bits ...bool) *Array {
	a := NewArray(len(bits))
	for i, b := range bits {
		a.v.put(i, b)
	}
	return a
}

// Len returns the fixed bit length.
func (a *Array) Len() int { return a.v.Len() }

// Get returns bit i.
func (a *Array) Get(i int) (bool, error) { return a.v.Get(i) }

// Set writes bit i.
func (a *Array) Set(i int, b bool) error { return a.v.Set(i, b) }

// Flip inverts bit i.
func (a *Array) Flip(i int) error { return a.v.Flip(i) }

// Fill sets every bit.
func (a *Array) Fill(b bool) { a.v.Fill(b) }

// CountOnes returns the number of set bits.
func (a *Array) CountOnes() int { return a.v.CountOnes() }

// Any reports whether at least one bit is set.
func (a *Array) Any() bool { return a.v.Any() }

// All reports whether every bit is set.
func (a *Array) All() bool { return a.v.All() }

// And combines in place with an equal-length array.
func (a *Array) And(o *Array) error { return a.v.And(&o.v) }

// Or combines in place with an equal-length array.
func (a *Array) Or(o *Array) error { return a.v.Or(&o.v) }

// Xor combines in place with an equal-length array.
func (a *Array) Xor(o *Array) error { return a.v.Xor(&o.v) }

// Not inverts every bit in place.
func (a *Array) Not() { a.v.Not() }

// Equal compares lengths and bits.
func (a *Array) Equal(o *Array) bool { return a.v.Equal(&o.v) }

// Vector returns a growable copy of the array's bits.
func (a *Array) Vector() *Vector { return a.v.Clone() }

// Slice borrows the bits in [from, to).
func (a *Array) Slice(from, to int) (*Slice, error) {
	return slice(&a.v, from, to)
}

// Slice borrows the bits in [from, to).
func (v *Vector) Slice(from, to int) (*Slice, error) {
	return slice(v, from, to)
}

// Slice is a borrowed view of a bit sub-range. Reads and writes go straight
// to the source's storage. A length change of the source (push, pop)
// invalidates every outstanding slice; stale slices fail rather than
// touching reindexed bits.
type Slice struct {
	src  *Vector
	from int
	n    int
	gen  uint64
}

func slice(v *Vector, from, to int) (*Slice, error) {
	if from < 0 || to < from || to > v.n {
		return nil, fmt.Errorf("%w: [%d, %d) of %d", ErrBounds, from, to, v.n)
	}
	return &Slice{src: v, from: from, n: to - from, gen: v.gen}, nil
}

// Len returns the view's bit length.
func (s *Slice) Len() int { return s.n }

// valid checks the source has not changed length since the slice was taken.
func (s *Slice) valid() error {
	if s.gen != s.src.gen {
		return ErrStaleSlice
	}
	return nil
}

// Get returns bit i of the view.
func (s *Slice) Get(i int) (bool, error) {
	if err := s.valid(); err != nil {
		return false, err
	}
	if i < 0 || i >= s.n {
		return false, fmt.Errorf("%w: %d of %d", ErrBounds, i, s.n)
	}
	return s.src.Get(s.from + i)
}

// Set writes bit i of the view through to the underlying collection.
func (s *Slice) Set(i int, b bool) error {
	if err := s.valid(); err != nil {
		return err
	}
	if i < 0 || i >= s.n {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, s.n)
	}
	return s.src.Set(s.from+i, b)
}

// CountOnes returns the number of set bits in the view.
func (s *Slice) CountOnes() (int, error) {
	if err := s.valid(); err != nil {
		return 0, err
	}
	total := 0
	for i := 0; i < s.n; i++ {
		if b, _ := s.src.Get(s.from + i); b {
			total++
		}
	}
	return total, nil
}

// Vector copies the view's bits into an independent vector.
func (s *Slice) Vector() (*Vector, error) {
	if err := s.valid(); err != nil {
		return nil, err
	}
	out := New(s.n)
	for i := 0; i < s.n; i++ {
		b, _ := s.src.Get(s.from + i)
		out.put(i, b)
	}
	return out, nil
}
