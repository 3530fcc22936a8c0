// Package bitvec implements packed bit collections: the growable Vector,
// the fixed-length Array, and the borrowed Slice sub-range view. Bits pack
// into 64-bit words; the bit index space is independent of any byte index
// space until an explicit pack/unpack crossing (see PackBytes).
package bitvec

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrBounds reports a bit index outside the collection's length.
	ErrBounds = errors.New("bit index out of range")
	// ErrLengthMismatch reports a bitwise combination of collections
	// with different lengths.
	ErrLengthMismatch = errors.New("bit collection lengths differ")
	// ErrShortPack reports packed input with fewer bytes than the
	// requested bit count needs.
	ErrShortPack = errors.New("packed bits too short")
	// ErrStaleSlice reports a slice whose source vector changed length
	// after the slice was taken.
	ErrStaleSlice = errors.New("slice source changed length")
)

const wordBits = 64

// Vector is a growable packed sequence of bits. Length changes bump gen,
// which invalidates outstanding slices; element writes do not.
type Vector struct {
	words []uint64
	n     int
	gen   uint64
}

// New returns a vector of n bits, all zero.
func New(n int) *Vector {
	return &Vector{words: make([]uint64, wordsFor(n)), n: n}
}

// Len returns the logical bit length.
func (v *Vector) Len() int { return v.n }

// Get returns bit i.
func (v *Vector) Get(i int) (bool, error) {
	if i < 0 || i >= v.n {
		return false, fmt.Errorf("%w: %d of %d", ErrBounds, i, v.n)
	}
	return v.words[i/wordBits]>>(i%wordBits)&1 == 1, nil
}

// Set writes bit i.
func (v *Vector) Set(i int, b bool) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, v.n)
	}
	v.put(i, b)
	return nil
}

// Flip inverts bit i.
func (v *Vector) Flip(i int) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: %d of %d", ErrBounds, i, v.n)
	}
	v.words[i/wordBits] ^= 1 << (i % wordBits)
	return nil
}

// Push appends one bit, growing by a word when the current one is full.
func (v *Vector) Push(b bool) {
	if v.n == len(v.words)*wordBits {
		v.words = append(v.words, 0)
	}
	v.n++
	v.gen++
	v.put(v.n-1, b)
}

// Pop removes and returns the final bit; ok is false on an empty vector.
func (v *Vector) Pop() (bool, bool) {
	if v.n == 0 {
		return false, false
	}
	b, _ := v.Get(v.n - 1)
	v.put(v.n-1, false)
	v.n--
	v.gen++
	return b, true
}

// Fill sets every bit.
func (v *Vector) Fill(b bool) {
	var w uint64
	if b {
		w = ^uint64(0)
	}
	for i := range v.words {
		v.words[i] = w
	}
	v.clearTail()
}

// CountOnes returns the number of set bits.
func (v *Vector) CountOnes() int {
	total := 0
	for _, w := range v.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Any reports whether at least one bit is set.
func (v *Vector) Any() bool {
	for _, w := range v.words {
		if w != 0 {
			return true
		}
	}
	return false
}

// All reports whether every bit is set; vacuously true when empty.
func (v *Vector) All() bool {
	return v.CountOnes() == v.n
}

// And combines in place with an equal-length vector.
func (v *Vector) And(o *Vector) error {
	if v.n != o.n {
		return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, v.n, o.n)
	}
	for i := range v.words[:wordsFor(v.n)] {
		v.words[i] &= o.words[i]
	}
	return nil
}

// Or combines in place with an equal-length vector.
func (v *Vector) Or(o *Vector) error {
	if v.n != o.n {
		return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, v.n, o.n)
	}
	for i := range v.words[:wordsFor(v.n)] {
		v.words[i] |= o.words[i]
	}
	return nil
}

// Xor combines in place with an equal-length vector.
func (v *Vector) Xor(o *Vector) error {
	if v.n != o.n {
		return fmt.Errorf("%w: %d and %d", ErrLengthMismatch, v.n, o.n)
	}
	for i := range v.words[:wordsFor(v.n)] {
		v.words[i] ^= o.words[i]
	}
	return nil
}

// Not inverts every bit in place.
func (v *Vector) Not() {
	for i := range v.words {
		v.words[i] = ^v.words[i]
	}
	v.clearTail()
}

// Clone returns an independent copy.
func (v *Vector) Clone() *Vector {
	out := &Vector{words: make([]uint64, len(v.words)), n: v.n}
	copy(out.words, v.words)
	return out
}

// Equal compares lengths and bits. Word slices may outlive pops on either
// side, so only the words the logical length reaches are compared; the
// tail-word invariant keeps spare words zero.
func (v *Vector) Equal(o *Vector) bool {
	if v.n != o.n {
		return false
	}
	for i := 0; i < wordsFor(v.n); i++ {
		if v.words[i] != o.words[i] {
			return false
		}
	}
	return true
}

// put writes without a bounds check; callers have validated i.
func (v *Vector) put(i int, b bool) {
	if b {
		v.words[i/wordBits] |= 1 << (i % wordBits)
	} else {
		v.words[i/wordBits] &^= 1 << (i % wordBits)
	}
}

// clearTail zeroes the bits past the logical length so CountOnes and Equal
// stay honest.
func (v *Vector) clearTail() {
	if tail := v.n % wordBits; tail != 0 {
		v.words[v.n/wordBits] &= ^uint64(0) >> (wordBits - tail)
	}
	for i := wordsFor(v.n); i < len(v.words); i++ {
		v.words[i] = 0
	}
}

func wordsFor(n int) int {
	return (n + wordBits - 1) / wordBits
}
