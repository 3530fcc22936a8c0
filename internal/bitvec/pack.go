package bitvec

import "fmt"

// Packed byte layout: bit i of the collection lives in byte i/8 at bit
// position i%8, so the first byte holds bits 0..7 with bit 0 in the least
// significant position. Bytes follow in little-endian order. PackBytes and
// UnpackBytes are symmetric under this layout; a final partial byte is
// zero-padded in its high positions.

// PackBytes serializes the vector's bits.
func (v *Vector) PackBytes() []byte {
	out := make([]byte, (v.n+7)/8)
	for i := 0; i < v.n; i++ {
		if v.words[i/wordBits]>>(i%wordBits)&1 == 1 {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

// UnpackBytes builds a vector of n bits from the packed form produced by
// PackBytes. Bytes past the first (n+7)/8 are ignored, as are padding bits
// in a final partial byte.
func UnpackBytes(data []byte, n int) (*Vector, error) {
	if need := (n + 7) / 8; len(data) < need {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrShortPack, len(data), need)
	}
	v := New(n)
	for i := 0; i < n; i++ {
		if data[i/8]>>(i%8)&1 == 1 {
			v.words[i/wordBits] |= 1 << (i % wordBits)
		}
	}
	return v, nil
}

// PackBytes serializes the array's bits.
func (a *Array) PackBytes() []byte { return a.v.PackBytes() }

// UnpackBytesArray builds a fixed-length array from packed bits.
func UnpackBytesArray(data []byte, n int) (*Array, error) {
	v, err := UnpackBytes(data, n)
	if err != nil {
		return nil, err
	}
	return &Array{v: *v}, nil
}

