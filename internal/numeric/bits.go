package numeric

import "math/bits"

// Shift amounts are masked to the type width (k mod width), so oversized
// shifts are always well-defined.

// Shl returns a << (k mod width).
func Shl[T Integer](a T, k int) T {
	return a << uint(k&(BitWidth[T]()-1))
}

// Shr returns a >> (k mod width); arithmetic for signed types, logical for
// unsigned.
func Shr[T Integer](a T, k int) T {
	return a >> uint(k&(BitWidth[T]()-1))
}

// RotateLeft rotates a left by k mod width bits.
func RotateLeft[T Integer](a T, k int) T {
	w := BitWidth[T]()
	k &= w - 1
	if k == 0 {
		return a
	}
	u := toWord(a)
	r := (u<<uint(k) | u>>uint(w-k)) & wordMask[T]()
	return T(r)
}

// RotateRight rotates a right by k mod width bits.
func RotateRight[T Integer](a T, k int) T {
	w := BitWidth[T]()
	return RotateLeft(a, w-(k&(w-1)))
}

// OnesCount returns the number of set bits in a's pattern.
func OnesCount[T Integer](a T) int {
	return bits.OnesCount64(toWord(a))
}

// LeadingZeros returns the number of zero bits above the highest set bit.
func LeadingZeros[T Integer](a T) int {
	w := BitWidth[T]()
	u := toWord(a)
	if u == 0 {
		return w
	}
	return bits.LeadingZeros64(u) - (64 - w)
}

// TrailingZeros returns the number of zero bits below the lowest set bit.
func TrailingZeros[T Integer](a T) int {
	u := toWord(a)
	if u == 0 {
		return BitWidth[T]()
	}
	return bits.TrailingZeros64(u)
}

// toWord zero-extends a's bit pattern into a uint64 word.
func toWord[T Integer](a T) uint64 {
	return uint64(a) & wordMask[T]()
}

func wordMask[T Integer]() uint64 {
	return ^uint64(0) >> uint(64-BitWidth[T]())
}
