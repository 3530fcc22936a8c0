// Package numeric implements the fixed-width integer tower: two's-complement
// signed and unsigned integers of 8, 16, 32 and 64 bits with three explicit
// arithmetic modes (checked, wrapping, saturating), bit intrinsics, and
// conversions between widths, signedness and byte representations.
//
// Which mode the bare operators of a host program forward to is a deployment
// decision, not a property of the values; see the profile package.
package numeric

import (
	"errors"
	"unsafe"
)

var (
	// ErrDivisionByZero reports integer division or remainder by zero.
	// Float division by zero instead yields an IEEE special value; the
	// divergence is deliberate.
	ErrDivisionByZero = errors.New("integer division by zero")
	// ErrOverflow reports a checked conversion whose input is outside the
	// destination's representable range.
	ErrOverflow = errors.New("value out of range for destination type")
)

// Signed covers the signed fixed widths.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned covers the unsigned fixed widths.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer covers every fixed-width integer type.
type Integer interface {
	Signed | Unsigned
}

// BitWidth returns the width of T in bits.
func BitWidth[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// IsSigned reports whether T is a signed type.
func IsSigned[T Integer]() bool {
	var zero T
	return ^zero < zero
}

// MinOf returns the smallest representable value of T.
func MinOf[T Integer]() T {
	if !IsSigned[T]() {
		return 0
	}
	var one T = 1
	return one << (BitWidth[T]() - 1)
}

// MaxOf returns the largest representable value of T.
func MaxOf[T Integer]() T {
	var zero T
	if !IsSigned[T]() {
		return ^zero
	}
	return ^MinOf[T]()
}
