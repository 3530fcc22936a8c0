// Package floats implements the IEEE-754 floating-point tower: binary16,
// binary32 and binary64 with round-to-nearest-ties-to-even semantics, signed
// zeros, infinities and quiet NaN; classification, a total-order comparator,
// fused multiply-add, decompose/compose operations, bit-level access and
// explicit-endianness byte conversion.
//
// binary32 and binary64 are the hardware float32/float64 types. binary16 is
// carried as its bit pattern (Float16) with arithmetic performed in float64
// and rounded once; float64 carries enough precision that the final rounding
// to binary16 matches a direct correctly rounded operation for + - * / sqrt.
//
// NaN payload bits survive To/FromBits round-trips within one process, but
// their propagation through arithmetic is implementation-defined; callers
// must only rely on the result remaining NaN.
package floats

import "errors"

// ErrParse reports malformed floating-point text.
var ErrParse = errors.New("invalid float format")

// Width identifies one of the three IEEE-754 binary widths.
type Width uint8

const (
	// Width16 is IEEE-754 binary16.
	Width16 Width = 16
	// Width32 is IEEE-754 binary32.
	Width32 Width = 32
	// Width64 is IEEE-754 binary64.
	Width64 Width = 64
)

// Promote returns the width a mixed-width expression computes in: the widest
// width present. An integer operand promotes to the float operand's width
// before this rule applies.
func Promote(a, b Width) Width {
	if a > b {
		return a
	}
	return b
}
