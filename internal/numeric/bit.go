package numeric

import "fmt"

// Bit is the 1-bit numeric domain {0, 1}. Bool is the logical domain with
// bit-identical storage. The two are never interchanged implicitly: crossing
// the boundary takes an explicit BitToBool / BoolToBit cast, and Bool carries
// no ordering.

// Bit is a 1-bit numeric value.
type Bit uint8

// NewBit validates v into the {0, 1} domain.
func NewBit(v uint8) (Bit, error) {
	if v > 1 {
		return 0, fmt.Errorf("%w: bit value %d", ErrOverflow, v)
	}
	return Bit(v), nil
}

// Add returns (b + o) mod 2.
func (b Bit) Add(o Bit) Bit { return (b + o) & 1 }

// Mul returns b * o within the bit domain.
func (b Bit) Mul(o Bit) Bit { return b & o }

// Not flips the bit.
func (b Bit) Not() Bit { return b ^ 1 }

// PromoteInt64 widens the bit into the widest signed type, the promotion
// applied in mixed integer expressions.
func (b Bit) PromoteInt64() int64 { return int64(b) }

// PromoteUint64 widens the bit into the widest unsigned type.
func (b Bit) PromoteUint64() uint64 { return uint64(b) }

// BitToBool crosses the numeric/logical boundary explicitly.
func BitToBool(b Bit) bool { return b != 0 }

// BoolToBit crosses the logical/numeric boundary explicitly.
func BoolToBit(v bool) Bit {
	if v {
		return 1
	}
	return 0
}
