package floats

import "math"

// The total-order comparators order every bit pattern of a width, including
// both zeros and every NaN, the way IEEE-754 totalOrder does: flipping the
// pattern of a negative value turns the sign-magnitude encoding into a plain
// two's-complement integer order. -NaN < -Inf < finite < +Inf < +NaN, and
// -0 < +0. For sorting and key-ordered collections where < is unusable.

// TotalCmp64 returns -1, 0 or +1 ordering a against b over all binary64
// patterns.
func TotalCmp64(a, b float64) int {
	x := orderKey64(math.Float64bits(a))
	y := orderKey64(math.Float64bits(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// TotalCmp32 returns -1, 0 or +1 ordering a against b over all binary32
// patterns.
func TotalCmp32(a, b float32) int {
	x := orderKey32(math.Float32bits(a))
	y := orderKey32(math.Float32bits(b))
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// TotalCmp16 returns -1, 0 or +1 ordering a against b over all binary16
// patterns.
func TotalCmp16(a, b Float16) int {
	x := orderKey16(a.Bits())
	y := orderKey16(b.Bits())
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

func orderKey64(b uint64) int64 {
	i := int64(b)
	return i ^ int64(uint64(i>>63)>>1)
}

func orderKey32(b uint32) int32 {
	i := int32(b)
	return i ^ int32(uint32(i>>31)>>1)
}

func orderKey16(b uint16) int16 {
	i := int16(b)
	return i ^ int16(uint16(i>>15)>>1)
}
