package numeric

import "prism/internal/codec"

// Byte conversions go through the shared codec layer; the bit pattern is
// moved as-is, so signed values round-trip through their two's-complement
// representation.

// ToBeBytes returns v's pattern most-significant byte first.
func ToBeBytes[T Integer](v T) []byte {
	return appendWordBE(make([]byte, 0, BitWidth[T]()/8), v)
}

// ToLeBytes returns v's pattern least-significant byte first.
func ToLeBytes[T Integer](v T) []byte {
	return appendWordLE(make([]byte, 0, BitWidth[T]()/8), v)
}

// FromBeBytes rebuilds a value from big-endian bytes; the input must be
// exactly the type's width.
func FromBeBytes[T Integer](b []byte) (T, error) {
	switch BitWidth[T]() {
	case 8:
		u, err := codec.UintBE[uint8](b)
		return T(u), err
	case 16:
		u, err := codec.UintBE[uint16](b)
		return T(u), err
	case 32:
		u, err := codec.UintBE[uint32](b)
		return T(u), err
	default:
		u, err := codec.UintBE[uint64](b)
		return T(u), err
	}
}

// FromLeBytes rebuilds a value from little-endian bytes; the input must be
// exactly the type's width.
func FromLeBytes[T Integer](b []byte) (T, error) {
	switch BitWidth[T]() {
	case 8:
		u, err := codec.UintLE[uint8](b)
		return T(u), err
	case 16:
		u, err := codec.UintLE[uint16](b)
		return T(u), err
	case 32:
		u, err := codec.UintLE[uint32](b)
		return T(u), err
	default:
		u, err := codec.UintLE[uint64](b)
		return T(u), err
	}
}

func appendWordBE[T Integer](dst []byte, v T) []byte {
	switch BitWidth[T]() {
	case 8:
		return codec.AppendBE(dst, uint8(v))
	case 16:
		return codec.AppendBE(dst, uint16(v))
	case 32:
		return codec.AppendBE(dst, uint32(v))
	default:
		return codec.AppendBE(dst, uint64(v))
	}
}

func appendWordLE[T Integer](dst []byte, v T) []byte {
	switch BitWidth[T]() {
	case 8:
		return codec.AppendLE(dst, uint8(v))
	case 16:
		return codec.AppendLE(dst, uint16(v))
	case 32:
		return codec.AppendLE(dst, uint32(v))
	default:
		return codec.AppendLE(dst, uint64(v))
	}
}
