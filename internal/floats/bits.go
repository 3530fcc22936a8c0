package floats

import (
	"math"

	"prism/internal/codec"
)

// Bit-level access and explicit-endianness byte conversion. Round-trips are
// exact for every representable pattern of a width, NaN payloads included.

// ToBits64 returns the binary64 bit pattern.
func ToBits64(x float64) uint64 { return math.Float64bits(x) }

// FromBits64 reinterprets a bit pattern as binary64.
func FromBits64(b uint64) float64 { return math.Float64frombits(b) }

// ToBits32 returns the binary32 bit pattern.
func ToBits32(x float32) uint32 { return math.Float32bits(x) }

// FromBits32 reinterprets a bit pattern as binary32.
func FromBits32(b uint32) float32 { return math.Float32frombits(b) }

// ToBeBytes64 packs x most-significant byte first.
func ToBeBytes64(x float64) []byte {
	return codec.AppendBE(make([]byte, 0, 8), math.Float64bits(x))
}

// ToLeBytes64 packs x least-significant byte first.
func ToLeBytes64(x float64) []byte {
	return codec.AppendLE(make([]byte, 0, 8), math.Float64bits(x))
}

// FromBeBytes64 unpacks a big-endian binary64; the input must be exactly 8
// bytes.
func FromBeBytes64(b []byte) (float64, error) {
	u, err := codec.UintBE[uint64](b)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// FromLeBytes64 unpacks a little-endian binary64; the input must be exactly
// 8 bytes.
func FromLeBytes64(b []byte) (float64, error) {
	u, err := codec.UintLE[uint64](b)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// ToBeBytes32 packs x most-significant byte first.
func ToBeBytes32(x float32) []byte {
	return codec.AppendBE(make([]byte, 0, 4), math.Float32bits(x))
}

// ToLeBytes32 packs x least-significant byte first.
func ToLeBytes32(x float32) []byte {
	return codec.AppendLE(make([]byte, 0, 4), math.Float32bits(x))
}

// FromBeBytes32 unpacks a big-endian binary32; the input must be exactly 4
// bytes.
func FromBeBytes32(b []byte) (float32, error) {
	u, err := codec.UintBE[uint32](b)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// FromLeBytes32 unpacks a little-endian binary32; the input must be exactly
// 4 bytes.
func FromLeBytes32(b []byte) (float32, error) {
	u, err := codec.UintLE[uint32](b)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(u), nil
}

// ToBeBytes16 packs f most-significant byte first.
func ToBeBytes16(f Float16) []byte {
	return codec.AppendBE(make([]byte, 0, 2), f.Bits())
}

// ToLeBytes16 packs f least-significant byte first.
func ToLeBytes16(f Float16) []byte {
	return codec.AppendLE(make([]byte, 0, 2), f.Bits())
}

// FromBeBytes16 unpacks a big-endian binary16; the input must be exactly 2
// bytes.
func FromBeBytes16(b []byte) (Float16, error) {
	u, err := codec.UintBE[uint16](b)
	if err != nil {
		return 0, err
	}
	return Float16(u), nil
}

// FromLeBytes16 unpacks a little-endian binary16; the input must be exactly
// 2 bytes.
func FromLeBytes16(b []byte) (Float16, error) {
	u, err := codec.UintLE[uint16](b)
	if err != nil {
		return 0, err
	}
	return Float16(u), nil
}
