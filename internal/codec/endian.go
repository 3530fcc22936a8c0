package codec

import (
	"fmt"
	"unsafe"
)

// Unsigned covers the word sizes the endian packers operate on. Signed and
// floating-point values are reinterpreted into these by their own packages
// before packing.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// AppendBE appends v to dst most-significant byte first.
func AppendBE[T Unsigned](dst []byte, v T) []byte {
	n := int(unsafe.Sizeof(v))
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// AppendLE appends v to dst least-significant byte first.
func AppendLE[T Unsigned](dst []byte, v T) []byte {
	n := int(unsafe.Sizeof(v))
	for i := 0; i < n; i++ {
		dst = append(dst, byte(v>>(8*i)))
	}
	return dst
}

// UintBE decodes a big-endian value from b, which must be exactly the
// value's width.
func UintBE[T Unsigned](b []byte) (T, error) {
	var v T
	n := int(unsafe.Sizeof(v))
	if len(b) != n {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrLength, len(b), n)
	}
	for _, c := range b {
		v = v<<8 | T(c)
	}
	return v, nil
}

// UintLE decodes a little-endian value from b, which must be exactly the
// value's width.
func UintLE[T Unsigned](b []byte) (T, error) {
	var v T
	n := int(unsafe.Sizeof(v))
	if len(b) != n {
		return 0, fmt.Errorf("%w: got %d bytes, want %d", ErrLength, len(b), n)
	}
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | T(b[i])
	}
	return v, nil
}
