package bytebuf

import (
	"unsafe"

	"prism/internal/codec"
	"prism/internal/floats"
)

// Text and numeric conversions all round-trip exactly for validly sized
// input and fail on anything else; nothing truncates or pads silently.

// ToHex renders the contents as hexadecimal text.
func (u *Buffer) ToHex(opts codec.HexOptions) string {
	return codec.EncodeHex(u.b, opts)
}

// FromHex parses hexadecimal text into a new buffer.
func FromHex(s string) (*Buffer, error) {
	b, err := codec.DecodeHex(s)
	if err != nil {
		return nil, err
	}
	return &Buffer{b: b}, nil
}

// ToBase64 renders the contents as standard-alphabet base64, wrapped at
// lineWidth characters when positive.
func (u *Buffer) ToBase64(lineWidth int) string {
	return codec.EncodeBase64(u.b, lineWidth)
}

// FromBase64 parses base64 text into a new buffer.
func FromBase64(s string) (*Buffer, error) {
	b, err := codec.DecodeBase64(s)
	if err != nil {
		return nil, err
	}
	return &Buffer{b: b}, nil
}

// AppendUintBE appends v most-significant byte first.
func AppendUintBE[T codec.Unsigned](u *Buffer, v T) {
	u.b = codec.AppendBE(u.b, v)
	u.gen++
}

// AppendUintLE appends v least-significant byte first.
func AppendUintLE[T codec.Unsigned](u *Buffer, v T) {
	u.b = codec.AppendLE(u.b, v)
	u.gen++
}

// UintBE decodes the bytes [off, off+width) as a big-endian value.
func UintBE[T codec.Unsigned](u *Buffer, off int) (T, error) {
	b, err := u.field(off, widthOf[T]())
	if err != nil {
		return 0, err
	}
	return codec.UintBE[T](b)
}

// UintLE decodes the bytes [off, off+width) as a little-endian value.
func UintLE[T codec.Unsigned](u *Buffer, off int) (T, error) {
	b, err := u.field(off, widthOf[T]())
	if err != nil {
		return 0, err
	}
	return codec.UintLE[T](b)
}

// AppendFloat64BE appends x's binary64 pattern most-significant byte first.
func (u *Buffer) AppendFloat64BE(x float64) {
	AppendUintBE(u, floats.ToBits64(x))
}

// AppendFloat64LE appends x's binary64 pattern least-significant byte first.
func (u *Buffer) AppendFloat64LE(x float64) {
	AppendUintLE(u, floats.ToBits64(x))
}

// Float64BE decodes 8 bytes at off as a big-endian binary64.
func (u *Buffer) Float64BE(off int) (float64, error) {
	bits, err := UintBE[uint64](u, off)
	if err != nil {
		return 0, err
	}
	return floats.FromBits64(bits), nil
}

// Float64LE decodes 8 bytes at off as a little-endian binary64.
func (u *Buffer) Float64LE(off int) (float64, error) {
	bits, err := UintLE[uint64](u, off)
	if err != nil {
		return 0, err
	}
	return floats.FromBits64(bits), nil
}

// AppendFloat32BE appends x's binary32 pattern most-significant byte first.
func (u *Buffer) AppendFloat32BE(x float32) {
	AppendUintBE(u, floats.ToBits32(x))
}

// AppendFloat32LE appends x's binary32 pattern least-significant byte first.
func (u *Buffer) AppendFloat32LE(x float32) {
	AppendUintLE(u, floats.ToBits32(x))
}

// Float32BE decodes 4 bytes at off as a big-endian binary32.
func (u *Buffer) Float32BE(off int) (float32, error) {
	bits, err := UintBE[uint32](u, off)
	if err != nil {
		return 0, err
	}
	return floats.FromBits32(bits), nil
}

// Float32LE decodes 4 bytes at off as a little-endian binary32.
func (u *Buffer) Float32LE(off int) (float32, error) {
	bits, err := UintLE[uint32](u, off)
	if err != nil {
		return 0, err
	}
	return floats.FromBits32(bits), nil
}

// field slices exactly width bytes at off, failing when the buffer holds
// fewer.
func (u *Buffer) field(off, width int) ([]byte, error) {
	if off < 0 || off+width > len(u.b) {
		return nil, codec.ErrLength
	}
	return u.b[off : off+width], nil
}

func widthOf[T codec.Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
