// Package codec implements the byte codecs shared by every scalar-to-bytes
// conversion in the value layer: UTF-8 validation, hex and base64 text forms,
// and explicit-endianness packing of fixed-width numbers.
package codec

import "errors"

var (
	// ErrInvalidUTF8 reports a byte sequence that is not well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")
	// ErrSyntax reports malformed hex or base64 text.
	ErrSyntax = errors.New("malformed encoded text")
	// ErrLength reports an input whose size does not match the fixed width
	// being decoded. Wrong-length input fails, it is never truncated or padded.
	ErrLength = errors.New("input length does not match value width")
)
