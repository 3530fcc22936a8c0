package codec

import (
	"fmt"
	"strings"
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// HexOptions controls hex rendering. The zero value produces lowercase
// digits with no grouping.
type HexOptions struct {
	Upper bool
	// Group inserts a space every Group bytes when positive.
	Group int
}

// EncodeHex renders b as hexadecimal text.
func EncodeHex(b []byte, opts HexOptions) string {
	digits := hexLower
	if opts.Upper {
		digits = hexUpper
	}
	var sb strings.Builder
	sb.Grow(len(b) * 2)
	for i, c := range b {
		if opts.Group > 0 && i > 0 && i%opts.Group == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[c>>4])
		sb.WriteByte(digits[c&0x0f])
	}
	return sb.String()
}

// DecodeHex parses hexadecimal text into bytes. Spaces between byte pairs are
// accepted (matching EncodeHex grouping); anything else malformed fails.
func DecodeHex(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	var hi byte
	half := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if half {
				return nil, fmt.Errorf("%w: space inside byte pair at %d", ErrSyntax, i)
			}
			continue
		}
		v, ok := hexDigit(c)
		if !ok {
			return nil, fmt.Errorf("%w: invalid hex digit %q at %d", ErrSyntax, c, i)
		}
		if !half {
			hi = v
			half = true
			continue
		}
		out = append(out, hi<<4|v)
		half = false
	}
	if half {
		return nil, fmt.Errorf("%w: odd number of hex digits", ErrSyntax)
	}
	return out, nil
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
