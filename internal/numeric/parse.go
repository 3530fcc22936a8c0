package numeric

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrParse reports malformed numeric text.
var ErrParse = errors.New("invalid numeric format")

// Parse reads a decimal integer, honoring the literal forms of the value
// layer: optional sign (signed types only), 0x/0o/0b base prefixes and `_`
// digit separators.
func Parse[T Integer](s string) (T, error) {
	return parseInteger[T](s, 0)
}

// ParseOpt is Parse with an absent-value indicator instead of an error.
func ParseOpt[T Integer](s string) (T, bool) {
	v, err := Parse[T](s)
	return v, err == nil
}

// ParseRadix reads an integer in the given base, 2 through 36. No base
// prefix is accepted; the caller already chose the radix.
func ParseRadix[T Integer](s string, base int) (T, error) {
	if base < 2 || base > 36 {
		return 0, fmt.Errorf("%w: base %d", ErrParse, base)
	}
	return parseInteger[T](s, base)
}

func parseInteger[T Integer](s string, base int) (T, error) {
	s = strings.TrimSpace(s)
	if strings.IndexByte(s, '_') >= 0 {
		var b strings.Builder
		b.Grow(len(s))
		for i := 0; i < len(s); i++ {
			if s[i] != '_' {
				b.WriteByte(s[i])
			}
		}
		s = b.String()
	}
	if s == "" {
		return 0, ErrParse
	}

	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		if !IsSigned[T]() {
			return 0, fmt.Errorf("%w: sign on unsigned value", ErrParse)
		}
		neg = true
		s = s[1:]
	}
	if base == 0 {
		base = 10
		if len(s) > 2 && s[0] == '0' {
			switch s[1] {
			case 'x', 'X':
				base, s = 16, s[2:]
			case 'o', 'O':
				base, s = 8, s[2:]
			case 'b', 'B':
				base, s = 2, s[2:]
			}
		}
	}
	if s == "" {
		return 0, ErrParse
	}

	mag, err := strconv.ParseUint(s, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return magnitudeToValue[T](mag, neg)
}

func magnitudeToValue[T Integer](mag uint64, neg bool) (T, error) {
	if neg {
		// Magnitude of MinOf is MaxOf+1.
		limit := toWord(MaxOf[T]()) + 1
		if mag > limit {
			return 0, fmt.Errorf("%w: -%d", ErrOverflow, mag)
		}
		return -T(mag), nil
	}
	if mag > toWord(MaxOf[T]()) {
		return 0, fmt.Errorf("%w: %d", ErrOverflow, mag)
	}
	return T(mag), nil
}
