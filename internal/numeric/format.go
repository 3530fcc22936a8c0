package numeric

import (
	"fmt"
	"strconv"
	"strings"
)

// Rendering primitives backing the %d/%u, %x, %b and zero-padded width
// specifiers of the host format facility.

// Format renders v in decimal.
func Format[T Integer](v T) string {
	if IsSigned[T]() {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(toWord(v), 10)
}

// FormatRadix renders v in the given base, 2 through 36. Negative signed
// values keep a leading minus sign; digits above 9 are lowercase.
func FormatRadix[T Integer](v T, base int) (string, error) {
	if base < 2 || base > 36 {
		return "", fmt.Errorf("%w: base %d", ErrParse, base)
	}
	if IsSigned[T]() {
		return strconv.FormatInt(int64(v), base), nil
	}
	return strconv.FormatUint(toWord(v), base), nil
}

// FormatHex renders v's value in base 16.
func FormatHex[T Integer](v T) string {
	s, _ := FormatRadix(v, 16)
	return s
}

// FormatBinary renders v's value in base 2.
func FormatBinary[T Integer](v T) string {
	s, _ := FormatRadix(v, 2)
	return s
}

// FormatPadded zero-pads the decimal rendering to at least width digits,
// keeping the sign ahead of the padding.
func FormatPadded[T Integer](v T, width int) string {
	s := Format(v)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if pad := width - len(sign) - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return sign + s
}
