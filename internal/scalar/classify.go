package scalar

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Classification queries are table-driven lookups against the Unicode
// property tables shipped with the toolchain; the table contents are an
// external data dependency, the query surface below is the contract.

// IsAlphabetic reports whether the scalar is a letter.
func (s Scalar) IsAlphabetic() bool {
	return unicode.IsLetter(rune(s))
}

// IsNumeric reports whether the scalar is a decimal digit. Non-decimal
// numeral systems (Roman numerals, circled numbers, vulgar fractions) are
// deliberately excluded.
func (s Scalar) IsNumeric() bool {
	return unicode.Is(unicode.Nd, rune(s))
}

// DigitValue returns the numeric value of a decimal digit, or -1 when the
// scalar is not one.
func (s Scalar) DigitValue() int {
	r := rune(s)
	if !unicode.Is(unicode.Nd, r) {
		return -1
	}
	// Every Nd block stores its digits contiguously from the zero digit.
	for _, rng := range unicode.Nd.R16 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10
		}
	}
	for _, rng := range unicode.Nd.R32 {
		if r >= rune(rng.Lo) && r <= rune(rng.Hi) {
			return int(r-rune(rng.Lo)) % 10
		}
	}
	return -1
}

// IsWhitespace reports whether the scalar is white space.
func (s Scalar) IsWhitespace() bool {
	return unicode.IsSpace(rune(s))
}

// IsControl reports whether the scalar is a control character.
func (s Scalar) IsControl() bool {
	return unicode.IsControl(rune(s))
}

// IsUpper reports whether the scalar is an uppercase letter.
func (s Scalar) IsUpper() bool {
	return unicode.IsUpper(rune(s))
}

// IsLower reports whether the scalar is a lowercase letter.
func (s Scalar) IsLower() bool {
	return unicode.IsLower(rune(s))
}

// IsCombining reports whether the scalar is a combining mark (categories
// Mn, Mc, Me).
func (s Scalar) IsCombining() bool {
	return unicode.In(rune(s), unicode.Mn, unicode.Mc, unicode.Me)
}

// Width returns the number of terminal display cells the scalar occupies:
// 0 for combining marks, 2 for East Asian wide forms, 1 otherwise.
func (s Scalar) Width() int {
	return runewidth.RuneWidth(rune(s))
}
