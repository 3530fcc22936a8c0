package scalar

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case conversion follows the full Unicode mappings, so one scalar may
// expand into several ('ß' becomes "SS"). The Single variants refuse to
// convert when the full mapping would expand.

// Upper returns the full uppercase mapping of the scalar.
func (s Scalar) Upper() string {
	return cases.Upper(language.Und).String(string(rune(s)))
}

// Lower returns the full lowercase mapping of the scalar.
func (s Scalar) Lower() string {
	return cases.Lower(language.Und).String(string(rune(s)))
}

// UpperSingle returns the single-scalar uppercase mapping. ok is false when
// the full mapping expands to more than one scalar; the receiver is then
// returned unchanged.
func (s Scalar) UpperSingle() (Scalar, bool) {
	if utf8.RuneCountInString(s.Upper()) != 1 {
		return s, false
	}
	return Scalar(unicode.ToUpper(rune(s))), true
}

// LowerSingle returns the single-scalar lowercase mapping; ok is false when
// the full mapping expands.
func (s Scalar) LowerSingle() (Scalar, bool) {
	if utf8.RuneCountInString(s.Lower()) != 1 {
		return s, false
	}
	return Scalar(unicode.ToLower(rune(s))), true
}
