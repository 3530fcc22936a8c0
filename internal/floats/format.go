package floats

import "strconv"

// Rendering primitives for the %.Nf, %.Ne and %g specifiers of the host
// format facility. Special values render as `+inf`, `-inf` and `nan`
// regardless of the specifier.

// FormatFixed64 renders x with prec digits after the decimal point.
func FormatFixed64(x float64, prec int) string {
	if s, ok := formatSpecial64(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// FormatSci64 renders x in d.dddde±dd scientific form with prec fraction
// digits.
func FormatSci64(x float64, prec int) string {
	if s, ok := formatSpecial64(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'e', prec, 64)
}

// FormatGeneral64 renders x in the shortest form that parses back to the
// same value.
func FormatGeneral64(x float64) string {
	if s, ok := formatSpecial64(x); ok {
		return s
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// FormatFixed32 renders x with prec digits after the decimal point.
func FormatFixed32(x float32, prec int) string {
	if s, ok := formatSpecial64(float64(x)); ok {
		return s
	}
	return strconv.FormatFloat(float64(x), 'f', prec, 32)
}

// FormatSci32 renders x in scientific form with prec fraction digits.
func FormatSci32(x float32, prec int) string {
	if s, ok := formatSpecial64(float64(x)); ok {
		return s
	}
	return strconv.FormatFloat(float64(x), 'e', prec, 32)
}

// FormatGeneral32 renders x in the shortest round-tripping form.
func FormatGeneral32(x float32) string {
	if s, ok := formatSpecial64(float64(x)); ok {
		return s
	}
	return strconv.FormatFloat(float64(x), 'g', -1, 32)
}

// FormatFixed16 renders f with prec digits after the decimal point.
func FormatFixed16(f Float16, prec int) string {
	if s, ok := formatSpecial16(f); ok {
		return s
	}
	return strconv.FormatFloat(f.Float64(), 'f', prec, 32)
}

// FormatSci16 renders f in scientific form with prec fraction digits.
func FormatSci16(f Float16, prec int) string {
	if s, ok := formatSpecial16(f); ok {
		return s
	}
	return strconv.FormatFloat(f.Float64(), 'e', prec, 32)
}

// FormatGeneral16 renders f in the shortest form that parses back to the
// same binary16 value. Shortest-for-binary32 suffices: every binary16 value
// is exact in binary32 and the reparse lands on the same pattern.
func FormatGeneral16(f Float16) string {
	if s, ok := formatSpecial16(f); ok {
		return s
	}
	return strconv.FormatFloat(f.Float64(), 'g', -1, 32)
}

func formatSpecial64(x float64) (string, bool) {
	switch Classify64(x) {
	case ClassNaN:
		return "nan", true
	case ClassPosInf:
		return "+inf", true
	case ClassNegInf:
		return "-inf", true
	default:
		return "", false
	}
}

func formatSpecial16(f Float16) (string, bool) {
	switch f.Class() {
	case ClassNaN:
		return "nan", true
	case ClassPosInf:
		return "+inf", true
	case ClassNegInf:
		return "-inf", true
	default:
		return "", false
	}
}
