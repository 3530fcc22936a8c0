package floats

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Parse64 reads a binary64 value. Beyond the usual decimal and hex-float
// forms it accepts `inf`, `+inf`, `-inf` and `nan` case-insensitively, the
// latter with an optional `nan:0x…` payload suffix. Payload bits round-trip
// through Bits within one implementation but are not portable.
func Parse64(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrParse
	}
	if v, ok, err := parseSpecial(s); ok || err != nil {
		return v, err
	}
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
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// Overflow rounds to the infinity strconv already chose.
			return v, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return v, nil
}

// Parse64Opt is Parse64 with an absent-value indicator instead of an error.
func Parse64Opt(s string) (float64, bool) {
	v, err := Parse64(s)
	return v, err == nil
}

// Parse32 reads a binary32 value, rounding the decimal form once to
// binary32 precision.
func Parse32(s string) (float32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrParse
	}
	if v, ok, err := parseSpecial(s); ok || err != nil {
		return float32(v), err
	}
	if strings.IndexByte(s, '_') >= 0 {
		s = strings.ReplaceAll(s, "_", "")
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return float32(v), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return float32(v), nil
}

// Parse16 reads a binary16 value. The binary64 intermediate can land
// exactly on a binary16 rounding midpoint even when the text sits off it;
// that case is re-resolved against the text itself, so the result is a
// single correct rounding of the input.
func Parse16(s string) (Float16, error) {
	v, err := Parse64(s)
	if err != nil {
		return 0, err
	}
	f := FromFloat64(v)
	if mid, below, above, ok := midpoint16(v); ok {
		return resolveTie16(s, mid, below, above, f), nil
	}
	return f, nil
}

// midpoint16 reports whether v sits exactly halfway between two adjacent
// binary16 values and returns that midpoint with its value-ordered
// neighbors. Above the largest finite magnitude the upper neighbor is
// infinity and the midpoint is 65520. Any v off a midpoint needs no
// re-resolution: v is within half a binary64 ulp of the text, and distinct
// binary64 values are at least a full ulp apart, so text and v fall on the
// same side.
func midpoint16(v float64) (mid float64, below, above Float16, ok bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, 0, 0, false
	}
	a := math.Abs(v)
	d := FromFloat64(a)
	if d.Float64() == a {
		return 0, 0, 0, false
	}
	var loBits, hiBits uint16
	if db := d.Bits(); a > d.Float64() {
		loBits, hiBits = db, db+1
	} else {
		loBits, hiBits = db-1, db
	}
	var m float64
	if hiBits == f16PosInf {
		m = 65520
	} else {
		// Adjacent binary16 magnitudes; their mean is exact in binary64.
		m = (Float16(loBits).Float64() + Float16(hiBits).Float64()) / 2
	}
	if a != m {
		return 0, 0, 0, false
	}
	lo, hi := Float16(loBits), Float16(hiBits)
	if math.Signbit(v) {
		return -m, hi | f16SignMask, lo | f16SignMask, true
	}
	return m, lo, hi, true
}

// resolveTie16 decides a halfway case from the source text. Decimal and hex
// float text converts exactly to a rational, as does the dyadic midpoint,
// so the comparison is exact; text exactly on the midpoint keeps the
// ties-to-even choice.
func resolveTie16(s string, mid float64, below, above, even Float16) Float16 {
	s = strings.TrimSpace(s)
	if strings.IndexByte(s, '_') >= 0 {
		s = strings.ReplaceAll(s, "_", "")
	}
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return even
	}
	switch x.Cmp(new(big.Rat).SetFloat64(mid)) {
	case -1:
		return below
	case 1:
		return above
	default:
		return even
	}
}

// parseSpecial handles the textual infinity and NaN forms. ok reports that
// s was one of them.
func parseSpecial(s string) (v float64, ok bool, err error) {
	low := strings.ToLower(s)
	switch low {
	case "inf", "+inf", "infinity", "+infinity":
		return math.Inf(1), true, nil
	case "-inf", "-infinity":
		return math.Inf(-1), true, nil
	case "nan", "+nan", "-nan":
		return math.NaN(), true, nil
	}
	rest, found := strings.CutPrefix(low, "nan:0x")
	if !found {
		return 0, false, nil
	}
	payload, perr := strconv.ParseUint(rest, 16, 64)
	if perr != nil {
		return 0, true, fmt.Errorf("%w: nan payload %q", ErrParse, rest)
	}
	// Quiet NaN with caller bits in the low mantissa; masked to the
	// payload field.
	return math.Float64frombits(0x7ff8000000000000 | payload&(1<<51-1)), true, nil
}
