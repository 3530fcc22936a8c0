package floats_test

import (
	"math"
	"testing"

	"prism/internal/floats"
)

func TestFloat16RoundTripAllPatterns(t *testing.T) {
	// Widening then re-narrowing must reproduce every non-NaN pattern
	// bit-exactly; NaN patterns must stay NaN.
	for b := 0; b <= 0xffff; b++ {
		f := floats.FromBits16(uint16(b))
		back := floats.FromFloat64(f.Float64())
		if f.IsNaN() {
			if !back.IsNaN() {
				t.Fatalf("pattern %#04x: NaN did not survive round-trip", b)
			}
			continue
		}
		if back != f {
			t.Fatalf("pattern %#04x became %#04x", b, back.Bits())
		}
	}
}

func TestFloat16Float32RoundTrip(t *testing.T) {
	for b := 0; b <= 0xffff; b++ {
		f := floats.FromBits16(uint16(b))
		if f.IsNaN() {
			continue
		}
		if back := floats.FromFloat32(f.Float32()); back != f {
			t.Fatalf("pattern %#04x became %#04x via float32", b, back.Bits())
		}
	}
}

func TestFromFloat64Cases(t *testing.T) {
	tests := []struct {
		in   float64
		want uint16
	}{
		{0, 0x0000},
		{math.Copysign(0, -1), 0x8000},
		{1, 0x3c00},
		{-2, 0xc000},
		{65504, 0x7bff},         // largest finite binary16
		{65520, 0x7c00},         // ties to even, even side is infinity
		{65519.999, 0x7bff},     // just under the tie rounds down
		{65536, 0x7c00},         // clean overflow
		{math.Inf(1), 0x7c00},
		{math.Inf(-1), 0xfc00},
		{5.960464477539063e-08, 0x0001},  // smallest subnormal, 2^-24
		{2.980232238769531e-08, 0x0000},  // exactly half of it ties to zero
		{2.9802322387695312e-08, 0x0000}, // same value, full precision
		{8.940696716308594e-08, 0x0002},  // 1.5*2^-24 ties up to even
		{6.103515625e-05, 0x0400},        // smallest normal, 2^-14
		{0.0999755859375, 0x2e66},        // nearest binary16 to 0.1
		{1e-30, 0x0000},                  // deep underflow is sticky, not a tie
	}
	for _, tt := range tests {
		if got := floats.FromFloat64(tt.in); got.Bits() != tt.want {
			t.Errorf("FromFloat64(%g) = %#04x, want %#04x", tt.in, got.Bits(), tt.want)
		}
	}
}

func TestFromFloat64TiesToEven(t *testing.T) {
	// 2049 is exactly between 2048 and 2050 (ulp is 2 there); the even
	// significand wins.
	if got := floats.FromFloat64(2049); got.Bits() != floats.FromFloat64(2048).Bits() {
		t.Fatalf("2049 must tie to 2048, got %#04x", got.Bits())
	}
	if got := floats.FromFloat64(2051); got.Bits() != floats.FromFloat64(2052).Bits() {
		t.Fatalf("2051 must tie to 2052, got %#04x", got.Bits())
	}
}

func TestFloat16Arithmetic(t *testing.T) {
	two := floats.FromFloat64(2)
	three := floats.FromFloat64(3)
	if got := two.Add(three); got != floats.FromFloat64(5) {
		t.Fatalf("2+3 = %#04x", got.Bits())
	}
	if got := three.Sub(two); got != floats.FromFloat64(1) {
		t.Fatalf("3-2 = %#04x", got.Bits())
	}
	if got := two.Mul(three); got != floats.FromFloat64(6) {
		t.Fatalf("2*3 = %#04x", got.Bits())
	}
	if got := three.Div(two); got != floats.FromFloat64(1.5) {
		t.Fatalf("3/2 = %#04x", got.Bits())
	}
}

func TestFloat16Specials(t *testing.T) {
	one := floats.FromFloat64(1)
	zero := floats.Zero16(false)
	negZero := floats.Zero16(true)

	if got := one.Div(zero); !got.IsInf(1) {
		t.Fatalf("1/0 = %#04x, want +inf", got.Bits())
	}
	if got := one.Neg().Div(zero); !got.IsInf(-1) {
		t.Fatalf("-1/0 = %#04x, want -inf", got.Bits())
	}
	if got := zero.Div(zero); !got.IsNaN() {
		t.Fatalf("0/0 = %#04x, want nan", got.Bits())
	}
	if got := floats.Inf16(1).Sub(floats.Inf16(1)); !got.IsNaN() {
		t.Fatalf("inf-inf = %#04x, want nan", got.Bits())
	}
	if got := one.Neg().Sqrt(); !got.IsNaN() {
		t.Fatalf("sqrt(-1) = %#04x, want nan", got.Bits())
	}
	if !zero.Eq(negZero) {
		t.Fatal("+0 and -0 compare equal under IEEE ==")
	}
	if nan := floats.NaN16(); nan.Eq(nan) {
		t.Fatal("NaN == NaN must be false")
	}
}

func TestFloat16OverflowSaturatesToInf(t *testing.T) {
	big := floats.FromFloat64(65504)
	if got := big.Add(big); !got.IsInf(1) {
		t.Fatalf("overflow = %#04x, want +inf", got.Bits())
	}
}
