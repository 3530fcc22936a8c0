package numeric_test

import (
	"testing"

	"prism/internal/numeric"
)

func TestCheckedAddScenario(t *testing.T) {
	got, over := numeric.CheckedAdd(int16(32000), int16(10000))
	if !over {
		t.Fatal("expected overflow flag")
	}
	if got != -23536 {
		t.Fatalf("expected wrapped value -23536, got %d", got)
	}
}

func TestWrappingAddScenario(t *testing.T) {
	if got := numeric.WrappingAdd(int8(127), int8(1)); got != -128 {
		t.Fatalf("expected -128, got %d", got)
	}
}

func TestCheckedAddExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got, over := numeric.CheckedAdd(int8(a), int8(b))
			sum := a + b
			wantOver := sum < -128 || sum > 127
			if over != wantOver {
				t.Fatalf("CheckedAdd(%d, %d): overflow=%v, want %v", a, b, over, wantOver)
			}
			if int8(sum) != got {
				t.Fatalf("CheckedAdd(%d, %d): wrapped=%d, want %d", a, b, got, int8(sum))
			}
		}
	}
}

func TestCheckedMulExhaustiveInt8(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got, over := numeric.CheckedMul(int8(a), int8(b))
			prod := a * b
			wantOver := prod < -128 || prod > 127
			if over != wantOver {
				t.Fatalf("CheckedMul(%d, %d): overflow=%v, want %v", a, b, over, wantOver)
			}
			if int8(prod) != got {
				t.Fatalf("CheckedMul(%d, %d): wrapped=%d, want %d", a, b, got, int8(prod))
			}
		}
	}
}

func TestCheckedSubExhaustiveUint8(t *testing.T) {
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			got, over := numeric.CheckedSub(uint8(a), uint8(b))
			if over != (b > a) {
				t.Fatalf("CheckedSub(%d, %d): overflow=%v", a, b, over)
			}
			if got != uint8(a-b) {
				t.Fatalf("CheckedSub(%d, %d): wrapped=%d", a, b, got)
			}
		}
	}
}

func TestSaturatingStaysInRange(t *testing.T) {
	for a := -128; a <= 127; a++ {
		for b := -128; b <= 127; b++ {
			got := numeric.SaturatingAdd(int8(a), int8(b))
			sum := a + b
			want := sum
			if sum > 127 {
				want = 127
			}
			if sum < -128 {
				want = -128
			}
			if int(got) != want {
				t.Fatalf("SaturatingAdd(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestSaturatingMul(t *testing.T) {
	tests := []struct {
		a, b int8
		want int8
	}{
		{100, 100, 127},
		{-100, 100, -128},
		{-100, -100, 127},
		{5, 5, 25},
		{-128, -1, 127},
	}
	for _, tt := range tests {
		if got := numeric.SaturatingMul(tt.a, tt.b); got != tt.want {
			t.Errorf("SaturatingMul(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSaturatingUnsigned(t *testing.T) {
	if got := numeric.SaturatingAdd(uint16(65000), uint16(1000)); got != 65535 {
		t.Fatalf("expected 65535, got %d", got)
	}
	if got := numeric.SaturatingSub(uint16(3), uint16(5)); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCheckedNegAbs(t *testing.T) {
	if _, over := numeric.CheckedNeg(int32(-2147483648)); !over {
		t.Fatal("negating int32 MIN must overflow")
	}
	if got, over := numeric.CheckedNeg(int32(7)); over || got != -7 {
		t.Fatalf("CheckedNeg(7) = %d, %v", got, over)
	}
	if _, over := numeric.CheckedNeg(uint8(1)); !over {
		t.Fatal("negating nonzero unsigned must overflow")
	}
	if _, over := numeric.CheckedAbs(int8(-128)); !over {
		t.Fatal("abs of int8 MIN must overflow")
	}
	if got, over := numeric.CheckedAbs(int8(-5)); over || got != 5 {
		t.Fatalf("CheckedAbs(-5) = %d, %v", got, over)
	}
}

func TestMinMaxConstants(t *testing.T) {
	if numeric.MinOf[int8]() != -128 || numeric.MaxOf[int8]() != 127 {
		t.Fatal("int8 bounds")
	}
	if numeric.MinOf[uint64]() != 0 || numeric.MaxOf[uint64]() != ^uint64(0) {
		t.Fatal("uint64 bounds")
	}
	if numeric.MinOf[int64]() != -9223372036854775808 {
		t.Fatal("int64 min")
	}
	if numeric.BitWidth[uint16]() != 16 || numeric.BitWidth[int64]() != 64 {
		t.Fatal("bit widths")
	}
}

func TestDivRem(t *testing.T) {
	if _, err := numeric.Div(int32(1), int32(0)); err == nil {
		t.Fatal("division by zero must fail")
	}
	if _, err := numeric.Rem(uint8(1), uint8(0)); err == nil {
		t.Fatal("remainder by zero must fail")
	}
	q, err := numeric.Div(int16(-7), int16(2))
	if err != nil || q != -3 {
		t.Fatalf("Div(-7, 2) = %d, %v; want -3 (truncate toward zero)", q, err)
	}
	r, err := numeric.Rem(int16(-7), int16(2))
	if err != nil || r != -1 {
		t.Fatalf("Rem(-7, 2) = %d, %v; want -1 (sign of dividend)", r, err)
	}
	q2, over, err := numeric.CheckedDiv(int8(-128), int8(-1))
	if err != nil || !over || q2 != -128 {
		t.Fatalf("CheckedDiv(MIN, -1) = %d, over=%v, err=%v", q2, over, err)
	}
}
