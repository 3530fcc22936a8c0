package floats_test

import (
	"math"
	"testing"

	"prism/internal/floats"
)

func TestClassify64(t *testing.T) {
	tests := []struct {
		in   float64
		want floats.Class
	}{
		{math.NaN(), floats.ClassNaN},
		{math.Inf(1), floats.ClassPosInf},
		{math.Inf(-1), floats.ClassNegInf},
		{0, floats.ClassPosZero},
		{math.Copysign(0, -1), floats.ClassNegZero},
		{1.5, floats.ClassPosNormal},
		{-1.5, floats.ClassNegNormal},
		{5e-324, floats.ClassPosSubnormal},
		{-5e-324, floats.ClassNegSubnormal},
	}
	for _, tt := range tests {
		if got := floats.Classify64(tt.in); got != tt.want {
			t.Errorf("Classify64(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestClassify32(t *testing.T) {
	if got := floats.Classify32(float32(math.Inf(-1))); got != floats.ClassNegInf {
		t.Fatalf("got %v", got)
	}
	if got := floats.Classify32(math.Float32frombits(1)); got != floats.ClassPosSubnormal {
		t.Fatalf("got %v", got)
	}
	if got := floats.Classify32(float32(math.NaN())); got != floats.ClassNaN {
		t.Fatalf("got %v", got)
	}
}

func TestClassify16(t *testing.T) {
	if got := floats.NaN16().Class(); got != floats.ClassNaN {
		t.Fatalf("got %v", got)
	}
	if got := floats.FromBits16(0x0001).Class(); got != floats.ClassPosSubnormal {
		t.Fatalf("got %v", got)
	}
	if got := floats.Zero16(true).Class(); got != floats.ClassNegZero {
		t.Fatalf("got %v", got)
	}
	if got := floats.FromFloat64(1).Class(); got != floats.ClassPosNormal {
		t.Fatalf("got %v", got)
	}
}

func TestClassPredicates(t *testing.T) {
	if !floats.ClassNegZero.IsZero() || floats.ClassPosNormal.IsZero() {
		t.Fatal("IsZero")
	}
	if !floats.ClassPosSubnormal.IsSubnormal() || floats.ClassPosZero.IsSubnormal() {
		t.Fatal("IsSubnormal")
	}
	if floats.ClassNaN.IsFinite() || floats.ClassPosInf.IsFinite() || !floats.ClassNegZero.IsFinite() {
		t.Fatal("IsFinite")
	}
}

func TestEveryPatternHasOneClass16(t *testing.T) {
	var counts [9]int
	for b := 0; b <= 0xffff; b++ {
		counts[floats.FromBits16(uint16(b)).Class()]++
	}
	// 2 infinities, 2 zeros, 2*1022 NaN patterns, 2*1023 subnormals.
	if counts[floats.ClassPosInf] != 1 || counts[floats.ClassNegInf] != 1 {
		t.Fatal("infinity counts")
	}
	if counts[floats.ClassPosZero] != 1 || counts[floats.ClassNegZero] != 1 {
		t.Fatal("zero counts")
	}
	if counts[floats.ClassNaN] != 2046 {
		t.Fatalf("NaN patterns = %d, want 2046", counts[floats.ClassNaN])
	}
	if counts[floats.ClassPosSubnormal] != 1023 || counts[floats.ClassNegSubnormal] != 1023 {
		t.Fatal("subnormal counts")
	}
}

func TestNaNSelfInequality(t *testing.T) {
	nan := math.NaN()
	if nan == nan {
		t.Fatal("NaN == NaN")
	}
	if !(nan != nan) {
		t.Fatal("NaN != NaN must hold")
	}
	x := 0.0
	if !(x == math.Copysign(0, -1)) {
		t.Fatal("+0 == -0 must hold")
	}
}
