package scalar_test

import (
	"testing"

	"prism/internal/scalar"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		r            rune
		alpha, num   bool
		space, ctrl  bool
		upper, lower bool
	}{
		{'A', true, false, false, false, true, false},
		{'z', true, false, false, false, false, true},
		{'7', false, true, false, false, false, false},
		{' ', false, false, true, false, false, false},
		{'\t', false, false, true, true, false, false},
		{0x00, false, false, false, true, false, false},
		{'Я', true, false, false, false, true, false},
		{'٣', false, true, false, false, false, false}, // ARABIC-INDIC DIGIT THREE
		{'Ⅷ', false, false, false, false, false, false}, // Roman numeral: not a decimal digit
		{'½', false, false, false, false, false, false},
	}
	for _, tt := range tests {
		s := scalar.NewUnchecked(tt.r)
		if got := s.IsAlphabetic(); got != tt.alpha {
			t.Errorf("IsAlphabetic(%q) = %v", tt.r, got)
		}
		if got := s.IsNumeric(); got != tt.num {
			t.Errorf("IsNumeric(%q) = %v", tt.r, got)
		}
		if got := s.IsWhitespace(); got != tt.space {
			t.Errorf("IsWhitespace(%q) = %v", tt.r, got)
		}
		if got := s.IsControl(); got != tt.ctrl {
			t.Errorf("IsControl(%q) = %v", tt.r, got)
		}
		if got := s.IsUpper(); got != tt.upper {
			t.Errorf("IsUpper(%q) = %v", tt.r, got)
		}
		if got := s.IsLower(); got != tt.lower {
			t.Errorf("IsLower(%q) = %v", tt.r, got)
		}
	}
}

func TestDigitValue(t *testing.T) {
	if got := scalar.NewUnchecked('7').DigitValue(); got != 7 {
		t.Fatalf("DigitValue('7') = %d", got)
	}
	if got := scalar.NewUnchecked('٣').DigitValue(); got != 3 {
		t.Fatalf("DigitValue(arabic-indic 3) = %d", got)
	}
	if got := scalar.NewUnchecked('x').DigitValue(); got != -1 {
		t.Fatalf("DigitValue('x') = %d", got)
	}
}

func TestCombining(t *testing.T) {
	if !scalar.NewUnchecked(0x0301).IsCombining() {
		t.Fatal("COMBINING ACUTE ACCENT")
	}
	if scalar.NewUnchecked('e').IsCombining() {
		t.Fatal("'e' is not combining")
	}
}

func TestWidth(t *testing.T) {
	if got := scalar.NewUnchecked('a').Width(); got != 1 {
		t.Fatalf("Width('a') = %d", got)
	}
	if got := scalar.NewUnchecked('世').Width(); got != 2 {
		t.Fatalf("Width('世') = %d", got)
	}
	if got := scalar.NewUnchecked(0x0301).Width(); got != 0 {
		t.Fatalf("Width(combining) = %d", got)
	}
}

func TestCaseMapping(t *testing.T) {
	if got := scalar.NewUnchecked('a').Upper(); got != "A" {
		t.Fatalf("Upper('a') = %q", got)
	}
	if got := scalar.NewUnchecked('ß').Upper(); got != "SS" {
		t.Fatalf("Upper('ß') = %q", got)
	}
	if got := scalar.NewUnchecked('İ').Lower(); len([]rune(got)) != 2 {
		t.Fatalf("Lower('İ') should expand, got %q", got)
	}
	up, ok := scalar.NewUnchecked('a').UpperSingle()
	if !ok || up != 'A' {
		t.Fatalf("UpperSingle('a') = %#x, %v", up, ok)
	}
	same, ok := scalar.NewUnchecked('ß').UpperSingle()
	if ok || same != 'ß' {
		t.Fatalf("UpperSingle('ß') must report no mapping, got %#x, %v", same, ok)
	}
	lo, ok := scalar.NewUnchecked('Д').LowerSingle()
	if !ok || lo != 'д' {
		t.Fatalf("LowerSingle('Д') = %#x, %v", lo, ok)
	}
}
