package utils

import "testing"

func TestParsePositiveInt(t *testing.T) {
	if v, err := ParsePositiveInt(" 250 "); err != nil || v != 250 {
		t.Fatalf("ParsePositiveInt(\" 250 \") = (%d, %v), want (250, nil)", v, err)
	}

	for _, text := range []string{"0", "-5", "abc", "12.5", ""} {
		if _, err := ParsePositiveInt(text); err == nil {
			t.Fatalf("ParsePositiveInt(%q) succeeded, want error", text)
		}
	}
}

func TestParseNonNegativeIntAllowsZero(t *testing.T) {
	if v, err := ParseNonNegativeInt("0"); err != nil || v != 0 {
		t.Fatalf("ParseNonNegativeInt(\"0\") = (%d, %v), want (0, nil)", v, err)
	}
	if _, err := ParseNonNegativeInt("-1"); err == nil {
		t.Fatal("ParseNonNegativeInt(\"-1\") succeeded, want error")
	}
}

func TestFormatKcal(t *testing.T) {
	if got := FormatKcal(133.5); got != "133.5" {
		t.Fatalf("FormatKcal(133.5) = %q, want \"133.5\"", got)
	}
	if got := FormatKcal(450); got != "450.0" {
		t.Fatalf("FormatKcal(450) = %q, want \"450.0\"", got)
	}
}
