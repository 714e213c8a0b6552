package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello", "hello"},
		{"Café", "cafe"},
		{"ÀÉÎÕÜ", "aeiou"},
		{"naïve résumé", "naive resume"},
		{"already lower", "already lower"},
		{"Mixed CASE With Ümlauts", "mixed case with umlauts"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Café", "ÀÉÎÕÜ", "plain", "Zürich Straße"}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("Café Culture", "cafe") {
		t.Error("expected diacritic-insensitive substring match")
	}
	if !Contains("anything", "") {
		t.Error("empty needle should match everything")
	}
	if Contains("short", "not present") {
		t.Error("unexpected match")
	}
}
