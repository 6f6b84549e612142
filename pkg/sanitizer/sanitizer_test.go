package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "basic trim", input: "  Adaeze  ", want: "Adaeze"},
		{name: "multiple spaces", input: "Victoria    Island", want: "Victoria Island"},
		{name: "tabs and newlines", input: "Lekki\t\nPhase 1", want: "Lekki Phase 1"},
		{name: "empty", input: "", want: ""},
		{name: "only whitespace", input: "  \t\n ", want: ""},
		{name: "preserve punctuation", input: " Murtala Muhammed Int'l Airport ", want: "Murtala Muhammed Int'l Airport"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "address with commas", input: "Lekki Phase 1, Lagos", want: "lekki_phase_1_lagos"},
		{name: "uppercase", input: "IKEJA", want: "ikeja"},
		{name: "surrounding noise", input: "  --Ajah--  ", want: "ajah"},
		{name: "empty", input: "", want: ""},
		{name: "idempotent", input: "lekki_phase_1_lagos", want: "lekki_phase_1_lagos"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CacheKey(tt.input); got != tt.want {
				t.Errorf("CacheKey(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Adaeze@Example.COM "); got != "adaeze@example.com" {
		t.Errorf("NormalizeEmail = %q, want %q", got, "adaeze@example.com")
	}
}
