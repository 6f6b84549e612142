package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already e164", input: "+2348012345678", want: "+2348012345678"},
		{name: "local format", input: "08012345678", want: "+2348012345678"},
		{name: "spaces inside", input: "0801 234 5678", want: "+2348012345678"},
		{name: "empty", input: "", want: ""},
		{name: "garbage", input: "not-a-number", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
