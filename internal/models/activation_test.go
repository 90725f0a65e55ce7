package models

import "testing"

func TestNormalizeActivationCode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercase",
			input: "abc123",
			want:  "ABC123",
		},
		{
			name:  "surrounding whitespace",
			input: "  xyz-789  ",
			want:  "XYZ-789",
		},
		{
			name:  "already normalized",
			input: "METODO21",
			want:  "METODO21",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeActivationCode(tt.input); got != tt.want {
				t.Errorf("NormalizeActivationCode(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
