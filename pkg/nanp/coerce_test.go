package nanp

import "testing"

func TestCoerce(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "nil",
			input: nil,
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  "",
		},
		{
			name:  "string with surrounding whitespace",
			input: "  (415) 555-0123  ",
			want:  "(415) 555-0123",
		},
		{
			name:  "float without exponent",
			input: float64(4155550123),
			want:  "4155550123",
		},
		{
			name:  "float fractional part truncated",
			input: 4155550123.75,
			want:  "4155550123",
		},
		{
			name:  "eleven digit float",
			input: float64(14155550123),
			want:  "14155550123",
		},
		{
			name:  "int",
			input: 8005551212,
			want:  "8005551212",
		},
		{
			name:  "int64",
			input: int64(14155550123),
			want:  "14155550123",
		},
		{
			name:  "uint32",
			input: uint32(5550123),
			want:  "5550123",
		},
		{
			name:  "bool falls through to string form",
			input: true,
			want:  "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Coerce(tt.input)
			if got != tt.want {
				t.Errorf("Coerce(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
