package nanp

import "testing"

func TestKeypadDigit(t *testing.T) {
	// every letter has exactly one mapped digit, upper and lower case
	wantByLetter := map[byte]byte{
		'A': '2', 'B': '2', 'C': '2',
		'D': '3', 'E': '3', 'F': '3',
		'G': '4', 'H': '4', 'I': '4',
		'J': '5', 'K': '5', 'L': '5',
		'M': '6', 'N': '6', 'O': '6',
		'P': '7', 'Q': '7', 'R': '7', 'S': '7',
		'T': '8', 'U': '8', 'V': '8',
		'W': '9', 'X': '9', 'Y': '9', 'Z': '9',
	}

	if len(wantByLetter) != 26 {
		t.Fatalf("expected mapping table for all 26 letters, got %d", len(wantByLetter))
	}

	for letter, want := range wantByLetter {
		got, ok := KeypadDigit(letter)
		if !ok || got != want {
			t.Errorf("KeypadDigit(%q) = %q, %v, want %q, true", letter, got, ok, want)
		}

		lower := letter + ('a' - 'A')
		got, ok = KeypadDigit(lower)
		if !ok || got != want {
			t.Errorf("KeypadDigit(%q) = %q, %v, want %q, true", lower, got, ok, want)
		}
	}

	for _, c := range []byte{'0', '9', ' ', '-', '(', '+', '@'} {
		if _, ok := KeypadDigit(c); ok {
			t.Errorf("KeypadDigit(%q) mapped a non-letter", c)
		}
	}
}

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "digits only",
			input: "4155550123",
			want:  "4155550123",
		},
		{
			name:  "punctuation discarded",
			input: "(415) 555-0123",
			want:  "4155550123",
		},
		{
			name:  "vanity letters mapped",
			input: "1-800-FLOWERS",
			want:  "18003569377",
		},
		{
			name:  "lowercase vanity letters",
			input: "1-800-flowers",
			want:  "18003569377",
		},
		{
			name:  "extension with x marker dropped",
			input: "415.555.0123 x89",
			want:  "4155550123",
		},
		{
			name:  "extension with ext marker dropped",
			input: "4155550123 ext 45",
			want:  "4155550123",
		},
		{
			name:  "extension with extension marker dropped",
			input: "4155550123 extension 45",
			want:  "4155550123",
		},
		{
			name:  "ext immediately after tenth digit",
			input: "4155550123ext45",
			want:  "4155550123",
		},
		{
			name:  "marker before ten digits keeps accumulating",
			input: "123456789x1234567",
			want:  "12345678991234567",
		},
		{
			name:  "marker without trailing digits is mapped as letters",
			input: "4155550123 ext",
			want:  "4155550123398",
		},
		{
			name:  "extension after country code",
			input: "1-415-555-0123 x22",
			want:  "14155550123",
		},
		{
			name:  "uppercase extension marker",
			input: "4155550123 EXT 7",
			want:  "4155550123",
		},
		{
			name:  "no digits at all",
			input: "---",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDigits(tt.input)
			if got != tt.want {
				t.Errorf("ExtractDigits(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
