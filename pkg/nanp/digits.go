package nanp

import "strings"

// keypadDigits maps each letter A-Z (by alphabet offset) to its telephone
// keypad digit. All 26 letters map; Q and Z are not omitted.
//
//	ABC->2 DEF->3 GHI->4 JKL->5 MNO->6 PQRS->7 TUV->8 WXYZ->9
const keypadDigits = "22233344455566677778889999"

// extensionMarkers are checked longest-first so "ext" is never consumed as
// a bare "x" with a stray "et" left behind.
var extensionMarkers = []string{"extension", "ext", "x"}

// KeypadDigit returns the keypad digit for a letter, case-insensitively.
// The second return is false for any non-letter byte.
func KeypadDigit(c byte) (byte, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return keypadDigits[c-'A'], true
	case c >= 'a' && c <= 'z':
		return keypadDigits[c-'a'], true
	default:
		return 0, false
	}
}

// ExtractDigits scans s left to right and collects decimal digits, mapping
// vanity letters to keypad digits and discarding every other character.
//
// Once ten digits have accumulated, each remaining position is first checked
// for an extension marker ("x", "ext", "extension", case-insensitive). If a
// marker is present and at least one digit follows it, collection stops and
// the extension is discarded. The threshold check happens before every
// character, not just once: nine digits followed by "x1234567" keeps
// accumulating, because at the "x" the base number is still incomplete.
func ExtractDigits(s string) string {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if b.Len() >= 10 && extensionAt(s, i) {
			break
		}

		c := s[i]
		if c >= '0' && c <= '9' {
			b.WriteByte(c)
			continue
		}
		if d, ok := KeypadDigit(c); ok {
			b.WriteByte(d)
		}
	}

	return b.String()
}

// extensionAt reports whether an extension marker starts at position i and
// is followed (anywhere in the remainder) by at least one digit.
func extensionAt(s string, i int) bool {
	for _, marker := range extensionMarkers {
		end := i + len(marker)
		if end > len(s) {
			continue
		}
		if !strings.EqualFold(s[i:end], marker) {
			continue
		}
		if hasDigit(s[end:]) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return true
		}
	}
	return false
}
