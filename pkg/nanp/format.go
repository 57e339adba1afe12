package nanp

import "strings"

// Style selects the output rendering of a ten-digit number.
type Style string

const (
	StyleDigits Style = "digits"
	StyleDash   Style = "dash"
	StyleParen  Style = "paren"
	StyleE164   Style = "e164"
)

// ParseStyle matches a style name case-insensitively after trimming.
// Unrecognized names fall back to StyleDigits rather than erroring.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleDash:
		return StyleDash
	case StyleParen:
		return StyleParen
	case StyleE164:
		return StyleE164
	default:
		return StyleDigits
	}
}

// Format renders a ten-digit number in the given style. The number must
// satisfy the ReduceNANP invariant (exactly ten bytes '0'-'9').
func Format(number string, style Style) string {
	switch style {
	case StyleDash:
		return number[:3] + "-" + number[3:6] + "-" + number[6:]
	case StyleParen:
		return "(" + number[:3] + ") " + number[3:6] + "-" + number[6:]
	case StyleE164:
		return "+1" + number
	default:
		return number
	}
}
