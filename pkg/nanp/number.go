package nanp

// ReduceNANP reduces an extracted digit sequence to exactly ten digits.
//
// A ten-digit sequence passes through unchanged. An eleven-digit sequence
// with a leading '1' drops the country code. Anything else is no match.
// This is a purely structural rule: no area-code or exchange tables.
func ReduceNANP(digits string) (string, bool) {
	switch {
	case len(digits) == 10:
		return digits, true
	case len(digits) == 11 && digits[0] == '1':
		return digits[1:], true
	default:
		return "", false
	}
}
