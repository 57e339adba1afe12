package nanp

import "strings"

// phoneHeaderKeywords are matched as unanchored substrings. This
// intentionally over-matches ("Clientele" contains "tel"); the batch layer
// preserves that behavior rather than second-guessing column headers.
var phoneHeaderKeywords = []string{
	"phone",
	"mobile",
	"cell",
	"sms",
	"telephone",
	"tel",
}

// IsPhoneHeader reports whether a column header looks phone-related, by
// case-insensitive substring match. Empty or whitespace-only headers never
// match.
func IsPhoneHeader(header string) bool {
	h := strings.ToLower(strings.TrimSpace(header))
	if h == "" {
		return false
	}

	for _, kw := range phoneHeaderKeywords {
		if strings.Contains(h, kw) {
			return true
		}
	}
	return false
}
