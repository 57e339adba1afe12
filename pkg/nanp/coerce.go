package nanp

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce turns an arbitrary scalar cell value into a trimmed string.
//
// Numeric values are rendered as integer-truncated decimal strings.
// Spreadsheet hosts hand over large phone-like numbers as floats, and the
// naive string form would be scientific notation (4.155550123e+09).
func Coerce(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(x)
	case float64:
		return strconv.FormatInt(int64(x), 10)
	case float32:
		return strconv.FormatInt(int64(x), 10)
	case int:
		return strconv.Itoa(x)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", x))
	}
}
