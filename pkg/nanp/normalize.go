package nanp

// Invalid is the sentinel written back for non-empty input that does not
// reduce to a valid ten-digit number. It is plain text, never an error,
// so a batch run can always write its result into the source cell.
const Invalid = "INVALID"

// Normalize runs the full pipeline on an arbitrary scalar cell value.
//
// Empty (or all-whitespace, or nil) input yields the empty string, which is
// deliberately distinct from Invalid: nothing to format is not a failure.
func Normalize(v any, style string) string {
	s := Coerce(v)
	if s == "" {
		return ""
	}

	number, ok := ReduceNANP(ExtractDigits(s))
	if !ok {
		return Invalid
	}

	return Format(number, ParseStyle(style))
}
