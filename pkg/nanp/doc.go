// Package nanp normalizes free-form US/Canada phone number text into a
// canonical ten-digit form (North American Numbering Plan).
//
// The pipeline is Coerce -> ExtractDigits -> ReduceNANP -> Format, wrapped
// by Normalize. All functions are pure and total: Normalize never returns
// an error, only one of {empty string, "INVALID", formatted number}, so the
// result is always safe to write back into a spreadsheet cell.
//
// Vanity letters are mapped to keypad digits ("1-800-FLOWERS" becomes
// 8003569377) and trailing extensions ("x89", "ext 45") are detected and
// discarded once ten base digits have been collected.
//
// Validation stops at digit-count structure. Area code and exchange
// legality are out of scope, as is any numbering plan other than NANP.
package nanp
