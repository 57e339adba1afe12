// Package tabular abstracts rectangular data sources so batch phone
// formatting can run against any backend that looks like a sheet: CSV
// files, database collections, or a spreadsheet host adapter.
package tabular

import "context"

// Source is a single sheet: a header row above a rectangle of cells.
//
// ReadColumn returns raw scalar cell values; coercion to text happens in
// the normalization core. WriteColumn takes strings only, which forces
// text-typed storage so backends cannot reformat results numerically or
// lose leading digits.
type Source interface {
	Name() string
	Headers(ctx context.Context) ([]string, error)
	ReadColumn(ctx context.Context, col int) ([]any, error)
	WriteColumn(ctx context.Context, col int, values []string) error
}

// Store is a collection of sheets (a workbook, a directory of files, a
// database).
type Store interface {
	Sheets(ctx context.Context) ([]Source, error)
	Sheet(ctx context.Context, name string) (Source, error)
}
