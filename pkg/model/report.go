package model

import "time"

// Options configures a batch formatting run. It is passed explicitly into
// every operation; there is no process-wide default state.
type Options struct {
	// Style names the output rendering. Unknown names fall back to digits
	// inside the core, so the value is never rejected here.
	Style string `json:"style"`

	// HeaderRow is the zero-based index of the header row in each sheet.
	HeaderRow int `json:"header_row" validate:"gte=0"`
}

// ColumnReport counts the outcomes for one phone column.
type ColumnReport struct {
	Header    string `json:"header"`
	Column    int    `json:"column"`
	Formatted int    `json:"formatted"`
	Invalid   int    `json:"invalid"`
	Empty     int    `json:"empty"`
}

// Report summarizes one formatted sheet.
type Report struct {
	RunID       string         `json:"run_id"`
	Sheet       string         `json:"sheet"`
	Style       string         `json:"style"`
	Columns     []ColumnReport `json:"columns"`
	StartedAt   time.Time      `json:"started_at"`
	CompletedAt time.Time      `json:"completed_at"`
}

// Cells returns the total number of cells examined across all columns.
func (r *Report) Cells() int {
	total := 0
	for _, c := range r.Columns {
		total += c.Formatted + c.Invalid + c.Empty
	}
	return total
}
