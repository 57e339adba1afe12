package tabular

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// CSVStore treats a directory of .csv files as a workbook: each file is a
// sheet named after its base name, with the header at a configurable row.
type CSVStore struct {
	dir       string
	headerRow int
}

func NewCSVStore(dir string, headerRow int) *CSVStore {
	return &CSVStore{dir: dir, headerRow: headerRow}
}

func (s *CSVStore) Sheets(ctx context.Context) ([]Source, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet directory %s: %w", s.dir, err)
	}

	var sheets []Source
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		sheets = append(sheets, s.sheet(entry.Name()))
	}

	sort.Slice(sheets, func(i, j int) bool { return sheets[i].Name() < sheets[j].Name() })
	return sheets, nil
}

func (s *CSVStore) Sheet(ctx context.Context, name string) (Source, error) {
	file := name
	if filepath.Ext(file) == "" {
		file += ".csv"
	}
	if _, err := os.Stat(filepath.Join(s.dir, file)); err != nil {
		return nil, fmt.Errorf("sheet %s: %w", name, err)
	}
	return s.sheet(file), nil
}

func (s *CSVStore) sheet(file string) *CSVSheet {
	return &CSVSheet{
		path:      filepath.Join(s.dir, file),
		name:      strings.TrimSuffix(file, filepath.Ext(file)),
		headerRow: s.headerRow,
	}
}

// CSVSheet reads and rewrites one CSV file. Rows above the header row are
// left untouched; data rows start immediately below it.
type CSVSheet struct {
	path      string
	name      string
	headerRow int
}

func (c *CSVSheet) Name() string {
	return c.name
}

func (c *CSVSheet) Headers(ctx context.Context) ([]string, error) {
	records, err := c.load()
	if err != nil {
		return nil, err
	}
	if c.headerRow >= len(records) {
		return nil, nil
	}
	return records[c.headerRow], nil
}

func (c *CSVSheet) ReadColumn(ctx context.Context, col int) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := c.load()
	if err != nil {
		return nil, err
	}

	var values []any
	for _, row := range records[c.dataStart(records):] {
		if col < len(row) {
			values = append(values, row[col])
		} else {
			values = append(values, "")
		}
	}
	return values, nil
}

func (c *CSVSheet) WriteColumn(ctx context.Context, col int, values []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := c.load()
	if err != nil {
		return err
	}

	start := c.dataStart(records)
	for i, v := range values {
		row := start + i
		if row >= len(records) {
			break
		}
		for col >= len(records[row]) {
			records[row] = append(records[row], "")
		}
		records[row][col] = v
	}

	return c.save(records)
}

func (c *CSVSheet) dataStart(records [][]string) int {
	start := c.headerRow + 1
	if start > len(records) {
		return len(records)
	}
	return start
}

func (c *CSVSheet) load() ([][]string, error) {
	f, err := os.Open(c.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet %s: %w", c.name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are common in exported sheets

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheet %s: %w", c.name, err)
	}
	return records, nil
}

func (c *CSVSheet) save(records [][]string) error {
	f, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to rewrite sheet %s: %w", c.name, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write sheet %s: %w", c.name, err)
	}

	return f.Close()
}
