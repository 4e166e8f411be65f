// Package tabular loads and saves delimited text files while preserving
// every original column, so pipeline steps can carry columns they do not
// understand through to the output untouched.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Table is an in-memory delimited table: a header row plus data rows.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadFile parses the CSV file at path into a Table. The first record is
// the header. Any read or parse failure is returned to the caller; a
// pipeline treats that as fatal and produces no output.
func ReadFile(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tabular: failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tabular: failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("tabular: %s has no header row", path)
	}

	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// WriteFile serializes the table to path, overwriting any existing file.
func (t *Table) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tabular: failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.Columns); err != nil {
		return fmt.Errorf("tabular: failed to write header: %w", err)
	}
	if err := writer.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("tabular: failed to write rows: %w", err)
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("tabular: failed to flush %s: %w", path, err)
	}
	return nil
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, error) {
	for i, c := range t.Columns {
		if c == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("tabular: column %q not found", name)
}

// Value returns the cell at (row, col), or the empty string when the row
// is shorter than the header. Source files occasionally omit trailing
// fields; a short row reads as missing, not as an error.
func (t *Table) Value(row, col int) string {
	if col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}
