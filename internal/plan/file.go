package plan

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Column headers for plan table files.
const (
	ColumnFriendlyName = "Friendly Name"
	ColumnEntityID     = "Current Entity ID"
	ColumnNewEntityID  = "New Entity ID"
)

// ReadFile loads a plan from a comma-separated table file.
//
// The file must have a header row. "Current Entity ID" is required;
// "Friendly Name" and "New Entity ID" are optional and default to the
// empty string when the column is absent. Rows come back in file
// order.
//
// Parameters:
//   - path: Path to the CSV file
//
// Returns:
//   - []Row: One row per data line, in file order
//   - error: ErrMissingColumn, ErrNoRows, or a read/parse failure
func ReadFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading input file: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoRows
	}

	// Map header names to column positions.
	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[name] = i
	}
	idCol, ok := columns[ColumnEntityID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnEntityID)
	}

	cell := func(record []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, Row{
			FriendlyName: cell(record, ColumnFriendlyName),
			EntityID:     record[idCol],
			NewEntityID:  cell(record, ColumnNewEntityID),
		})
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// WriteFile writes a plan to a comma-separated table file, header
// included, overwriting any existing file. Values are written raw:
// the display alignment applied by the preview table is not carried
// into the export, so a written file can be read back unchanged via
// ReadFile.
//
// Parameters:
//   - rows: Plan rows to write, in order
//   - path: Destination path, truncated if it exists
//
// Returns:
//   - error: If the file cannot be created or written
func WriteFile(rows []Row, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{ColumnFriendlyName, ColumnEntityID, ColumnNewEntityID})
	for _, r := range rows {
		records = append(records, []string{r.FriendlyName, r.EntityID, r.NewEntityID})
	}
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}

	return f.Close()
}
