package render

import (
	"strings"
	"unicode/utf8"

	"github.com/nerrad567/ha-entity-renamer/internal/plan"
)

// alignmentMarker is the character entity IDs are aligned on. Entity
// IDs have the form "domain.object_id", so aligning on the first dot
// lines the domains up in a column.
const alignmentMarker = "."

// AlignColumn pads the values of one column so their alignment
// markers line up vertically.
//
// For every value containing the marker, the text before the first
// marker is right-padded to the longest such prefix in the column.
// Values without a marker are returned unchanged and do not influence
// the width.
//
// Parameters:
//   - values: Cell values of a single column, top to bottom
//
// Returns:
//   - []string: Values with marker-bearing cells padded
func AlignColumn(values []string) []string {
	maxPrefix := 0
	for _, v := range values {
		before, _, found := strings.Cut(v, alignmentMarker)
		if !found {
			continue
		}
		if n := utf8.RuneCountInString(before); n > maxPrefix {
			maxPrefix = n
		}
	}
	if maxPrefix == 0 {
		return values
	}

	aligned := make([]string, len(values))
	for i, v := range values {
		before, after, found := strings.Cut(v, alignmentMarker)
		if !found {
			aligned[i] = v
			continue
		}
		pad := maxPrefix - utf8.RuneCountInString(before)
		aligned[i] = strings.Repeat(" ", pad) + before + alignmentMarker + after
	}
	return aligned
}

// Table renders a plan as a GitHub-style pipe table with the header
// {Friendly Name, Current Entity ID, New Entity ID}. Entity ID
// columns are dot-aligned via AlignColumn; the alignment is cosmetic
// and applies only to this rendering, never to exported files.
//
// Parameters:
//   - rows: Plan rows, in plan order
//
// Returns:
//   - string: Rendered table, newline-terminated
func Table(rows []plan.Row) string {
	header := []string{plan.ColumnFriendlyName, plan.ColumnEntityID, plan.ColumnNewEntityID}

	// Collect per-column cell values and align each column.
	columns := make([][]string, len(header))
	for col := range columns {
		columns[col] = make([]string, len(rows))
	}
	for i, r := range rows {
		columns[0][i] = r.FriendlyName
		columns[1][i] = r.EntityID
		columns[2][i] = r.NewEntityID
	}
	for col := range columns {
		columns[col] = AlignColumn(columns[col])
	}

	// Column widths cover the header and every cell.
	widths := make([]int, len(header))
	for col, name := range header {
		widths[col] = utf8.RuneCountInString(name)
		for _, cell := range columns[col] {
			if n := utf8.RuneCountInString(cell); n > widths[col] {
				widths[col] = n
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		for col, cell := range cells {
			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[col]-utf8.RuneCountInString(cell)))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}

	writeRow(header)
	for col := range header {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", widths[col]+2))
	}
	b.WriteString("|\n")

	for i := range rows {
		writeRow([]string{columns[0][i], columns[1][i], columns[2][i]})
	}

	return b.String()
}
