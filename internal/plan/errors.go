package plan

import "errors"

// Domain-specific errors for plan file handling.
// Use errors.Is() to check for these errors in calling code.
var (
	// ErrNoRows is returned when an input file contains a header but
	// no data rows.
	ErrNoRows = errors.New("plan: no data found in the input file")

	// ErrMissingColumn is returned when an input file lacks the
	// required "Current Entity ID" column.
	ErrMissingColumn = errors.New("plan: input file missing required column")
)
