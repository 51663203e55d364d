package plan

import (
	"regexp"

	"github.com/nerrad567/ha-entity-renamer/internal/hub"
)

// Row is one planned rename. EntityID is always set; NewEntityID and
// FriendlyName may be empty. A row with both empty is a no-op: it is
// still displayed in the preview and still sent to the hub, which
// treats absent fields as "leave unchanged".
type Row struct {
	FriendlyName string
	EntityID     string
	NewEntityID  string
}

// IsNoop reports whether the row carries nothing to change.
func (r Row) IsNoop() bool {
	return r.NewEntityID == "" && r.FriendlyName == ""
}

// Preview builds a plan that computes no renames: one row per entity,
// NewEntityID left empty. Used when a search pattern is given without
// a replacement, to show what matched.
func Preview(entities []hub.Entity) []Row {
	rows := make([]Row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, Row{
			FriendlyName: e.FriendlyName,
			EntityID:     e.EntityID,
		})
	}
	return rows
}

// Substitute builds a plan by applying a regex substitution to each
// entity's ID. The search pattern is the same one used to filter the
// listing, so every row's ID contains at least one match.
//
// Resulting IDs are not checked for uniqueness or validity: the hub
// is the source of truth and rejects conflicts per item.
//
// Parameters:
//   - entities: Entities in listing order
//   - search: Pattern whose matches are replaced
//   - replace: Replacement text ($1-style references expand)
//
// Returns:
//   - []Row: One row per entity, in input order
func Substitute(entities []hub.Entity, search *regexp.Regexp, replace string) []Row {
	rows := make([]Row, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, Row{
			FriendlyName: e.FriendlyName,
			EntityID:     e.EntityID,
			NewEntityID:  search.ReplaceAllString(e.EntityID, replace),
		})
	}
	return rows
}
