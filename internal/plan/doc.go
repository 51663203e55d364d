// Package plan builds and persists rename plans.
//
// A plan is an ordered slice of Row values, one per entity, in the
// order entities were discovered or read from file. Plans come from
// three places:
//
//   - Preview: matched entities with no rename computed
//   - Substitute: rename computed by regex substitution on the ID
//   - ReadFile: rows taken verbatim from a CSV table file
//
// WriteFile exports a plan in the same CSV shape ReadFile accepts, so
// an exported preview can be hand-edited and fed back in with
// --input-file.
//
// The package performs no validation of resulting entity IDs beyond
// structure: duplicates and invalid IDs pass through and are rejected
// per item by the hub, which is the source of truth.
package plan
