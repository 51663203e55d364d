// Package render formats rename plans for terminal display.
//
// Plans are rendered as GitHub-style pipe tables with entity ID
// columns aligned on the first dot, so the domain part of every ID
// lines up and a long preview stays scannable. The alignment padding
// exists only in the rendered output; exported CSV files always carry
// the raw values.
package render
