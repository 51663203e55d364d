// Package cli wires the renamer's flags, confirmation gate, and
// run flow into a cobra command.
//
// The flow is strictly linear: list entities (or read a CSV plan),
// render the preview table, optionally export it, ask for
// confirmation, then apply over the control channel. A --search
// without --replace is a preview-only run and never opens the
// control channel.
package cli
