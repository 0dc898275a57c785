// Package stage defines the error taxonomy shared by the synthesis
// pipeline and the CLI.
//
// Every failure surfaced by the engine is tagged with one of the exported
// sentinel markers so callers can classify it with errors.Is without
// parsing message text. Wrap attaches the failing stage and operation to
// the message while preserving both the marker and the underlying cause
// in the error chain.
package stage
