// Package logging assembles the structured slog loggers used across
// draftsmith.
//
// It owns the configurable console/JSON handlers, centralizes level and
// output plumbing, and provides a no-op logger for tests and wiring code
// that cannot fail. The "auto" format picks the console handler on a
// terminal and JSON otherwise, so piped output stays machine readable.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits data with the same shape.
package logging
