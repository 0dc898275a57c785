// Package catalog records synthesized drafts in a SQLite build history so
// the CLI can list what was produced, when, and from which inputs.
package catalog
