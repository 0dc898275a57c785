// Package preflight provides readiness checks for the filesystem paths and
// the build catalog that a synthesis run depends on.
//
// These checks run in two contexts:
//   - The CLI "draftsmith build" command runs them before synthesis so a
//     doomed run fails before any asset copying starts.
//   - The CLI "draftsmith doctor" command displays each check as a table row.
package preflight
