// Package draft models an editor draft document: a material registry with
// typed handles, tracks of timeline segments, structural validation, and
// serialization to the editor's draft_content.json wire format.
package draft
