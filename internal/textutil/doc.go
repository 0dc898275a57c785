// Package textutil provides filename sanitization and draft title derivation.
//
// SanitizeFileName makes user-supplied names safe as filesystem path
// segments; TitleFromPath turns an asset path into a presentable draft
// title.
package textutil
