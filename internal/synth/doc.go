// Package synth orchestrates one draft synthesis end to end: probing the
// narration and image inputs, planning the timeline, composing tracks, and
// assembling the editor project folder.
package synth
