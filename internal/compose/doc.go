// Package compose assembles draft tracks and segments from planned inputs:
// image slots, narration audio, subtitle cues, and the configured animation,
// transition, and effect behavior.
package compose
