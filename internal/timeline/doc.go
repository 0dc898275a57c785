// Package timeline allocates image display slots across the narration
// duration and selects which image fills each slot.
package timeline
