// Package mediaprobe reads durations and dimensions from media file headers
// without shelling out to external tools.
package mediaprobe
