// Package srt parses SubRip subtitle files into microsecond-precise cues,
// skipping malformed blocks instead of failing the whole file.
package srt
