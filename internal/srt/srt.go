package srt

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Cue is one parsed subtitle block with microsecond timing.
type Cue struct {
	Index int
	Start int64
	End   int64
	Text  string
}

// Duration returns the cue length in microseconds.
func (c Cue) Duration() int64 { return c.End - c.Start }

// Issue describes one malformed block that was skipped. Block numbers are
// 1-based positions in the file, counting skipped blocks.
type Issue struct {
	Block  int
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("block %d: %s", i.Block, i.Reason)
}

// Parse reads SRT content into cues. Malformed blocks are skipped one at a
// time and reported as issues; parsing always continues to the end.
func Parse(content string) ([]Cue, []Issue) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	var (
		cues   []Cue
		issues []Issue
	)
	for i, block := range strings.Split(content, "\n\n") {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		cue, err := parseBlock(block)
		if err != nil {
			issues = append(issues, Issue{Block: i + 1, Reason: err.Error()})
			continue
		}
		cues = append(cues, cue)
	}
	return cues, issues
}

// ParseFile reads and parses an SRT file.
func ParseFile(path string) ([]Cue, []Issue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read srt: %w", err)
	}
	cues, issues := Parse(string(data))
	return cues, issues, nil
}

func parseBlock(block string) (Cue, error) {
	lines := strings.Split(block, "\n")
	if len(lines) < 3 {
		return Cue{}, fmt.Errorf("block has %d lines, want index, timing, text", len(lines))
	}

	index, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return Cue{}, fmt.Errorf("invalid cue index %q", strings.TrimSpace(lines[0]))
	}

	start, end, err := parseTiming(lines[1])
	if err != nil {
		return Cue{}, err
	}
	if end < start {
		return Cue{}, fmt.Errorf("cue ends at %d before it starts at %d", end, start)
	}

	text := strings.TrimSpace(strings.Join(lines[2:], "\n"))
	if text == "" {
		return Cue{}, fmt.Errorf("cue %d has no text", index)
	}

	return Cue{Index: index, Start: start, End: end, Text: text}, nil
}

func parseTiming(line string) (int64, int64, error) {
	parts := strings.Split(line, "-->")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid timing line %q", strings.TrimSpace(line))
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp converts HH:MM:SS,mmm into microseconds. A period before
// the milliseconds is normalized to the standard comma.
func parseTimestamp(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty timestamp")
	}
	value = strings.ReplaceAll(value, ".", ",")
	timeParts := strings.Split(value, ",")
	if len(timeParts) != 2 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hms := strings.Split(timeParts[0], ":")
	if len(hms) != 3 {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	hours, errH := strconv.Atoi(hms[0])
	minutes, errM := strconv.Atoi(hms[1])
	seconds, errS := strconv.Atoi(hms[2])
	millis, errMS := strconv.Atoi(timeParts[1])
	if errH != nil || errM != nil || errS != nil || errMS != nil {
		return 0, fmt.Errorf("invalid timestamp %q", value)
	}
	if hours < 0 || minutes < 0 || seconds < 0 || millis < 0 {
		return 0, fmt.Errorf("negative timestamp %q", value)
	}
	return (int64(hours*3600+minutes*60+seconds)*1000 + int64(millis)) * 1000, nil
}
