package srt_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"draftsmith/internal/srt"
)

func TestParseWellFormedCues(t *testing.T) {
	content := `1
00:00:01,500 --> 00:00:04,000
Hello there.

2
00:01:00,250 --> 00:01:02,750
Second cue.
`

	cues, issues := srt.Parse(content)
	if len(issues) != 0 {
		t.Fatalf("Parse() reported issues: %v", issues)
	}
	if len(cues) != 2 {
		t.Fatalf("Parse() returned %d cues, want 2", len(cues))
	}

	if cues[0].Start != 1_500_000 || cues[0].End != 4_000_000 {
		t.Fatalf("cue 0 timing = %d..%d, want 1500000..4000000", cues[0].Start, cues[0].End)
	}
	if cues[0].Text != "Hello there." {
		t.Fatalf("cue 0 text = %q", cues[0].Text)
	}
	if cues[1].Start != 60_250_000 || cues[1].End != 62_750_000 {
		t.Fatalf("cue 1 timing = %d..%d, want 60250000..62750000", cues[1].Start, cues[1].End)
	}
	if cues[1].Duration() != 2_500_000 {
		t.Fatalf("cue 1 duration = %d, want 2500000", cues[1].Duration())
	}
}

func TestParseSkipsMalformedBlock(t *testing.T) {
	blocks := []string{
		"1\n00:00:00,000 --> 00:00:02,000\nOne.",
		"2\n00:00:02,000 --> 00:00:04,000\nTwo.",
		"not a cue at all",
		"3\n00:00:04,000 --> 00:00:06,000\nThree.",
		"4\n00:00:06,000 --> 00:00:08,000\nFour.",
		"5\n00:00:08,000 --> 00:00:10,500\nFive.",
	}

	cues, issues := srt.Parse(strings.Join(blocks, "\n\n"))
	if len(cues) != 5 {
		t.Fatalf("Parse() returned %d cues, want 5", len(cues))
	}
	if len(issues) != 1 {
		t.Fatalf("Parse() reported %d issues, want 1: %v", len(issues), issues)
	}
	if issues[0].Block != 3 {
		t.Fatalf("issue block = %d, want 3", issues[0].Block)
	}

	wantStarts := []int64{0, 2_000_000, 4_000_000, 6_000_000, 8_000_000}
	for i, cue := range cues {
		if cue.Start != wantStarts[i] {
			t.Fatalf("cue %d start = %d, want %d", i, cue.Start, wantStarts[i])
		}
	}
	if cues[4].End != 10_500_000 {
		t.Fatalf("last cue end = %d, want 10500000", cues[4].End)
	}
}

func TestParseNormalizesPeriodSeparator(t *testing.T) {
	cues, issues := srt.Parse("1\n00:00:01.500 --> 00:00:02.250\nDotted.")
	if len(issues) != 0 {
		t.Fatalf("Parse() reported issues: %v", issues)
	}
	if len(cues) != 1 || cues[0].Start != 1_500_000 || cues[0].End != 2_250_000 {
		t.Fatalf("Parse() = %+v, want one cue 1500000..2250000", cues)
	}
}

func TestParseJoinsMultilineText(t *testing.T) {
	cues, issues := srt.Parse("1\n00:00:00,000 --> 00:00:01,000\nfirst line\nsecond line")
	if len(issues) != 0 {
		t.Fatalf("Parse() reported issues: %v", issues)
	}
	if cues[0].Text != "first line\nsecond line" {
		t.Fatalf("cue text = %q, want joined lines", cues[0].Text)
	}
}

func TestParseHandlesWindowsLineEndings(t *testing.T) {
	content := "1\r\n00:00:00,000 --> 00:00:01,000\r\nCRLF text.\r\n\r\n2\r\n00:00:01,000 --> 00:00:02,000\r\nMore.\r\n"
	cues, issues := srt.Parse(content)
	if len(issues) != 0 {
		t.Fatalf("Parse() reported issues: %v", issues)
	}
	if len(cues) != 2 {
		t.Fatalf("Parse() returned %d cues, want 2", len(cues))
	}
	if cues[0].Text != "CRLF text." {
		t.Fatalf("cue 0 text = %q", cues[0].Text)
	}
}

func TestParseReportsReasonsPerBlock(t *testing.T) {
	tests := []struct {
		name  string
		block string
		want  string
	}{
		{"bad index", "x\n00:00:00,000 --> 00:00:01,000\nText.", "invalid cue index"},
		{"missing arrow", "1\n00:00:00,000 00:00:01,000\nText.", "invalid timing line"},
		{"short timestamp", "1\n00:00 --> 00:00:01,000\nText.", "invalid timestamp"},
		{"reversed cue", "1\n00:00:05,000 --> 00:00:01,000\nText.", "before it starts"},
		{"empty text", "1\n00:00:00,000 --> 00:00:01,000", "want index, timing, text"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cues, issues := srt.Parse(tc.block)
			if len(cues) != 0 {
				t.Fatalf("Parse() returned cues %v for a malformed block", cues)
			}
			if len(issues) != 1 {
				t.Fatalf("Parse() reported %d issues, want 1", len(issues))
			}
			if !strings.Contains(issues[0].Reason, tc.want) {
				t.Fatalf("issue reason = %q, want substring %q", issues[0].Reason, tc.want)
			}
		})
	}
}

func TestParseEmptyContent(t *testing.T) {
	cues, issues := srt.Parse("   \n\n  ")
	if len(cues) != 0 || len(issues) != 0 {
		t.Fatalf("Parse(blank) = %v, %v, want nothing", cues, issues)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "narration.srt")
	if err := os.WriteFile(path, []byte("1\n00:00:00,000 --> 00:00:01,000\nFrom disk.\n"), 0o644); err != nil {
		t.Fatalf("write srt fixture: %v", err)
	}

	cues, issues, err := srt.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() returned error: %v", err)
	}
	if len(cues) != 1 || len(issues) != 0 {
		t.Fatalf("ParseFile() = %v, %v, want one cue", cues, issues)
	}

	if _, _, err := srt.ParseFile(filepath.Join(t.TempDir(), "missing.srt")); err == nil {
		t.Fatal("ParseFile() succeeded on a missing file")
	}
}
