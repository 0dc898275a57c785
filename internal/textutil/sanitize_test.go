package textutil_test

import (
	"testing"

	"draftsmith/internal/textutil"
)

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"morning news", "morning news"},
		{"a/b\\c:d", "a-b-c-d"},
		{"what?<is>|this\"", "whatisthis"},
		{"  padded  ", "padded"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := textutil.SanitizeFileName(tc.in); got != tc.want {
			t.Fatalf("SanitizeFileName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTitleFromPath(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"/tmp/assets/morning_news-ep3.mp3", "Morning News Ep3"},
		{"voiceover.wav", "Voiceover"},
		{"", "Untitled Draft"},
		{"///", "Untitled Draft"},
	}
	for _, tc := range cases {
		if got := textutil.TitleFromPath(tc.in); got != tc.want {
			t.Fatalf("TitleFromPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
