package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// wireFontSize converts a point size into the em-based font size the editor
// renders from. text_size carries the raw point value separately.
func wireFontSize(size int) float64 {
	return float64(size) / 6.0
}

// colorComponents parses a #RRGGBB color into unit-range components.
// Malformed values fall back to white.
func colorComponents(hex string) (r, g, b float64) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return 1, 1, 1
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 1, 1, 1
	}
	return float64(v >> 16 & 0xFF) / 255, float64(v >> 8 & 0xFF) / 255, float64(v & 0xFF) / 255
}

// richTextContent renders the font-wrapped markup the editor expects in a
// text material's content field. Newlines become the editor's U+0001 separator.
func richTextContent(t Text) string {
	r, g, b := colorComponents(t.Color)
	body := strings.ReplaceAll(t.Content, "\n", "\u0001")
	return fmt.Sprintf(
		"<font id=\"%s\" path=\"%s\"><color=(%f, %f, %f, 1.000000)><size=%f>%s</size></color></font>",
		uuid.NewString(), t.FontPath, r, g, b, wireFontSize(t.Size), body,
	)
}
