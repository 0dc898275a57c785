package stage

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound marks a missing audio file, image directory, or
	// subtitle file. Raised before any output is written.
	ErrInputNotFound = errors.New("input not found")
	// ErrNoAssets marks an empty image pool or an audio track whose
	// duration probes as zero.
	ErrNoAssets = errors.New("no usable assets")
	// ErrSubtitleParse marks a malformed subtitle block. Parsing recovers
	// by skipping the block; the marker appears on per-block issues, not
	// on the overall synthesis result.
	ErrSubtitleParse = errors.New("subtitle parse error")
	// ErrAssetCopy marks a referenced media file that vanished or became
	// unreadable between selection and copy. Fails the whole build.
	ErrAssetCopy = errors.New("asset copy failure")
	// ErrValidation marks a configuration or draft-invariant violation.
	ErrValidation = errors.New("validation error")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "synthesis failure"
	}
	return strings.Join(parts, ": ")
}
