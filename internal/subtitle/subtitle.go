// Package subtitle holds the transcript seam between the caller and the
// generation pipeline. Decoding subtitle container formats is the caller's
// collaborator; this package only assembles and times already-extracted
// cues.
package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cue is one transcript record the caller extracted from a subtitle file.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// JoinText flattens cues into the newline-joined transcript the generation
// pipeline consumes. Cues with empty text are skipped.
func JoinText(cues []Cue) string {
	lines := make([]string, 0, len(cues))
	for _, cue := range cues {
		text := strings.TrimSpace(cue.Text)
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// ParseTimestamp converts an HH:MM:SS string into a duration.
func ParseTimestamp(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("subtitle: timestamp %q is not HH:MM:SS", s)
	}
	var total time.Duration
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("subtitle: timestamp %q is not HH:MM:SS", s)
		}
		total = total*60 + time.Duration(n)
	}
	return total * time.Second, nil
}

// FormatTimestamp renders a duration as HH:MM:SS, clamping negatives to
// zero.
func FormatTimestamp(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
