// Package preview computes the right-click overlay: which lines to show, how
// large the overlay is and where it sits above the taskbar.
package preview

import (
	"github.com/filerelay/filerelay-dock/internal/model"
)

// Labels supplies the localized fixed texts.
type Labels struct {
	Empty string
	More  func(remaining int) string
}

// Content is the composed overlay text.
type Content struct {
	Lines     []string
	Remaining int // entries summarized by the last line, 0 when none
}

// Compose lists entry labels in order, capped at maxLines. When the entries do
// not fit, exactly maxLines-1 names are listed and the last line summarizes
// the rest. maxLines below 1 is treated as 1.
func Compose(entries []model.FileEntry, maxLines int, labels Labels) Content {
	if len(entries) == 0 {
		return Content{Lines: []string{labels.Empty}}
	}
	if maxLines < 1 {
		maxLines = 1
	}

	truncated := len(entries) > maxLines
	names := maxLines
	if truncated {
		names = maxLines - 1
	}

	lines := make([]string, 0, maxLines)
	for _, e := range entries {
		if len(lines) >= names {
			break
		}
		label := e.Label()
		if label == "" {
			continue
		}
		lines = append(lines, label)
	}

	c := Content{Lines: lines}
	if truncated {
		c.Remaining = len(entries) - len(lines)
		c.Lines = append(c.Lines, labels.More(c.Remaining))
	}
	if len(c.Lines) == 0 {
		c.Lines = []string{labels.Empty}
	}
	return c
}
