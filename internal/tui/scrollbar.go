package tui

import (
	"math"
	"strings"
)

const (
	ScrollbarWidth = 1

	scrollbarThumb = "█"
	scrollbarTrack = "░"
)

// Scrollbar renders a vertical scrollbar of the given height. A blank column
// is rendered if all the content is visible.
func Scrollbar(height, total, visible, offset int) string {
	if height <= 0 {
		return ""
	}
	if total <= visible {
		return strings.TrimRight(strings.Repeat(" \n", height), "\n")
	}
	ratio := float64(height) / float64(total)
	thumbHeight := max(1, int(math.Round(float64(visible)*ratio)))
	thumbOffset := max(0, min(height-thumbHeight, int(math.Round(float64(offset)*ratio))))

	return strings.TrimRight(
		strings.Repeat(scrollbarTrack+"\n", thumbOffset)+
			strings.Repeat(scrollbarThumb+"\n", thumbHeight)+
			strings.Repeat(scrollbarTrack+"\n", max(0, height-thumbOffset-thumbHeight)),
		"\n",
	)
}
