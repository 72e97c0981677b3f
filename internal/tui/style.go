package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

var (
	Regular = lipgloss.NewStyle()
	Bold    = Regular.Bold(true)
	Padded  = Regular.Padding(0, 1)

	width = lipgloss.Width
)

// truncateWithTail shortens s to fit within w cells, ending it with an
// ellipsis. s is returned unchanged if it already fits.
func truncateWithTail(s string, w int) string {
	if width(s) <= w {
		return s
	}
	return truncate.StringWithTail(s, uint(max(0, w)), "…")
}
