package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type BorderPosition int

const (
	TopLeft BorderPosition = iota
	TopMiddle
	BottomLeft
	BottomRight
)

// borderize wraps content with a rounded border, embedding text in the given
// positions of the top and bottom edges.
func borderize(content string, color lipgloss.TerminalColor, embeddedText map[BorderPosition]string) string {
	if embeddedText == nil {
		embeddedText = make(map[BorderPosition]string)
	}
	var (
		border       = lipgloss.RoundedBorder()
		style        = lipgloss.NewStyle().Foreground(color)
		contentWidth = lipgloss.Width(content)
	)
	buildHorizontalBorder := func(leftText, middleText, rightText, leftCorner, inbetween, rightCorner string) string {
		// Embedded text never overflows the corners.
		leftText = truncateWithTail(leftText, contentWidth)
		remaining := contentWidth - lipgloss.Width(leftText) - lipgloss.Width(middleText) - lipgloss.Width(rightText)
		if remaining < 0 {
			middleText, rightText = "", ""
			remaining = contentWidth - lipgloss.Width(leftText)
		}
		// Middle text is centred, with any surplus going to the right.
		leftFill := remaining / 2
		if middleText == "" {
			leftFill = remaining
		}
		rightFill := remaining - leftFill
		s := leftText +
			style.Render(strings.Repeat(inbetween, leftFill)) +
			middleText +
			style.Render(strings.Repeat(inbetween, rightFill)) +
			rightText
		return style.Render(leftCorner) + s + style.Render(rightCorner)
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		buildHorizontalBorder(embeddedText[TopLeft], embeddedText[TopMiddle], "", border.TopLeft, border.Top, border.TopRight),
		lipgloss.NewStyle().
			BorderForeground(color).
			Border(border, false, true, false, true).Render(content),
		buildHorizontalBorder(embeddedText[BottomLeft], "", embeddedText[BottomRight], border.BottomLeft, border.Bottom, border.BottomRight),
	)
}
