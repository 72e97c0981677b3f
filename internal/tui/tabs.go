package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// tabStripHeight is the height of the tab headers and their underline.
const tabStripHeight = 2

var (
	activeTabStyle   = Bold.Foreground(Violet)
	inactiveTabStyle = Regular.Foreground(LighterGrey).Faint(true)
)

// tabStrip renders the tab titles, highlighting the active title. Titles are
// truncated when they don't all fit in the available width.
func tabStrip(titles []string, active, availableWidth int) string {
	var (
		tabHeaders       []string
		tabsHeadersWidth int
		maxTitleWidth    = maxTabTitleWidth(titles, availableWidth)
	)
	for i, title := range titles {
		var (
			headingStyle  lipgloss.Style
			underlineChar string
		)
		if i == active {
			headingStyle = activeTabStyle
			underlineChar = "━"
		} else {
			headingStyle = inactiveTabStyle
			underlineChar = "─"
		}
		title = truncateWithTail(title, maxTitleWidth)
		heading := headingStyle.Padding(0, 1).Render(title)
		underline := headingStyle.Render(strings.Repeat(underlineChar, width(heading)))
		tabHeaders = append(tabHeaders, lipgloss.JoinVertical(lipgloss.Top, heading, underline))
		tabsHeadersWidth += width(heading)
	}

	// Populate remaining space to the right of the tab headers with a faint
	// grey underline.
	remainingWidth := max(0, availableWidth-tabsHeadersWidth)
	tabHeadersFiller := lipgloss.JoinVertical(lipgloss.Top,
		strings.Repeat(" ", remainingWidth),
		inactiveTabStyle.Render(strings.Repeat("─", remainingWidth)),
	)
	tabHeaders = append(tabHeaders, tabHeadersFiller)

	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabHeaders...)
}

// maxTabTitleWidth returns the widest a title may be for all the titles,
// padded, to fit in the available width. Titles are never truncated to less
// than their numeric prefix.
func maxTabTitleWidth(titles []string, availableWidth int) int {
	var (
		total  int
		widest int
	)
	for _, title := range titles {
		w := runewidth.StringWidth(title)
		total += w + 2
		widest = max(widest, w)
	}
	if total <= availableWidth || len(titles) == 0 {
		return widest
	}
	return max(3, availableWidth/len(titles)-2)
}
