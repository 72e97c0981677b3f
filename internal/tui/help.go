package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpHeadingStyle = Bold.Foreground(HelpKey).Margin(0, 3, 0, 0)
	helpKeyStyle     = Bold.Foreground(HelpKey).Margin(0, 1, 0, 0)
	helpDescStyle    = Regular.Foreground(HelpDesc).Margin(0, 3, 0, 0)
)

// helpView renders a column of key bindings per group, each column headed with
// the group's name.
func helpView(groups ...helpGroup) string {
	columns := make([]string, len(groups))
	for i, group := range groups {
		keys := make([]string, len(group.bindings))
		descs := make([]string, len(group.bindings))
		for j, kb := range group.bindings {
			keys[j] = helpKeyStyle.Render(kb.Help().Key)
			descs[j] = helpDescStyle.Render(kb.Help().Desc)
		}
		columns[i] = lipgloss.JoinVertical(lipgloss.Top,
			helpHeadingStyle.Render(group.heading),
			lipgloss.JoinHorizontal(lipgloss.Left,
				strings.Join(keys, "\n"),
				strings.Join(descs, "\n"),
			),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, columns...)
}

type helpGroup struct {
	heading  string
	bindings []key.Binding
}
