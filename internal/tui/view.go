package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabdash/internal/executor"
	"github.com/leg100/tabdash/internal/tui/keys"
)

const footerHeight = 1

var (
	paneTitleStyle  = Bold.Padding(0, 1)
	paneStatusStyle = Regular.Padding(0, 1)
	paneCmdStyle    = Regular.Padding(0, 1).Foreground(Grey)
	footerHelpStyle = Padded.Foreground(HelpDesc)
	footerErrStyle  = Padded.Foreground(Red)
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		// Wait for the terminal dimensions.
		return ""
	}
	var body string
	if m.showHelp {
		body = Regular.
			Padding(1, 1).
			Width(m.width).
			Height(m.paneHeight()).
			MaxHeight(m.paneHeight()).
			Render(helpView(
				helpGroup{heading: "GENERAL", bindings: keys.KeyMapToSlice(keys.Global)},
				helpGroup{heading: "NAVIGATION", bindings: keys.KeyMapToSlice(keys.Navigation)},
			))
	} else {
		body = m.paneView()
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		tabStrip(m.state.Titles(), m.state.Index(), m.width),
		body,
		m.footerView(),
	)
}

// paneView renders the output of the active tab inside a border titled with
// the tab's title and command.
func (m Model) paneView() string {
	var (
		contentWidth  = max(0, m.width-2)
		contentHeight = max(0, m.paneHeight()-2)
		content       string
		status        string
		scroll        string
		color         lipgloss.TerminalColor = ActiveBorder
	)
	if m.running {
		content = Regular.
			Width(contentWidth).
			Height(contentHeight).
			Render(m.spinner.View() + " running " + m.commandLine())
		status = paneStatusStyle.Render("running")
	} else {
		content = lipgloss.JoinHorizontal(lipgloss.Top,
			Regular.
				Width(m.viewport.Width).
				Height(m.viewport.Height).
				MaxHeight(m.viewport.Height).
				Render(m.viewport.View()),
			Scrollbar(
				m.viewport.Height,
				m.viewport.TotalLineCount(),
				m.viewport.VisibleLineCount(),
				m.viewport.YOffset,
			),
		)
		status = paneStatusStyle.Render(resultStatus(m.result))
		if !m.result.Succeeded() {
			color = FailedBorder
			status = paneStatusStyle.Foreground(Red).Render(resultStatus(m.result))
		}
		scroll = paneStatusStyle.Render(fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))
	}
	return borderize(content, color, map[BorderPosition]string{
		TopLeft:     paneTitleStyle.Render(m.state.Active()),
		TopMiddle:   paneCmdStyle.Render(m.commandLine()),
		BottomLeft:  status,
		BottomRight: scroll,
	})
}

// footerView renders the most recent warning or error on the left, and a
// reminder of the help key on the right.
func (m Model) footerView() string {
	help := footerHelpStyle.Render(fmt.Sprintf("%d/%d · ? help · q quit", m.state.Index()+1, m.state.Len()))
	var msg string
	if last, ok := m.logger.Last(slog.LevelWarn); ok {
		msg = footerErrStyle.Render(last.String())
	}
	msgWidth := max(0, m.width-width(help))
	return lipgloss.JoinHorizontal(lipgloss.Top,
		Regular.
			Inline(true).
			MaxWidth(msgWidth).
			Width(msgWidth).
			Render(msg),
		help,
	)
}

func (m Model) commandLine() string {
	spec := m.activeSpec()
	return strings.Join(append([]string{spec.Command}, spec.Args...), " ")
}

func resultStatus(res executor.Result) string {
	return fmt.Sprintf("%s in %s", res.Status, res.Duration.Round(time.Millisecond))
}
