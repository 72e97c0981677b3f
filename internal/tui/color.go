package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabdash/internal/tab"
)

const (
	Black       = lipgloss.Color("#000000")
	Red         = lipgloss.Color("#FF5353")
	Violet      = lipgloss.Color("13")
	Grey        = lipgloss.Color("#737373")
	LighterGrey = lipgloss.Color("250")
	DarkGrey    = lipgloss.Color("#606362")
)

var (
	ActiveBorder = lipgloss.AdaptiveColor{
		Dark:  "6",
		Light: "6",
	}
	FailedBorder = Red

	HelpKey = lipgloss.AdaptiveColor{
		Light: "#909090",
		Dark:  "#626262",
	}
	HelpDesc = lipgloss.AdaptiveColor{
		Light: "#B2B2B2",
		Dark:  "#4A4A4A",
	}
)

// DefaultOutputColor is used for tabs without a recognized color.
const DefaultOutputColor = lipgloss.Color("3")

// outputColors maps tab colors onto the 16 standard ANSI colors.
var outputColors = map[tab.Color]lipgloss.Color{
	tab.Black:        lipgloss.Color("0"),
	tab.Red:          lipgloss.Color("1"),
	tab.Green:        lipgloss.Color("2"),
	tab.Blue:         lipgloss.Color("4"),
	tab.Magenta:      lipgloss.Color("5"),
	tab.Cyan:         lipgloss.Color("6"),
	tab.Gray:         lipgloss.Color("7"),
	tab.DarkGray:     lipgloss.Color("8"),
	tab.LightRed:     lipgloss.Color("9"),
	tab.LightGreen:   lipgloss.Color("10"),
	tab.LightYellow:  lipgloss.Color("11"),
	tab.LightBlue:    lipgloss.Color("12"),
	tab.LightMagenta: lipgloss.Color("13"),
	tab.LightCyan:    lipgloss.Color("14"),
	tab.White:        lipgloss.Color("15"),
}

// OutputColor returns the color in which to render a tab's output.
func OutputColor(c tab.Color) lipgloss.Color {
	if color, ok := outputColors[c]; ok {
		return color
	}
	return DefaultOutputColor
}
