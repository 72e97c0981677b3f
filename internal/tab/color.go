package tab

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is the color in which a tab's output is rendered.
type Color string

// Default is used when a tab has no color or an unrecognized color.
const Default Color = ""

const (
	Black        Color = "black"
	Red          Color = "red"
	Green        Color = "green"
	Blue         Color = "blue"
	Magenta      Color = "magenta"
	Cyan         Color = "cyan"
	Gray         Color = "gray"
	DarkGray     Color = "darkgray"
	LightRed     Color = "lightred"
	LightGreen   Color = "lightgreen"
	LightYellow  Color = "lightyellow"
	LightBlue    Color = "lightblue"
	LightMagenta Color = "lightmagenta"
	LightCyan    Color = "lightcyan"
	White        Color = "white"
)

var colors = map[Color]struct{}{
	Black:        {},
	Red:          {},
	Green:        {},
	Blue:         {},
	Magenta:      {},
	Cyan:         {},
	Gray:         {},
	DarkGray:     {},
	LightRed:     {},
	LightGreen:   {},
	LightYellow:  {},
	LightBlue:    {},
	LightMagenta: {},
	LightCyan:    {},
	White:        {},
}

// ParseColor maps a color name to a Color. Names are case-insensitive; an
// unrecognized name maps to Default.
func ParseColor(name string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := colors[c]; ok {
		return c
	}
	return Default
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	*c = ParseColor(s)
	return nil
}
