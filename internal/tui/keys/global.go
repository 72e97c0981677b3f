package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Quit    key.Binding
	Refresh key.Binding
	Help    key.Binding
}

var Global = global{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "re-run"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
}
