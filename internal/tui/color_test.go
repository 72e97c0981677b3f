package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/tabdash/internal/tab"
	"github.com/stretchr/testify/assert"
)

func TestOutputColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("1"), OutputColor(tab.Red))
	assert.Equal(t, lipgloss.Color("14"), OutputColor(tab.LightCyan))
	assert.Equal(t, lipgloss.Color("15"), OutputColor(tab.White))
	assert.Equal(t, DefaultOutputColor, OutputColor(tab.Default))
	assert.Equal(t, DefaultOutputColor, OutputColor(tab.ParseColor("chartreuse")))
}
