package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hermes-gcs/keys"
)

var keyStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#655F5F",
	Dark:  "#7F7A7A",
})

var descStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#7A7474",
	Dark:  "#9C9494",
})

var sepStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
	Light: "#DDDADA",
	Dark:  "#3C3C3C",
})

var separator = " • "

// Menu renders the bottom key hint line.
type Menu struct {
	options       []keys.KeyName
	height, width int
}

var defaultMenuOptions = []keys.KeyName{
	keys.KeyMinimize,
	keys.KeyNudgeLeft,
	keys.KeyNudgeRight,
	keys.KeyGrow,
	keys.KeyShrink,
	keys.KeyCopyPlacement,
	keys.KeyQuit,
}

// NewMenu creates the menu with the default options.
func NewMenu() *Menu {
	return &Menu{options: defaultMenuOptions}
}

// SetSize sets the rendered size in cells.
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// String renders the menu line centered in its width.
func (m *Menu) String() string {
	var parts []string
	for i, name := range m.options {
		binding, ok := keys.GlobalKeyBindings[name]
		if !ok {
			continue
		}
		help := binding.Help()
		parts = append(parts, keyStyle.Render(help.Key)+" "+descStyle.Render(help.Desc))
		if i != len(m.options)-1 {
			parts = append(parts, sepStyle.Render(separator))
		}
	}
	line := strings.Join(parts, "")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, line)
}
