package ui

import (
	"github.com/charmbracelet/lipgloss"

	"hermes-gcs/log"
)

// IconView renders the minimized companion icon: a small bordered badge the
// operator clicks to reopen the panel, or drags to move it.
type IconView struct {
	width, height int
}

// NewIconView creates an icon view.
func NewIconView() *IconView {
	return &IconView{}
}

// SetSize sets the rendered size in cells.
func (v *IconView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// String renders the icon.
func (v *IconView) String() string {
	defer log.GetProfiler().StartRender("icon")()

	if v.width < 4 || v.height < 3 {
		return ""
	}
	label := TextStyles.Accent.Render("◆ CTRL")
	return IconBorderStyle().
		Width(v.width - 2).
		Height(v.height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(label)
}
