package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hermes-gcs/log"
)

// Minimum terminal size below which the console shows a warning instead of
// pretending the layout still works.
const (
	MinWidth  = 60
	MinHeight = 16
)

var (
	backdropTitleStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	backdropRuleStyle  = lipgloss.NewStyle().Foreground(Border)
	warnStyle          = lipgloss.NewStyle().Foreground(StatusWarning).Bold(true)
)

// Backdrop renders the console background the floating panel moves over:
// title bar, telemetry summary, and the empty map region.
type Backdrop struct {
	width, height int
	robotName     string
}

// NewBackdrop creates the backdrop for the named robot.
func NewBackdrop(robotName string) *Backdrop {
	return &Backdrop{robotName: robotName}
}

// SetSize sets the rendered size in cells.
func (b *Backdrop) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// String renders the backdrop at its full size.
func (b *Backdrop) String() string {
	defer log.GetProfiler().StartRender("backdrop")()

	if b.width <= 0 || b.height <= 0 {
		return ""
	}
	if b.width < MinWidth || b.height < MinHeight {
		return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center,
			warnStyle.Render(fmt.Sprintf("Terminal too small (need %dx%d)", MinWidth, MinHeight)))
	}

	title := backdropTitleStyle.Render(" HERMES GCS ") +
		TextStyles.Secondary.Render("· "+b.robotName)
	rule := backdropRuleStyle.Render(strings.Repeat("─", b.width))

	// Static placeholders: the real telemetry/MQTT services live outside
	// this console core.
	telemetry := "  " + strings.Join([]string{
		StatusStyles.Nominal.Render("LINK OK"),
		TextStyles.Secondary.Render("BATT 87%"),
		TextStyles.Secondary.Render("CO2 412ppm"),
		TextStyles.Secondary.Render("TEMP 23.4C"),
	}, TextStyles.Muted.Render("  •  "))

	body := lipgloss.JoinVertical(lipgloss.Left, title, rule, telemetry)
	return lipgloss.Place(b.width, b.height, lipgloss.Left, lipgloss.Top, body)
}
