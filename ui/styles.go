package ui

import "github.com/charmbracelet/lipgloss"

// Semantic Color Palette
// Mirrors the operator console theme: dark chrome, green accent.

// Status colors - link/battery/sensor readouts
var (
	// StatusNominal indicates a healthy reading
	StatusNominal = lipgloss.AdaptiveColor{Light: "#22C55E", Dark: "#22C55E"}

	// StatusWarning indicates a reading that needs attention
	StatusWarning = lipgloss.AdaptiveColor{Light: "#F59E0B", Dark: "#F59E0B"}

	// StatusCritical indicates a failed link or sensor
	StatusCritical = lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#EF4444"}
)

// UI chrome colors - structural elements
var (
	// Accent is the console's primary accent color
	Accent = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#00FF88"}

	// Border is the default border color
	Border = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3C3C3C"}

	// BorderSnap is the border color for an edge about to snap
	BorderSnap = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#00FF88"}

	// TextPrimary is the main text color
	TextPrimary = lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#dddddd"}

	// TextSecondary is for labels and descriptions
	TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#9CA3AF"}

	// TextMuted is for hints and subtle text
	TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}

	// BackgroundSubtle is for panel interiors
	BackgroundSubtle = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#2a2a2a"}
)

// TextStyles contains pre-built styles for text elements
var TextStyles = struct {
	Primary   lipgloss.Style
	Secondary lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
}{
	Primary:   lipgloss.NewStyle().Foreground(TextPrimary),
	Secondary: lipgloss.NewStyle().Foreground(TextSecondary),
	Muted:     lipgloss.NewStyle().Foreground(TextMuted),
	Accent:    lipgloss.NewStyle().Foreground(Accent),
}

// StatusStyles contains pre-built styles for telemetry readouts
var StatusStyles = struct {
	Nominal  lipgloss.Style
	Warning  lipgloss.Style
	Critical lipgloss.Style
}{
	Nominal:  lipgloss.NewStyle().Foreground(StatusNominal),
	Warning:  lipgloss.NewStyle().Foreground(StatusWarning),
	Critical: lipgloss.NewStyle().Foreground(StatusCritical),
}

// PanelBorderStyle is the floating panel's frame.
func PanelBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent)
}

// IconBorderStyle is the companion icon's frame.
func IconBorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent)
}

// ButtonStyle renders a utility button label.
func ButtonStyle(color lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(color).
		Padding(0, 1)
}
