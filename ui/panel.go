package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"hermes-gcs/log"
	"hermes-gcs/panel"
)

// Hit-zone geometry shared with the pointer router: the top border plus the
// title row are the drag region, except the minimize control at the title
// row's right end.
const (
	// TitlebarRows is how many rows from the panel's top edge count as the
	// title region.
	TitlebarRows = 2
	// MinimizeZoneWidth is the width of the minimize control measured from
	// the panel's right edge.
	MinimizeZoneWidth = 5
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true)

	minimizeStyle = lipgloss.NewStyle().Foreground(TextSecondary)

	camPlaceholderStyle = lipgloss.NewStyle().
				Foreground(TextMuted).
				Align(lipgloss.Center, lipgloss.Center)

	camModeActive = lipgloss.NewStyle().Foreground(TextPrimary).Bold(true)
	camModeIdle   = lipgloss.NewStyle().Foreground(TextMuted)
)

// buttonColumnWidth is the fixed width of the utility button column in the
// row arrangement.
const buttonColumnWidth = 13

// PanelView renders the floating control panel: titlebar with minimize
// control, camera placeholder with mode labels and D-pad, and the utility
// button cluster arranged per the current orientation.
type PanelView struct {
	width, height int
	orientation   panel.Orientation
	snapPreview   panel.SnapState
	cameraMode    string
}

// NewPanelView creates a panel view with the default camera mode.
func NewPanelView() *PanelView {
	return &PanelView{cameraMode: "RGB"}
}

// SetSize sets the rendered size in cells.
func (p *PanelView) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetOrientation selects the row or column content arrangement.
func (p *PanelView) SetOrientation(o panel.Orientation) {
	if o != p.orientation {
		log.RenderTrace("panel", "orientation -> %s", o)
	}
	p.orientation = o
}

// SetSnapPreview highlights the border edge the panel is about to snap to,
// or clears the highlight for SnapNone.
func (p *PanelView) SetSnapPreview(s panel.SnapState) {
	p.snapPreview = s
}

// String renders the panel.
func (p *PanelView) String() string {
	defer log.GetProfiler().StartRender("panel")()

	if p.width < 4 || p.height < 4 {
		return ""
	}
	innerW := p.width - 2
	innerH := p.height - 2

	title := p.titlebar(innerW)
	content := p.content(innerW, innerH-1)

	frame := PanelBorderStyle().Width(innerW).Height(innerH)
	switch p.snapPreview {
	case panel.SnapLeft:
		frame = frame.BorderLeftForeground(BorderSnap)
	case panel.SnapRight:
		frame = frame.BorderRightForeground(BorderSnap)
	case panel.SnapTop:
		frame = frame.BorderTopForeground(BorderSnap)
	case panel.SnapBottom:
		frame = frame.BorderBottomForeground(BorderSnap)
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (p *PanelView) titlebar(width int) string {
	label := titleStyle.Render("◆ REMOTE CONTROL")
	minimize := minimizeStyle.Render("[ ─ ]")
	gap := width - lipgloss.Width(label) - lipgloss.Width(minimize)
	if gap < 1 {
		return label
	}
	return label + strings.Repeat(" ", gap) + minimize
}

func (p *PanelView) content(width, height int) string {
	if height < 1 {
		return ""
	}
	if p.orientation == panel.OrientationRow {
		camW := width - buttonColumnWidth
		if camW < 1 {
			camW = width
		}
		cam := p.camera(camW, height)
		buttons := buttonColumn(buttonColumnWidth, height)
		return lipgloss.JoinHorizontal(lipgloss.Top, cam, buttons)
	}
	buttons := buttonRow(width)
	camH := height - lipgloss.Height(buttons)
	if camH < 1 {
		camH = 1
	}
	cam := p.camera(width, camH)
	return lipgloss.JoinVertical(lipgloss.Left, cam, buttons)
}

// camera renders the feed placeholder with the mode selector labels and the
// compact D-pad overlaid at the bottom corners.
func (p *PanelView) camera(width, height int) string {
	if height < 3 {
		return camPlaceholderStyle.Width(width).Height(height).Render("NO SIGNAL")
	}

	modes := []string{"RGB", "IR", "THERMAL"}
	var rendered []string
	for _, m := range modes {
		if m == p.cameraMode {
			rendered = append(rendered, camModeActive.Render("["+m+"]"))
		} else {
			rendered = append(rendered, camModeIdle.Render(" "+m+" "))
		}
	}
	modeLine := strings.Join(rendered, " ")

	dpad := TextStyles.Muted.Render("◀ ▲ ▼ ▶")
	bottomGap := width - lipgloss.Width(modeLine) - lipgloss.Width(dpad)
	bottom := modeLine
	if bottomGap > 0 {
		bottom += strings.Repeat(" ", bottomGap) + dpad
	}

	feed := camPlaceholderStyle.Width(width).Height(height - 1).Render("NO SIGNAL")
	return lipgloss.JoinVertical(lipgloss.Left, feed, bottom)
}

var utilityButtons = []struct {
	label string
	color lipgloss.AdaptiveColor
}{
	{"LIGHTS", StatusWarning},
	{"SPEAKER", lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}},
	{"EXTRA", TextSecondary},
}

// buttonColumn stacks the utility buttons in a fixed-width column for the
// row arrangement.
func buttonColumn(width, height int) string {
	var rows []string
	for _, b := range utilityButtons {
		rows = append(rows, ButtonStyle(b.color).Width(width).Render("◈ "+b.label))
	}
	return lipgloss.NewStyle().Width(width).Height(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// buttonRow lays the utility buttons in a full-width row, wrapping when the
// panel is too narrow for all three.
func buttonRow(width int) string {
	var cells []string
	for _, b := range utilityButtons {
		cells = append(cells, ButtonStyle(b.color).Render("◈ "+b.label))
	}
	joined := strings.Join(cells, " ")
	return wordwrap.String(joined, width)
}
