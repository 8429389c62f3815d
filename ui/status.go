package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var statusBarStyle = lipgloss.NewStyle().Foreground(TextMuted)

// StatusBar is the single-row readout at the bottom of the console showing
// the panel's saved placement, snap edge, layout orientation and visibility.
type StatusBar struct {
	width int

	leftPct, topPct float64
	snap            string
	orientation     string
	visibility      string

	notice string
}

// SetSize sets the bar width in cells.
func (s *StatusBar) SetSize(width int) {
	s.width = width
}

// SetPlacement records the saved anchor percentages for display.
func (s *StatusBar) SetPlacement(leftPct, topPct float64) {
	s.leftPct = leftPct
	s.topPct = topPct
}

// SetEngineState records the current snap, orientation, and visibility labels.
func (s *StatusBar) SetEngineState(snap, orientation, visibility string) {
	s.snap = snap
	s.orientation = orientation
	s.visibility = visibility
}

// SetNotice shows a transient message in place of the readout. Empty clears it.
func (s *StatusBar) SetNotice(notice string) {
	s.notice = notice
}

// String renders the bar at its set width.
func (s *StatusBar) String() string {
	if s.width <= 0 {
		return ""
	}
	var line string
	if s.notice != "" {
		line = " " + s.notice
	} else {
		line = fmt.Sprintf(" pos %.1f%%,%.1f%%  snap %s  layout %s  view %s",
			s.leftPct, s.topPct, s.snap, s.orientation, s.visibility)
	}
	return statusBarStyle.Width(s.width).MaxWidth(s.width).Render(line)
}
