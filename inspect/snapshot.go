package inspect

import (
	"time"

	"hermes-gcs/panel"
)

// Snapshot is a point-in-time capture of the console's geometry state.
type Snapshot struct {
	Timestamp time.Time     `json:"timestamp"`
	Terminal  TerminalInfo  `json:"terminal"`
	Panel     RectInfo      `json:"panel"`
	Icon      RectInfo      `json:"icon"`
	Placement PlacementInfo `json:"placement"`
	Snap      string        `json:"snap"`
	Layout    string        `json:"layout"`
	View      string        `json:"view"`
	Dragging  bool          `json:"dragging"`
}

// TerminalInfo describes the terminal viewport in cells.
type TerminalInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// RectInfo is a JSON-friendly rendering of a panel.Rect.
type RectInfo struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PlacementInfo is the saved anchor in viewport percentages.
type PlacementInfo struct {
	LeftPct float64 `json:"left_pct"`
	TopPct  float64 `json:"top_pct"`
	Saved   bool    `json:"saved"`
}

// NewSnapshot creates a snapshot stamped with the current time.
func NewSnapshot() *Snapshot {
	return &Snapshot{Timestamp: time.Now()}
}

// WithTerminal records the viewport size.
func (s *Snapshot) WithTerminal(width, height int) *Snapshot {
	s.Terminal = TerminalInfo{Width: width, Height: height}
	return s
}

// WithEngine records the engine's geometry state plus the rects currently
// held by the surface.
func (s *Snapshot) WithEngine(e *panel.Engine, panelRect, iconRect panel.Rect) *Snapshot {
	s.Panel = rectInfo(panelRect)
	s.Icon = rectInfo(iconRect)

	leftPct, topPct, ok := e.Placement()
	s.Placement = PlacementInfo{LeftPct: leftPct, TopPct: topPct, Saved: ok}

	s.Snap = e.Snap().String()
	s.View = e.Visibility().String()
	s.Dragging = e.Dragging()
	return s
}

// WithLayout records the adaptive orientation label.
func (s *Snapshot) WithLayout(o panel.Orientation) *Snapshot {
	s.Layout = o.String()
	return s
}

func rectInfo(r panel.Rect) RectInfo {
	return RectInfo{Left: r.Left, Top: r.Top, Width: r.Width, Height: r.Height}
}
