package app

import (
	"hermes-gcs/panel"
	"hermes-gcs/ui"
)

// consoleSurface adapts the terminal to panel.Surface. All geometry is in
// cells, stored as float64 so the engine's percent math stays exact across
// resizes.
type consoleSurface struct {
	viewportW, viewportH float64

	panelRect panel.Rect
	iconRect  panel.Rect

	panelShown bool
	iconShown  bool

	effectsSuspended bool
	snapPreview      panel.SnapState
	orientation      panel.Orientation
}

func newConsoleSurface() *consoleSurface {
	return &consoleSurface{}
}

func (s *consoleSurface) setViewport(width, height int) {
	s.viewportW = float64(width)
	s.viewportH = float64(height)
}

func (s *consoleSurface) Ready() bool {
	return s.viewportW > 0 && s.viewportH > 0
}

func (s *consoleSurface) ViewportSize() (float64, float64) {
	return s.viewportW, s.viewportH
}

func (s *consoleSurface) PanelRect() panel.Rect {
	return s.panelRect
}

func (s *consoleSurface) SetPanelRect(r panel.Rect) {
	s.panelRect = r
}

func (s *consoleSurface) SetIconRect(r panel.Rect) {
	s.iconRect = r
}

func (s *consoleSurface) SetPanelShown(shown bool) {
	s.panelShown = shown
}

func (s *consoleSurface) SetIconShown(shown bool) {
	s.iconShown = shown
}

func (s *consoleSurface) SetEffectsSuspended(suspended bool) {
	s.effectsSuspended = suspended
}

func (s *consoleSurface) SetSnapPreview(snap panel.SnapState) {
	s.snapPreview = snap
}

func (s *consoleSurface) SetOrientation(o panel.Orientation) {
	s.orientation = o
}

// hitTest maps a terminal cell to the drag target under it. Hidden elements
// are never hit.
func (s *consoleSurface) hitTest(x, y int) panel.Target {
	fx, fy := float64(x), float64(y)
	if s.panelShown && contains(s.panelRect, fx, fy) {
		if fy < s.panelRect.Top+float64(ui.TitlebarRows) {
			if fx >= s.panelRect.Right()-float64(ui.MinimizeZoneWidth) {
				return panel.TargetMinimize
			}
			return panel.TargetTitlebar
		}
		return panel.TargetNone
	}
	if s.iconShown && contains(s.iconRect, fx, fy) {
		return panel.TargetIcon
	}
	return panel.TargetNone
}

func contains(r panel.Rect, x, y float64) bool {
	return x >= r.Left && x < r.Right() && y >= r.Top && y < r.Bottom()
}
