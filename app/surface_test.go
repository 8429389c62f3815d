package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hermes-gcs/panel"
)

func TestConsoleSurfaceReady(t *testing.T) {
	s := newConsoleSurface()
	assert.False(t, s.Ready())

	s.setViewport(80, 0)
	assert.False(t, s.Ready())

	s.setViewport(80, 24)
	assert.True(t, s.Ready())

	w, h := s.ViewportSize()
	assert.Equal(t, 80.0, w)
	assert.Equal(t, 24.0, h)
}

func TestHitTest(t *testing.T) {
	s := newConsoleSurface()
	s.setViewport(120, 40)
	s.SetPanelRect(panel.Rect{Left: 20, Top: 10, Width: 40, Height: 15})
	s.SetIconRect(panel.Rect{Left: 100, Top: 2, Width: 14, Height: 3})
	s.SetPanelShown(true)
	s.SetIconShown(true)

	tests := []struct {
		name string
		x, y int
		want panel.Target
	}{
		{name: "outside everything", x: 0, y: 0, want: panel.TargetNone},
		{name: "panel title region", x: 25, y: 10, want: panel.TargetTitlebar},
		{name: "second title row", x: 25, y: 11, want: panel.TargetTitlebar},
		{name: "minimize control top-right", x: 58, y: 10, want: panel.TargetMinimize},
		{name: "just left of minimize zone", x: 54, y: 10, want: panel.TargetTitlebar},
		{name: "panel body is not draggable", x: 25, y: 15, want: panel.TargetNone},
		{name: "icon", x: 105, y: 3, want: panel.TargetIcon},
		{name: "right edge exclusive", x: 60, y: 10, want: panel.TargetNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.hitTest(tt.x, tt.y))
		})
	}
}

func TestHitTestHiddenElements(t *testing.T) {
	s := newConsoleSurface()
	s.setViewport(120, 40)
	s.SetPanelRect(panel.Rect{Left: 20, Top: 10, Width: 40, Height: 15})
	s.SetIconRect(panel.Rect{Left: 100, Top: 2, Width: 14, Height: 3})

	// icon open: the hidden panel is not a target, the icon is
	s.SetPanelShown(false)
	s.SetIconShown(true)
	assert.Equal(t, panel.TargetNone, s.hitTest(25, 10))
	assert.Equal(t, panel.TargetIcon, s.hitTest(105, 3))

	// panel open: the hidden icon is not a target
	s.SetPanelShown(true)
	s.SetIconShown(false)
	assert.Equal(t, panel.TargetNone, s.hitTest(105, 3))
	assert.Equal(t, panel.TargetTitlebar, s.hitTest(25, 10))
}

func TestHitTestOverlapPrefersPanel(t *testing.T) {
	s := newConsoleSurface()
	s.setViewport(120, 40)
	s.SetPanelRect(panel.Rect{Left: 20, Top: 10, Width: 40, Height: 15})
	s.SetIconRect(panel.Rect{Left: 22, Top: 11, Width: 14, Height: 3})
	s.SetPanelShown(true)
	s.SetIconShown(true)

	assert.Equal(t, panel.TargetTitlebar, s.hitTest(23, 11))
}
