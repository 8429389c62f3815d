package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSurface records every write the engine performs so tests can assert
// on ordering-sensitive behavior without a renderer.
type fakeSurface struct {
	ready  bool
	vw, vh float64

	panelRect Rect
	iconRect  Rect

	panelShown       bool
	iconShown        bool
	effectsSuspended bool
	snapPreview      SnapState
	orientation      Orientation

	panelRectWrites int
}

func (s *fakeSurface) Ready() bool                     { return s.ready }
func (s *fakeSurface) ViewportSize() (float64, float64) { return s.vw, s.vh }
func (s *fakeSurface) PanelRect() Rect                 { return s.panelRect }
func (s *fakeSurface) SetPanelRect(r Rect)             { s.panelRect = r; s.panelRectWrites++ }
func (s *fakeSurface) SetIconRect(r Rect)              { s.iconRect = r }
func (s *fakeSurface) SetPanelShown(shown bool)        { s.panelShown = shown }
func (s *fakeSurface) SetIconShown(shown bool)         { s.iconShown = shown }
func (s *fakeSurface) SetEffectsSuspended(v bool)      { s.effectsSuspended = v }
func (s *fakeSurface) SetSnapPreview(v SnapState)      { s.snapPreview = v }
func (s *fakeSurface) SetOrientation(o Orientation)    { s.orientation = o }

type fakeScheduler struct {
	requests int
}

func (f *fakeScheduler) RequestFrame() { f.requests++ }

func newTestEngine(vw, vh float64) (*Engine, *fakeSurface, *fakeScheduler) {
	surface := &fakeSurface{ready: true, vw: vw, vh: vh}
	scheduler := &fakeScheduler{}
	engine := New(surface, scheduler, Options{})
	return engine, surface, scheduler
}

func TestInitializeFirstPlacement(t *testing.T) {
	engine, surface, _ := newTestEngine(2100, 1000)

	require.True(t, engine.Initialize())
	assert.True(t, engine.Initialized())

	// bottom-right with the default 20 margin and 480x320 panel
	assert.Equal(t, Rect{Left: 1600, Top: 660, Width: 480, Height: 320}, surface.panelRect)

	// placement committed immediately
	leftPct, topPct, ok := engine.Placement()
	require.True(t, ok)
	assert.InDelta(t, 1600.0/2100*100, leftPct, 1e-9)
	assert.InDelta(t, 66, topPct, 1e-9)

	// icon docked top-right, initial visibility is icon-open
	assert.Equal(t, Rect{Left: 2020, Top: 660, Width: 60, Height: 60}, surface.iconRect)
	assert.False(t, surface.panelShown)
	assert.True(t, surface.iconShown)
	assert.Equal(t, IconOpen, engine.Visibility())
	assert.Equal(t, OrientationRow, surface.orientation)
}

func TestInitializeRetriesUntilReady(t *testing.T) {
	engine, surface, _ := newTestEngine(0, 0)
	surface.ready = false

	assert.False(t, engine.Initialize())
	assert.False(t, engine.Initialized())

	surface.ready = true
	surface.vw, surface.vh = 1920, 1080
	assert.True(t, engine.Initialize())
	assert.True(t, engine.Initialized())
}

func TestInitializeIdempotent(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	writes := surface.panelRectWrites

	assert.True(t, engine.Initialize())
	assert.Equal(t, writes, surface.panelRectWrites)
}

func TestEventsBeforeInitializeIgnored(t *testing.T) {
	engine, surface, scheduler := newTestEngine(1920, 1080)

	engine.PointerDown(10, 10, TargetTitlebar)
	engine.PointerMove(50, 50)
	engine.ToggleVisibility()
	engine.Nudge(5, 0)

	assert.False(t, engine.Dragging())
	assert.Zero(t, scheduler.requests)
	assert.Zero(t, surface.panelRectWrites)
}

func TestDragLifecycle(t *testing.T) {
	engine, surface, scheduler := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	engine.ToggleVisibility() // open the panel
	start := surface.panelRect

	engine.PointerDown(start.Left+10, start.Top+2, TargetTitlebar)
	assert.True(t, engine.Dragging())
	assert.Equal(t, TargetTitlebar, engine.DragTarget())
	assert.True(t, surface.effectsSuspended)

	// three samples inside one frame window coalesce to one frame request
	engine.PointerMove(start.Left-100, start.Top+2)
	engine.PointerMove(start.Left-200, start.Top+2)
	engine.PointerMove(start.Left-290, start.Top-48)
	assert.Equal(t, 1, scheduler.requests)

	engine.Frame()
	assert.True(t, engine.DragMoved())
	// newest sample wins: delta is (-300, -50) from the origin rect
	assert.InDelta(t, start.Left-300, surface.panelRect.Left, 1e-9)
	assert.InDelta(t, start.Top-50, surface.panelRect.Top, 1e-9)

	// next sample after the frame requests a new one
	engine.PointerMove(start.Left-310, start.Top-48)
	assert.Equal(t, 2, scheduler.requests)
	engine.Frame()

	before := surface.panelRect
	engine.PointerUp()
	assert.False(t, engine.Dragging())
	assert.False(t, surface.effectsSuspended)
	assert.Equal(t, SnapNone, surface.snapPreview)

	// final rect committed to the store
	leftPct, topPct, ok := engine.Placement()
	require.True(t, ok)
	wantLeft, wantTop := ToPercent(before.Left, before.Top, 1920, 1080)
	assert.InDelta(t, wantLeft, leftPct, 1e-9)
	assert.InDelta(t, wantTop, topPct, 1e-9)

	// duplicate release is a no-op
	engine.PointerUp()
	assert.False(t, engine.Dragging())
}

func TestDragSnapPreviewAndState(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	engine.ToggleVisibility()
	// pull away from the bottom edge so only the right edge qualifies
	engine.Nudge(0, -100)
	start := surface.panelRect

	engine.PointerDown(start.Left, start.Top, TargetTitlebar)
	// move so the right edge lands within the threshold
	engine.PointerMove(start.Left+(1920-start.Right()-10), start.Top)
	engine.Frame()

	assert.Equal(t, SnapRight, engine.Snap())
	assert.Equal(t, SnapRight, surface.snapPreview)
	// forced flush against the right edge
	assert.InDelta(t, 1920-start.Width, surface.panelRect.Left, 1e-9)
	// icon follows the panel within the same frame
	assert.InDelta(t, 1920-60, surface.iconRect.Left, 1e-9)

	engine.PointerUp()
	assert.Equal(t, SnapNone, surface.snapPreview)
	// snap state survives the drag end; only a new evaluation resets it
	assert.Equal(t, SnapRight, engine.Snap())
}

func TestPointerDownTargetsFiltered(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	engine.PointerDown(10, 10, TargetMinimize)
	assert.False(t, engine.Dragging())
	engine.PointerDown(10, 10, TargetNone)
	assert.False(t, engine.Dragging())
	assert.False(t, surface.effectsSuspended)

	engine.PointerDown(10, 10, TargetIcon)
	assert.True(t, engine.Dragging())

	// second press during an active session is ignored
	engine.PointerDown(500, 500, TargetTitlebar)
	assert.Equal(t, TargetIcon, engine.DragTarget())
}

func TestIconClickWithoutMotion(t *testing.T) {
	engine, _, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	engine.PointerDown(1850, 700, TargetIcon)
	engine.PointerUp()
	assert.False(t, engine.DragMoved())
}

func TestFrameWithoutSampleDoesNothing(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	writes := surface.panelRectWrites

	engine.PointerDown(100, 100, TargetTitlebar)
	engine.Frame()
	assert.Equal(t, writes, surface.panelRectWrites)
}

func TestSettleResize(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	// initial anchor sits near the bottom-right of 1920x1080
	surface.vw, surface.vh = 1280, 800
	gen := engine.ViewportResized()
	engine.SettleResize(gen)

	// restore puts the panel at 83.33%,61.11%; clamp pulls it back inside
	assert.InDelta(t, 1280-480, surface.panelRect.Left, 1e-9)
	assert.InDelta(t, 480, surface.panelRect.Top, 1e-9)

	// the clamped position is re-saved so it cannot drift
	leftPct, topPct, ok := engine.Placement()
	require.True(t, ok)
	assert.InDelta(t, 800.0/1280*100, leftPct, 1e-9)
	assert.InDelta(t, 60, topPct, 1e-9)

	// the panel landed flush right, so the snap label follows
	assert.Equal(t, SnapRight, engine.Snap())
	assert.InDelta(t, 1280-60, surface.iconRect.Left, 1e-9)
}

func TestSettleResizeStaleTokenIgnored(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	writes := surface.panelRectWrites

	stale := engine.ViewportResized()
	_ = engine.ViewportResized() // a newer resize supersedes

	surface.vw, surface.vh = 800, 600
	engine.SettleResize(stale)
	assert.Equal(t, writes, surface.panelRectWrites)
}

func TestToggleVisibilityAtomicAndExclusive(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	assert.False(t, surface.panelShown)
	assert.True(t, surface.iconShown)

	engine.ToggleVisibility()
	assert.Equal(t, PanelOpen, engine.Visibility())
	assert.True(t, surface.panelShown)
	assert.False(t, surface.iconShown)

	engine.ToggleVisibility()
	assert.Equal(t, IconOpen, engine.Visibility())
	assert.False(t, surface.panelShown)
	assert.True(t, surface.iconShown)
}

func TestNudgeClampsAndCommits(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	// default placement is already flush near the bottom-right margin;
	// nudging further right clamps at the edge
	engine.Nudge(100, 0)
	assert.InDelta(t, 1920-480, surface.panelRect.Left, 1e-9)

	engine.Nudge(-10, -10)
	assert.InDelta(t, 1920-480-10, surface.panelRect.Left, 1e-9)

	leftPct, _, ok := engine.Placement()
	require.True(t, ok)
	assert.InDelta(t, (1920.0-490)/1920*100, leftPct, 1e-9)
}

func TestNudgeIgnoredDuringDrag(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())
	engine.PointerDown(100, 100, TargetTitlebar)
	before := surface.panelRect

	engine.Nudge(10, 10)
	assert.Equal(t, before, surface.panelRect)
}

func TestResizePanelBounds(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	// shrink far below the minimum: clamped to 250x180
	engine.ResizePanel(-1000, -1000)
	assert.InDelta(t, 250, surface.panelRect.Width, 1e-9)
	assert.InDelta(t, 180, surface.panelRect.Height, 1e-9)

	// growing past the viewport caps at the viewport size
	engine.ResizePanel(5000, 5000)
	assert.InDelta(t, 1920, surface.panelRect.Width, 1e-9)
	assert.InDelta(t, 1080, surface.panelRect.Height, 1e-9)
	assert.InDelta(t, 0, surface.panelRect.Left, 1e-9)
	assert.InDelta(t, 0, surface.panelRect.Top, 1e-9)

	// orientation re-derived from the new size
	assert.Equal(t, OrientationRow, surface.orientation)
}

func TestSetSnapThreshold(t *testing.T) {
	engine, surface, _ := newTestEngine(1920, 1080)
	require.True(t, engine.Initialize())

	engine.SetSnapThreshold(100)
	// clear of the enlarged bottom threshold
	engine.Nudge(0, -300)
	start := surface.panelRect

	engine.PointerDown(start.Left, start.Top, TargetTitlebar)
	// 80 from the right edge: outside the default 30, inside 100
	engine.PointerMove(start.Left+(1920-start.Right()-80), start.Top)
	engine.Frame()
	assert.Equal(t, SnapRight, engine.Snap())

	// non-positive values are ignored
	engine.SetSnapThreshold(0)
	engine.SetSnapThreshold(-5)
	engine.PointerMove(start.Left+(1920-start.Right()-80), start.Top+1)
	engine.Frame()
	assert.Equal(t, SnapRight, engine.Snap())
}
