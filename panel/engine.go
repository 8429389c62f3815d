package panel

import (
	"hermes-gcs/log"
)

// Surface is the host rendering surface the engine manipulates. The engine
// is the only writer of panel/icon geometry on the surface; it never reads
// measured layout back, so the whole geometry model stays testable without
// a real renderer.
type Surface interface {
	// Ready reports whether the host elements exist and the viewport has a
	// positive size. Initialization retries until this is true.
	Ready() bool
	ViewportSize() (w, h float64)

	PanelRect() Rect
	SetPanelRect(Rect)
	SetIconRect(Rect)

	// SetPanelShown and SetIconShown toggle opacity and interactivity
	// together; a hidden element must not remain a pointer target.
	SetPanelShown(bool)
	SetIconShown(bool)

	// SetEffectsSuspended pauses ambient position/opacity transitions on
	// both elements so drag relocation is instantaneous.
	SetEffectsSuspended(bool)
	// SetSnapPreview shows or clears the visual marker for an imminent
	// edge snap during a drag.
	SetSnapPreview(SnapState)
	SetOrientation(Orientation)
}

// FrameScheduler schedules a single Engine.Frame callback on the next
// animation frame. RequestFrame has enqueue-if-absent semantics: the engine
// asks at most once per frame window.
type FrameScheduler interface {
	RequestFrame()
}

// Options carries the engine's tuning values. Zero fields fall back to the
// dashboard defaults, which the package tests exercise verbatim.
type Options struct {
	// SnapThreshold is the edge-snap distance. Defaults to 30.
	SnapThreshold float64
	// EdgeMargin is the gap left between the panel and the viewport edges
	// at first placement. Defaults to 20.
	EdgeMargin float64
	// PanelWidth and PanelHeight size the panel at first placement.
	// Defaults: 480 by 320.
	PanelWidth  float64
	PanelHeight float64
	// IconWidth and IconHeight are the fixed companion icon dimensions.
	// Defaults: 60 by 60.
	IconWidth  float64
	IconHeight float64
	// TitlebarHeight is subtracted from the panel height when computing the
	// content aspect ratio. Defaults to 40.
	TitlebarHeight float64
	// MinPanelWidth and MinPanelHeight bound keyboard resizing.
	// Defaults: 250 by 180.
	MinPanelWidth  float64
	MinPanelHeight float64
}

func (o Options) withDefaults() Options {
	if o.SnapThreshold <= 0 {
		o.SnapThreshold = 30
	}
	if o.EdgeMargin <= 0 {
		o.EdgeMargin = 20
	}
	if o.PanelWidth <= 0 {
		o.PanelWidth = 480
	}
	if o.PanelHeight <= 0 {
		o.PanelHeight = 320
	}
	if o.IconWidth <= 0 {
		o.IconWidth = 60
	}
	if o.IconHeight <= 0 {
		o.IconHeight = 60
	}
	if o.TitlebarHeight <= 0 {
		o.TitlebarHeight = 40
	}
	if o.MinPanelWidth <= 0 {
		o.MinPanelWidth = 250
	}
	if o.MinPanelHeight <= 0 {
		o.MinPanelHeight = 180
	}
	return o
}

// Engine owns one floating panel and its companion icon on a Surface. All
// methods must be called from the host's single event loop; the engine has
// no internal synchronization because the host model guarantees no two
// callbacks race.
type Engine struct {
	surface   Surface
	scheduler FrameScheduler
	opts      Options

	store    PositionStore
	resolver Resolver

	initialized bool
	visibility  Visibility
	snap        SnapState

	// drag session, valid while dragActive
	dragActive     bool
	dragTarget     Target
	dragOriginX    float64
	dragOriginY    float64
	dragOriginRect Rect
	dragMoved      bool

	// latest pending pointer sample, coalesced per frame
	sampleX      float64
	sampleY      float64
	hasSample    bool
	framePending bool

	resize Debouncer
}

// New creates an engine for one panel. Call Initialize once the surface is
// ready; until then the engine ignores events.
func New(surface Surface, scheduler FrameScheduler, opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		surface:    surface,
		scheduler:  scheduler,
		opts:       opts,
		resolver:   Resolver{Threshold: opts.SnapThreshold},
		visibility: IconOpen,
	}
}

// Initialize places the panel and icon and applies the initial visibility.
// It reports whether the engine is initialized, returning false while the
// surface is not ready so the host can retry after a short delay instead of
// failing. Re-invocation after a successful run is a no-op.
func (e *Engine) Initialize() bool {
	if e.initialized {
		return true
	}
	if e.surface == nil || !e.surface.Ready() {
		return false
	}
	vw, vh := e.surface.ViewportSize()
	if vw <= 0 || vh <= 0 {
		return false
	}

	r := Rect{Width: e.opts.PanelWidth, Height: e.opts.PanelHeight}
	if left, top, ok := e.store.Restore(vw, vh); ok {
		r.Left, r.Top = left, top
	} else {
		// First placement: bottom-right with the configured edge margin.
		r.Left = vw - r.Width - e.opts.EdgeMargin
		r.Top = vh - r.Height - e.opts.EdgeMargin
	}
	r, _ = Clamp(r, vw, vh)
	e.store.Save(r, vw, vh)
	e.surface.SetPanelRect(r)
	e.syncIcon(r)
	e.surface.SetOrientation(OrientationFor(r.Width, r.Height, e.opts.TitlebarHeight))
	e.applyVisibility()
	e.initialized = true
	log.LayoutTrace("engine initialized: rect=%+v viewport=%.0fx%.0f", r, vw, vh)
	return true
}

// Initialized reports whether Initialize has completed.
func (e *Engine) Initialized() bool {
	return e.initialized
}

// Snap reports the current snap state. It changes only through a drag
// frame's evaluation or the resize settle's consistency check, never
// implicitly.
func (e *Engine) Snap() SnapState {
	return e.snap
}

// Placement reports the stored viewport-relative position.
func (e *Engine) Placement() (leftPct, topPct float64, ok bool) {
	return e.store.Percent()
}

// SetSnapThreshold applies a new edge-snap distance, e.g. after a config
// reload. Takes effect from the next snap evaluation.
func (e *Engine) SetSnapThreshold(t float64) {
	if t <= 0 {
		return
	}
	e.resolver.Threshold = t
}

// ViewportResized notes a viewport resize and returns the debounce token
// the host must hand back via SettleResize after the settle delay. Each new
// resize supersedes the pending one, so only the trailing event of a burst
// is processed.
func (e *Engine) ViewportResized() uint64 {
	return e.resize.Arm()
}

// SettleResize replays the stored position against the new viewport:
// restore first to preserve relative placement intent, clamp second to
// guarantee visibility, re-save third so the store tracks any correction
// and cannot drift across repeated resizes, then resync the icon and
// orientation. Stale tokens are ignored.
func (e *Engine) SettleResize(gen uint64) {
	if !e.resize.Current(gen) || !e.initialized {
		return
	}
	vw, vh := e.surface.ViewportSize()
	if vw <= 0 || vh <= 0 {
		return
	}
	cur := e.surface.PanelRect()
	left, top, ok := e.store.Restore(vw, vh)
	if !ok {
		return
	}
	r := Rect{Left: left, Top: top, Width: cur.Width, Height: cur.Height}
	r, adjusted := Clamp(r, vw, vh)
	e.surface.SetPanelRect(r)
	e.store.Save(r, vw, vh)
	// the old snap label may not describe the new viewport; re-derive it
	// before the icon sync that depends on it
	e.snap = e.resolver.Detect(r, vw, vh)
	e.syncIcon(r)
	e.surface.SetOrientation(OrientationFor(r.Width, r.Height, e.opts.TitlebarHeight))
	if adjusted {
		log.LayoutTrace("resize settle clamped panel to %+v", r)
	}
}

// PanelSizeChanged re-derives the content orientation and icon placement
// after the panel's own rendered size changed, e.g. content reflow or a
// keyboard resize. Decoupled from drag and viewport resize on purpose.
func (e *Engine) PanelSizeChanged() {
	if !e.initialized {
		return
	}
	r := e.surface.PanelRect()
	e.surface.SetOrientation(OrientationFor(r.Width, r.Height, e.opts.TitlebarHeight))
	e.syncIcon(r)
}

// Nudge relocates the panel by a fixed keyboard step, clamped to the
// viewport, and commits the new placement immediately.
func (e *Engine) Nudge(dx, dy float64) {
	if !e.initialized || e.dragActive {
		return
	}
	vw, vh := e.surface.ViewportSize()
	r := e.surface.PanelRect()
	r.Left += dx
	r.Top += dy
	r, _ = Clamp(r, vw, vh)
	e.surface.SetPanelRect(r)
	e.store.Save(r, vw, vh)
	e.syncIcon(r)
}

// ResizePanel grows or shrinks the panel from the keyboard, bounded below
// by the minimum panel size and clamped so the panel stays visible. Feeds
// the same relayout path as any other panel size change.
func (e *Engine) ResizePanel(dw, dh float64) {
	if !e.initialized || e.dragActive {
		return
	}
	vw, vh := e.surface.ViewportSize()
	r := e.surface.PanelRect()
	r.Width = max(e.opts.MinPanelWidth, min(r.Width+dw, vw))
	r.Height = max(e.opts.MinPanelHeight, min(r.Height+dh, vh))
	r, _ = Clamp(r, vw, vh)
	e.surface.SetPanelRect(r)
	e.store.Save(r, vw, vh)
	e.PanelSizeChanged()
}

func (e *Engine) syncIcon(r Rect) {
	e.surface.SetIconRect(IconRect(r, e.snap, e.opts.IconWidth, e.opts.IconHeight))
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
