package panel

// SnapState identifies which viewport edge, if any, the panel is flush
// against. At most one value is active at a time.
type SnapState int

const (
	SnapNone SnapState = iota
	SnapLeft
	SnapRight
	SnapTop
	SnapBottom
)

// String returns a human-readable name for the snap state.
func (s SnapState) String() string {
	switch s {
	case SnapLeft:
		return "left"
	case SnapRight:
		return "right"
	case SnapTop:
		return "top"
	case SnapBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Resolver classifies a rectangle's proximity to the viewport edges using a
// fixed pixel threshold.
type Resolver struct {
	// Threshold is the distance from a viewport edge within which the panel
	// is forced flush against that edge during a drag.
	Threshold float64
}

// Apply evaluates edge snapping for one drag frame. Each axis is checked
// independently: right before left, then bottom before top. A single label
// is retained; because the vertical axis evaluates last, a diagonal drag
// that satisfies both axes reports the vertical edge. That single-axis
// labeling is a known simplification, not corner snapping.
func (sr Resolver) Apply(r Rect, viewportW, viewportH float64) (Rect, SnapState) {
	snap := SnapNone
	if r.Right() > viewportW-sr.Threshold {
		r.Left = viewportW - r.Width
		snap = SnapRight
	} else if r.Left < sr.Threshold {
		r.Left = 0
		snap = SnapLeft
	}
	if r.Bottom() > viewportH-sr.Threshold {
		r.Top = viewportH - r.Height
		snap = SnapBottom
	} else if r.Top < sr.Threshold {
		r.Top = 0
		snap = SnapTop
	}
	return r, snap
}

// Detect performs a read-only classification against the same thresholds,
// for consistency checks outside an active drag. Edges are checked in
// left, right, top, bottom priority order and the first match wins.
func (sr Resolver) Detect(r Rect, viewportW, viewportH float64) SnapState {
	switch {
	case r.Left < sr.Threshold:
		return SnapLeft
	case r.Right() > viewportW-sr.Threshold:
		return SnapRight
	case r.Top < sr.Threshold:
		return SnapTop
	case r.Bottom() > viewportH-sr.Threshold:
		return SnapBottom
	default:
		return SnapNone
	}
}
