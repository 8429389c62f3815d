package panel

// PositionStore holds the panel's canonical position as a viewport-relative
// percentage pair. Storing percentages rather than pixels is what makes
// placement resize-resilient: a panel pinned at 80% of the viewport width
// keeps that relative placement after a window resize instead of leaking
// off-screen at a stale pixel offset.
//
// The store is mutated only after a completed drag (or during
// initialization) and read back by the resize orchestrator.
type PositionStore struct {
	leftPct float64
	topPct  float64
	set     bool
}

// Save converts the rectangle's position against the given viewport and
// overwrites both fields atomically.
func (s *PositionStore) Save(r Rect, viewportW, viewportH float64) {
	s.leftPct, s.topPct = ToPercent(r.Left, r.Top, viewportW, viewportH)
	s.set = true
}

// Restore converts the stored percentages back to pixels using the current
// viewport dimensions. ok is false only before the first Save.
func (s *PositionStore) Restore(viewportW, viewportH float64) (left, top float64, ok bool) {
	if !s.set {
		return 0, 0, false
	}
	left, top = ToPixels(s.leftPct, s.topPct, viewportW, viewportH)
	return left, top, true
}

// Percent reports the stored percentage pair without conversion.
func (s *PositionStore) Percent() (leftPct, topPct float64, ok bool) {
	return s.leftPct, s.topPct, s.set
}
