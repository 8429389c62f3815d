// Package panel implements the positioning, snapping, and adaptive-layout
// engine behind the floating control panel. It is headless: all geometry is
// float64 "pixels" relative to whatever viewport the host Surface reports,
// so the same engine drives a terminal host in cells and the tests in raw
// numbers.
package panel

// Rect is an absolute pixel rectangle on the host surface. It is derived
// state: recomputed whenever geometry is needed, never persisted.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the right edge of the rectangle.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge of the rectangle.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

// ToPercent converts a pixel position to viewport-relative percentages.
// Viewport dimensions must be positive; the host never reports a zero-sized
// viewport once it is ready.
func ToPercent(left, top, viewportW, viewportH float64) (leftPct, topPct float64) {
	return left / viewportW * 100, top / viewportH * 100
}

// ToPixels is the inverse of ToPercent for the given viewport.
func ToPixels(leftPct, topPct, viewportW, viewportH float64) (left, top float64) {
	return leftPct / 100 * viewportW, topPct / 100 * viewportH
}

// Clamp forces the rectangle inside the viewport, correcting right overflow,
// left underflow, bottom overflow, then top underflow. The corrections are
// independent per axis, so a rectangle larger than the viewport ends up
// pinned at the origin. The returned flag reports whether any correction was
// applied so callers can skip redundant writes. Clamp is idempotent.
func Clamp(r Rect, viewportW, viewportH float64) (Rect, bool) {
	adjusted := false
	if r.Right() > viewportW {
		r.Left = viewportW - r.Width
		adjusted = true
	}
	if r.Left < 0 {
		r.Left = 0
		adjusted = true
	}
	if r.Bottom() > viewportH {
		r.Top = viewportH - r.Height
		adjusted = true
	}
	if r.Top < 0 {
		r.Top = 0
		adjusted = true
	}
	return r, adjusted
}
