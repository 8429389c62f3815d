package panel

import (
	"hermes-gcs/log"
)

// Target identifies what a pointer press landed on. Only the title region
// and the companion icon start a drag; the minimize control is explicitly
// excluded so its click is never hijacked.
type Target int

const (
	TargetNone Target = iota
	TargetTitlebar
	TargetIcon
	TargetMinimize
)

// PointerDown opens a drag session: records the origin pointer position and
// origin rectangle and suspends transition effects on both elements so
// relocation is instantaneous. Exactly one session can exist; presses
// during an active session are ignored.
func (e *Engine) PointerDown(x, y float64, target Target) {
	if !e.initialized || e.dragActive {
		return
	}
	if target != TargetTitlebar && target != TargetIcon {
		return
	}
	e.dragActive = true
	e.dragTarget = target
	e.dragOriginX, e.dragOriginY = x, y
	e.dragOriginRect = e.surface.PanelRect()
	e.dragMoved = false
	e.hasSample = false
	e.surface.SetEffectsSuspended(true)
	log.InputTrace("drag start target=%d origin=(%.0f,%.0f)", target, x, y)
}

// PointerMove records the latest pointer sample and requests one frame
// callback if none is outstanding. Samples arriving within the same frame
// window supersede each other: newest wins, older ones are discarded. That
// bounds update work to the display refresh rate no matter how fast the
// pointer moves.
func (e *Engine) PointerMove(x, y float64) {
	if !e.dragActive {
		return
	}
	e.sampleX, e.sampleY = x, y
	e.hasSample = true
	if !e.framePending {
		e.framePending = true
		e.scheduler.RequestFrame()
	}
}

// Frame processes the latest pending sample: applies the origin-relative
// delta, resolves edge snapping, writes the corrected rectangle and snap
// preview, and resyncs the icon so it is consistent with the panel's
// latest frame.
func (e *Engine) Frame() {
	e.framePending = false
	if !e.dragActive || !e.hasSample {
		return
	}
	dx := e.sampleX - e.dragOriginX
	dy := e.sampleY - e.dragOriginY
	if dx != 0 || dy != 0 {
		e.dragMoved = true
	}
	r := e.dragOriginRect
	r.Left += dx
	r.Top += dy
	vw, vh := e.surface.ViewportSize()
	r, snap := e.resolver.Apply(r, vw, vh)
	e.snap = snap
	e.surface.SetPanelRect(r)
	e.surface.SetSnapPreview(snap)
	e.syncIcon(r)
}

// PointerUp closes the session: commits the final rectangle into the
// position store, removes the snap preview marker, restores transition
// effects, and clears the session. A release with no active session is a
// no-op, guarding against duplicate release events.
func (e *Engine) PointerUp() {
	if !e.dragActive {
		return
	}
	vw, vh := e.surface.ViewportSize()
	e.store.Save(e.surface.PanelRect(), vw, vh)
	e.surface.SetSnapPreview(SnapNone)
	e.surface.SetEffectsSuspended(false)
	e.dragActive = false
	e.hasSample = false
	log.InputTrace("drag end snap=%s", e.snap)
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.dragActive
}

// DragTarget reports what the current (or most recent) session grabbed.
func (e *Engine) DragTarget() Target {
	return e.dragTarget
}

// DragMoved reports whether the current session produced any relocation.
// The host uses it to tell an icon click (open the panel) from an icon
// drag (move it).
func (e *Engine) DragMoved() bool {
	return e.dragMoved
}
