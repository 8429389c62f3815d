package panel

// Visibility is the exclusive show/hide switch between the panel and its
// companion icon. Exactly one of the two is interactive and opaque at any
// time; the hidden element is also removed from hit-testing so it cannot
// act as an invisible target.
type Visibility int

const (
	// IconOpen shows the minimized icon and hides the panel. This is the
	// initial state.
	IconOpen Visibility = iota
	// PanelOpen shows the panel and hides the icon.
	PanelOpen
)

// String returns a human-readable name for the visibility state.
func (v Visibility) String() string {
	if v == PanelOpen {
		return "panel"
	}
	return "icon"
}

// ToggleVisibility flips between panel and icon in a single atomic update:
// both shown flags change before control returns, so no both-visible frame
// is ever observable.
func (e *Engine) ToggleVisibility() {
	if !e.initialized {
		return
	}
	if e.visibility == PanelOpen {
		e.visibility = IconOpen
	} else {
		e.visibility = PanelOpen
	}
	e.applyVisibility()
}

// Visibility reports which element is currently open.
func (e *Engine) Visibility() Visibility {
	return e.visibility
}

func (e *Engine) applyVisibility() {
	open := e.visibility == PanelOpen
	e.surface.SetPanelShown(open)
	e.surface.SetIconShown(!open)
}
