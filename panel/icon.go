package panel

// IconRect derives the companion icon's rectangle from the panel's current
// geometry and snap state. The icon never has an independent stored
// position: it sits on the panel's top-left corner when snapped left, the
// top-right corner when snapped right (also the default with no snap), and
// horizontally centered on the top or bottom edge for vertical snaps.
//
// Pure function: identical inputs always produce an identical icon
// rectangle.
func IconRect(p Rect, snap SnapState, iconW, iconH float64) Rect {
	r := Rect{Width: iconW, Height: iconH}
	switch snap {
	case SnapLeft:
		r.Left = p.Left
		r.Top = p.Top
	case SnapTop:
		r.Left = p.Left + (p.Width-iconW)/2
		r.Top = p.Top
	case SnapBottom:
		r.Left = p.Left + (p.Width-iconW)/2
		r.Top = p.Bottom() - iconH
	default: // SnapRight and SnapNone share the top-right corner
		r.Left = p.Right() - iconW
		r.Top = p.Top
	}
	return r
}
