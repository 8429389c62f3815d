package panel

// Orientation selects the panel's internal content arrangement.
type Orientation int

const (
	// OrientationRow lays the primary content on the left with a fixed-width
	// button column on the right. Used for wide panels.
	OrientationRow Orientation = iota
	// OrientationColumn stacks the primary content above a full-width
	// wrapping button row. Used for tall panels.
	OrientationColumn
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == OrientationRow {
		return "row"
	}
	return "column"
}

// aspectSplit is the width-to-content-height ratio above which the panel
// switches to the row arrangement.
const aspectSplit = 1.3

// AspectRatio computes the panel's content aspect ratio: the titlebar is
// chrome, so only the height below it counts.
func AspectRatio(width, height, titlebarHeight float64) float64 {
	return width / (height - titlebarHeight)
}

// OrientationFor chooses the arrangement for the panel's current rendered
// size. Re-evaluated whenever the panel's own size changes, independent of
// drags or viewport resizes, because content reflow alone can flip the
// ratio.
func OrientationFor(width, height, titlebarHeight float64) Orientation {
	if AspectRatio(width, height, titlebarHeight) > aspectSplit {
		return OrientationRow
	}
	return OrientationColumn
}
