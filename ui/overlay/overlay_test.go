package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(w, h int, fill byte) string {
	row := strings.Repeat(string(fill), w)
	rows := make([]string, h)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func TestPlaceOverlayInterior(t *testing.T) {
	bg := grid(10, 5, '.')
	fg := grid(3, 2, '#')

	out := PlaceOverlay(2, 1, fg, bg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)

	assert.Equal(t, "..........", lines[0])
	assert.Equal(t, "..###.....", lines[1])
	assert.Equal(t, "..###.....", lines[2])
	assert.Equal(t, "..........", lines[3])
	assert.Equal(t, "..........", lines[4])
}

func TestPlaceOverlayAtOrigin(t *testing.T) {
	bg := grid(6, 3, '.')
	fg := grid(2, 1, '#')

	out := PlaceOverlay(0, 0, fg, bg)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "##....", lines[0])
	assert.Equal(t, "......", lines[1])
}

func TestPlaceOverlayClampsToBackground(t *testing.T) {
	bg := grid(8, 4, '.')
	fg := grid(3, 2, '#')

	// coordinates past the edge clamp so the overlay stays inside
	out := PlaceOverlay(100, 100, fg, bg)
	lines := strings.Split(out, "\n")
	assert.Equal(t, ".....###", lines[2])
	assert.Equal(t, ".....###", lines[3])

	out = PlaceOverlay(-5, -5, fg, bg)
	lines = strings.Split(out, "\n")
	assert.Equal(t, "###.....", lines[0])
}

func TestPlaceOverlayLargerForegroundReturnsForeground(t *testing.T) {
	bg := grid(4, 2, '.')
	fg := grid(8, 5, '#')
	assert.Equal(t, fg, PlaceOverlay(0, 0, fg, bg))
}

func TestPlaceOverlayPreservesStyledBackground(t *testing.T) {
	styled := "\x1b[32m" + strings.Repeat("x", 10) + "\x1b[0m"
	bg := styled + "\n" + styled
	fg := "##"

	out := PlaceOverlay(4, 0, fg, bg)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	// the splice row still contains the overlay and both background halves
	assert.Contains(t, lines[0], "##")
	assert.Contains(t, lines[0], "xxxx")
	// the untouched row keeps its escape sequences
	assert.Equal(t, styled, lines[1])
}
