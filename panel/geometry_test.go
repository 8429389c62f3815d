package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		left, top float64
		vw, vh    float64
	}{
		{name: "interior point", left: 1066.67, top: 488.89, vw: 1280, vh: 800},
		{name: "origin", left: 0, top: 0, vw: 1920, vh: 1080},
		{name: "far corner", left: 1920, top: 1080, vw: 1920, vh: 1080},
		{name: "odd viewport", left: 333, top: 111, vw: 1366, vh: 768},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leftPct, topPct := ToPercent(tt.left, tt.top, tt.vw, tt.vh)
			left, top := ToPixels(leftPct, topPct, tt.vw, tt.vh)
			assert.InDelta(t, tt.left, left, 1e-9)
			assert.InDelta(t, tt.top, top, 1e-9)
		})
	}
}

func TestToPercentKnownValues(t *testing.T) {
	leftPct, topPct := ToPercent(1600, 660, 1920, 1080)
	assert.InDelta(t, 83.33, leftPct, 0.01)
	assert.InDelta(t, 61.11, topPct, 0.01)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		r            Rect
		vw, vh       float64
		want         Rect
		wantAdjusted bool
	}{
		{
			name:         "inside untouched",
			r:            Rect{Left: 100, Top: 100, Width: 300, Height: 200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 100, Top: 100, Width: 300, Height: 200},
			wantAdjusted: false,
		},
		{
			name:         "right overflow",
			r:            Rect{Left: 1066.67, Top: 100, Width: 300, Height: 200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 980, Top: 100, Width: 300, Height: 200},
			wantAdjusted: true,
		},
		{
			name:         "left underflow",
			r:            Rect{Left: -40, Top: 100, Width: 300, Height: 200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 0, Top: 100, Width: 300, Height: 200},
			wantAdjusted: true,
		},
		{
			name:         "bottom overflow",
			r:            Rect{Left: 100, Top: 700, Width: 300, Height: 200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 100, Top: 600, Width: 300, Height: 200},
			wantAdjusted: true,
		},
		{
			name:         "top underflow",
			r:            Rect{Left: 100, Top: -10, Width: 300, Height: 200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 100, Top: 0, Width: 300, Height: 200},
			wantAdjusted: true,
		},
		{
			name:         "larger than viewport pins at origin",
			r:            Rect{Left: 50, Top: 50, Width: 2000, Height: 1200},
			vw:           1280, vh: 800,
			want:         Rect{Left: 0, Top: 0, Width: 2000, Height: 1200},
			wantAdjusted: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, adjusted := Clamp(tt.r, tt.vw, tt.vh)
			assert.InDelta(t, tt.want.Left, got.Left, 1e-9)
			assert.InDelta(t, tt.want.Top, got.Top, 1e-9)
			assert.Equal(t, tt.wantAdjusted, adjusted)
		})
	}
}

func TestClampIdempotent(t *testing.T) {
	r := Rect{Left: 1300, Top: 900, Width: 300, Height: 200}
	once, adjusted := Clamp(r, 1280, 800)
	require.True(t, adjusted)
	twice, adjusted := Clamp(once, 1280, 800)
	assert.False(t, adjusted)
	assert.Equal(t, once, twice)
}

// A panel anchored near the bottom-right corner must stay fully visible
// after the window shrinks: percent restore alone would leave it hanging
// off the right edge.
func TestRestoreThenClampAfterShrink(t *testing.T) {
	var store PositionStore
	store.Save(Rect{Left: 1600, Top: 660, Width: 300, Height: 200}, 1920, 1080)

	left, top, ok := store.Restore(1280, 800)
	require.True(t, ok)
	assert.InDelta(t, 1066.67, left, 0.01)
	assert.InDelta(t, 488.89, top, 0.01)

	clamped, adjusted := Clamp(Rect{Left: left, Top: top, Width: 300, Height: 200}, 1280, 800)
	assert.True(t, adjusted)
	assert.InDelta(t, 980, clamped.Left, 1e-9)
	assert.InDelta(t, 488.89, clamped.Top, 0.01)
}
