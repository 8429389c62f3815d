package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionStoreUnset(t *testing.T) {
	var store PositionStore
	_, _, ok := store.Restore(1920, 1080)
	assert.False(t, ok)
	_, _, ok = store.Percent()
	assert.False(t, ok)
}

func TestPositionStoreSaveOverwrites(t *testing.T) {
	var store PositionStore
	store.Save(Rect{Left: 960, Top: 540}, 1920, 1080)
	store.Save(Rect{Left: 0, Top: 270}, 1920, 1080)

	leftPct, topPct, ok := store.Percent()
	require.True(t, ok)
	assert.InDelta(t, 0, leftPct, 1e-9)
	assert.InDelta(t, 25, topPct, 1e-9)
}

// The stored percentages are viewport-independent: saving at one size and
// restoring at another preserves the relative placement.
func TestPositionStoreResizeResilience(t *testing.T) {
	var store PositionStore
	store.Save(Rect{Left: 1600, Top: 660}, 1920, 1080)

	leftPct, topPct, ok := store.Percent()
	require.True(t, ok)
	assert.InDelta(t, 83.33, leftPct, 0.01)
	assert.InDelta(t, 61.11, topPct, 0.01)

	left, top, ok := store.Restore(3840, 2160)
	require.True(t, ok)
	assert.InDelta(t, 3200, left, 1e-9)
	assert.InDelta(t, 1320, top, 1e-9)
}
