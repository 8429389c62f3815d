package inspect

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotBuilder(t *testing.T) {
	snap := NewSnapshot().WithTerminal(120, 40)
	assert.False(t, snap.Timestamp.IsZero())
	assert.Equal(t, 120, snap.Terminal.Width)
	assert.Equal(t, 40, snap.Terminal.Height)
}

func TestWriteSnapshotToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	snap := NewSnapshot().WithTerminal(80, 24)
	snap.Snap = "right"
	snap.View = "panel"

	require.NoError(t, WriteSnapshotToPath(snap, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Snapshot
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, 80, loaded.Terminal.Width)
	assert.Equal(t, "right", loaded.Snap)
	assert.Equal(t, "panel", loaded.View)
}
