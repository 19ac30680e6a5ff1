package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesJSON(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	path := filepath.Join(t.TempDir(), "nested", "app.log")
	closer, err := Configure(path, true)
	require.NoError(t, err)

	Logger().Debug("learn session started", "category", "Greetings", "size", 3)
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(string(data))), &entry))
	assert.Equal(t, "learn session started", entry["msg"])
	assert.Equal(t, "Greetings", entry["category"])
	assert.Equal(t, float64(3), entry["size"])
}

func TestConfigure_InfoLevelDropsDebug(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	path := filepath.Join(t.TempDir(), "app.log")
	closer, err := Configure(path, false)
	require.NoError(t, err)

	Logger().Debug("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/state", "lsftui", "lsftui.log"), p)
}
