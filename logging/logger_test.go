package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel(" Warning "))
	assert.Equal(t, ERROR, ParseLevel("error"))
	assert.Equal(t, INFO, ParseLevel(""))
	assert.Equal(t, INFO, ParseLevel("chatty"))
}

func TestConsoleFiltersBelowMinLevel(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, WARN)

	l.Info("loading %d blocks", 3)
	l.Warn("slow frame %dms", 40)

	out := buf.String()
	assert.NotContains(t, out, "loading")
	assert.Contains(t, out, "[WARN] slow frame 40ms")
}

func TestFileReceivesAllLevels(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "viewer.log")
	l := New(&bytes.Buffer{}, ERROR)
	require.NoError(t, l.AttachFile(path))

	l.Debug("mesh rebuilt")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] mesh rebuilt")
}
