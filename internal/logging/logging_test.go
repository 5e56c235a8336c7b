package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "carmodels", "v1.2.3", slog.LevelInfo)

	l.Debug("hidden")
	l.Info("server started", "port", "8080")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, "carmodels", entry["module"])
	assert.Equal(t, "v1.2.3", entry["version"])
	assert.Equal(t, "8080", entry["port"])
	assert.NotContains(t, entry, "source")
}

func TestDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "carmodels", "dev", slog.LevelDebug)
	l.Debug("details")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, "source")
}
