package logging

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("console")
	require.NoError(t, err)
	assert.Equal(t, FormatConsole, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.AddSync(&buf), FormatJSON, zapcore.InfoLevel)
	logger.Debug("hidden")
	logger.Info("applied", zap.String("kind", "push"))
	require.NoError(t, logger.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "applied", entry["msg"])
	assert.Equal(t, "push", entry["kind"])
	assert.Equal(t, "info", entry["level"])
	assert.IsType(t, float64(0), entry["time"])
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := New(zapcore.AddSync(&buf), FormatConsole, zapcore.DebugLevel)
	logger.Debug("loaded", zap.Int("ops", 3))
	require.NoError(t, logger.Sync())

	out := buf.String()
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "loaded")
	assert.Contains(t, out, `{"ops": 3}`)
}
