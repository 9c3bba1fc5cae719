package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahmoudchebbani/microsoft-authentication-library-for-js/config"
)

func newBufferedLogger(buf *bytes.Buffer) *Logger {
	return &Logger{zerolog.New(buf)}
}

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		level    config.LogLevel
		expected zerolog.Level
	}{
		{config.LogLevelError, zerolog.ErrorLevel},
		{config.LogLevelWarning, zerolog.WarnLevel},
		{config.LogLevelInfo, zerolog.InfoLevel},
		{config.LogLevelVerbose, zerolog.DebugLevel},
		{config.LogLevel(42), zerolog.NoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ZerologLevel(tt.level))
		})
	}
}

func TestNewCallback_WritesEntry(t *testing.T) {
	var buf bytes.Buffer
	callback := NewCallback(newBufferedLogger(&buf))

	callback(config.LogLevelWarning, "token cache miss", true)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "token cache miss", entry["message"])
	assert.Equal(t, true, entry["pii"])
}

func TestNewCallback_VerboseIsDebug(t *testing.T) {
	var buf bytes.Buffer
	callback := NewCallback(newBufferedLogger(&buf))

	callback(config.LogLevelVerbose, "details", false)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, false, entry["pii"])
}

// TestLevelFor_FiltersBelowLevel verifies that a logger restricted to Warning
// drops Info and Verbose messages sent through the callback.
func TestLevelFor_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedLogger(&buf).LevelFor(config.LogLevelWarning)
	callback := NewCallback(l)

	callback(config.LogLevelInfo, "dropped", false)
	callback(config.LogLevelVerbose, "dropped", false)
	assert.Empty(t, buf.String())

	callback(config.LogLevelError, "kept", false)
	assert.Contains(t, buf.String(), "kept")
}
