package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNew_Modes verifies both encoder modes build at a valid level.
func TestNew_Modes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"prod", "production", "local", ""} {
		l, err := New(mode, "debug")
		require.NoError(t, err, mode)
		require.NotNil(t, l.SugaredLogger)
	}
}

// TestNew_InvalidLevel verifies an unknown level is rejected.
func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New("local", "chatty")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logger:")
}

// TestWith_AddsFields verifies With attaches key/value pairs to later entries.
func TestWith_AddsFields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	l := FromZap(zap.New(core)).With("run_id", "abc")

	l.Info("example.run", "name", "ocp03")
	l.Debug("example.done")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "example.run", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"run_id": "abc", "name": "ocp03"}, entries[0].ContextMap())
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

// TestNop_DoesNotPanic verifies the nop logger accepts every call.
func TestNop_DoesNotPanic(t *testing.T) {
	t.Parallel()

	l := Nop()
	assert.NotPanics(t, func() {
		l.Debug("d")
		l.Info("i", "k", 1)
		l.Warn("w")
		l.Error("e")
		l.With("a", "b").Info("x")
		l.Sync()
	})
}
