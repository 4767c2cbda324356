package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/agenthands/cinescene/internal/config"
)

func TestNewDefaults(t *testing.T) {
	l, err := New(config.LogConfig{})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"chatty"`)
}

func TestNewUnknownEncodingUsesJSON(t *testing.T) {
	l, err := New(config.LogConfig{Level: "warn", Encoding: "xml"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDebugConsole(t *testing.T) {
	l, err := New(config.LogConfig{Level: "DEBUG", Encoding: "Console", Output: "stderr"})
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestNewBadOutputPath(t *testing.T) {
	_, err := New(config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "dir", "log.json")})
	assert.Error(t, err)
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}
