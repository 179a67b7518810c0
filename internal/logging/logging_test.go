package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewWithoutPathIsNop(t *testing.T) {
	logger, err := New("", true)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "eligibility.log")
	logger, err := New(path, false)
	require.NoError(t, err)

	logger.Info("dataspaces loaded")
	logger.Debug("hidden at info level")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dataspaces loaded"`)
	assert.NotContains(t, string(data), "hidden at info level")
}

func TestNewDebugEnablesDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eligibility.log")
	logger, err := New(path, true)
	require.NoError(t, err)

	logger.Debug("api request")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api request")
}
