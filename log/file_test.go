package log_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dreamerjackson/htstask/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "htstask.log")

	var plugin, c = log.NewFilePlugin(p, zapcore.InfoLevel)
	var logger = log.NewLogger(plugin)
	logger.Debug("dropped")
	logger.Info("generated tasks")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"generated tasks"`)
	assert.Contains(t, lines[0], `"level":"INFO"`)
}

func TestNew(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tee.log")

	logger, c, err := log.New("warn", log.FormatConsole, p)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("filename fallback")
	require.NoError(t, c.Close())

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(b), "filename fallback")
	assert.NotContains(t, string(b), "dropped")

	_, _, err = log.New("loud", log.FormatJSON, "")
	assert.Error(t, err)

	logger, c, err = log.New("INFO", log.FormatJSON, "")
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, c.Close())
}
