package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-field/config"
)

func TestNew_Disabled(t *testing.T) {
	logger, closer, err := New(config.LoggerConfig{Enabled: false})
	require.NoError(t, err)
	defer closer()

	assert.False(t, logger.Core().Enabled(zap.ErrorLevel))
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.log")
	logger, closer, err := New(config.LoggerConfig{
		Enabled: true,
		Level:   "debug",
		LogFile: path,
		MaxSize: 1,
	})
	require.NoError(t, err)

	logger.Debug("charge added", zap.Float64("value", -2))
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := strings.TrimSpace(string(data))
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "DEBUG", entry["level"])
	assert.Equal(t, ServiceName, entry["logger"])
	assert.Equal(t, "charge added", entry["msg"])
	assert.Equal(t, -2.0, entry["value"])
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.log")
	logger, closer, err := New(config.LoggerConfig{Enabled: true, Level: "warn", LogFile: path})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	closer()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "kept")
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := New(config.LoggerConfig{Enabled: true, Level: "loud", LogFile: "x.log"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}
