package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("should write json with service fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")

		logger, err := NewLogger(LogConfig{
			Level:       "info",
			Format:      "json",
			Output:      path,
			ServiceName: "wep-backend",
			Environment: "test",
		})
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("visible")
		require.NoError(t, logger.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var entry map[string]any
		require.NoError(t, json.Unmarshal(data, &entry))
		assert.Equal(t, "visible", entry["message"])
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, "wep-backend", entry["service"])
		assert.Equal(t, "test", entry["environment"])
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		logger, err := NewLogger(LogConfig{Level: "loud"})

		assert.Error(t, err)
		assert.Nil(t, logger)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("should reject unknown format", func(t *testing.T) {
		logger, err := NewLogger(LogConfig{Format: "xml"})

		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("should default to info json on stdout", func(t *testing.T) {
		logger, err := NewLogger(LogConfig{})

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}

func TestNewLoggerOutputs(t *testing.T) {
	t.Run("should append to an existing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		require.NoError(t, os.WriteFile(path, []byte("{\"message\":\"earlier\"}\n"), 0600))

		logger, err := NewLogger(LogConfig{Output: path, Format: "console"})
		require.NoError(t, err)
		logger.Warn("later")
		require.NoError(t, logger.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "earlier")
		assert.Contains(t, string(data), "later")
	})

	t.Run("should fail when the file cannot be opened", func(t *testing.T) {
		logger, err := NewLogger(LogConfig{Output: filepath.Join(t.TempDir(), "missing", "app.log")})

		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("should accept stderr", func(t *testing.T) {
		logger, err := NewLogger(LogConfig{Output: "stderr"})

		require.NoError(t, err)
		assert.NotNil(t, logger)
	})
}
