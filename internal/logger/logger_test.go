package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("console output goes to stderr writer", func(t *testing.T) {
		var stderr bytes.Buffer
		cfg := Config{
			Level:   "info",
			Console: true,
			Stderr:  &stderr,
		}

		logger, err := New(cfg)
		require.NoError(t, err)
		defer logger.Close()

		logger.Info().Msg("hello")
		logger.Debug().Msg("hidden")

		assert.Contains(t, stderr.String(), `"message":"hello"`)
		assert.Contains(t, stderr.String(), `"component":"jokebot"`)
		assert.NotContains(t, stderr.String(), "hidden")
	})

	t.Run("pretty console output", func(t *testing.T) {
		var stderr bytes.Buffer
		logger, err := New(Config{Level: "debug", Console: true, Pretty: true, Stderr: &stderr})
		require.NoError(t, err)
		defer logger.Close()

		logger.Debug().Str("state", "fetching_joke").Msg("dispatch")

		assert.Contains(t, stderr.String(), "dispatch")
		assert.Contains(t, stderr.String(), "state=fetching_joke")
	})

	t.Run("create logger with file output", func(t *testing.T) {
		tmpDir := t.TempDir()
		logFile := filepath.Join(tmpDir, "nested", "test.log")

		logger, err := New(Config{Level: "debug", File: logFile})
		require.NoError(t, err)

		logger.Info().Msg("test message")
		require.NoError(t, logger.Close())

		data, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "test message")
	})

	t.Run("invalid level falls back to warn", func(t *testing.T) {
		logger, err := New(Config{Level: "loud"})
		require.NoError(t, err)
		defer logger.Close()

		assert.Equal(t, zerolog.WarnLevel, logger.GetZerolog().GetLevel())
	})

	t.Run("installs global logger", func(t *testing.T) {
		logger, err := New(Config{Level: "error"})
		require.NoError(t, err)
		defer logger.Close()

		assert.Equal(t, zerolog.ErrorLevel, log.Logger.GetLevel())
	})

	t.Run("unwritable log path", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := New(Config{Level: "info", File: tmpDir})
		assert.Error(t, err)
	})
}

func TestLoggerMethods(t *testing.T) {
	var stderr bytes.Buffer
	logger, err := New(Config{Level: "debug", Console: true, Stderr: &stderr})
	require.NoError(t, err)
	defer logger.Close()

	logger.Debug().Msg("debug message")
	logger.Info().Msg("info message")
	logger.Warn().Msg("warn message")
	logger.Error().Msg("error message")

	out := stderr.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Level)
	assert.False(t, cfg.Console)
	assert.True(t, cfg.Pretty)
}

func TestLoggerWith(t *testing.T) {
	var stderr bytes.Buffer
	logger, err := New(Config{Level: "info", Console: true, Stderr: &stderr})
	require.NoError(t, err)
	defer logger.Close()

	child := logger.With().Str("session_id", "abc").Logger()
	child.Info().Msg("scoped")

	assert.Contains(t, stderr.String(), `"session_id":"abc"`)
}

func TestCloseIsIdempotent(t *testing.T) {
	logger, err := New(Config{Level: "info", File: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	var nilLogger *Logger
	assert.NoError(t, nilLogger.Close())
}
