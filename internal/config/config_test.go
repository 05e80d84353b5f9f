package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Console)
	assert.Empty(t, cfg.Jokes.File)
	assert.Zero(t, cfg.Jokes.Seed)
	assert.False(t, cfg.Session.LegacyLanguageSelection)
	assert.False(t, cfg.Session.RecoverProviderErrors)
	assert.False(t, cfg.Audit.Enabled)
	assert.False(t, cfg.Tracing.Enabled)
	assert.Equal(t, "jokebot", cfg.Tracing.ServiceName)
	assert.True(t, cfg.UI.Color)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Audit.Enabled = true
		cfg.Audit.File = filepath.Join(t.TempDir(), "audit.log")
		assert.NoError(t, cfg.Validate())
	})

	t.Run("invalid log level", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Logging.Level = "verbose"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("jokes file is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Jokes.File = t.TempDir()
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jokes.file")
	})

	t.Run("metrics textfile is a directory", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Metrics.Textfile = t.TempDir()
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics.textfile")
	})

	t.Run("audit enabled without file", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Audit.Enabled = true
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "audit file is required")
	})

	t.Run("tracing enabled without service name", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Tracing.Enabled = true
		cfg.Tracing.ServiceName = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service name")
	})
}

func TestConfigValidateTracing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tracing.SampleRatio = 0.25
	assert.NoError(t, cfg.Validate())

	cfg.Tracing.SampleRatio = -0.1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample ratio")

	cfg = DefaultConfig()
	cfg.Tracing.File = t.TempDir()
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracing.file")
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	str := cfg.String()

	assert.Contains(t, str, `"level": "warn"`)
	assert.Contains(t, str, `"service_name": "jokebot"`)
}

func TestValidateSchema(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := `{"logging": {"level": "debug"}, "jokes": {"seed": 42}, "ui": {"color": false}}`
		assert.NoError(t, ValidateSchema([]byte(doc)))
	})

	t.Run("empty object", func(t *testing.T) {
		assert.NoError(t, ValidateSchema([]byte(`{}`)))
	})

	t.Run("unknown key", func(t *testing.T) {
		err := ValidateSchema([]byte(`{"telegram": {}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := ValidateSchema([]byte(`{"ui": {"color": "yes"}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("negative seed", func(t *testing.T) {
		err := ValidateSchema([]byte(`{"jokes": {"seed": -1}}`))
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("seed above float64 precision", func(t *testing.T) {
		err := ValidateSchema([]byte(`{"jokes": {"seed": 9007199254740993}}`))
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("largest exact seed", func(t *testing.T) {
		assert.NoError(t, ValidateSchema([]byte(`{"jokes": {"seed": 9007199254740991}}`)))
	})

	t.Run("sample ratio out of range", func(t *testing.T) {
		err := ValidateSchema([]byte(`{"tracing": {"sample_ratio": 1.5}}`))
		assert.ErrorIs(t, err, ErrSchemaViolation)
	})

	t.Run("not json", func(t *testing.T) {
		err := ValidateSchema([]byte("invalid json"))
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSchemaViolation)
	})
}

func TestLoadEnvFile(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("sets unset variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("JOKEBOT_TEST_DOTENV=from-file\n"), 0644))
		t.Setenv("JOKEBOT_TEST_DOTENV", "")
		require.NoError(t, os.Unsetenv("JOKEBOT_TEST_DOTENV"))

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-file", os.Getenv("JOKEBOT_TEST_DOTENV"))
	})

	t.Run("does not override existing variables", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("JOKEBOT_TEST_DOTENV=from-file\n"), 0644))
		t.Setenv("JOKEBOT_TEST_DOTENV", "from-env")

		require.NoError(t, LoadEnvFile(path))
		assert.Equal(t, "from-env", os.Getenv("JOKEBOT_TEST_DOTENV"))
	})
}
