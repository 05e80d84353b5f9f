package config

import (
	"encoding/json"
	"fmt"
)

// Config represents the jokebot configuration
type Config struct {
	// Data directory for logs and audit files
	DataDir string `json:"data_dir" mapstructure:"data_dir"`

	// Logging
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// Joke source
	Jokes JokesConfig `json:"jokes" mapstructure:"jokes"`

	// Session behaviour
	Session SessionConfig `json:"session" mapstructure:"session"`

	// Audit log
	Audit AuditConfig `json:"audit" mapstructure:"audit"`

	// Metrics export
	Metrics MetricsConfig `json:"metrics" mapstructure:"metrics"`

	// Tracing
	Tracing TracingConfig `json:"tracing" mapstructure:"tracing"`

	// Console styling
	UI UIConfig `json:"ui" mapstructure:"ui"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `json:"level" mapstructure:"level"`
	File    string `json:"file" mapstructure:"file"`
	Console bool   `json:"console" mapstructure:"console"` // log to stderr
}

// JokesConfig selects the joke corpus
type JokesConfig struct {
	File string `json:"file" mapstructure:"file"` // empty uses the built-in corpus
	Seed uint64 `json:"seed" mapstructure:"seed"` // 0 seeds from the clock; at most 2^53-1 (JSON numbers are float64)
}

// SessionConfig holds session policy switches
type SessionConfig struct {
	LegacyLanguageSelection bool `json:"legacy_language_selection" mapstructure:"legacy_language_selection"`
	RecoverProviderErrors   bool `json:"recover_provider_errors" mapstructure:"recover_provider_errors"`
}

// AuditConfig holds audit log settings
type AuditConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	File    string `json:"file" mapstructure:"file"`
}

// MetricsConfig holds metrics export settings
type MetricsConfig struct {
	Textfile string `json:"textfile" mapstructure:"textfile"`
}

// TracingConfig holds OpenTelemetry settings
type TracingConfig struct {
	Enabled     bool    `json:"enabled" mapstructure:"enabled"`
	ServiceName string  `json:"service_name" mapstructure:"service_name"`
	File        string  `json:"file" mapstructure:"file"`                 // finished spans as JSON lines
	SampleRatio float64 `json:"sample_ratio" mapstructure:"sample_ratio"` // 0 or 1 traces every session
}

// UIConfig holds console styling settings
type UIConfig struct {
	Color bool `json:"color" mapstructure:"color"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "warn",
			Console: false,
		},
		Tracing: TracingConfig{
			Enabled:     false,
			ServiceName: "jokebot",
		},
		UI: UIConfig{
			Color: true,
		},
	}
}

// String returns a JSON representation of the config
func (c *Config) String() string {
	data, _ := json.MarshalIndent(c, "", "  ")
	return string(data)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	v := NewValidator()

	if err := v.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := v.ValidatePath(c.Jokes.File, "jokes.file"); err != nil {
		return err
	}
	if err := v.ValidatePath(c.Metrics.Textfile, "metrics.textfile"); err != nil {
		return err
	}
	if c.Audit.Enabled && c.Audit.File == "" {
		return fmt.Errorf("audit file is required when audit is enabled")
	}
	if c.Tracing.Enabled && c.Tracing.ServiceName == "" {
		return fmt.Errorf("tracing service name is required when tracing is enabled")
	}
	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be between 0 and 1, got %g", c.Tracing.SampleRatio)
	}
	if err := v.ValidatePath(c.Tracing.File, "tracing.file"); err != nil {
		return err
	}

	return nil
}
