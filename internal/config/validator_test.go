package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateLogLevel(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{"debug", "debug", false},
		{"info", "info", false},
		{"warn", "warn", false},
		{"error", "error", false},
		{"uppercase", "INFO", true},
		{"empty", "", true},
		{"unknown", "trace", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateLogLevel(tt.level)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	v := NewValidator()
	dir := t.TempDir()

	assert.NoError(t, v.ValidatePath("", "jokes.file"))
	assert.NoError(t, v.ValidatePath(filepath.Join(dir, "jokes.yaml"), "jokes.file"))

	err := v.ValidatePath(dir, "jokes.file")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "must be a file")
	}

	err = v.ValidatePath("bad\x00path", "metrics.textfile")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "null bytes")
	}
}

func TestValidateYesNo(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		answer  string
		def     bool
		want    bool
		wantErr bool
	}{
		{"", true, true, false},
		{"", false, false, false},
		{"y", false, true, false},
		{"Yes", false, true, false},
		{"n", true, false, false},
		{"NO", true, false, false},
		{"maybe", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			got, err := v.ValidateYesNo(tt.answer, tt.def)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
