package config

import (
	"fmt"
	"os"
	"strings"
)

// Validator validates configuration values
type Validator struct{}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateLogLevel validates log level
func (v *Validator) ValidateLogLevel(level string) error {
	validLevels := []string{"debug", "info", "warn", "error"}
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log level: %s (must be one of: %s)", level, strings.Join(validLevels, ", "))
}

// ValidatePath checks an optional file path. Empty is allowed; an existing
// directory is not.
func (v *Validator) ValidatePath(path, field string) error {
	if path == "" {
		return nil
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%s cannot contain null bytes", field)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("%s must be a file, got directory: %s", field, path)
	}
	return nil
}

// ValidateYesNo parses a y/n wizard answer. Empty returns def.
func (v *Validator) ValidateYesNo(answer string, def bool) (bool, error) {
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, fmt.Errorf("please answer y or n")
	}
}
