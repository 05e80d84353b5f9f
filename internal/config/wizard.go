package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Wizard provides an interactive configuration wizard
type Wizard struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewWizard creates a new configuration wizard
func NewWizard(in io.Reader, out io.Writer) *Wizard {
	return &Wizard{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Run runs the interactive configuration wizard
func (w *Wizard) Run() (*Config, error) {
	fmt.Fprintln(w.out, "=== Joke Bot Configuration Wizard ===")
	fmt.Fprintln(w.out)

	cfg := DefaultConfig()
	validator := NewValidator()

	// Log Level
	fmt.Fprintln(w.out, "Logging:")
	fmt.Fprintf(w.out, "Log level (debug/info/warn/error) [%s]: ", cfg.Logging.Level)
	level, err := w.readLine()
	if err != nil {
		return nil, err
	}

	if level != "" {
		if err := validator.ValidateLogLevel(level); err != nil {
			fmt.Fprintf(w.out, "Warning: %v, using default (%s)\n", err, cfg.Logging.Level)
		} else {
			cfg.Logging.Level = level
		}
	}

	if cfg.Logging.Console, err = w.askYesNo("Also log to stderr?", cfg.Logging.Console); err != nil {
		return nil, err
	}

	fmt.Fprintln(w.out)

	// Jokes
	fmt.Fprintln(w.out, "Jokes:")
	for {
		fmt.Fprint(w.out, "Joke corpus file (press Enter for built-in): ")
		path, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if err := validator.ValidatePath(path, "jokes.file"); err != nil {
			fmt.Fprintf(w.out, "Error: %v\n", err)
			continue
		}

		cfg.Jokes.File = path
		break
	}

	fmt.Fprintln(w.out)

	// Session
	fmt.Fprintln(w.out, "Session:")
	if cfg.Session.RecoverProviderErrors, err = w.askYesNo("Keep the session running when a joke cannot be fetched?", cfg.Session.RecoverProviderErrors); err != nil {
		return nil, err
	}
	if cfg.Session.LegacyLanguageSelection, err = w.askYesNo("End the session on an invalid language selection?", cfg.Session.LegacyLanguageSelection); err != nil {
		return nil, err
	}
	if cfg.UI.Color, err = w.askYesNo("Use colors?", cfg.UI.Color); err != nil {
		return nil, err
	}

	fmt.Fprintln(w.out)

	// Observability
	fmt.Fprintln(w.out, "Observability:")
	if cfg.Audit.Enabled, err = w.askYesNo("Enable audit log?", cfg.Audit.Enabled); err != nil {
		return nil, err
	}

	for {
		fmt.Fprint(w.out, "Metrics textfile (press Enter to skip): ")
		path, err := w.readLine()
		if err != nil {
			return nil, err
		}

		if err := validator.ValidatePath(path, "metrics.textfile"); err != nil {
			fmt.Fprintf(w.out, "Error: %v\n", err)
			continue
		}

		cfg.Metrics.Textfile = path
		break
	}

	fmt.Fprintln(w.out)
	fmt.Fprintln(w.out, "Configuration complete!")

	return cfg, nil
}

func (w *Wizard) askYesNo(question string, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}

	validator := NewValidator()
	for {
		fmt.Fprintf(w.out, "%s [%s]: ", question, hint)
		answer, err := w.readLine()
		if err != nil {
			return def, err
		}

		value, err := validator.ValidateYesNo(answer, def)
		if err != nil {
			fmt.Fprintf(w.out, "Error: %v\n", err)
			continue
		}
		return value, nil
	}
}

func (w *Wizard) readLine() (string, error) {
	line, err := w.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}
