package cli

import (
	"context"
	"fmt"

	"github.com/harun/jokebot/internal/logger"
	"github.com/harun/jokebot/internal/metrics"
	"github.com/harun/jokebot/internal/observability"
	"github.com/harun/jokebot/internal/tracing"
	"github.com/harun/jokebot/pkg/console"
	"github.com/harun/jokebot/pkg/joke"
	"github.com/harun/jokebot/pkg/session"
	"github.com/spf13/cobra"
)

func runSession(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lg, err := logger.New(logger.Config{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: cfg.Logging.Console,
		Pretty:  true,
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer lg.Close()
	zl := lg.GetZerolog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if cfg.Tracing.Enabled {
		exporter, err := tracing.NewFileExporter(cfg.Tracing.File)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		if err := tracing.InitOpenTelemetry(tracing.Options{
			ServiceName:    cfg.Tracing.ServiceName,
			ServiceVersion: version,
			SampleRatio:    cfg.Tracing.SampleRatio,
			Exporter:       exporter,
		}); err != nil {
			exporter.Shutdown(context.Background())
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			if err := tracing.ShutdownOpenTelemetry(context.Background()); err != nil {
				zl.Warn().Err(err).Msg("Failed to shut down tracer provider")
			}
		}()
	}

	m := metrics.NewMetrics()
	if cfg.Metrics.Textfile != "" {
		defer func() {
			if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
				zl.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("Failed to write metrics")
			}
		}()
	}

	var audit *observability.AuditLogger
	if cfg.Audit.Enabled {
		audit, err = observability.OpenAuditLogger(cfg.Audit.File)
		if err != nil {
			return fmt.Errorf("failed to open audit log: %w", err)
		}
		defer audit.Close()
	}

	corpus, err := joke.LoadCorpus(cfg.Jokes.File, cfg.Jokes.Seed)
	if err != nil {
		return fmt.Errorf("failed to load jokes: %w", err)
	}

	out := cmd.OutOrStdout()
	theme := console.NewTheme(out, cfg.UI.Color)
	term := console.NewTerminal(cmd.InOrStdin(), out)

	term.Write("\n" + theme.Banner("🎉", "WELCOME TO THE JOKE BOT!",
		"This example demonstrates agentic state flow without LLMs") + "\n")

	s, err := session.New(term, corpus, session.Options{
		Theme:                   &theme,
		Logger:                  &zl,
		Metrics:                 m,
		Audit:                   audit,
		LegacyLanguageSelection: cfg.Session.LegacyLanguageSelection,
		RecoverProviderErrors:   cfg.Session.RecoverProviderErrors,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	term.Write("\n" + theme.Banner("🚀", "STARTING JOKE BOT SESSION..."))

	zl.Debug().Str("session_id", s.ID()).Msg("Running session")
	return s.Run(ctx)
}
