package session

import (
	"context"
	"fmt"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/harun/jokebot/internal/metrics"
	"github.com/harun/jokebot/internal/observability"
	"github.com/harun/jokebot/internal/tracing"
	"github.com/harun/jokebot/pkg/console"
	"github.com/harun/jokebot/pkg/joke"
)

const tracerName = "jokebot.session"

// Options configures a Session. The zero value is usable.
type Options struct {
	// ID identifies the session in logs and audit events; generated when empty.
	ID string

	Theme   *console.Theme
	Logger  *zerolog.Logger
	Metrics *metrics.Metrics
	Audit   *observability.AuditLogger

	// LegacyLanguageSelection makes invalid language input fatal instead of
	// absorbing it like invalid category input.
	LegacyLanguageSelection bool

	// RecoverProviderErrors reports a failed joke retrieval and returns to the
	// menu instead of ending the session.
	RecoverProviderErrors bool
}

// Session drives one interactive run of the joke menu.
type Session struct {
	id       string
	console  console.IO
	provider joke.Provider
	theme    console.Theme
	logger   zerolog.Logger
	metrics  *metrics.Metrics
	audit    *observability.AuditLogger
	opts     Options

	state   *SessionState
	current State
}

// New creates a session in the AwaitingChoice state with default settings.
func New(term console.IO, provider joke.Provider, opts Options) (*Session, error) {
	if term == nil {
		return nil, fmt.Errorf("console is required")
	}
	if provider == nil {
		return nil, fmt.Errorf("joke provider is required")
	}

	id := opts.ID
	if id == "" {
		var err error
		id, err = gonanoid.New()
		if err != nil {
			return nil, fmt.Errorf("failed to generate session id: %w", err)
		}
	}

	theme := console.PlainTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	return &Session{
		id:       id,
		console:  term,
		provider: provider,
		theme:    theme,
		logger:   logger,
		metrics:  opts.Metrics,
		audit:    opts.Audit,
		opts:     opts,
		state:    NewSessionState(),
		current:  AwaitingChoice,
	}, nil
}

// ID returns the session ID.
func (s *Session) ID() string {
	return s.id
}

// Current returns the state machine's current state.
func (s *Session) Current() State {
	return s.current
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() SessionState {
	return s.state.Clone()
}

// Run loops prompt -> route -> handle until the user quits. On success it
// prints the session summary. A provider failure, closed input or (with
// LegacyLanguageSelection) an invalid language ends the loop with an error
// and no summary.
func (s *Session) Run(ctx context.Context) (err error) {
	if s.state.Quit {
		return ErrSessionTerminated
	}

	ctx = tracing.WithSessionID(ctx, s.id)
	ctx, span := tracing.StartSpan(ctx, tracerName, "session.run", attribute.String("session_id", s.id))
	defer span.End()
	logger := tracing.LoggerFromContext(ctx, s.logger)

	logger.Info().Msg("Session started")
	s.audit.RecordSessionEvent(ctx, "session_start", observability.StatusSuccess, nil)

	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			logger.Error().Err(err).Str("state", s.current.String()).Msg("Session failed")
			s.audit.RecordSessionEvent(ctx, "session_failed", observability.StatusFailure, map[string]interface{}{
				"state": s.current.String(),
				"error": err.Error(),
			})
			s.metrics.RecordSession("failed")
			return
		}
		s.metrics.RecordSession("completed")
	}()

	for !s.state.Quit {
		if err = s.step(ctx); err != nil {
			return err
		}
	}

	s.printSummary()

	logger.Info().
		Int("jokes", len(s.state.Jokes)).
		Str("category", s.state.Category.String()).
		Msg("Session complete")
	s.audit.RecordSessionEvent(ctx, "session_end", observability.StatusSuccess, map[string]interface{}{
		"jokes":    len(s.state.Jokes),
		"category": s.state.Category.String(),
	})

	return nil
}

// step runs one AwaitingChoice cycle: prompt, route, handle.
func (s *Session) step(ctx context.Context) error {
	choice, err := s.promptChoice(ctx)
	if err != nil {
		return err
	}
	s.state.LastChoice = choice
	s.metrics.RecordCommand(string(choice))
	s.audit.RecordSessionEvent(ctx, "command", observability.StatusSuccess, map[string]interface{}{
		"choice": string(choice),
	})

	next, err := Route(choice)
	if err != nil {
		return err
	}

	s.current = next
	if err := s.dispatch(ctx, next); err != nil {
		return err
	}
	s.current = Next(next)
	return nil
}

// dispatch runs the handler of state.
func (s *Session) dispatch(ctx context.Context, state State) (err error) {
	if s.state.Quit {
		return ErrSessionTerminated
	}

	ctx = tracing.WithState(ctx, state.String())
	ctx, span := tracing.StartSpan(ctx, tracerName, "session."+state.String())
	defer span.End()

	start := time.Now()
	defer func() {
		s.metrics.ObserveHandler(state.String(), time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	logger := tracing.LoggerFromContext(ctx, s.logger)
	logger.Debug().Msg("Dispatching handler")

	switch state {
	case FetchingJoke:
		return s.fetchJoke(ctx)
	case ChangingCategory:
		return s.changeCategory(ctx)
	case ChangingLanguage:
		return s.changeLanguage(ctx)
	case ResettingHistory:
		return s.resetHistory(ctx)
	case Exiting:
		return s.exit(ctx)
	default:
		return fmt.Errorf("no handler for state %s", state)
	}
}

func (s *Session) printSummary() {
	s.console.Write("\n" + s.theme.Banner("🎊", "SESSION COMPLETE!"))
	s.console.Write(fmt.Sprintf("    📈 You enjoyed %d jokes during this session!", len(s.state.Jokes)))
	s.console.Write(fmt.Sprintf("    📂 Final category: %s", upper(s.state.Category.String())))
	s.console.Write("    🙏 Thanks for using the Joke Bot!")
	s.console.Write(console.Rule("=", console.RuleWidth) + "\n")
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
