package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/harun/jokebot/internal/observability"
	"github.com/harun/jokebot/internal/tracing"
	"github.com/harun/jokebot/pkg/console"
	"github.com/harun/jokebot/pkg/joke"
)

const (
	categoryPrompt = "    Enter category number: "
	languagePrompt = "Select language [0=en, 1=es, 2=de]: "
)

var categoryEmoji = map[joke.Category]string{
	joke.CategoryNeutral: "🎯",
	joke.CategoryChuck:   "🥋",
	joke.CategoryAll:     "🌟",
}

// fetchJoke asks the provider for a joke in the current language and category
// and appends it to the history. Provider failures propagate unless
// RecoverProviderErrors is set.
func (s *Session) fetchJoke(ctx context.Context) error {
	lang, cat := s.state.Language, s.state.Category

	text, err := s.provider.Fetch(ctx, lang, cat)
	if err != nil {
		s.metrics.RecordProviderError()
		s.audit.RecordSessionEvent(ctx, "joke_fetched", observability.StatusFailure, map[string]interface{}{
			"language": lang.String(),
			"category": cat.String(),
			"error":    err.Error(),
		})

		var perr *joke.ProviderError
		if !errors.As(err, &perr) {
			err = &joke.ProviderError{Language: lang, Category: cat, Err: err}
		}
		if !s.opts.RecoverProviderErrors {
			return err
		}

		logger := tracing.LoggerFromContext(ctx, s.logger)
		logger.Warn().Err(err).Msg("Joke retrieval failed")
		s.console.Write(s.theme.Error(fmt.Sprintf("Could not fetch a %s joke in %s. Try another category or language.", cat, lang)))
		return nil
	}

	s.state.appendJoke(joke.Joke{Text: text, Category: cat})
	s.console.Write(s.theme.Joke(text))

	s.metrics.RecordJokeFetched(lang.String(), cat.String())
	s.audit.RecordSessionEvent(ctx, "joke_fetched", observability.StatusSuccess, map[string]interface{}{
		"language": lang.String(),
		"category": cat.String(),
		"total":    len(s.state.Jokes),
	})
	return nil
}

// changeCategory shows the category menu and applies a valid index. Invalid
// input is reported and leaves the category unchanged.
func (s *Session) changeCategory(ctx context.Context) error {
	s.console.Write("📂" + console.Rule("=", console.RuleWidth-2) + "📂")
	s.console.Write("    CATEGORY SELECTION")
	s.console.Write(console.Rule("=", console.RuleWidth))
	for i, cat := range joke.Categories {
		s.console.Write(fmt.Sprintf("    %d. %s %s", i, categoryEmoji[cat], upper(cat.String())))
	}
	s.console.Write(console.Rule("=", console.RuleWidth))

	input, err := s.console.Prompt(categoryPrompt)
	if err != nil {
		return err
	}

	cat, err := joke.CategoryFromIndex(input)
	if err != nil {
		s.rejectSelection(ctx, "category", input, err)
		return nil
	}

	s.state.Category = cat
	s.console.Write("    " + s.theme.Success("Category changed to: "+upper(cat.String())))
	s.audit.RecordSessionEvent(ctx, "category_changed", observability.StatusSuccess, map[string]interface{}{
		"category": cat.String(),
	})
	return nil
}

// changeLanguage reads a language index. By default invalid input is handled
// like invalid category input; with LegacyLanguageSelection it is fatal.
func (s *Session) changeLanguage(ctx context.Context) error {
	input, err := s.console.Prompt(languagePrompt)
	if err != nil {
		return err
	}

	lang, err := joke.LanguageFromIndex(input)
	if err != nil {
		if s.opts.LegacyLanguageSelection {
			s.metrics.RecordInvalidInput("language")
			return fmt.Errorf("%w: %w", ErrInvalidLanguageSelection, err)
		}
		s.rejectSelection(ctx, "language", input, err)
		return nil
	}

	s.state.Language = lang
	s.console.Write(s.theme.Success("Language changed to: " + upper(lang.String())))
	s.audit.RecordSessionEvent(ctx, "language_changed", observability.StatusSuccess, map[string]interface{}{
		"language": lang.String(),
	})
	return nil
}

// rejectSelection reports an invalid index for kind and keeps the current value.
func (s *Session) rejectSelection(ctx context.Context, kind, input string, err error) {
	msg := fmt.Sprintf("Invalid choice. Keeping current %s.", kind)
	if errors.Is(err, joke.ErrNotANumber) {
		msg = fmt.Sprintf("Please enter a valid number. Keeping current %s.", kind)
	}

	indent := ""
	if kind == "category" {
		indent = "    "
	}
	s.console.Write(indent + s.theme.Error(msg))

	s.metrics.RecordInvalidInput(kind)
	s.audit.RecordSessionEvent(ctx, kind+"_changed", observability.StatusIgnored, map[string]interface{}{
		"input": input,
	})
	logger := tracing.LoggerFromContext(ctx, s.logger)
	logger.Info().Err(err).Str("input", input).Msgf("Invalid %s selection", kind)
}

// resetHistory empties the joke history. It always succeeds.
func (s *Session) resetHistory(ctx context.Context) error {
	cleared := len(s.state.Jokes)
	s.state.resetHistory()
	s.console.Write("🧹 Joke history has been reset.")

	s.metrics.RecordHistoryReset()
	s.audit.RecordSessionEvent(ctx, "history_reset", observability.StatusSuccess, map[string]interface{}{
		"cleared": cleared,
	})
	return nil
}

// exit prints the farewell banner and marks the session terminal.
func (s *Session) exit(_ context.Context) error {
	s.console.Write("\n" + s.theme.Banner("🚪", "GOODBYE!"))
	s.state.Quit = true
	return nil
}
