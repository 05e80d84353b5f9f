package session

import (
	"context"
	"fmt"

	"github.com/harun/jokebot/internal/tracing"
	"github.com/harun/jokebot/pkg/console"
)

const (
	menuPrompt  = "[n] 🎭 Next Joke  [c] 📂 Change Category  [l] 🌐 Change Language  [r] 🧹 Reset History  [q] 🚪 Quit\nUser Input: "
	menuInvalid = "Invalid input. Please try again."
)

// promptChoice prints the menu header and re-prompts until the input is a
// valid choice. There is no retry limit.
func (s *Session) promptChoice(ctx context.Context) (Choice, error) {
	s.console.Write(fmt.Sprintf("🎭 Menu | Category: %s | Jokes: %d", upper(s.state.Category.String()), len(s.state.Jokes)))
	s.console.Write(console.Rule("-", 50))
	s.console.Write("Pick an option:")

	for {
		input, err := s.console.Prompt(menuPrompt)
		if err != nil {
			return ChoiceNone, err
		}

		if choice, ok := ParseChoice(input); ok {
			return choice, nil
		}

		s.console.Write(s.theme.Error(menuInvalid))
		s.metrics.RecordInvalidInput("menu")
		logger := tracing.LoggerFromContext(ctx, s.logger)
		logger.Info().Str("input", input).Msg("Invalid menu choice")
	}
}
