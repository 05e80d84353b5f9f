package session

import (
	"fmt"

	"github.com/harun/jokebot/pkg/console"
)

// Choice is a validated single-character menu command.
type Choice string

const (
	ChoiceNone     Choice = ""
	ChoiceNext     Choice = "n"
	ChoiceCategory Choice = "c"
	ChoiceLanguage Choice = "l"
	ChoiceReset    Choice = "r"
	ChoiceQuit     Choice = "q"
)

// ParseChoice validates raw menu input.
func ParseChoice(input string) (Choice, bool) {
	switch c := Choice(console.Normalize(input)); c {
	case ChoiceNext, ChoiceCategory, ChoiceLanguage, ChoiceReset, ChoiceQuit:
		return c, true
	default:
		return ChoiceNone, false
	}
}

// State is a node of the session state machine.
type State int

const (
	AwaitingChoice State = iota
	FetchingJoke
	ChangingCategory
	ChangingLanguage
	ResettingHistory
	Exiting
	Terminated
)

func (s State) String() string {
	switch s {
	case AwaitingChoice:
		return "awaiting_choice"
	case FetchingJoke:
		return "fetching_joke"
	case ChangingCategory:
		return "changing_category"
	case ChangingLanguage:
		return "changing_language"
	case ResettingHistory:
		return "resetting_history"
	case Exiting:
		return "exiting"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Route maps a validated choice to the state whose handler runs next.
func Route(c Choice) (State, error) {
	switch c {
	case ChoiceNext:
		return FetchingJoke, nil
	case ChoiceCategory:
		return ChangingCategory, nil
	case ChoiceLanguage:
		return ChangingLanguage, nil
	case ChoiceReset:
		return ResettingHistory, nil
	case ChoiceQuit:
		return Exiting, nil
	default:
		return AwaitingChoice, fmt.Errorf("%w: %q", ErrUnroutableChoice, string(c))
	}
}

// Next returns the state entered once the handler of s has completed.
func Next(s State) State {
	switch s {
	case Exiting, Terminated:
		return Terminated
	default:
		return AwaitingChoice
	}
}
