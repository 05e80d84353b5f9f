package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	table := map[Choice]State{
		ChoiceNext:     FetchingJoke,
		ChoiceCategory: ChangingCategory,
		ChoiceLanguage: ChangingLanguage,
		ChoiceReset:    ResettingHistory,
		ChoiceQuit:     Exiting,
	}
	for choice, want := range table {
		got, err := Route(choice)
		require.NoError(t, err)
		assert.Equal(t, want, got, "choice %q", choice)
	}

	_, err := Route("x")
	assert.ErrorIs(t, err, ErrUnroutableChoice)
	_, err = Route(ChoiceNone)
	assert.ErrorIs(t, err, ErrUnroutableChoice)
}

func TestNext(t *testing.T) {
	for _, s := range []State{FetchingJoke, ChangingCategory, ChangingLanguage, ResettingHistory} {
		assert.Equal(t, AwaitingChoice, Next(s), "after %s", s)
	}
	assert.Equal(t, Terminated, Next(Exiting))
	assert.Equal(t, Terminated, Next(Terminated))
}

func TestParseChoice(t *testing.T) {
	for _, in := range []string{"n", "c", "l", "r", "q", " N ", "Q\n"} {
		_, ok := ParseChoice(in)
		assert.True(t, ok, "input %q", in)
	}
	for _, in := range []string{"", "x", "nn", "quit", "1"} {
		c, ok := ParseChoice(in)
		assert.False(t, ok, "input %q", in)
		assert.Equal(t, ChoiceNone, c)
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "awaiting_choice", AwaitingChoice.String())
	assert.Equal(t, "fetching_joke", FetchingJoke.String())
	assert.Equal(t, "terminated", Terminated.String())
	assert.Equal(t, "state(99)", State(99).String())
}
