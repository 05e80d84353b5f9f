package session

import (
	"slices"

	"github.com/harun/jokebot/pkg/joke"
)

// SessionState is the mutable data of one session.
type SessionState struct {
	Jokes      []joke.Joke
	Category   joke.Category
	Language   joke.Language
	LastChoice Choice
	Quit       bool
}

// NewSessionState returns the state a session starts with.
func NewSessionState() *SessionState {
	return &SessionState{
		Jokes:    []joke.Joke{},
		Category: joke.CategoryNeutral,
		Language: joke.LanguageEnglish,
	}
}

// Clone returns a deep copy of the state.
func (st *SessionState) Clone() SessionState {
	c := *st
	c.Jokes = slices.Clone(st.Jokes)
	if c.Jokes == nil {
		c.Jokes = []joke.Joke{}
	}
	return c
}

func (st *SessionState) appendJoke(j joke.Joke) {
	st.Jokes = append(st.Jokes, j)
}

func (st *SessionState) resetHistory() {
	st.Jokes = []joke.Joke{}
}
