package session

import (
	"context"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/harun/jokebot/pkg/console"
	"github.com/harun/jokebot/pkg/joke"
)

// scriptedConsole replays queued input lines and captures everything written.
type scriptedConsole struct {
	inputs  []string
	prompts []string
	lines   []string
}

func newScriptedConsole(inputs ...string) *scriptedConsole {
	return &scriptedConsole{inputs: inputs}
}

func (c *scriptedConsole) Prompt(text string) (string, error) {
	c.prompts = append(c.prompts, text)
	if len(c.inputs) == 0 {
		return "", console.ErrInputClosed
	}
	in := c.inputs[0]
	c.inputs = c.inputs[1:]
	return console.Normalize(in), nil
}

func (c *scriptedConsole) Write(text string) {
	c.lines = append(c.lines, text)
}

func (c *scriptedConsole) output() string {
	return strings.Join(c.lines, "\n")
}

func (c *scriptedConsole) menuPrompts() int {
	n := 0
	for _, p := range c.prompts {
		if p == menuPrompt {
			n++
		}
	}
	return n
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Fetch(ctx context.Context, language joke.Language, category joke.Category) (string, error) {
	args := m.Called(ctx, language, category)
	return args.String(0), args.Error(1)
}

type providerFunc func(ctx context.Context, language joke.Language, category joke.Category) (string, error)

func (f providerFunc) Fetch(ctx context.Context, language joke.Language, category joke.Category) (string, error) {
	return f(ctx, language, category)
}

func constProvider(text string) providerFunc {
	return func(context.Context, joke.Language, joke.Category) (string, error) {
		return text, nil
	}
}
