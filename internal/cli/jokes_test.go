package cli

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/harun/jokebot/pkg/joke"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJokesList(t *testing.T) {
	res := execute(t, "", "jokes", "list")
	require.NoError(t, res.err)

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 1+len(joke.Languages)*len(joke.Categories))
	assert.Contains(t, lines[0], "LANGUAGE")

	corpus, err := joke.LoadCorpus("", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "neutral", strconv.Itoa(corpus.Count(joke.LanguageEnglish, joke.CategoryNeutral))}, strings.Fields(lines[1]))
	assert.Contains(t, lines, fmt.Sprintf("%-10s %-10s %d", "es", "chuck", 0))
}

func TestJokesTell(t *testing.T) {
	t.Run("prints a joke", func(t *testing.T) {
		res := execute(t, "", "jokes", "tell", "--language", "de", "--category", "all")
		require.NoError(t, res.err)
		assert.NotEmpty(t, strings.TrimSpace(res.stdout))
	})

	t.Run("unsupported combination", func(t *testing.T) {
		res := execute(t, "", "jokes", "tell", "--language", "es", "--category", "chuck")
		require.Error(t, res.err)
		assert.ErrorIs(t, res.err, joke.ErrUnsupportedCategory)
		assert.Contains(t, res.err.Error(), "no chuck joke available in es")
	})

	t.Run("unknown language", func(t *testing.T) {
		res := execute(t, "", "jokes", "tell", "--language", "fr")
		assert.ErrorIs(t, res.err, joke.ErrUnsupportedLanguage)
	})
}
