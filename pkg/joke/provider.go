package joke

import (
	"context"
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed jokes.yaml
var embeddedCorpus []byte

// Provider returns joke text for a language and category.
type Provider interface {
	Fetch(ctx context.Context, language Language, category Category) (string, error)
}

// Corpus is a Provider backed by an in-memory joke collection.
// Category "all" draws from every category of the requested language.
type Corpus struct {
	mu    sync.Mutex
	rng   *rand.Rand
	jokes map[Language]map[Category][]string
}

// LoadCorpus reads a YAML corpus from path, or the embedded corpus when path is empty.
// A zero seed seeds the random source from the clock.
func LoadCorpus(path string, seed uint64) (*Corpus, error) {
	data := embeddedCorpus
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read joke corpus: %w", err)
		}
	}
	return NewCorpus(data, seed)
}

// NewCorpus parses a YAML document of the form language -> category -> []joke.
func NewCorpus(data []byte, seed uint64) (*Corpus, error) {
	var raw map[string]map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse joke corpus: %w", err)
	}

	jokes := make(map[Language]map[Category][]string, len(raw))
	for langName, byCategory := range raw {
		lang, err := ParseLanguage(langName)
		if err != nil {
			return nil, fmt.Errorf("joke corpus: %w", err)
		}
		jokes[lang] = make(map[Category][]string, len(byCategory))
		for catName, texts := range byCategory {
			cat, err := ParseCategory(catName)
			if err != nil {
				return nil, fmt.Errorf("joke corpus (%s): %w", lang, err)
			}
			if cat == CategoryAll {
				return nil, fmt.Errorf("joke corpus (%s): %q is derived and cannot be listed", lang, CategoryAll)
			}
			jokes[lang][cat] = texts
		}
	}

	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Corpus{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		jokes: jokes,
	}, nil
}

// Fetch returns a random joke for the language and category.
func (c *Corpus) Fetch(ctx context.Context, language Language, category Category) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ProviderError{Language: language, Category: category, Err: err}
	}

	texts, err := c.lookup(language, category)
	if err != nil {
		return "", &ProviderError{Language: language, Category: category, Err: err}
	}

	c.mu.Lock()
	i := c.rng.IntN(len(texts))
	c.mu.Unlock()

	return texts[i], nil
}

// Count returns how many jokes a Fetch for the pair could choose from.
func (c *Corpus) Count(language Language, category Category) int {
	texts, err := c.lookup(language, category)
	if err != nil {
		return 0
	}
	return len(texts)
}

func (c *Corpus) lookup(language Language, category Category) ([]string, error) {
	byCategory, ok := c.jokes[language]
	if !ok {
		return nil, ErrUnsupportedLanguage
	}
	if !category.Valid() {
		return nil, ErrUnsupportedCategory
	}

	if category == CategoryAll {
		var all []string
		for _, cat := range Categories {
			all = append(all, byCategory[cat]...)
		}
		if len(all) == 0 {
			return nil, ErrNoJokes
		}
		return all, nil
	}

	texts, ok := byCategory[category]
	if !ok {
		return nil, ErrUnsupportedCategory
	}
	if len(texts) == 0 {
		return nil, ErrNoJokes
	}
	return texts, nil
}
