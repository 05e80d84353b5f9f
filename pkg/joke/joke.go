package joke

import (
	"fmt"
	"strconv"
)

// Category selects which family of jokes the provider draws from.
type Category string

const (
	CategoryNeutral Category = "neutral"
	CategoryChuck   Category = "chuck"
	CategoryAll     Category = "all"
)

// Categories is the selection order shown in the category menu.
var Categories = []Category{CategoryNeutral, CategoryChuck, CategoryAll}

// Language is the language jokes are told in.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageGerman  Language = "de"
)

// Languages is the selection order shown in the language prompt.
var Languages = []Language{LanguageEnglish, LanguageSpanish, LanguageGerman}

// Joke is an immutable record of a fetched joke.
type Joke struct {
	Text     string   `json:"text"`
	Category Category `json:"category"`
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

func (c Category) String() string { return string(c) }

// Valid reports whether l is one of the known languages.
func (l Language) Valid() bool {
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

func (l Language) String() string { return string(l) }

// ParseCategory converts a category name into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCategory, s)
	}
	return c, nil
}

// ParseLanguage converts a language code into a Language.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, s)
	}
	return l, nil
}

// CategoryFromIndex parses a menu index and returns the matching category.
func CategoryFromIndex(input string) (Category, error) {
	i, err := parseIndex(input, len(Categories))
	if err != nil {
		return "", err
	}
	return Categories[i], nil
}

// LanguageFromIndex parses a menu index and returns the matching language.
func LanguageFromIndex(input string) (Language, error) {
	i, err := parseIndex(input, len(Languages))
	if err != nil {
		return "", err
	}
	return Languages[i], nil
}

func parseIndex(input string, n int) (int, error) {
	i, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	return i, nil
}
