package joke

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedLanguage is returned when no jokes exist for a language
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrUnsupportedCategory is returned when a language has no jokes in a category
	ErrUnsupportedCategory = errors.New("unsupported category")

	// ErrNoJokes is returned when a selection resolves to an empty joke list
	ErrNoJokes = errors.New("no jokes available")

	// ErrNotANumber is returned when a menu index is not an integer
	ErrNotANumber = errors.New("not a number")

	// ErrIndexOutOfRange is returned when a menu index is outside the option list
	ErrIndexOutOfRange = errors.New("index out of range")
)

// ProviderError reports a failed joke retrieval for a language/category pair.
type ProviderError struct {
	Language Language
	Category Category
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("fetch joke (language=%s, category=%s): %v", e.Language, e.Category, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
