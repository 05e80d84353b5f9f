package session

import "errors"

var (
	// ErrInvalidLanguageSelection is returned by the legacy language selection policy
	ErrInvalidLanguageSelection = errors.New("invalid language selection")

	// ErrSessionTerminated is returned when a handler is dispatched after quit
	ErrSessionTerminated = errors.New("session already terminated")

	// ErrUnroutableChoice is returned when the router receives an unvalidated choice
	ErrUnroutableChoice = errors.New("unroutable choice")
)
