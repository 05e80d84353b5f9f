// Package console provides the line-oriented terminal used by a joke session.
//
// Invariants:
// - Prompt returns input trimmed of surrounding whitespace and lowercased.
// - Prompt blocks until a full line is read; EOF with no pending input yields ErrInputClosed.
//
// Usage:
//
//	term := console.NewTerminal(os.Stdin, os.Stdout)
//	choice, err := term.Prompt("User Input: ")
package console
