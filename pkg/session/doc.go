// Package session runs the interactive joke menu as an explicit finite-state machine.
//
// Invariants:
// - Category and Language always hold one of their enumerated values.
// - The joke history only grows, except for a reset which empties it.
// - Once Quit is set no handler runs and the state is never mutated again.
// - A Session is owned by the goroutine calling Run; it is not safe for concurrent use.
//
// Usage:
//
//	corpus, _ := joke.LoadCorpus("", 0)
//	s, _ := session.New(console.NewTerminal(os.Stdin, os.Stdout), corpus, session.Options{})
//	if err := s.Run(ctx); err != nil {
//		// fatal: provider failure, closed input, or legacy language selection
//	}
package session
