// Package events defines the progress events the engine publishes on the
// internal event bus while searching for an allocation.
package events

// AttemptEvent is published after each completed allocation attempt.
type AttemptEvent struct {
	RunID    string
	Attempt  int
	Feasible bool
	// Improved is true when the attempt produced a strictly better quality
	// vector than any previous one.
	Improved bool
}

// ResultEvent is published once per generation call, after the attempt loop.
type ResultEvent struct {
	RunID        string
	Success      bool
	AttemptsUsed int
}
