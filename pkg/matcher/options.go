package matcher

import "time"

// Options contains configuration for matcher behavior
type Options struct {
	// Timeout aborts a single search after this long. Only the backtracking
	// engine honors it; the automaton engines run in linear time.
	// Zero means no timeout, which is what the demonstration needs.
	Timeout time.Duration
}

// DefaultOptions returns the default options for the matcher
func DefaultOptions() Options {
	return Options{
		Timeout: 0,
	}
}
