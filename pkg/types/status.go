package types

// SearchStatus is the outcome of one timed search.
type SearchStatus string

const (
	StatusCompleted SearchStatus = "completed"
	StatusTimedOut  SearchStatus = "timed_out"
)
