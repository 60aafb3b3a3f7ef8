package harness

import "time"

// Clock reads elapsed time. The default uses time.Now, whose readings carry
// Go's monotonic clock and are unaffected by wall-clock adjustments.
type Clock interface {
	Now() time.Time
	Since(start time.Time) time.Duration
}

type monotonicClock struct{}

func (monotonicClock) Now() time.Time { return time.Now() }

func (monotonicClock) Since(start time.Time) time.Duration { return time.Since(start) }
