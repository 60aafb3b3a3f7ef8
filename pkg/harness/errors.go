package harness

import (
	"fmt"
	"time"
)

// TimeoutError reports a search that hit the configured timeout while the
// harness was not in tolerant mode.
type TimeoutError struct {
	Multiplier int
	PatternID  string
	Elapsed    time.Duration
	Err        error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("multiplier %d: %s pattern timed out after %v: %v", e.Multiplier, e.PatternID, e.Elapsed, e.Err)
}

func (e *TimeoutError) Unwrap() error {
	return e.Err
}
