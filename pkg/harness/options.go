package harness

import (
	"time"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// config holds harness configuration.
type config struct {
	engine   types.Engine
	timeout  time.Duration
	tolerant bool
	clock    Clock
}

// Option configures a Harness.
type Option func(*config)

// WithEngine selects the regex engine. Default is types.EngineBacktracking.
func WithEngine(e types.Engine) Option {
	return func(c *config) {
		c.engine = e
	}
}

// WithTimeout aborts any single search after d. Default is no timeout.
// Only the backtracking engine can be interrupted.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithTolerant keeps timed-out measurements instead of failing them.
func WithTolerant() Option {
	return func(c *config) {
		c.tolerant = true
	}
}

// WithClock replaces the monotonic clock, mostly for tests.
func WithClock(clock Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}

func defaultConfig() *config {
	return &config{
		engine: types.EngineBacktracking,
		clock:  monotonicClock{},
	}
}
