package matcher

import (
	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// ErrEngineUnavailable is returned when an engine was not compiled in.
var ErrEngineUnavailable = errors.New("engine not available in this build")

// Matcher runs a leftmost, unanchored search of one compiled pattern.
type Matcher interface {
	// Search reports whether the pattern matches anywhere in input.
	// The match itself is discarded; only the work of finding it matters.
	Search(input string) (bool, error)

	// Engine returns the engine backing this matcher.
	Engine() types.Engine

	// Close releases resources (e.g., Hyperscan scratch space).
	Close() error
}

// Config for matcher initialization.
type Config struct {
	// Engine selects the implementation.
	Engine types.Engine

	// Pattern to compile.
	Pattern types.Pattern

	Options Options
}

// New compiles cfg.Pattern with the requested engine.
func New(cfg Config) (Matcher, error) {
	switch cfg.Engine {
	case types.EngineBacktracking, "":
		return NewBacktracking(cfg.Pattern, cfg.Options)
	case types.EngineLinear:
		return NewLinear(cfg.Pattern)
	case types.EngineHyperscan:
		return NewHyperscan(cfg.Pattern)
	default:
		return nil, errors.Errorf("unknown engine %q", cfg.Engine)
	}
}

// Available reports whether an engine can be constructed in this build.
func Available(e types.Engine) bool {
	switch e {
	case types.EngineBacktracking, types.EngineLinear:
		return true
	case types.EngineHyperscan:
		return hyperscanAvailable()
	default:
		return false
	}
}
