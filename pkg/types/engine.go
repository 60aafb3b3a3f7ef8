package types

import "github.com/pkg/errors"

// Engine names a regular expression implementation.
type Engine string

const (
	// EngineBacktracking is a Perl/.NET style backtracking engine (regexp2).
	EngineBacktracking Engine = "backtracking"
	// EngineLinear is the RE2 automaton engine from the Go standard library.
	EngineLinear Engine = "linear"
	// EngineHyperscan is Intel Hyperscan (cgo, -tags=hyperscan).
	EngineHyperscan Engine = "hyperscan"
)

// Engines lists every engine in display order.
var Engines = []Engine{EngineBacktracking, EngineLinear, EngineHyperscan}

// ParseEngine converts a flag value into an Engine.
func ParseEngine(s string) (Engine, error) {
	for _, e := range Engines {
		if string(e) == s {
			return e, nil
		}
	}
	return "", errors.Errorf("unknown engine %q (expected one of %v)", s, Engines)
}

// Backtracks reports whether the engine is expected to show catastrophic
// backtracking on the problematic pattern.
func (e Engine) Backtracks() bool {
	return e == EngineBacktracking
}
