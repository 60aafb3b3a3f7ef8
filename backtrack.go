// Package backtrack times a regular expression prone to catastrophic
// backtracking against a simple one, on inputs of growing size.
//
// # Basic Usage
//
// Measure one multiplier with the default backtracking engine:
//
//	m, err := backtrack.Measure(1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Problematic, m.Simple)
//
// Or run the full default sequence and print the text report:
//
//	if err := backtrack.Run(context.Background(), os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Engines
//
// Only the backtracking engine shows the blowup. Compare with the linear
// engine to see the same patterns run in linear time:
//
//	h, err := backtrack.NewHarness(backtrack.WithEngine(backtrack.EngineLinear))
package backtrack

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/harness"
	"github.com/praetorian-inc/backtrack/pkg/report"
	"github.com/praetorian-inc/backtrack/pkg/types"
)

// Re-export commonly used types for convenience.
// Users can import just "github.com/praetorian-inc/backtrack" without subpackages.
type (
	// Measurement is the duration pair for one multiplier.
	Measurement = types.Measurement

	// Engine names a regex implementation.
	Engine = types.Engine

	// Pattern is one of the two timed expressions.
	Pattern = types.Pattern

	// Harness holds both patterns compiled for one engine.
	Harness = harness.Harness

	// Option configures a Harness.
	Option = harness.Option
)

// Re-export engines.
const (
	EngineBacktracking = types.EngineBacktracking
	EngineLinear       = types.EngineLinear
	EngineHyperscan    = types.EngineHyperscan
)

// Re-export options.
var (
	WithEngine   = harness.WithEngine
	WithTimeout  = harness.WithTimeout
	WithTolerant = harness.WithTolerant
)

// NewHarness compiles both patterns. Always call Close when done.
func NewHarness(opts ...Option) (*Harness, error) {
	return harness.New(opts...)
}

// Measure compiles the patterns, measures a single multiplier and releases
// the harness. Use NewHarness to measure several multipliers without
// recompiling.
func Measure(multiplier int, opts ...Option) (Measurement, error) {
	h, err := harness.New(opts...)
	if err != nil {
		return Measurement{}, err
	}
	defer h.Close()

	return h.Measure(multiplier)
}

// Run measures the default multipliers (1 through 100000) and writes the
// text report to w after each one.
func Run(ctx context.Context, w io.Writer, opts ...Option) error {
	return RunMultipliers(ctx, w, harness.DefaultMultipliers(), opts...)
}

// RunMultipliers is Run with an explicit multiplier sequence.
func RunMultipliers(ctx context.Context, w io.Writer, multipliers []int, opts ...Option) error {
	h, err := harness.New(opts...)
	if err != nil {
		return errors.Wrap(err, "creating harness")
	}
	defer h.Close()

	tw := report.NewText(w)
	return harness.NewDriver(h).Run(ctx, multipliers, tw.WriteMeasurement)
}
