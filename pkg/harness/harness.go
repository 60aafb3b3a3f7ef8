// Package harness times the problematic and simple patterns against inputs
// of growing size.
package harness

import (
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/praetorian-inc/backtrack/pkg/logger"
	"github.com/praetorian-inc/backtrack/pkg/matcher"
	"github.com/praetorian-inc/backtrack/pkg/types"
)

// Harness holds both patterns compiled once for one engine.
//
// Thread Safety: Measure is sequential by contract; do not call it
// concurrently on the same Harness.
type Harness struct {
	cfg         *config
	problematic matcher.Matcher
	simple      matcher.Matcher
	log         *logrus.Entry
}

// New compiles the problematic and simple patterns.
func New(opts ...Option) (*Harness, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	mopts := matcher.Options{Timeout: cfg.timeout}

	problematic, err := matcher.New(matcher.Config{Engine: cfg.engine, Pattern: types.Problematic, Options: mopts})
	if err != nil {
		return nil, errors.Wrap(err, "creating problematic matcher")
	}

	simple, err := matcher.New(matcher.Config{Engine: cfg.engine, Pattern: types.Simple, Options: mopts})
	if err != nil {
		problematic.Close()
		return nil, errors.Wrap(err, "creating simple matcher")
	}

	return &Harness{
		cfg:         cfg,
		problematic: problematic,
		simple:      simple,
		log:         logger.GetLogger("harness"),
	}, nil
}

// Engine returns the engine both patterns were compiled with.
func (h *Harness) Engine() types.Engine {
	return h.cfg.engine
}

// Measure builds the input for multiplier, then times a leftmost search of
// the problematic pattern followed by one of the simple pattern. The two
// searches never overlap.
func (h *Harness) Measure(multiplier int) (types.Measurement, error) {
	input := BuildInput(multiplier)

	m := types.Measurement{
		Multiplier:  multiplier,
		InputLength: len(input),
		Engine:      h.cfg.engine,
	}

	var err error
	m.Problematic, m.ProblematicStatus, err = h.timeSearch(h.problematic, types.Problematic, multiplier, input)
	if err != nil {
		return m, err
	}

	m.Simple, m.SimpleStatus, err = h.timeSearch(h.simple, types.Simple, multiplier, input)
	if err != nil {
		return m, err
	}

	h.log.WithFields(logrus.Fields{
		"multiplier":  multiplier,
		"problematic": m.Problematic,
		"simple":      m.Simple,
	}).Debug("Measured")

	return m, nil
}

func (h *Harness) timeSearch(mt matcher.Matcher, pattern types.Pattern, multiplier int, input string) (time.Duration, types.SearchStatus, error) {
	start := h.cfg.clock.Now()
	_, err := mt.Search(input)
	elapsed := h.cfg.clock.Since(start)

	if elapsed < 0 {
		elapsed = 0
	}

	if err == nil {
		return elapsed, types.StatusCompleted, nil
	}

	if errors.Is(err, matcher.ErrTimeout) {
		if h.cfg.tolerant {
			h.log.Warnf("%s pattern timed out at multiplier %d after %v", pattern.ID, multiplier, elapsed)
			return elapsed, types.StatusTimedOut, nil
		}
		return elapsed, types.StatusTimedOut, &TimeoutError{
			Multiplier: multiplier,
			PatternID:  pattern.ID,
			Elapsed:    elapsed,
			Err:        err,
		}
	}

	return elapsed, "", errors.Wrapf(err, "searching %s pattern at multiplier %d", pattern.ID, multiplier)
}

// Close releases both matchers.
func (h *Harness) Close() error {
	var errs []error
	if err := h.problematic.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := h.simple.Close(); err != nil {
		errs = append(errs, err)
	}
	return stderrors.Join(errs...)
}
