package store

import (
	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// Store persists measurement runs.
// This interface abstracts the underlying storage implementation,
// allowing for different backends (SQLite, in-memory).
type Store interface {
	// AddPattern records a timed pattern (idempotent by structural ID).
	AddPattern(p types.Pattern) error

	// AddRun creates a run and sets run.ID.
	AddRun(run *types.Run) error

	// AddMeasurement appends a measurement to a run.
	AddMeasurement(runID int64, m types.Measurement) error

	// GetRuns retrieves all runs, oldest first, without measurements.
	GetRuns() ([]*types.Run, error)

	// GetMeasurements retrieves a run's measurements in insertion order.
	GetMeasurements(runID int64) ([]types.Measurement, error)

	// Close closes the database connection.
	Close() error
}

// Config for store initialization.
type Config struct {
	// Path is the database file path.
	// Use ":memory:" for an in-memory store (useful for testing).
	Path string
}

// ErrRunNotFound is returned when a measurement references an unknown run.
var ErrRunNotFound = errors.New("run not found")

// New creates a new Store.
// ":memory:" returns a MemoryStore; any other path opens SQLite.
func New(cfg Config) (Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("path is required")
	}

	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}

	return NewSQLite(cfg.Path)
}

// SaveRun stores a run together with the patterns it timed and its
// measurements.
func SaveRun(s Store, run *types.Run) error {
	for _, p := range []types.Pattern{types.Problematic, types.Simple} {
		if err := s.AddPattern(p); err != nil {
			return errors.Wrapf(err, "storing pattern %s", p.ID)
		}
	}

	if err := s.AddRun(run); err != nil {
		return errors.Wrap(err, "storing run")
	}

	for _, m := range run.Measurements {
		if err := s.AddMeasurement(run.ID, m); err != nil {
			return errors.Wrapf(err, "storing measurement for multiplier %d", m.Multiplier)
		}
	}

	return nil
}

// LoadRuns retrieves every run with its measurements.
func LoadRuns(s Store) ([]*types.Run, error) {
	runs, err := s.GetRuns()
	if err != nil {
		return nil, errors.Wrap(err, "retrieving runs")
	}

	for _, run := range runs {
		run.Measurements, err = s.GetMeasurements(run.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "retrieving measurements for run %d", run.ID)
		}
	}

	return runs, nil
}
