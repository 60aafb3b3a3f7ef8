package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// MemoryStore implements Store using in-memory data structures.
// Useful for tests and for callers that only need the current process.
type MemoryStore struct {
	mu           sync.RWMutex
	patterns     map[string]types.Pattern      // keyed by structural ID
	runs         []*types.Run                  // in creation order
	measurements map[int64][]types.Measurement // keyed by run ID
	nextRunID    int64
}

// NewMemory creates a new in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		patterns:     make(map[string]types.Pattern),
		runs:         make([]*types.Run, 0),
		measurements: make(map[int64][]types.Measurement),
		nextRunID:    1,
	}
}

// AddPattern records a pattern.
func (m *MemoryStore) AddPattern(p types.Pattern) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.patterns[p.StructuralID]; exists {
		// Idempotent - already exists
		return nil
	}
	m.patterns[p.StructuralID] = p
	return nil
}

// AddRun creates a run and assigns its ID.
func (m *MemoryStore) AddRun(run *types.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run.ID = m.nextRunID
	m.nextRunID++

	// Store a header copy; measurements live in their own map.
	m.runs = append(m.runs, &types.Run{ID: run.ID, Engine: run.Engine, StartedAt: run.StartedAt})
	m.measurements[run.ID] = nil
	return nil
}

// AddMeasurement appends a measurement to a run.
func (m *MemoryStore) AddMeasurement(runID int64, meas types.Measurement) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.measurements[runID]; !ok {
		return errors.Wrapf(ErrRunNotFound, "run %d", runID)
	}
	m.measurements[runID] = append(m.measurements[runID], meas)
	return nil
}

// GetRuns retrieves all runs, oldest first.
func (m *MemoryStore) GetRuns() ([]*types.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return copies to avoid external modifications
	result := make([]*types.Run, len(m.runs))
	for i, r := range m.runs {
		c := *r
		result[i] = &c
	}
	return result, nil
}

// GetMeasurements retrieves a run's measurements.
func (m *MemoryStore) GetMeasurements(runID int64) ([]types.Measurement, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	meas, ok := m.measurements[runID]
	if !ok {
		return nil, errors.Wrapf(ErrRunNotFound, "run %d", runID)
	}

	result := make([]types.Measurement, len(meas))
	copy(result, meas)
	return result, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
