package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

func sampleRun() *types.Run {
	return &types.Run{
		Engine:    types.EngineBacktracking,
		StartedAt: time.Date(2026, 10, 15, 12, 0, 0, 123, time.UTC),
		Measurements: []types.Measurement{
			{
				Multiplier:        1,
				InputLength:       5,
				Engine:            types.EngineBacktracking,
				Problematic:       4200 * time.Nanosecond,
				Simple:            700 * time.Nanosecond,
				ProblematicStatus: types.StatusCompleted,
				SimpleStatus:      types.StatusCompleted,
			},
			{
				Multiplier:        10,
				InputLength:       50,
				Engine:            types.EngineBacktracking,
				Problematic:       90 * time.Microsecond,
				Simple:            0,
				ProblematicStatus: types.StatusTimedOut,
				SimpleStatus:      types.StatusCompleted,
			},
		},
	}
}

// backends returns one of each Store implementation.
func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemory(),
		"sqlite": sqlite,
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			run := sampleRun()
			require.NoError(t, SaveRun(s, run))
			assert.Equal(t, int64(1), run.ID)

			runs, err := LoadRuns(s)
			require.NoError(t, err)
			require.Len(t, runs, 1)

			got := runs[0]
			assert.Equal(t, run.ID, got.ID)
			assert.Equal(t, types.EngineBacktracking, got.Engine)
			assert.True(t, run.StartedAt.Equal(got.StartedAt))
			assert.Equal(t, run.Measurements, got.Measurements)
		})
	}
}

func TestStore_RunIDsIncrease(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			first := &types.Run{Engine: types.EngineBacktracking, StartedAt: time.Now()}
			second := &types.Run{Engine: types.EngineLinear, StartedAt: time.Now()}
			require.NoError(t, s.AddRun(first))
			require.NoError(t, s.AddRun(second))
			assert.Less(t, first.ID, second.ID)

			runs, err := s.GetRuns()
			require.NoError(t, err)
			require.Len(t, runs, 2)
			assert.Equal(t, types.EngineLinear, runs[1].Engine)

			meas, err := s.GetMeasurements(second.ID)
			require.NoError(t, err)
			assert.Empty(t, meas)
		})
	}
}

func TestStore_UnknownRun(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			err := s.AddMeasurement(42, types.Measurement{Multiplier: 1})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrRunNotFound))

			_, err = s.GetMeasurements(42)
			assert.True(t, errors.Is(err, ErrRunNotFound))
		})
	}
}

func TestStore_AddPatternIdempotent(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			defer s.Close()

			require.NoError(t, s.AddPattern(types.Problematic))
			require.NoError(t, s.AddPattern(types.Problematic))
			require.NoError(t, s.AddPattern(types.Simple))
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path is required")

	s, err := New(Config{Path: ":memory:"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	require.NoError(t, s.Close())

	s, err = New(Config{Path: filepath.Join(t.TempDir(), "x.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())
}

func TestSQLite_ReopenKeepsRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, SaveRun(s, sampleRun()))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	defer s.Close()

	runs, err := LoadRuns(s)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Len(t, runs[0].Measurements, 2)
}

func TestSQLite_SchemaVersion(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "v.db"))
	require.NoError(t, err)
	defer s.Close()

	var version int
	require.NoError(t, s.db.QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, SchemaVersion, version)

	_, err = s.db.Exec("UPDATE schema_version SET version = 999")
	require.NoError(t, err)
	err = CreateSchema(s.db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported schema version")
}
