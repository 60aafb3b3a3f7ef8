package store

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
	_ "modernc.org/sqlite"

	"github.com/praetorian-inc/backtrack/pkg/types"
)

// SQLiteStore implements Store using SQLite (pure Go driver, no CGO).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	// One writer; also keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "creating schema")
	}

	return &SQLiteStore{db: db}, nil
}

// AddPattern records a pattern.
func (s *SQLiteStore) AddPattern(p types.Pattern) error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO patterns (structural_id, id, name, expr, dot_all)
		VALUES (?, ?, ?, ?, ?)
	`, p.StructuralID, p.ID, p.Name, p.Expr, p.DotAll)
	if err != nil {
		return errors.Wrap(err, "inserting pattern")
	}
	return nil
}

// AddRun creates a run and assigns its ID.
func (s *SQLiteStore) AddRun(run *types.Run) error {
	res, err := s.db.Exec(`
		INSERT INTO runs (engine, started_at) VALUES (?, ?)
	`, string(run.Engine), run.StartedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return errors.Wrap(err, "inserting run")
	}

	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "reading run ID")
	}
	run.ID = id
	return nil
}

// AddMeasurement appends a measurement to a run.
func (s *SQLiteStore) AddMeasurement(runID int64, m types.Measurement) error {
	if err := s.checkRun(runID); err != nil {
		return err
	}

	_, err := s.db.Exec(`
		INSERT INTO measurements (run_id, multiplier, input_length, engine, problematic_ns, simple_ns, problematic_status, simple_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		runID,
		m.Multiplier,
		m.InputLength,
		string(m.Engine),
		int64(m.Problematic),
		int64(m.Simple),
		string(m.ProblematicStatus),
		string(m.SimpleStatus),
	)
	if err != nil {
		return errors.Wrap(err, "inserting measurement")
	}
	return nil
}

// GetRuns retrieves all runs, oldest first.
func (s *SQLiteStore) GetRuns() ([]*types.Run, error) {
	rows, err := s.db.Query(`SELECT id, engine, started_at FROM runs ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "querying runs")
	}
	defer rows.Close()

	var runs []*types.Run
	for rows.Next() {
		var r types.Run
		var engine, startedAt string
		if err := rows.Scan(&r.ID, &engine, &startedAt); err != nil {
			return nil, errors.Wrap(err, "scanning run")
		}
		r.Engine = types.Engine(engine)
		r.StartedAt, err = time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing start time of run %d", r.ID)
		}
		runs = append(runs, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating runs")
	}

	return runs, nil
}

// GetMeasurements retrieves a run's measurements in insertion order.
func (s *SQLiteStore) GetMeasurements(runID int64) ([]types.Measurement, error) {
	if err := s.checkRun(runID); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`
		SELECT multiplier, input_length, engine, problematic_ns, simple_ns, problematic_status, simple_status
		FROM measurements
		WHERE run_id = ?
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, errors.Wrap(err, "querying measurements")
	}
	defer rows.Close()

	measurements := []types.Measurement{}
	for rows.Next() {
		var m types.Measurement
		var engine, pStatus, sStatus string
		var pNs, sNs int64

		err := rows.Scan(&m.Multiplier, &m.InputLength, &engine, &pNs, &sNs, &pStatus, &sStatus)
		if err != nil {
			return nil, errors.Wrap(err, "scanning measurement")
		}

		m.Engine = types.Engine(engine)
		m.Problematic = time.Duration(pNs)
		m.Simple = time.Duration(sNs)
		m.ProblematicStatus = types.SearchStatus(pStatus)
		m.SimpleStatus = types.SearchStatus(sStatus)
		measurements = append(measurements, m)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating measurements")
	}

	return measurements, nil
}

func (s *SQLiteStore) checkRun(runID int64) error {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE id = ?", runID).Scan(&count); err != nil {
		return errors.Wrap(err, "checking run existence")
	}
	if count == 0 {
		return errors.Wrapf(ErrRunNotFound, "run %d", runID)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
