package store

import (
	"database/sql"

	"github.com/pkg/errors"
)

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// CreateSchema creates the database schema if it doesn't exist.
func CreateSchema(db *sql.DB) error {
	if err := createSchemaVersionTable(db); err != nil {
		return errors.Wrap(err, "creating schema_version table")
	}

	if err := createPatternsTable(db); err != nil {
		return errors.Wrap(err, "creating patterns table")
	}

	if err := createRunsTable(db); err != nil {
		return errors.Wrap(err, "creating runs table")
	}

	if err := createMeasurementsTable(db); err != nil {
		return errors.Wrap(err, "creating measurements table")
	}

	return nil
}

func createSchemaVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Insert version if table is empty
	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM schema_version").Scan(&count)
	if err != nil {
		return err
	}

	if count == 0 {
		_, err = db.Exec("INSERT INTO schema_version (version) VALUES (?)", SchemaVersion)
		return err
	}

	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		return err
	}
	if version != SchemaVersion {
		return errors.Errorf("unsupported schema version %d (expected %d)", version, SchemaVersion)
	}

	return nil
}

func createPatternsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS patterns (
			structural_id TEXT PRIMARY KEY NOT NULL,
			id TEXT NOT NULL,
			name TEXT NOT NULL,
			expr TEXT NOT NULL,
			dot_all INTEGER NOT NULL
		)
	`)
	return err
}

func createRunsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			engine TEXT NOT NULL,
			started_at TEXT NOT NULL
		)
	`)
	return err
}

func createMeasurementsTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS measurements (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			multiplier INTEGER NOT NULL,
			input_length INTEGER NOT NULL,
			engine TEXT NOT NULL,
			problematic_ns INTEGER NOT NULL,
			simple_ns INTEGER NOT NULL,
			problematic_status TEXT NOT NULL,
			simple_status TEXT NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_measurements_run_id ON measurements(run_id)
	`)
	return err
}
