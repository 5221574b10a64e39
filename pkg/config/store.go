package config

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// RunRecord is one completed run in the run-history store.
type RunRecord struct {
	JobID        string
	CompletedAt  time.Time
	TurbineCount int
	CellSize     float64
	TerrainAware bool
	MinHours     float64
	MaxHours     float64
	MeanHours    float64
}

// RunStore records completed simulation runs.
type RunStore interface {
	RecordRun(rec RunRecord) error
	ListRuns() ([]RunRecord, error)
	Close() error
}

// SQLiteRunStore implements RunStore on a SQLite database file.
type SQLiteRunStore struct {
	db *sql.DB
}

// NewSQLiteRunStore opens (creating if needed) the run-history database.
func NewSQLiteRunStore(dbPath string) (*SQLiteRunStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		job_id TEXT PRIMARY KEY,
		completed_at TEXT NOT NULL,
		turbine_count INTEGER NOT NULL,
		cellsize REAL NOT NULL,
		terrain_aware INTEGER NOT NULL,
		min_hours REAL NOT NULL,
		max_hours REAL NOT NULL,
		mean_hours REAL NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}

	return &SQLiteRunStore{db: db}, nil
}

// RecordRun appends one completed run.
func (s *SQLiteRunStore) RecordRun(rec RunRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (job_id, completed_at, turbine_count, cellsize, terrain_aware, min_hours, max_hours, mean_hours)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.JobID, rec.CompletedAt.UTC().Format(time.RFC3339), rec.TurbineCount,
		rec.CellSize, boolToInt(rec.TerrainAware), rec.MinHours, rec.MaxHours, rec.MeanHours,
	)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// ListRuns returns all recorded runs, most recent first.
func (s *SQLiteRunStore) ListRuns() ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT job_id, completed_at, turbine_count, cellsize, terrain_aware, min_hours, max_hours, mean_hours
		 FROM runs ORDER BY completed_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var completed string
		var terrain int
		if err := rows.Scan(&rec.JobID, &completed, &rec.TurbineCount, &rec.CellSize,
			&terrain, &rec.MinHours, &rec.MaxHours, &rec.MeanHours); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		rec.CompletedAt, _ = time.Parse(time.RFC3339, completed)
		rec.TerrainAware = terrain != 0
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteRunStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
