package store

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/jalrakshak/jalrakshak/internal/models"
)

// Store is an append-only log of served reports. Nothing read from it
// feeds back into classification.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

func New(db *sql.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, log: logger}
}

// Open opens a SQLite database at path and applies pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	return db, nil
}

func (s *Store) InsertReport(r models.Report) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO reports (state, district, risk_level, confidence, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.State, r.District, r.RiskLevel, r.Confidence, r.CreatedAt.UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecentReports returns up to limit reports, newest first.
func (s *Store) RecentReports(limit int) ([]models.Report, error) {
	rows, err := s.db.Query(`
		SELECT id, state, district, risk_level, confidence, created_at
		FROM reports
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var r models.Report
		if err := rows.Scan(&r.ID, &r.State, &r.District, &r.RiskLevel, &r.Confidence, &r.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, rows.Err()
}

// ReportCounts returns how many reports were served per risk level.
func (s *Store) ReportCounts() ([]models.LevelCount, error) {
	rows, err := s.db.Query(`
		SELECT risk_level, COUNT(*)
		FROM reports
		GROUP BY risk_level
		ORDER BY risk_level
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := []models.LevelCount{}
	for rows.Next() {
		var c models.LevelCount
		if err := rows.Scan(&c.RiskLevel, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (s *Store) InsertSatelliteRun(r models.SatelliteRun) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO satellite_runs (water_spread_pct, severity, created_at)
		VALUES (?, ?, ?)
	`, r.WaterSpreadPct, r.Severity, r.CreatedAt.UTC())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecentSatelliteRuns returns up to limit runs, newest first.
func (s *Store) RecentSatelliteRuns(limit int) ([]models.SatelliteRun, error) {
	rows, err := s.db.Query(`
		SELECT id, water_spread_pct, severity, created_at
		FROM satellite_runs
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []models.SatelliteRun{}
	for rows.Next() {
		var r models.SatelliteRun
		if err := rows.Scan(&r.ID, &r.WaterSpreadPct, &r.Severity, &r.CreatedAt); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
