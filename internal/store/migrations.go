package store

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

type migration struct {
	Version     int
	Description string
	SQL         string
}

var migrations = []migration{
	{
		Version:     1,
		Description: "Report log",
		SQL: `
CREATE TABLE IF NOT EXISTS reports (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    state TEXT NOT NULL,
    district TEXT NOT NULL,
    risk_level TEXT NOT NULL,
    confidence INTEGER NOT NULL,
    created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reports_created ON reports(created_at);
`,
	},
	{
		Version:     2,
		Description: "Satellite run log",
		SQL: `
CREATE TABLE IF NOT EXISTS satellite_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    water_spread_pct INTEGER NOT NULL,
    severity TEXT NOT NULL,
    created_at DATETIME NOT NULL
);
`,
	},
}

// Migrate applies every migration newer than those recorded in
// schema_migrations, each in its own transaction.
func (s *Store) Migrate() error {
	if _, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			description TEXT,
			applied_at DATETIME
		)
	`); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}

	done, err := s.appliedVersions()
	if err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}

	prev := 0
	for _, m := range migrations {
		if m.Version <= prev {
			return fmt.Errorf("migration %d is out of order", m.Version)
		}
		prev = m.Version
		if _, ok := done[m.Version]; ok {
			continue
		}
		if err := s.apply(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) apply(m migration) (err error) {
	log := s.log.With(zap.Int("version", m.Version))
	log.Info("migrations: applying", zap.String("description", m.Description))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("migration %d: begin: %w", m.Version, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.Exec(m.SQL); err != nil {
		return fmt.Errorf("migration %d: %w", m.Version, err)
	}
	if _, err = tx.Exec(
		`INSERT INTO schema_migrations (version, description, applied_at) VALUES (?, ?, ?)`,
		m.Version, m.Description, time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("migration %d: record: %w", m.Version, err)
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("migration %d: commit: %w", m.Version, err)
	}

	log.Info("migrations: completed")
	return nil
}

func (s *Store) appliedVersions() (map[int]struct{}, error) {
	rows, err := s.db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	done := map[int]struct{}{}
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		done[v] = struct{}{}
	}
	return done, rows.Err()
}

// MigrationVersion is the highest applied migration, or 0 if none are.
func (s *Store) MigrationVersion() (int, error) {
	var v sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&v); err != nil {
		return 0, err
	}
	return int(v.Int64), nil
}
