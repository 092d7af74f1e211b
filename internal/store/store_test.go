package store

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jalrakshak/jalrakshak/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	store := New(db, nil)
	if err := store.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	if err := store.Migrate(); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	version, err := store.MigrationVersion()
	if err != nil {
		t.Fatalf("MigrationVersion: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("version = %d, want %d", version, len(migrations))
	}
}

func TestInsertAndRecentReports(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	inputs := []models.Report{
		{State: "Assam", District: "Dhubri", RiskLevel: "Critical", Confidence: 96, CreatedAt: base},
		{State: "Sikkim", District: "Namchi", RiskLevel: "Low", Confidence: 94, CreatedAt: base.Add(time.Minute)},
		{State: "Tripura", District: "Udaipur", RiskLevel: "High", Confidence: 87, CreatedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range inputs {
		id, err := store.InsertReport(r)
		if err != nil {
			t.Fatalf("InsertReport: %v", err)
		}
		if id == 0 {
			t.Error("InsertReport returned id 0")
		}
	}

	reports, err := store.RecentReports(2)
	if err != nil {
		t.Fatalf("RecentReports: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("len(reports) = %d, want 2", len(reports))
	}
	if reports[0].District != "Udaipur" || reports[1].District != "Namchi" {
		t.Errorf("order = %s, %s; want Udaipur, Namchi", reports[0].District, reports[1].District)
	}
	if reports[0].Confidence != 87 || reports[0].RiskLevel != "High" {
		t.Errorf("reports[0] = %+v", reports[0])
	}
	if !reports[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("CreatedAt = %v, want %v", reports[0].CreatedAt, base.Add(2*time.Minute))
	}
}

func TestRecentReportsEmpty(t *testing.T) {
	store := setupTestStore(t)

	reports, err := store.RecentReports(10)
	if err != nil {
		t.Fatalf("RecentReports: %v", err)
	}
	if reports == nil || len(reports) != 0 {
		t.Errorf("reports = %v, want empty slice", reports)
	}
}

func TestReportCounts(t *testing.T) {
	store := setupTestStore(t)
	now := time.Now()

	for _, level := range []string{"Critical", "Low", "Critical", "Medium", "Critical"} {
		if _, err := store.InsertReport(models.Report{State: "Assam", District: "Dhubri", RiskLevel: level, CreatedAt: now}); err != nil {
			t.Fatalf("InsertReport: %v", err)
		}
	}

	counts, err := store.ReportCounts()
	if err != nil {
		t.Fatalf("ReportCounts: %v", err)
	}
	got := map[string]int{}
	for _, c := range counts {
		got[c.RiskLevel] = c.Count
	}
	if got["Critical"] != 3 || got["Low"] != 1 || got["Medium"] != 1 || got["High"] != 0 {
		t.Errorf("counts = %v", got)
	}
}

func TestSatelliteRuns(t *testing.T) {
	store := setupTestStore(t)
	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	for i, spread := range []int{12, 48} {
		run := models.SatelliteRun{WaterSpreadPct: spread, Severity: "x", CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if _, err := store.InsertSatelliteRun(run); err != nil {
			t.Fatalf("InsertSatelliteRun: %v", err)
		}
	}

	runs, err := store.RecentSatelliteRuns(5)
	if err != nil {
		t.Fatalf("RecentSatelliteRuns: %v", err)
	}
	if len(runs) != 2 || runs[0].WaterSpreadPct != 48 {
		t.Errorf("runs = %+v", runs)
	}
}
