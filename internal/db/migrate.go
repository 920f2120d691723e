package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateBackfillShortfallCount(db); err != nil {
		return fmt.Errorf("backfilling schedule_runs shortfall_count: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id         INTEGER PRIMARY KEY CHECK(id > 0),
		first_name TEXT NOT NULL,
		last_name  TEXT NOT NULL,
		address    TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT 'worker'
		           CHECK(role IN ('worker','manager')),
		pay_rate   REAL NOT NULL DEFAULT 0 CHECK(pay_rate >= 0),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Only available cells are stored.
	`CREATE TABLE IF NOT EXISTS employee_availability (
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		day         INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
		hour        INTEGER NOT NULL CHECK(hour BETWEEN 0 AND 23),
		PRIMARY KEY (employee_id, day, hour)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_runs (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL,
		demand_path TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL
		            CHECK(status IN ('accepted','rejected'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_runs_created ON schedule_runs(created_at)`,

	// Assignments and hours are written only for accepted runs. employee_id
	// is not a foreign key so history survives employee removal.
	`CREATE TABLE IF NOT EXISTS schedule_assignments (
		run_id      TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		day         INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
		hour        INTEGER NOT NULL CHECK(hour BETWEEN 0 AND 23),
		employee_id INTEGER NOT NULL,
		PRIMARY KEY (run_id, day, hour, employee_id)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_hours (
		run_id      TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		employee_id INTEGER NOT NULL,
		hours       INTEGER NOT NULL CHECK(hours >= 0),
		PRIMARY KEY (run_id, employee_id)
	)`,

	// Shortfalls are written only for rejected runs.
	`CREATE TABLE IF NOT EXISTS schedule_shortfalls (
		run_id  TEXT NOT NULL REFERENCES schedule_runs(id) ON DELETE CASCADE,
		day     INTEGER NOT NULL CHECK(day BETWEEN 0 AND 6),
		hour    INTEGER NOT NULL CHECK(hour BETWEEN 0 AND 23),
		missing INTEGER NOT NULL CHECK(missing > 0),
		PRIMARY KEY (run_id, day, hour)
	)`,

	// v2: record the day order and a shortfall summary on the run itself.
	`ALTER TABLE schedule_runs ADD COLUMN day_order TEXT NOT NULL DEFAULT 'USFRWTM'`,
	`ALTER TABLE schedule_runs ADD COLUMN shortfall_count INTEGER NOT NULL DEFAULT 0`,
}

// migrateBackfillShortfallCount fills shortfall_count for rejected runs
// stored before the column existed. Idempotent: only rows still at zero are
// touched.
func migrateBackfillShortfallCount(db *sql.DB) error {
	ctx := context.Background()

	query := `UPDATE schedule_runs
		SET shortfall_count = (
			SELECT COUNT(*) FROM schedule_shortfalls s WHERE s.run_id = schedule_runs.id
		)
		WHERE status = 'rejected' AND shortfall_count = 0`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("updating shortfall counts: %w", err)
	}
	return nil
}
