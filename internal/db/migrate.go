package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS features (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		description    TEXT NOT NULL DEFAULT '',
		priority       TEXT NOT NULL DEFAULT 'Medium'
		               CHECK(priority IN ('Low','Medium','High','Critical')),
		status         TEXT NOT NULL DEFAULT 'Backlog'
		               CHECK(status IN ('Backlog','Ready','In Progress','Completed','On Hold')),
		start_date     TEXT NOT NULL DEFAULT '',
		end_date       TEXT NOT NULL DEFAULT '',
		estimated_cost REAL NOT NULL DEFAULT 0,
		points         INTEGER NOT NULL DEFAULT 0,
		owner          TEXT NOT NULL DEFAULT '',
		programs       TEXT NOT NULL DEFAULT '[]',
		system         TEXT NOT NULL DEFAULT 'TOM'
		               CHECK(system IN ('TOM','EOM','C3')),
		jira_number    TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS feature_allocations (
		feature_id TEXT NOT NULL REFERENCES features(id) ON DELETE CASCADE,
		sprint_id  TEXT NOT NULL,
		points     INTEGER NOT NULL DEFAULT 0,
		position   INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (feature_id, sprint_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_feature_allocations_sprint ON feature_allocations(sprint_id)`,

	`CREATE TABLE IF NOT EXISTS sprints (
		id                     TEXT PRIMARY KEY,
		name                   TEXT NOT NULL,
		start_date             TEXT NOT NULL DEFAULT '',
		end_date               TEXT NOT NULL DEFAULT '',
		target_deployment_date TEXT NOT NULL DEFAULT '',
		capacity               INTEGER NOT NULL DEFAULT 0,
		is_closed              INTEGER NOT NULL DEFAULT 0,
		system                 TEXT NOT NULL DEFAULT 'TOM'
		                       CHECK(system IN ('TOM','EOM','C3')),
		created_at             TEXT NOT NULL,
		updated_at             TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS run_rates (
		year   INTEGER NOT NULL,
		month  INTEGER NOT NULL CHECK(month BETWEEN 0 AND 11),
		system TEXT NOT NULL CHECK(system IN ('TOM','EOM','C3')),
		amount REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (year, month, system)
	)`,

	`CREATE TABLE IF NOT EXISTS audit_logs (
		id          TEXT PRIMARY KEY,
		timestamp   TEXT NOT NULL,
		kind        TEXT NOT NULL CHECK(kind IN ('feature','sprint')),
		entity_id   TEXT NOT NULL,
		entity_name TEXT NOT NULL,
		action      TEXT NOT NULL,
		details     TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs(timestamp)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_kind ON audit_logs(kind)`,
}
