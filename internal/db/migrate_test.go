package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time — should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"features", "feature_allocations", "sprints", "run_rates", "audit_logs"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_feature_allocations_sprint",
		"idx_audit_logs_timestamp",
		"idx_audit_logs_kind",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_FeatureStatusCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO features (id, name, status, created_at, updated_at)
		VALUES ('f1', 'Test', 'INVALID', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err, "invalid status should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO features (id, name, status, created_at, updated_at)
		VALUES ('f1', 'Test', 'Backlog', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_AllocationsCascadeOnFeatureDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO features (id, name, created_at, updated_at)
		VALUES ('f1', 'Test', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO feature_allocations (feature_id, sprint_id, points) VALUES ('f1', 's1', 5)`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM features WHERE id = 'f1'`)
	require.NoError(t, err)

	var count int
	err = db.QueryRow(`SELECT COUNT(*) FROM feature_allocations WHERE feature_id = 'f1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "allocation rows should cascade away with the feature")
}

func TestMigrate_AllocationsUniquePerSprint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO features (id, name, created_at, updated_at)
		VALUES ('f1', 'Test', '2026-01-01T00:00:00Z', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO feature_allocations (feature_id, sprint_id, points) VALUES ('f1', 's1', 5)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO feature_allocations (feature_id, sprint_id, points) VALUES ('f1', 's1', 3)`)
	assert.Error(t, err, "duplicate feature/sprint pair should violate the composite primary key")
}

func TestMigrate_RunRatesMonthRange(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO run_rates (year, month, system, amount) VALUES (2026, 0, 'TOM', 1000)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO run_rates (year, month, system, amount) VALUES (2026, 12, 'TOM', 1000)`)
	assert.Error(t, err, "month index past 11 should be rejected by CHECK constraint")
}

func TestMigrate_AuditLogKindCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO audit_logs (id, timestamp, kind, entity_id, entity_name, action)
		VALUES ('l1', '2026-01-01T00:00:00Z', 'widget', 'x', 'X', 'Added')`)
	assert.Error(t, err, "unknown entity kind should be rejected by CHECK constraint")
}
