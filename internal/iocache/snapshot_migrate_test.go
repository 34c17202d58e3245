package iocache

import (
	"database/sql"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateSnapshots_NoneBackend(t *testing.T) {
	err := MigrateSnapshots(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrateSnapshots_SQLite(t *testing.T) {
	// Create a temporary database file for testing
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version (should go to version 2)
	err := MigrateSnapshots(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	// Verify migration was successful by checking the database file exists
	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// The snapshot tables should exist after migrating up
	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	countTables := func() int {
		var count int
		row := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('courtside_runs', 'courtside_standings')")
		require.NoError(t, row.Scan(&count))
		return count
	}
	assert.Equal(t, 2, countTables(), "Both snapshot tables should exist")

	// Run migration again (should be a no-op)
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Step down to version 1: only the runs table remains
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1, countTables(), "Only the runs table should remain at version 1")

	// Rollback to version 0
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)
	assert.Equal(t, 0, countTables(), "No snapshot tables should remain at version 0")

	// Migrate back up to the latest version
	err = MigrateSnapshots(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)
	assert.Equal(t, 2, countTables())
}

func TestMigrationDialects(t *testing.T) {
	backends := map[schema.DatabaseBackend]string{
		schema.SQLiteBackend:     "migrations/sqlite",
		schema.MySQLBackend:      "migrations/mysql",
		schema.PostgreSQLBackend: "migrations/postgres",
	}

	// Every dialect ships the same migration versions
	var reference []string
	for backend, dir := range backends {
		assert.Equal(t, dir, migrationsDirForBackend(backend))

		entries, err := fs.ReadDir(migrationsFS, dir)
		require.NoError(t, err)

		var names []string
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		if reference == nil {
			reference = names
		} else {
			assert.ElementsMatch(t, reference, names, "dialect %s should carry the same migration versions", dir)
		}
	}

	// MySQL uses its own auto-increment spelling, never the SQLite one
	mysqlUp, err := fs.ReadFile(migrationsFS, "migrations/mysql/000001_create_runs_table.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(mysqlUp), "AUTO_INCREMENT")
	assert.NotContains(t, string(mysqlUp), "AUTOINCREMENT")

	// PostgreSQL has no auto-increment keyword at all
	pgUp, err := fs.ReadFile(migrationsFS, "migrations/postgres/000001_create_runs_table.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(pgUp), "BIGSERIAL")
	assert.NotContains(t, strings.ToUpper(string(pgUp)), "AUTOINCREMENT")
}
