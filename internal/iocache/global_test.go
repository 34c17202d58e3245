package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
)

func TestInitStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		// Clean up any existing test database
		testDBPath := GetDBFilePath()
		defer func() { _ = os.Remove(testDBPath) }()
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Test initialization with SQLite backend
		err := InitStores(schema.SQLiteBackend, "", "", "")
		assert.NoError(t, err, "Failed to initialize stores")

		// Test that Manager is accessible
		assert.NotNil(t, Manager, "Manager should not be nil")

		// Test that stores are accessible
		assert.NotNil(t, Manager.GetResultStore(), "Result store should not be nil")

		// Test cleanup
		CloseStores()

		// Verify database file was created
		_, err = os.Stat(testDBPath)
		assert.False(t, os.IsNotExist(err), "Database file should be created")
	})

	t.Run("idempotent setup", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, ":memory:", "", "")
		err2 := InitStores(schema.SQLiteBackend, ":memory:", "", "")
		err3 := InitStores(schema.SQLiteBackend, ":memory:", "", "")

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")
		assert.NoError(t, err3, "Third init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to initialize stores with none backend")

		store := Manager.GetResultStore()
		assert.NotNil(t, store, "Result store should not be nil")

		// Result store behaves as a no-op
		err = store.Set("key", []byte("value"), 1, 1000)
		assert.NoError(t, err, "Set on NoneBackend should not error")

		_, _, _, err = store.Get("key")
		assert.Equal(t, sql.ErrNoRows, err, "Get on NoneBackend should return ErrNoRows")

		snapshots := Manager.GetSnapshotStore()
		assert.NotNil(t, snapshots, "Snapshot store should not be nil for NoneBackend")

		CloseStores()
	})

	t.Run("snapshot store disabled", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Empty snapshot backend skips snapshot store creation entirely
		err := InitStores(schema.SQLiteBackend, ":memory:", "", "")
		assert.NoError(t, err)
		assert.NotNil(t, Manager.GetResultStore())
		assert.Nil(t, Manager.GetSnapshotStore(), "Snapshot store should be nil when disabled")

		CloseStores()
	})

	t.Run("invalid connection string", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test
		defer func() {
			initOnce = sync.Once{}
			closeOnce = sync.Once{}
		}()

		err := InitStores(schema.MySQLBackend, "invalid://connection", "", "")
		assert.Error(t, err, "Expected error for invalid MySQL connection string")
	})
}

func TestStoreManagerConcurrency(t *testing.T) {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}

	err := InitStores(schema.SQLiteBackend, ":memory:", "", "")
	if err != nil {
		t.Fatalf("InitStores failed: %v", err)
	}
	defer CloseStores()

	// Concurrently access the manager
	const numGoroutines = 10
	done := make(chan bool, numGoroutines)

	for i := range numGoroutines {
		go func(id int) {
			defer func() { done <- true }()
			store := Manager.GetResultStore()
			if store == nil {
				t.Errorf("Goroutine %d: GetResultStore returned nil", id)
				return
			}
			err := store.Set("concurrent_key", []byte("value"), 1, int64(1000+id))
			if err != nil {
				t.Errorf("Goroutine %d: Set failed: %v", id, err)
			}
		}(i)
	}

	// Wait for all goroutines to complete
	for range numGoroutines {
		<-done
	}
}

func TestClearCache(t *testing.T) {
	t.Run("SQLite backend", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test_clear.db")

		// Create the database file directly with sql.Open
		db, err := sql.Open("sqlite", dbPath)
		assert.NoError(t, err, "Failed to create database")
		defer func() { _ = db.Close() }()

		_, err = db.Exec("CREATE TABLE test (id INTEGER PRIMARY KEY)")
		assert.NoError(t, err, "Failed to create table")

		_, err = os.Stat(dbPath)
		assert.False(t, os.IsNotExist(err), "Database file should exist before ClearCache")

		err = ClearCache(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearCache should not fail")

		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err), "Database file should be removed after ClearCache")
	})

	t.Run("SQLite backend - non-existent file", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "non_existent.db")
		err := ClearCache(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearCache on non-existent file should not error")
	})

	t.Run("NoneBackend", func(t *testing.T) {
		err := ClearCache(schema.NoneBackend, "", "")
		assert.NoError(t, err, "ClearCache with NoneBackend should not error")
	})

	t.Run("empty dbFilePath for SQLite", func(t *testing.T) {
		err := ClearCache(schema.SQLiteBackend, "", "")
		assert.Error(t, err, "Expected error for empty dbFilePath with SQLite backend")
	})

	t.Run("unsupported backend", func(t *testing.T) {
		err := ClearCache("unsupported", "", "")
		assert.Error(t, err, "Expected error for unsupported backend")
	})
}

func TestClearSnapshots(t *testing.T) {
	t.Run("SQLite backend", func(t *testing.T) {
		tmpDir := t.TempDir()
		dbPath := filepath.Join(tmpDir, "test_snapshots.db")

		store, err := NewSnapshotStore(schema.SQLiteBackend, dbPath)
		assert.NoError(t, err, "Failed to create snapshot store")
		assert.NoError(t, store.Close())

		err = ClearSnapshots(schema.SQLiteBackend, dbPath, "")
		assert.NoError(t, err, "ClearSnapshots should not fail")

		_, err = os.Stat(dbPath)
		assert.True(t, os.IsNotExist(err), "Database file should be removed after ClearSnapshots")
	})

	t.Run("NoneBackend", func(t *testing.T) {
		err := ClearSnapshots(schema.NoneBackend, "", "")
		assert.NoError(t, err, "ClearSnapshots with NoneBackend should not error")
	})

	t.Run("empty dbFilePath for SQLite", func(t *testing.T) {
		err := ClearSnapshots(schema.SQLiteBackend, "", "")
		assert.Error(t, err, "Expected error for empty dbFilePath with SQLite backend")
	})
}
