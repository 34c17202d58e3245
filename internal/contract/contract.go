// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/hoopworks/courtside/schema"
)

// SeasonSource defines the operations for loading a season dataset.
// This allows the core analytics to be tested without real files and keeps
// the storage format out of the computation layer.
type SeasonSource interface {
	// Load reads the full team set. Rows that fail numeric parsing or carry
	// an unknown conference are skipped and reported as issue strings; a
	// missing required column fails with a schema.SchemaError.
	Load(ctx context.Context) ([]schema.TeamRecord, []string, error)

	// Fingerprint returns a stable content hash of the dataset, used as part
	// of memoization keys.
	Fingerprint() string

	// Close releases any underlying handles.
	Close() error
}

// StoreManager defines the interface for managing the persistence stores.
// This allows the store layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() ResultStore
	GetSnapshotStore() SnapshotStore
}

// ResultStore defines the interface for memoized result storage.
type ResultStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.StoreStatus, error)
	Close() error
}

// SnapshotStore defines the interface for recording standings runs.
type SnapshotStore interface {
	// BeginRun creates a new run row and returns its unique ID
	BeginRun(runTime time.Time, fingerprint string, params map[string]any) (int64, error)

	// EndRun updates the run with its final team count
	EndRun(runID int64, teamCount int) error

	// RecordStanding stores one ranked standing row for a run
	RecordStanding(runID int64, standing schema.ConferenceStanding, luck schema.LuckEntry) error

	// GetStatus returns status information about the snapshot store
	GetStatus() (schema.SnapshotStatus, error)

	// GetAllRuns retrieves every recorded run, oldest first
	GetAllRuns() ([]schema.SnapshotRunRecord, error)

	// GetAllStandings retrieves every recorded standing row
	GetAllStandings() ([]schema.StandingRecord, error)

	// Close closes the underlying connection
	Close() error
}
