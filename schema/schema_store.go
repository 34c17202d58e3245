package schema

import "time"

// StoreStatus represents the status of the result memoization store.
type StoreStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// SnapshotStatus represents the status of the standings snapshot store.
type SnapshotStatus struct {
	Backend        string           `json:"backend"`
	Connected      bool             `json:"connected"`
	TotalRuns      int              `json:"total_runs"`
	LastRunID      int64            `json:"last_run_id"`
	LastRunTime    time.Time        `json:"last_run_time"`
	OldestRunTime  time.Time        `json:"oldest_run_time"`
	TotalStandings int              `json:"total_standings"`
	TableSizes     map[string]int64 `json:"table_sizes"`
}

// SnapshotRunRecord is a row from the courtside_runs table.
type SnapshotRunRecord struct {
	RunID       int64
	RunTime     time.Time
	Fingerprint string // SHA-256 of the dataset the run was computed from
	TeamCount   int32
	Params      *string // JSON-encoded analytics parameters, nullable
}

// StandingRecord is a row from the courtside_standings table.
type StandingRecord struct {
	RunID          int64
	Team           string
	Conference     string
	Rank           int32
	Wins           int32
	Losses         int32
	WinPct         float64
	ExpectedWinPct float64
	ExpectedWins   float64
	LuckIndex      float64
}
