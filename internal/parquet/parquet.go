// Package parquet provides data structures and functions for exporting
// standings snapshot data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/hoopworks/courtside/schema"
	"github.com/parquet-go/parquet-go"
)

// StandingsRun represents a single standings computation run with metadata.
// This struct maps to the courtside_runs database table.
type StandingsRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RunTime is when the standings were computed (stored as TIMESTAMP with nanosecond precision)
	RunTime time.Time `parquet:"run_time,snappy"`

	// Fingerprint is the SHA-256 content hash of the dataset the run used
	Fingerprint string `parquet:"fingerprint,snappy"`

	// TeamCount is the number of teams ranked in this run
	TeamCount int32 `parquet:"team_count,snappy"`

	// Params contains the JSON-encoded analytics parameters (nullable)
	Params *string `parquet:"params,optional,snappy"`
}

// StandingRow represents one ranked team inside a standings run.
// This struct maps to the courtside_standings database table.
type StandingRow struct {
	// RunID references the parent standings run
	RunID int64 `parquet:"run_id,snappy"`

	// Team is the full team name
	Team string `parquet:"team,snappy"`

	// Conference is the conference the team plays in
	Conference string `parquet:"conference,snappy"`

	// Rank is the 1-based position within the requested conference scope
	Rank int32 `parquet:"team_rank,snappy"`

	// Wins is the number of games won
	Wins int32 `parquet:"wins,snappy"`

	// Losses is the number of games lost
	Losses int32 `parquet:"losses,snappy"`

	// WinPct is the actual winning percentage
	WinPct float64 `parquet:"win_pct,snappy"`

	// ExpectedWinPct is the Pythagorean expected winning percentage
	ExpectedWinPct float64 `parquet:"expected_win_pct,snappy"`

	// ExpectedWins is the expected win total over games played
	ExpectedWins float64 `parquet:"expected_wins,snappy"`

	// LuckIndex is actual wins minus expected wins
	LuckIndex float64 `parquet:"luck_index,snappy"`
}

// WriteRunsParquet writes a slice of StandingsRun structs to a Parquet file.
func WriteRunsParquet(data []StandingsRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the StandingsRun struct tags
	writer := parquet.NewGenericWriter[StandingsRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteStandingsParquet writes a slice of StandingRow structs to a Parquet file.
func WriteStandingsParquet(data []StandingRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the StandingRow struct tags
	writer := parquet.NewGenericWriter[StandingRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// MockFetchStandingsRuns generates sample StandingsRun data for demonstration.
func MockFetchStandingsRuns() []StandingsRun {
	now := time.Now()
	params1 := `{"conference":"West","exponent":14}`
	params2 := `{"conference":"ALL","exponent":16.5}`

	return []StandingsRun{
		{
			RunID:       1,
			RunTime:     now.Add(-48 * time.Hour),
			Fingerprint: "1d4f5a6b7c8d9e0f1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d3e4f",
			TeamCount:   15,
			Params:      &params1,
		},
		{
			RunID:       2,
			RunTime:     now.Add(-24 * time.Hour),
			Fingerprint: "2e5f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f",
			TeamCount:   30,
			Params:      &params2,
		},
		{
			RunID:       3,
			RunTime:     now.Add(-10 * time.Minute),
			Fingerprint: "3f6a7b8c9d0e1f2a3b4c5d6e7f8a9b0c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a",
			TeamCount:   0,
			Params:      nil, // No params stored - nullable field
		},
	}
}

// MockFetchStandingRows generates sample StandingRow data for demonstration.
func MockFetchStandingRows() []StandingRow {
	return []StandingRow{
		{
			RunID:          1,
			Team:           "Denver Nuggets",
			Conference:     "West",
			Rank:           1,
			Wins:           25,
			Losses:         5,
			WinPct:         0.833,
			ExpectedWinPct: 0.782,
			ExpectedWins:   23.5,
			LuckIndex:      1.5,
		},
		{
			RunID:          1,
			Team:           "Minnesota Timberwolves",
			Conference:     "West",
			Rank:           2,
			Wins:           15,
			Losses:         15,
			WinPct:         0.5,
			ExpectedWinPct: 0.5,
			ExpectedWins:   15.0,
			LuckIndex:      0.0,
		},
		{
			RunID:          2,
			Team:           "Boston Celtics",
			Conference:     "East",
			Rank:           1,
			Wins:           24,
			Losses:         6,
			WinPct:         0.8,
			ExpectedWinPct: 0.85,
			ExpectedWins:   25.5,
			LuckIndex:      -1.5,
		},
	}
}

// ConvertRunRecords converts schema.SnapshotRunRecord to StandingsRun for Parquet export.
func ConvertRunRecords(records []schema.SnapshotRunRecord) []StandingsRun {
	result := make([]StandingsRun, len(records))
	for i, record := range records {
		result[i] = StandingsRun{
			RunID:       record.RunID,
			RunTime:     record.RunTime,
			Fingerprint: record.Fingerprint,
			TeamCount:   record.TeamCount,
			Params:      record.Params,
		}
	}
	return result
}

// ConvertStandingRecords converts schema.StandingRecord to StandingRow for Parquet export.
func ConvertStandingRecords(records []schema.StandingRecord) []StandingRow {
	result := make([]StandingRow, len(records))
	for i, record := range records {
		result[i] = StandingRow{
			RunID:          record.RunID,
			Team:           record.Team,
			Conference:     record.Conference,
			Rank:           record.Rank,
			Wins:           record.Wins,
			Losses:         record.Losses,
			WinPct:         record.WinPct,
			ExpectedWinPct: record.ExpectedWinPct,
			ExpectedWins:   record.ExpectedWins,
			LuckIndex:      record.LuckIndex,
		}
	}
	return result
}
