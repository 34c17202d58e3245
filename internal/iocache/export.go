package iocache

import (
	"errors"
	"fmt"

	"github.com/hoopworks/courtside/internal/parquet"
)

// ExecuteSnapshotExport performs the actual export of snapshot data to Parquet files.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot store is not configured")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no snapshot data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total standings runs: %d\n", status.TotalRuns)
	fmt.Printf("Total standing rows: %d\n", status.TableSizes[snapshotStandingsTable])

	// Retrieve all standings runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve standings runs: %w", err)
	}

	// Retrieve all standing rows
	standings, err := store.GetAllStandings()
	if err != nil {
		return fmt.Errorf("failed to retrieve standings: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetStandings := parquet.ConvertStandingRecords(standings)

	// Write standings runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write standings runs: %w", err)
	}
	fmt.Printf("Exported %d standings runs to: %s\n", len(parquetRuns), runsFile)

	// Write standing rows to Parquet
	standingsFile := outputFile + ".standings.parquet"
	if err := parquet.WriteStandingsParquet(parquetStandings, standingsFile); err != nil {
		return fmt.Errorf("failed to write standings: %w", err)
	}
	fmt.Printf("Exported %d standing rows to: %s\n", len(parquetStandings), standingsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
