package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// standingsCmd ranks teams by winning percentage.
var standingsCmd = &cobra.Command{
	Use:   "standings [dataset]",
	Short: "Rank teams by winning percentage",
	Long: `Rank all teams in a conference (or the whole league) by winning percentage.

Reads a season dataset (CSV, Parquet or SQLite), computes each team's win
percentage and prints a ranked table. Ties keep the dataset's original order,
so ranking is deterministic across runs.

When a snapshot backend is configured, every standings run is also recorded
for longitudinal analysis and Parquet export.

Examples:
  # Full league table from the default dataset
  courtside standings

  # Eastern Conference only, top 10
  courtside standings --conference east --limit 10

  # From a Parquet dataset, as JSON
  courtside standings season.parquet --output json

  # Record runs into the snapshot store
  courtside standings --snapshot-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteStandings(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run standings", err)
		}
	},
}
