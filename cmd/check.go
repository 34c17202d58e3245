package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on dataset health validation for pipelines.
var checkCmd = &cobra.Command{
	Use:   "check [dataset]",
	Short: "Validate a season dataset (fails on schema or data problems)",
	Long: `Validate a season dataset and fail with a non-zero exit code on problems.

Checks that the required columns are present, that every row parses, and that
conferences are recognized. Skipped rows are reported individually.

Designed for data pipelines: run it before publishing a refreshed dataset so
downstream standings jobs never see a broken file.

Examples:
  # Validate the default dataset
  courtside check

  # Validate a refreshed Parquet export
  courtside check latest.parquet

  # Gate a pipeline step
  courtside check season.csv && publish-dataset season.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Validation is done in ExecuteSeasonCheck
		if err := core.ExecuteSeasonCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Dataset check failed", err)
		}
	},
}
