package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// matchupCmd estimates win probabilities for a single pairing.
var matchupCmd = &cobra.Command{
	Use:   "matchup [dataset]",
	Short: "Estimate win probabilities for a home/away pairing",
	Long: `Estimate the home team's win probability from both teams' season records.

The estimate starts at 50%, moves by the win percentage gap between the two
teams, adds a flat home-court bonus and clamps the result to a configurable
probability band. Team names match on full name or a unique fragment, so
"--home Denver" resolves to the Denver Nuggets.

Examples:
  # Nuggets hosting the Celtics
  courtside matchup --home Denver --away Boston

  # Neutral court (no home bonus)
  courtside matchup --home "Golden State" --away Phoenix --home-advantage 0

  # Wider clamp band
  courtside matchup --home Miami --away Dallas --prob-floor 1 --prob-ceiling 99`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMatchup(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run matchup estimate", err)
		}
	},
}
