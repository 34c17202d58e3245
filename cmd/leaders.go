package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// leadersCmd prints the per-category player leaderboard.
var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show the league leaders for a stat category",
	Long: `Print the top players for a stat category from the embedded league snapshot.

Categories: points, assists, rebounds, threes, steals.

This command works offline and does not read a season dataset.

Examples:
  # Scoring leaders
  courtside leaders

  # Top 10 in assists
  courtside leaders --category assists --limit 10`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLeaders(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run leaders", err)
		}
	},
}
