package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// luckCmd ranks teams by Pythagorean luck index.
var luckCmd = &cobra.Command{
	Use:   "luck [dataset]",
	Short: "Rank teams by Pythagorean luck index",
	Long: `Compare actual wins against Pythagorean expected wins to find the teams
whose records outrun (or trail) their scoring margins.

Expected win percentage comes from the Pythagorean formula
pf^E / (pf^E + pa^E) using per-game scoring averages. The luck index is
actual wins minus expected wins: positive means the team wins more than its
point differential supports.

Examples:
  # Top 5 lucky and unlucky teams
  courtside luck

  # Wider extremes with a custom exponent
  courtside luck --top-n 8 --exponent 16.5

  # Export the table as CSV
  courtside luck --output csv --output-file luck.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteLuck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run luck ranking", err)
		}
	},
}
