package cmd

import (
	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/spf13/cobra"
)

// mvpCmd prints the MVP ladder.
var mvpCmd = &cobra.Command{
	Use:   "mvp",
	Short: "Show the MVP race from the embedded league snapshot",
	Long: `Print the MVP ladder computed from the embedded league snapshot.

Candidates are scored on a blend of per-game production and team success,
then ranked. Like leaders, this works offline without a season dataset.

Examples:
  # Current MVP ladder
  courtside mvp

  # Only the top 3 candidates
  courtside mvp --limit 3`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMVP(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run mvp", err)
		}
	},
}
