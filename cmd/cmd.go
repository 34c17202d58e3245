// Package cmd defines the command-line interface for courtside.
package cmd

import (
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(luckCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(mvpCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(snapshotCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("input-format", string(schema.AutoFormat), "Dataset format: auto or csv or parquet or sqlite")
	rootCmd.PersistentFlags().StringP("conference", "c", string(schema.AllConferences), "Conference to analyze: east or west or all")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("snapshot-backend", "", "Standings snapshot backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for snapshot tracking (must differ from cache-db-connect; MySQL DSNs need parseTime=true)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of luckCmd to Viper
	luckCmd.Flags().Float64("exponent", contract.DefaultExponent, "Pythagorean exponent for expected win percentage")
	luckCmd.Flags().Int("top-n", contract.DefaultTopN, "Number of teams to list per lucky/unlucky extreme")
	if err := viper.BindPFlags(luckCmd.Flags()); err != nil {
		contract.LogFatal("Error binding luck flags", err)
	}

	// Bind all flags of matchupCmd to Viper
	matchupCmd.Flags().String("home", "", "Home team name (full name or unique fragment)")
	matchupCmd.Flags().String("away", "", "Away team name (full name or unique fragment)")
	matchupCmd.Flags().Float64("home-advantage", contract.DefaultHomeAdvantage, "Home-court bonus in probability points")
	matchupCmd.Flags().Float64("prob-floor", contract.DefaultProbFloor, "Lower clamp for the estimated probability")
	matchupCmd.Flags().Float64("prob-ceiling", contract.DefaultProbCeiling, "Upper clamp for the estimated probability")
	if err := viper.BindPFlags(matchupCmd.Flags()); err != nil {
		contract.LogFatal("Error binding matchup flags", err)
	}

	// Bind all flags of leadersCmd to Viper
	leadersCmd.Flags().String("category", string(schema.PointsCategory), "Leaderboard category: points, assists, rebounds, threes, steals")
	if err := viper.BindPFlags(leadersCmd.Flags()); err != nil {
		contract.LogFatal("Error binding leaders flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
