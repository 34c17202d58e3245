package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMatchupResult outputs a single matchup estimate, dispatching based on
// the output format configured.
func PrintMatchupResult(estimate schema.MatchupEstimate, issues []string, cfg *contract.Config, duration time.Duration) error {
	reportIssues(issues)

	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeMatchupJSON(estimate, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMatchupCSV(estimate, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchupTable(estimate, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeMatchupJSON handles opening the file and calling the JSON writer.
func writeMatchupJSON(estimate schema.MatchupEstimate, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONMatchup struct {
			HomeAdvantage float64 `json:"home_advantage"`
			schema.MatchupEstimate
		}
		return writeJSON(w, JSONMatchup{
			HomeAdvantage:   cfg.HomeAdvantage,
			MatchupEstimate: estimate,
		})
	}, "Wrote JSON")
}

// writeMatchupCSV writes one row per side of the matchup.
func writeMatchupCSV(estimate schema.MatchupEstimate, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"side", "team", "season_pct", "win_prob"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			rows := [][]string{
				{"home", estimate.HomeTeam, fmtFloat(estimate.HomePct * 100), fmtFloat(estimate.HomeProb)},
				{"away", estimate.AwayTeam, fmtFloat(estimate.AwayPct * 100), fmtFloat(estimate.AwayProb)},
			}
			for _, row := range rows {
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeMatchupTable renders the two sides as a compact table.
func writeMatchupTable(estimate schema.MatchupEstimate, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Side", "Team", "Season Pct", "Win Prob"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	data := [][]string{
		{"🏠 Home", contract.TruncateName(estimate.HomeTeam, nameWidth), fmtFloat(estimate.HomePct*100) + "%", fmtFloat(estimate.HomeProb) + "%"},
		{"✈️ Away", contract.TruncateName(estimate.AwayTeam, nameWidth), fmtFloat(estimate.AwayPct*100) + "%", fmtFloat(estimate.AwayProb) + "%"},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Home advantage %g, clamped to [%g, %g]\n", cfg.HomeAdvantage, cfg.ProbFloor, cfg.ProbCeiling); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
