package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintStandings outputs the ranked conference table, dispatching based on the
// output format configured.
func PrintStandings(standings []schema.ConferenceStanding, issues []string, cfg *contract.Config, duration time.Duration) error {
	reportIssues(issues)

	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision + 2)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeStandingsJSON(standings, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeStandingsCSV(standings, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStandingsTable(standings, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeStandingsJSON handles opening the file and calling the JSON writer.
func writeStandingsJSON(standings []schema.ConferenceStanding, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONStanding struct {
			Record string `json:"record"`
			Logo   string `json:"logo,omitempty"`
			schema.ConferenceStanding
		}

		output := make([]JSONStanding, len(standings))
		for i, s := range standings {
			output[i] = JSONStanding{
				Record:             schema.FormatRecord(s.Wins, s.Losses),
				Logo:               schema.TeamLogoURL(s.TeamID),
				ConferenceStanding: s,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeStandingsCSV handles opening the file and calling the CSV writer.
func writeStandingsCSV(standings []schema.ConferenceStanding, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"rank", "team", "conference", "wins", "losses", "win_pct"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, s := range standings {
				rec := []string{
					strconv.Itoa(s.Rank),
					s.Team,
					string(s.Conference),
					fmt.Sprintf(intFmt, s.Wins),
					fmt.Sprintf(intFmt, s.Losses),
					fmtFloat(s.WinPct),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeStandingsTable generates and writes the human-readable table.
func writeStandingsTable(standings []schema.ConferenceStanding, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Team", "Conf", "Record", "Pct"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, s := range standings {
		data = append(data, []string{
			strconv.Itoa(s.Rank),
			contract.TruncateName(s.Team, nameWidth),
			string(s.Conference),
			schema.FormatRecord(s.Wins, s.Losses),
			fmtFloat(s.WinPct),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Showing %d teams (%s)\n", len(standings), cfg.Conference.DisplayName()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
