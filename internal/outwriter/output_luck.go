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

// PrintLuckResults outputs the luck ranking extremes, dispatching based on the
// output format configured.
func PrintLuckResults(ranking schema.LuckRanking, issues []string, cfg *contract.Config, duration time.Duration) error {
	reportIssues(issues)

	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeLuckJSON(ranking, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeLuckCSV(ranking, cfg, fmtFloat, intFmt); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLuckTable(ranking, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// luckGroup tags which extreme a CSV row belongs to.
func luckGroup(ranking schema.LuckRanking, team string) string {
	for _, entry := range ranking.Lucky {
		if entry.Team == team {
			return "lucky"
		}
	}
	for _, entry := range ranking.Unlucky {
		if entry.Team == team {
			return "unlucky"
		}
	}
	return ""
}

// writeLuckJSON handles opening the file and calling the JSON writer.
func writeLuckJSON(ranking schema.LuckRanking, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONLuckEntry struct {
			Label string `json:"label"`
			schema.LuckEntry
		}
		type JSONLuckRanking struct {
			Lucky   []JSONLuckEntry `json:"lucky"`
			Unlucky []JSONLuckEntry `json:"unlucky"`
		}

		wrap := func(entries []schema.LuckEntry) []JSONLuckEntry {
			out := make([]JSONLuckEntry, len(entries))
			for i, entry := range entries {
				out[i] = JSONLuckEntry{
					Label:     contract.GetPlainLabel(entry.LuckIndex),
					LuckEntry: entry,
				}
			}
			return out
		}

		return writeJSON(w, JSONLuckRanking{
			Lucky:   wrap(ranking.Lucky),
			Unlucky: wrap(ranking.Unlucky),
		})
	}, "Wrote JSON")
}

// writeLuckCSV writes the full luck table with a group tag per row.
func writeLuckCSV(ranking schema.LuckRanking, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"rank", "team", "conference", "wins", "losses", "expected_wins", "luck_index", "label", "group"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for i, entry := range ranking.Entries {
				rec := []string{
					strconv.Itoa(i + 1),
					entry.Team,
					string(entry.Conference),
					fmt.Sprintf(intFmt, entry.Wins),
					fmt.Sprintf(intFmt, entry.Losses),
					fmtFloat(entry.ExpectedWins),
					fmtFloat(entry.LuckIndex),
					contract.GetPlainLabel(entry.LuckIndex),
					luckGroup(ranking, entry.Team),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeLuckTable renders the lucky and unlucky extremes as two table sections.
func writeLuckTable(ranking schema.LuckRanking, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	sections := []struct {
		title   string
		entries []schema.LuckEntry
	}{
		{title: "🍀 Overperforming", entries: ranking.Lucky},
		{title: "🪨 Underperforming", entries: ranking.Unlucky},
	}

	nameWidth := getMaxTableNameWidth(cfg)
	for _, section := range sections {
		if _, err := fmt.Fprintf(writer, "%s\n", section.title); err != nil {
			return err
		}

		table := tablewriter.NewWriter(writer)
		table.Header([]string{"Team", "Record", "Exp Wins", "Luck", "Label"})
		table.Configure(func(tableCfg *tablewriter.Config) {
			tableCfg.Row.Alignment.Global = tw.AlignRight
		})

		var data [][]string
		for _, entry := range section.entries {
			data = append(data, []string{
				contract.TruncateName(entry.Team, nameWidth),
				schema.FormatRecord(entry.Wins, entry.Losses),
				fmtFloat(entry.ExpectedWins),
				fmtFloat(entry.LuckIndex),
				luckLabel(entry.LuckIndex, cfg),
			})
		}

		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(writer, "Luck index over %d teams, exponent %g\n", len(ranking.Entries), cfg.Exponent); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v. Cache backend: %s\n", duration, cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}
