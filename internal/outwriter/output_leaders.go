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

// PrintLeaderResults outputs the per-category leaderboard, dispatching based
// on the output format configured.
func PrintLeaderResults(leaders []schema.PlayerLeader, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeLeadersJSON(leaders, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeLeadersCSV(leaders, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeLeadersTable(leaders, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeLeadersJSON handles opening the file and calling the JSON writer.
func writeLeadersJSON(leaders []schema.PlayerLeader, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		type JSONLeader struct {
			Category string `json:"category"`
			Headshot string `json:"headshot,omitempty"`
			schema.PlayerLeader
		}

		output := make([]JSONLeader, len(leaders))
		for i, leader := range leaders {
			output[i] = JSONLeader{
				Category:     string(cfg.Category),
				Headshot:     schema.PlayerHeadshotURL(leader.PlayerID),
				PlayerLeader: leader,
			}
		}
		return writeJSON(w, output)
	}, "Wrote JSON")
}

// writeLeadersCSV handles opening the file and calling the CSV writer.
func writeLeadersCSV(leaders []schema.PlayerLeader, cfg *contract.Config, fmtFloat func(float64) string) error {
	header := []string{"rank", "player", "team", "category", "value", "headshot"}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, leader := range leaders {
				rec := []string{
					strconv.Itoa(leader.Rank),
					leader.Name,
					leader.Team,
					string(cfg.Category),
					fmtFloat(leader.Value),
					schema.PlayerHeadshotURL(leader.PlayerID),
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeLeadersTable generates and writes the human-readable table.
func writeLeadersTable(leaders []schema.PlayerLeader, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Player", "Team", schema.CategoryLabel(cfg.Category)})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, leader := range leaders {
		data = append(data, []string{
			strconv.Itoa(leader.Rank),
			contract.TruncateName(leader.Name, nameWidth),
			leader.Team,
			fmtFloat(leader.Value),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "League leaders as of %s\n", schema.LeagueSnapshotDate); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// PrintMVPResults outputs the MVP ladder, dispatching based on the output
// format configured.
func PrintMVPResults(race []schema.MVPCandidate, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			type JSONCandidate struct {
				Headshot string `json:"headshot,omitempty"`
				schema.MVPCandidate
			}
			output := make([]JSONCandidate, len(race))
			for i, candidate := range race {
				output[i] = JSONCandidate{
					Headshot:     schema.PlayerHeadshotURL(candidate.PlayerID),
					MVPCandidate: candidate,
				}
			}
			return writeJSON(w, output)
		}, "Wrote JSON")
	case schema.CSVOut:
		header := []string{"rank", "player", "team", "pie"}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, candidate := range race {
					rec := []string{
						strconv.Itoa(candidate.Rank),
						candidate.Name,
						candidate.Team,
						fmt.Sprintf("%.2f", candidate.PIE),
					}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMVPTable(race, cfg, duration, w)
		}, "Wrote table")
	}
}

// writeMVPTable generates and writes the human-readable MVP ladder.
func writeMVPTable(race []schema.MVPCandidate, cfg *contract.Config, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Rank", "Player", "Team", "PIE"})
	table.Configure(func(tableCfg *tablewriter.Config) {
		tableCfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for _, candidate := range race {
		data = append(data, []string{
			strconv.Itoa(candidate.Rank),
			contract.TruncateName(candidate.Name, nameWidth),
			candidate.Team,
			fmt.Sprintf("%.2f", candidate.PIE),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "MVP race as of %s\n", schema.LeagueSnapshotDate); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
