// Package source loads season datasets from CSV, Parquet and SQLite files.
package source

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
)

// Open returns the season source for the configured dataset path and format.
func Open(cfg *contract.Config) (contract.SeasonSource, error) {
	switch cfg.InputFormat {
	case schema.CSVFormat:
		return NewCSVSource(cfg.DatasetPath)
	case schema.ParquetFormat:
		return NewParquetSource(cfg.DatasetPath)
	case schema.SQLiteFormat:
		return NewSQLiteSource(cfg.DatasetPath)
	default:
		return nil, fmt.Errorf("unsupported input format: %s", cfg.InputFormat)
	}
}

// fingerprintFile returns the hex SHA-256 of the file contents. The hash keys
// memoized results, so any edit to the dataset invalidates its cache entries.
func fingerprintFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// buildRecords converts raw string rows into team records. Rows that fail
// parsing are skipped and reported as issues rather than failing the load.
// A missing required column is not recoverable and returns a SchemaError.
func buildRecords(sourceName string, columns []string, rows [][]string) ([]schema.TeamRecord, []string, error) {
	colIndex := make(map[string]int, len(columns))
	for i, col := range columns {
		colIndex[strings.ToLower(strings.TrimSpace(col))] = i
	}

	var missing []string
	for _, required := range schema.RequiredColumns {
		if _, ok := colIndex[required]; !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &schema.SchemaError{Source: sourceName, Missing: missing}
	}

	teamIDIdx, hasTeamID := colIndex["team_id"]

	records := make([]schema.TeamRecord, 0, len(rows))
	var issues []string
	for i, row := range rows {
		// Row numbering is 1-based and counts data rows only
		rowNum := i + 1
		if len(row) < len(columns) {
			issues = append(issues, fmt.Sprintf("row %d: expected %d fields, got %d", rowNum, len(columns), len(row)))
			continue
		}

		record, err := parseRecord(row, colIndex)
		if err != nil {
			issues = append(issues, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		if hasTeamID {
			if id, err := strconv.ParseInt(strings.TrimSpace(row[teamIDIdx]), 10, 64); err == nil {
				record.TeamID = id
			}
		}
		records = append(records, record)
	}
	return records, issues, nil
}

// parseRecord parses one data row into a team record.
func parseRecord(row []string, colIndex map[string]int) (schema.TeamRecord, error) {
	var record schema.TeamRecord

	record.Team = strings.TrimSpace(row[colIndex["team"]])
	if record.Team == "" {
		return record, &schema.InvalidInputError{Field: "team", Reason: "team name is empty"}
	}

	conference, ok := schema.ParseConference(row[colIndex["conference"]])
	if !ok {
		return record, fmt.Errorf("unknown conference %q", strings.TrimSpace(row[colIndex["conference"]]))
	}
	record.Conference = conference

	wins, err := parseCount("wins", row[colIndex["wins"]])
	if err != nil {
		return record, err
	}
	losses, err := parseCount("losses", row[colIndex["losses"]])
	if err != nil {
		return record, err
	}
	record.Wins = wins
	record.Losses = losses

	ppg, err := parseAverage("ppg", row[colIndex["ppg"]])
	if err != nil {
		return record, err
	}
	oppg, err := parseAverage("oppg", row[colIndex["oppg"]])
	if err != nil {
		return record, err
	}
	record.PPG = ppg
	record.OPPG = oppg

	return record, nil
}

// parseCount parses a non-negative integer field like wins or losses.
func parseCount(field, raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s %q as an integer", field, strings.TrimSpace(raw))
	}
	if value < 0 {
		return 0, &schema.InvalidInputError{Field: field, Value: float64(value), Reason: "count cannot be negative"}
	}
	return value, nil
}

// parseAverage parses a scoring average field like ppg or oppg.
func parseAverage(field, raw string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %s %q as a number", field, strings.TrimSpace(raw))
	}
	return value, nil
}
