package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/parquet-go/parquet-go"
)

// parquetTeamRow mirrors one row of a season dataset in Parquet form.
type parquetTeamRow struct {
	Team       string  `parquet:"team"`
	TeamID     *int64  `parquet:"team_id,optional"`
	Conference string  `parquet:"conference"`
	Wins       int64   `parquet:"wins"`
	Losses     int64   `parquet:"losses"`
	PPG        float64 `parquet:"ppg"`
	OPPG       float64 `parquet:"oppg"`
}

// ParquetSource loads a season dataset from a Parquet file.
type ParquetSource struct {
	path        string
	fingerprint string
}

var _ contract.SeasonSource = &ParquetSource{}

// NewParquetSource creates a Parquet season source and fingerprints the file.
func NewParquetSource(path string) (*ParquetSource, error) {
	fingerprint, err := fingerprintFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset %s: %w", path, err)
	}
	return &ParquetSource{path: path, fingerprint: fingerprint}, nil
}

// Load verifies the file schema carries the required columns, then reads all
// row groups into team records.
func (s *ParquetSource) Load(ctx context.Context) ([]schema.TeamRecord, []string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	pf, err := parquet.OpenFile(f, info.Size())
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse %s: %w", filepath.Base(s.path), err)
	}

	var missing []string
	for _, required := range schema.RequiredColumns {
		if _, ok := pf.Schema().Lookup(required); !ok {
			missing = append(missing, required)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &schema.SchemaError{Source: filepath.Base(s.path), Missing: missing}
	}

	reader := parquet.NewGenericReader[parquetTeamRow](pf)
	defer func() { _ = reader.Close() }()

	rows := make([]parquetTeamRow, reader.NumRows())
	if _, err := reader.Read(rows); err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("cannot read %s: %w", filepath.Base(s.path), err)
	}

	records := make([]schema.TeamRecord, 0, len(rows))
	var issues []string
	for i, row := range rows {
		rowNum := i + 1
		record, err := convertParquetRow(row)
		if err != nil {
			issues = append(issues, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		records = append(records, record)
	}
	return records, issues, nil
}

// convertParquetRow validates and converts one Parquet row.
func convertParquetRow(row parquetTeamRow) (schema.TeamRecord, error) {
	var record schema.TeamRecord

	if row.Team == "" {
		return record, &schema.InvalidInputError{Field: "team", Reason: "team name is empty"}
	}
	record.Team = row.Team

	conference, ok := schema.ParseConference(row.Conference)
	if !ok {
		return record, fmt.Errorf("unknown conference %q", row.Conference)
	}
	record.Conference = conference

	if row.Wins < 0 {
		return record, &schema.InvalidInputError{Field: "wins", Value: float64(row.Wins), Reason: "count cannot be negative"}
	}
	if row.Losses < 0 {
		return record, &schema.InvalidInputError{Field: "losses", Value: float64(row.Losses), Reason: "count cannot be negative"}
	}
	record.Wins = int(row.Wins)
	record.Losses = int(row.Losses)
	record.PPG = row.PPG
	record.OPPG = row.OPPG
	if row.TeamID != nil {
		record.TeamID = *row.TeamID
	}

	return record, nil
}

// Fingerprint returns the dataset content hash.
func (s *ParquetSource) Fingerprint() string {
	return s.fingerprint
}

// Close is a no-op since the file handle only lives for the duration of Load.
func (s *ParquetSource) Close() error {
	return nil
}
