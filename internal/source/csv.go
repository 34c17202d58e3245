package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
)

// CSVSource loads a season dataset from a comma-separated file with a header row.
type CSVSource struct {
	path        string
	fingerprint string
}

var _ contract.SeasonSource = &CSVSource{}

// NewCSVSource creates a CSV season source and fingerprints the file.
func NewCSVSource(path string) (*CSVSource, error) {
	fingerprint, err := fingerprintFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset %s: %w", path, err)
	}
	return &CSVSource{path: path, fingerprint: fingerprint}, nil
}

// Load reads the header and all data rows, then converts them into team records.
func (s *CSVSource) Load(ctx context.Context) ([]schema.TeamRecord, []string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // short rows become per-row issues, not a hard failure

	// first line contains the header information
	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot parse %s: %w", filepath.Base(s.path), err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("dataset %s is empty", filepath.Base(s.path))
	}

	return buildRecords(filepath.Base(s.path), all[0], all[1:])
}

// Fingerprint returns the dataset content hash.
func (s *CSVSource) Fingerprint() string {
	return s.fingerprint
}

// Close is a no-op since the file handle only lives for the duration of Load.
func (s *CSVSource) Close() error {
	return nil
}
