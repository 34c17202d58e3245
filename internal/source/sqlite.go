package source

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"

	// SQLite driver
	_ "modernc.org/sqlite"
)

// SQLiteSource loads a season dataset from the teams table of a SQLite database.
type SQLiteSource struct {
	db          *sql.DB
	path        string
	fingerprint string
}

var _ contract.SeasonSource = &SQLiteSource{}

// NewSQLiteSource opens the database read path and fingerprints the file.
func NewSQLiteSource(path string) (*SQLiteSource, error) {
	fingerprint, err := fingerprintFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read dataset %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	// SQLite performs best with a single connection
	db.SetMaxOpenConns(1)

	return &SQLiteSource{db: db, path: path, fingerprint: fingerprint}, nil
}

// Load queries the teams table and converts every row into a team record.
// Column order in the table does not matter since rows are matched by name.
func (s *SQLiteSource) Load(ctx context.Context) ([]schema.TeamRecord, []string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT * FROM teams")
	if err != nil {
		return nil, nil, fmt.Errorf("cannot query teams table in %s: %w", filepath.Base(s.path), err)
	}
	defer func() { _ = rows.Close() }()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var raw [][]string
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, nil, err
		}

		row := make([]string, len(columns))
		for i, value := range values {
			row[i] = stringifyColumn(value)
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return buildRecords(filepath.Base(s.path), columns, raw)
}

// stringifyColumn renders a scanned SQL value so the shared row parser can
// handle it the same way as a CSV field.
func stringifyColumn(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []byte:
		return string(v)
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Fingerprint returns the dataset content hash.
func (s *SQLiteSource) Fingerprint() string {
	return s.fingerprint
}

// Close closes the underlying database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}
