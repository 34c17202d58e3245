package source

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCSV = `team,conference,wins,losses,ppg,oppg,team_id
Denver Nuggets,West,25,5,115.0,105.0,1610612743
Boston Celtics,East,24,6,120.5,108.2,1610612738
Washington Wizards,East,5,25,108.0,121.5,1610612764
`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVSourceLoad(t *testing.T) {
	path := writeTempFile(t, "season.csv", validCSV)

	src, err := NewCSVSource(path)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 3)

	assert.Equal(t, "Denver Nuggets", records[0].Team)
	assert.Equal(t, schema.WestConference, records[0].Conference)
	assert.Equal(t, 25, records[0].Wins)
	assert.Equal(t, 5, records[0].Losses)
	assert.InDelta(t, 115.0, records[0].PPG, 1e-9)
	assert.Equal(t, int64(1610612743), records[0].TeamID)
}

func TestCSVSourceSkipsBadRows(t *testing.T) {
	content := `team,conference,wins,losses,ppg,oppg
Denver Nuggets,West,25,5,115.0,105.0
Atlantis Sharks,Atlantic,10,10,100.0,100.0
Miami Heat,East,-3,5,101.0,99.0
Phoenix Suns,West,twenty,5,112.0,110.0
Boston Celtics,East,24,6,120.5,108.2
`
	path := writeTempFile(t, "season.csv", content)

	src, err := NewCSVSource(path)
	require.NoError(t, err)

	records, issues, err := src.Load(context.Background())
	require.NoError(t, err)

	// Bad conference, negative wins and unparseable wins are all skipped
	require.Len(t, records, 2)
	assert.Equal(t, "Denver Nuggets", records[0].Team)
	assert.Equal(t, "Boston Celtics", records[1].Team)

	require.Len(t, issues, 3)
	assert.Contains(t, issues[0], "row 2")
	assert.Contains(t, issues[0], "unknown conference")
	assert.Contains(t, issues[1], "count cannot be negative")
	assert.Contains(t, issues[2], "cannot parse wins")
}

func TestCSVSourceMissingColumns(t *testing.T) {
	content := `team,conference,wins,ppg
Denver Nuggets,West,25,115.0
`
	path := writeTempFile(t, "season.csv", content)

	src, err := NewCSVSource(path)
	require.NoError(t, err)

	_, _, err = src.Load(context.Background())
	var schemaErr *schema.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Equal(t, []string{"losses", "oppg"}, schemaErr.Missing)
}

func TestCSVSourceFingerprint(t *testing.T) {
	pathA := writeTempFile(t, "a.csv", validCSV)
	pathB := writeTempFile(t, "b.csv", validCSV+"Miami Heat,East,18,12,101.0,99.0,1610612748\n")

	srcA, err := NewCSVSource(pathA)
	require.NoError(t, err)
	srcB, err := NewCSVSource(pathB)
	require.NoError(t, err)

	assert.NotEmpty(t, srcA.Fingerprint())
	assert.NotEqual(t, srcA.Fingerprint(), srcB.Fingerprint())

	// Same content yields the same fingerprint regardless of path
	pathC := writeTempFile(t, "c.csv", validCSV)
	srcC, err := NewCSVSource(pathC)
	require.NoError(t, err)
	assert.Equal(t, srcA.Fingerprint(), srcC.Fingerprint())
}

func TestParquetSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.parquet")

	id := int64(1610612743)
	rows := []parquetTeamRow{
		{Team: "Denver Nuggets", TeamID: &id, Conference: "West", Wins: 25, Losses: 5, PPG: 115.0, OPPG: 105.0},
		{Team: "Boston Celtics", Conference: "East", Wins: 24, Losses: 6, PPG: 120.5, OPPG: 108.2},
		{Team: "Lost City FC", Conference: "Atlantic", Wins: 1, Losses: 1, PPG: 100, OPPG: 100},
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	writer := parquet.NewGenericWriter[parquetTeamRow](f)
	_, err = writer.Write(rows)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	require.NoError(t, f.Close())

	src, err := NewParquetSource(path)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0], "unknown conference")

	assert.Equal(t, "Denver Nuggets", records[0].Team)
	assert.Equal(t, int64(1610612743), records[0].TeamID)
	assert.Equal(t, schema.EastConference, records[1].Conference)
	assert.Zero(t, records[1].TeamID)
}

func TestSQLiteSourceLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "season.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE teams (
		team TEXT,
		conference TEXT,
		wins INTEGER,
		losses INTEGER,
		ppg REAL,
		oppg REAL,
		team_id INTEGER
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO teams VALUES
		('Denver Nuggets', 'West', 25, 5, 115.0, 105.0, 1610612743),
		('Boston Celtics', 'East', 24, 6, 120.5, 108.2, 1610612738)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src, err := NewSQLiteSource(path)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, issues)
	require.Len(t, records, 2)
	assert.Equal(t, "Denver Nuggets", records[0].Team)
	assert.Equal(t, 25, records[0].Wins)
	assert.Equal(t, int64(1610612738), records[1].TeamID)
}

func TestSQLiteSourceMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE rosters (player TEXT)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	src, err := NewSQLiteSource(path)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	_, _, err = src.Load(context.Background())
	assert.Error(t, err)
}

func TestOpenDispatch(t *testing.T) {
	path := writeTempFile(t, "season.csv", validCSV)

	cfg := &contract.Config{DatasetPath: path, InputFormat: schema.CSVFormat}
	src, err := Open(cfg)
	require.NoError(t, err)
	_, ok := src.(*CSVSource)
	assert.True(t, ok)

	cfg.InputFormat = schema.InputFormat("xlsx")
	_, err = Open(cfg)
	assert.Error(t, err)

	cfg.InputFormat = schema.CSVFormat
	cfg.DatasetPath = filepath.Join(t.TempDir(), "missing.csv")
	_, err = Open(cfg)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
