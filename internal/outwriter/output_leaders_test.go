package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLeadersTable(t *testing.T) {
	leaders := schema.GetLeaders(schema.PointsCategory)
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		Category:  schema.PointsCategory,
		Width:     120,
	}
	fmtFloat, _ := createFormatters(cfg.Precision)

	var buf bytes.Buffer
	err := writeLeadersTable(leaders, cfg, fmtFloat, 10*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "PPG")
	assert.Contains(t, output, "Luka Doncic")
	assert.Contains(t, output, "League leaders as of "+schema.LeagueSnapshotDate)
}

func TestPrintLeaderResultsJSON(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "leaders.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		Precision:  1,
		Category:   schema.ReboundsCategory,
		OutputFile: outputFile,
	}

	err := PrintLeaderResults(schema.GetLeaders(schema.ReboundsCategory), cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result, 6)
	assert.Equal(t, "rebounds", result[0]["category"])
	assert.Contains(t, result[0]["headshot"], "cdn.nba.com/headshots")
}

func TestPrintLeaderResultsCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "leaders.csv")
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		Precision:  1,
		Category:   schema.PointsCategory,
		OutputFile: outputFile,
	}

	err := PrintLeaderResults(schema.GetLeaders(schema.PointsCategory), cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 7) // header + 6 leaders
	assert.Equal(t, "rank,player,team,category,value,headshot", lines[0])
	assert.Contains(t, lines[1], "Luka Doncic")
	assert.Contains(t, lines[1], "points")
}

func TestWriteMVPTable(t *testing.T) {
	cfg := &contract.Config{
		Output:    schema.TextOut,
		Precision: 1,
		Width:     120,
	}

	var buf bytes.Buffer
	err := writeMVPTable(schema.GetMVPRace(), cfg, 10*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Nikola Jokic")
	assert.Contains(t, output, "PIE")
	assert.Contains(t, output, "MVP race as of "+schema.LeagueSnapshotDate)
}

func TestPrintMVPResultsJSON(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "mvp.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		OutputFile: outputFile,
	}

	err := PrintMVPResults(schema.GetMVPRace(), cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result, 5)
	assert.Equal(t, "Nikola Jokic", result[0]["name"])
	assert.Contains(t, result[0]["headshot"], "cdn.nba.com/headshots")
}
