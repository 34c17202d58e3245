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

func testStandings() []schema.ConferenceStanding {
	return []schema.ConferenceStanding{
		{
			Rank:   1,
			WinPct: 25.0 / 30.0,
			TeamRecord: schema.TeamRecord{
				Team: "Denver Nuggets", TeamID: 1610612743, Conference: schema.WestConference,
				Wins: 25, Losses: 5, PPG: 115.0, OPPG: 105.0,
			},
		},
		{
			Rank:   2,
			WinPct: 0.5,
			TeamRecord: schema.TeamRecord{
				Team: "Minnesota Timberwolves", Conference: schema.WestConference,
				Wins: 15, Losses: 15, PPG: 110.0, OPPG: 110.0,
			},
		},
	}
}

func TestWriteStandingsTable(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Conference:   schema.WestConference,
		CacheBackend: schema.SQLiteBackend,
		Width:        120,
	}
	fmtFloat, _ := createFormatters(cfg.Precision + 2)

	var buf bytes.Buffer
	err := writeStandingsTable(testStandings(), cfg, fmtFloat, 100*time.Millisecond, &buf)
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Denver Nuggets")
	assert.Contains(t, output, "25-5")
	assert.Contains(t, output, "0.833")
	assert.Contains(t, output, "Showing 2 teams (Western Conference)")
	assert.Contains(t, output, "Completed in 100ms")
	assert.Contains(t, output, "Cache backend: sqlite")
}

func TestPrintStandingsJSON(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "standings.json")
	cfg := &contract.Config{
		Output:     schema.JSONOut,
		Precision:  1,
		OutputFile: outputFile,
	}

	err := PrintStandings(testStandings(), nil, cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	var result []map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	require.Len(t, result, 2)

	assert.Equal(t, float64(1), result[0]["rank"])
	assert.Equal(t, "Denver Nuggets", result[0]["team"])
	assert.Equal(t, "25-5", result[0]["record"])
	assert.Equal(t, "https://cdn.nba.com/logos/nba/1610612743/primary/L/logo.svg", result[0]["logo"])

	// No team id means no logo key at all
	_, hasLogo := result[1]["logo"]
	assert.False(t, hasLogo)
}

func TestPrintStandingsCSV(t *testing.T) {
	outputFile := filepath.Join(t.TempDir(), "standings.csv")
	cfg := &contract.Config{
		Output:     schema.CSVOut,
		Precision:  1,
		OutputFile: outputFile,
	}

	err := PrintStandings(testStandings(), nil, cfg, time.Millisecond)
	require.NoError(t, err)

	data, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3) // header + 2 rows
	assert.Equal(t, "rank,team,conference,wins,losses,win_pct", lines[0])
	assert.Contains(t, lines[1], "Denver Nuggets")
	assert.Contains(t, lines[1], "0.833")
	assert.Contains(t, lines[2], "Minnesota Timberwolves")
}

func TestWriteStandingsTableEmpty(t *testing.T) {
	cfg := &contract.Config{
		Output:       schema.TextOut,
		Precision:    1,
		Conference:   schema.AllConferences,
		CacheBackend: schema.NoneBackend,
		Width:        80,
	}
	fmtFloat, _ := createFormatters(cfg.Precision + 2)

	var buf bytes.Buffer
	err := writeStandingsTable(nil, cfg, fmtFloat, 5*time.Millisecond, &buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Showing 0 teams (Both Conferences)")
}
