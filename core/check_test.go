package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkConfig() *contract.Config {
	return &contract.Config{DatasetPath: "/data/season.csv", InputFormat: schema.CSVFormat}
}

func TestBuildCheckResultPasses(t *testing.T) {
	records := append(testRecords(), schema.TeamRecord{
		Team: "Team D", Conference: schema.EastConference, Wins: 20, Losses: 10,
	})

	result := buildCheckResult(checkConfig(), "abc123", records, nil)
	assert.True(t, result.Passed)
	assert.Empty(t, result.Violations)
	assert.Equal(t, 4, result.TotalTeams)
	assert.Equal(t, 1, result.EastTeams)
	assert.Equal(t, 3, result.WestTeams)
	assert.Equal(t, "season.csv", result.Dataset)
}

func TestBuildCheckResultIssuesAreNotViolations(t *testing.T) {
	issues := []string{"row 4: unknown conference \"Atlantic\""}
	result := buildCheckResult(checkConfig(), "abc123", testRecords(), issues)
	assert.True(t, result.Passed)
	assert.Equal(t, issues, result.Issues)
}

func TestBuildCheckResultDuplicateTeams(t *testing.T) {
	records := append(testRecords(), schema.TeamRecord{
		Team: "Team A", Conference: schema.EastConference, Wins: 1, Losses: 1,
	})

	result := buildCheckResult(checkConfig(), "abc123", records, nil)
	assert.False(t, result.Passed)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "duplicate team")
}

func TestBuildCheckResultEmptyDataset(t *testing.T) {
	result := buildCheckResult(checkConfig(), "abc123", nil, nil)
	assert.False(t, result.Passed)
	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0], "no usable team rows")
}

func writeCheckDataset(t *testing.T, content string) *contract.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "season.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return &contract.Config{DatasetPath: path, InputFormat: schema.CSVFormat}
}

func TestExecuteSeasonCheckPasses(t *testing.T) {
	cfg := writeCheckDataset(t, "team,conference,wins,losses,ppg,oppg\nDenver Nuggets,West,25,5,115.0,105.0\n")
	assert.NoError(t, ExecuteSeasonCheck(context.Background(), cfg, nil))
}

func TestExecuteSeasonCheckReturnsErrCheckFailed(t *testing.T) {
	// A duplicate team is a violation; the function must surface it as an
	// error instead of exiting, so deferred cleanup still runs.
	cfg := writeCheckDataset(t, "team,conference,wins,losses,ppg,oppg\n"+
		"Denver Nuggets,West,25,5,115.0,105.0\n"+
		"Denver Nuggets,West,25,5,115.0,105.0\n")

	err := ExecuteSeasonCheck(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, err.Error(), "violation(s) found")
}

func TestShortFingerprint(t *testing.T) {
	assert.Equal(t, "abcdefabcdef", shortFingerprint("abcdefabcdefabcdef"))
	assert.Equal(t, "short", shortFingerprint("short"))
}
