package iocache

import (
	"testing"
	"time"

	"github.com/hoopworks/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStanding(rank int, team string, wins, losses int) (schema.ConferenceStanding, schema.LuckEntry) {
	record := schema.TeamRecord{
		Team:       team,
		Conference: schema.WestConference,
		Wins:       wins,
		Losses:     losses,
		PPG:        112.0,
		OPPG:       108.0,
	}
	winPct := float64(wins) / float64(wins+losses)
	standing := schema.ConferenceStanding{
		Rank:       rank,
		WinPct:     winPct,
		TeamRecord: record,
	}
	luck := schema.LuckEntry{
		WinPct:         winPct,
		ExpectedWinPct: 0.55,
		ExpectedWins:   0.55 * float64(wins+losses),
		LuckIndex:      float64(wins) - 0.55*float64(wins+losses),
		TeamRecord:     record,
	}
	return standing, luck
}

func TestSnapshotStore_NoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginRun should return 0 for NoneBackend
	runID, err := store.BeginRun(time.Now(), "abc123", map[string]any{"conference": "West"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	// Other operations should not error
	standing, luck := testStanding(1, "Denver Nuggets", 25, 5)
	err = store.RecordStanding(1, standing, luck)
	assert.NoError(t, err)

	err = store.EndRun(1, 15)
	assert.NoError(t, err)

	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	err = store.Close()
	assert.NoError(t, err)
}

func TestSnapshotStore_MySQLRequiresParseTime(t *testing.T) {
	// Rejected before any connection attempt, so no server is needed
	_, err := NewSnapshotStore(schema.MySQLBackend, "root:secret123@tcp(127.0.0.1:3306)/courtside")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parseTime=true")

	_, err = NewSnapshotStore(schema.MySQLBackend, "not a dsn")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid MySQL connection string")
}

func TestSnapshotStore_SQLite(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginRun
	runTime := time.Now()
	params := map[string]any{
		"conference": "West",
		"exponent":   14.0,
	}
	runID, err := store.BeginRun(runTime, "deadbeef1234", params)
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	// Test RecordStanding
	standing, luck := testStanding(1, "Denver Nuggets", 25, 5)
	err = store.RecordStanding(runID, standing, luck)
	assert.NoError(t, err)

	// Test EndRun
	err = store.EndRun(runID, 1)
	assert.NoError(t, err)
}

func TestSnapshotStore_MultipleRuns(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	var runIDs []int64
	for i := range 3 {
		id, err := store.BeginRun(time.Now(), "fingerprint", map[string]any{"run": i})
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		standing, luck := testStanding(1, "Denver Nuggets", 20+i, 10-i)
		err = store.RecordStanding(id, standing, luck)
		assert.NoError(t, err)

		err = store.EndRun(id, 1)
		assert.NoError(t, err)
	}

	// Verify all IDs are unique
	assert.Equal(t, 3, len(runIDs))
	assert.NotEqual(t, runIDs[0], runIDs[1])
	assert.NotEqual(t, runIDs[1], runIDs[2])
}

func TestSnapshotStore_GetAllRuns(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test empty store
	runs, err := store.GetAllRuns()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	// Add some runs
	fingerprints := []string{"fp_one", "fp_two"}
	var runIDs []int64
	for _, fp := range fingerprints {
		id, err := store.BeginRun(time.Now(), fp, map[string]any{"conference": "ALL"})
		require.NoError(t, err)
		runIDs = append(runIDs, id)

		err = store.EndRun(id, 30)
		assert.NoError(t, err)
	}

	// Get all runs
	runs, err = store.GetAllRuns()
	assert.NoError(t, err)
	assert.Len(t, runs, 2)

	for i, run := range runs {
		assert.Equal(t, runIDs[i], run.RunID)
		assert.Equal(t, fingerprints[i], run.Fingerprint)
		assert.Equal(t, int32(30), run.TeamCount)
		assert.NotNil(t, run.Params)
		assert.Contains(t, *run.Params, "conference")
	}
}

func TestSnapshotStore_GetAllStandings(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test empty store
	standings, err := store.GetAllStandings()
	assert.NoError(t, err)
	assert.Empty(t, standings)

	// Add a run with two standings
	runID, err := store.BeginRun(time.Now(), "fp", map[string]any{})
	require.NoError(t, err)

	first, firstLuck := testStanding(1, "Denver Nuggets", 25, 5)
	second, secondLuck := testStanding(2, "Minnesota Timberwolves", 15, 15)

	require.NoError(t, store.RecordStanding(runID, first, firstLuck))
	require.NoError(t, store.RecordStanding(runID, second, secondLuck))
	require.NoError(t, store.EndRun(runID, 2))

	// Get all standings, ordered by rank within the run
	standings, err = store.GetAllStandings()
	assert.NoError(t, err)
	require.Len(t, standings, 2)

	record := standings[0]
	assert.Equal(t, runID, record.RunID)
	assert.Equal(t, "Denver Nuggets", record.Team)
	assert.Equal(t, string(schema.WestConference), record.Conference)
	assert.Equal(t, int32(1), record.Rank)
	assert.Equal(t, int32(25), record.Wins)
	assert.Equal(t, int32(5), record.Losses)
	assert.InDelta(t, 25.0/30.0, record.WinPct, 1e-9)
	assert.Equal(t, firstLuck.ExpectedWinPct, record.ExpectedWinPct)
	assert.Equal(t, firstLuck.ExpectedWins, record.ExpectedWins)
	assert.Equal(t, firstLuck.LuckIndex, record.LuckIndex)

	assert.Equal(t, "Minnesota Timberwolves", standings[1].Team)
	assert.Equal(t, int32(2), standings[1].Rank)
}

func TestSnapshotStore_GetStatus(t *testing.T) {
	t.Run("SQLite backend with data", func(t *testing.T) {
		store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
		require.NoError(t, err)
		defer func() { _ = store.Close() }()

		runID, err := store.BeginRun(time.Now(), "fp", map[string]any{})
		require.NoError(t, err)

		standing, luck := testStanding(1, "Denver Nuggets", 25, 5)
		require.NoError(t, store.RecordStanding(runID, standing, luck))
		require.NoError(t, store.EndRun(runID, 1))

		status, err := store.GetStatus()
		assert.NoError(t, err)

		assert.Equal(t, "sqlite", status.Backend)
		assert.True(t, status.Connected)
		assert.Equal(t, 1, status.TotalRuns)
		assert.Equal(t, runID, status.LastRunID)
		assert.False(t, status.LastRunTime.IsZero())
		assert.Equal(t, 1, status.TotalStandings)
		assert.Equal(t, int64(1), status.TableSizes[snapshotRunsTable])
		assert.Equal(t, int64(1), status.TableSizes[snapshotStandingsTable])
	})

	t.Run("None backend", func(t *testing.T) {
		store, err := NewSnapshotStore(schema.NoneBackend, "")
		require.NoError(t, err)

		status, err := store.GetStatus()
		assert.NoError(t, err)

		assert.Equal(t, "none", status.Backend)
		assert.False(t, status.Connected)
		assert.Equal(t, 0, status.TotalRuns)
	})
}

func TestSnapshotStore_RunTimeRoundTrip(t *testing.T) {
	store, err := NewSnapshotStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runTime := time.Date(2026, 4, 12, 19, 30, 0, 0, time.UTC)
	runID, err := store.BeginRun(runTime, "fp", map[string]any{})
	require.NoError(t, err)
	require.NoError(t, store.EndRun(runID, 0))

	runs, err := store.GetAllRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.True(t, runs[0].RunTime.Equal(runTime), "run time should survive the round trip")
}
