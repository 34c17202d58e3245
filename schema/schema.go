// Package schema has configs, models and shared data for all parts of courtside.
package schema

// TeamRecord represents one team's season line from the standings dataset.
// Records are constructed once per data load and treated as immutable for the
// duration of a run.
type TeamRecord struct {
	Team       string     `json:"team"`              // Team name, unique within a season
	TeamID     int64      `json:"team_id,omitempty"` // NBA CDN team id, 0 when the dataset omits it
	Conference Conference `json:"conference"`        // east or west
	Wins       int        `json:"wins"`
	Losses     int        `json:"losses"`
	PPG        float64    `json:"ppg"`  // Points scored per game
	OPPG       float64    `json:"oppg"` // Points allowed per game
}

// GamesPlayed returns the total games this record covers.
func (t TeamRecord) GamesPlayed() int {
	return t.Wins + t.Losses
}

// ConferenceStanding is one row of a ranked conference table.
type ConferenceStanding struct {
	Rank   int     `json:"rank"` // 1-based position within the conference
	WinPct float64 `json:"win_pct"`
	TeamRecord
}

// LuckEntry is one row of the Pythagorean luck table.
type LuckEntry struct {
	WinPct         float64 `json:"win_pct"`
	ExpectedWinPct float64 `json:"expected_win_pct"` // Pythagorean expectation
	ExpectedWins   float64 `json:"expected_wins"`
	LuckIndex      float64 `json:"luck_index"` // actual wins minus expected wins
	TeamRecord
}

// LuckRanking splits a ranked luck table into its extremes. Lucky holds the
// top-N entries by luck index, Unlucky the bottom-N in ascending order. The
// two never share a team.
type LuckRanking struct {
	Entries []LuckEntry `json:"entries"` // full table, sorted descending by luck index
	Lucky   []LuckEntry `json:"lucky"`
	Unlucky []LuckEntry `json:"unlucky"`
}

// MatchupEstimate is the ephemeral result of comparing two teams. Percentages
// are on a 0-100 scale and always sum to 100.
type MatchupEstimate struct {
	HomeTeam string  `json:"home_team"`
	AwayTeam string  `json:"away_team"`
	HomePct  float64 `json:"home_pct"` // home team season win percentage, 0-1
	AwayPct  float64 `json:"away_pct"`
	HomeProb float64 `json:"home_prob"` // estimated home win probability, 0-100
	AwayProb float64 `json:"away_prob"`
}

// CheckResult summarizes a dataset health check for CI gating.
type CheckResult struct {
	Dataset     string      `json:"dataset"`
	Format      InputFormat `json:"format"`
	Fingerprint string      `json:"fingerprint"`
	TotalTeams  int         `json:"total_teams"`
	EastTeams   int         `json:"east_teams"`
	WestTeams   int         `json:"west_teams"`
	Issues      []string    `json:"issues,omitempty"`     // recoverable row problems
	Violations  []string    `json:"violations,omitempty"` // conditions that fail the check
	Passed      bool        `json:"passed"`
}

// PlayerLeader is one entry of a per-category leaderboard snapshot.
type PlayerLeader struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Team     string  `json:"team"` // tricode, e.g. DEN
	Value    float64 `json:"value"`
	PlayerID int64   `json:"player_id"`
	TeamID   int64   `json:"team_id"`
}

// MVPCandidate is one entry of the MVP race snapshot. Value is the player's
// PIE (Player Impact Estimate) index.
type MVPCandidate struct {
	Rank     int     `json:"rank"`
	Name     string  `json:"name"`
	Team     string  `json:"team"`
	PIE      float64 `json:"pie"`
	PlayerID int64   `json:"player_id"`
	TeamID   int64   `json:"team_id"`
}
