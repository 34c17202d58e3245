package core

import (
	"fmt"
	"sort"

	"github.com/hoopworks/courtside/schema"
)

// WinPercentage computes wins / (wins + losses) on a 0-1 scale.
// An undefeated team is 1.0 and a winless team is 0.0 even though both
// divisions are degenerate; only a team with no games at all is an error.
func WinPercentage(wins, losses int) (float64, error) {
	if wins < 0 {
		return 0, &schema.InvalidInputError{Field: "wins", Value: float64(wins), Reason: "count cannot be negative"}
	}
	if losses < 0 {
		return 0, &schema.InvalidInputError{Field: "losses", Value: float64(losses), Reason: "count cannot be negative"}
	}
	games := wins + losses
	if games == 0 {
		return 0, &schema.DivisionByZeroError{Quantity: "games played"}
	}
	if losses == 0 {
		return 1.0, nil
	}
	if wins == 0 {
		return 0.0, nil
	}
	return float64(wins) / float64(games), nil
}

// BuildConferenceStandings ranks teams by win percentage in descending order.
// The sort is stable, so teams with identical percentages keep their dataset
// order and re-ranking an already ranked table yields the same table. Teams
// whose percentage cannot be computed are skipped and reported as issues.
func BuildConferenceStandings(records []schema.TeamRecord, conference schema.Conference) ([]schema.ConferenceStanding, []string) {
	standings := make([]schema.ConferenceStanding, 0, len(records))
	var issues []string

	for _, record := range records {
		if conference != schema.AllConferences && record.Conference != conference {
			continue
		}
		pct, err := WinPercentage(record.Wins, record.Losses)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", record.Team, err))
			continue
		}
		standings = append(standings, schema.ConferenceStanding{WinPct: pct, TeamRecord: record})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].WinPct > standings[j].WinPct
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, issues
}
