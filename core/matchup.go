package core

import (
	"fmt"
	"strings"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
)

// MatchupWinProbability estimates the home team's win probability on a 0-100
// scale from two season win percentages. The heuristic starts from a coin
// flip, shifts by the win percentage gap, adds a flat home-court bonus and
// clamps the result so no matchup ever reads as a certainty.
func MatchupWinProbability(pctHome, pctAway float64, cfg *contract.Config) (float64, float64) {
	pHome := 50.0 + (pctHome-pctAway)*100.0 + cfg.HomeAdvantage
	if pHome < cfg.ProbFloor {
		pHome = cfg.ProbFloor
	}
	if pHome > cfg.ProbCeiling {
		pHome = cfg.ProbCeiling
	}
	return pHome, 100.0 - pHome
}

// FindTeam locates a team record by name, case-insensitively. An exact match
// wins; otherwise a unique substring match is accepted so "nuggets" finds
// "Denver Nuggets".
func FindTeam(records []schema.TeamRecord, name string) (schema.TeamRecord, error) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return schema.TeamRecord{}, &schema.InvalidInputError{Field: "team", Reason: "team name is empty"}
	}

	var partial []schema.TeamRecord
	for _, record := range records {
		haystack := strings.ToLower(record.Team)
		if haystack == needle {
			return record, nil
		}
		if strings.Contains(haystack, needle) {
			partial = append(partial, record)
		}
	}

	switch len(partial) {
	case 1:
		return partial[0], nil
	case 0:
		return schema.TeamRecord{}, fmt.Errorf("no team matches %q", name)
	default:
		names := make([]string, len(partial))
		for i, record := range partial {
			names[i] = record.Team
		}
		return schema.TeamRecord{}, fmt.Errorf("%q is ambiguous: matches %s", name, strings.Join(names, ", "))
	}
}

// EstimateMatchup resolves both teams from the dataset and computes the
// matchup probabilities. A team without any games played cannot be estimated.
func EstimateMatchup(records []schema.TeamRecord, cfg *contract.Config) (schema.MatchupEstimate, error) {
	var estimate schema.MatchupEstimate

	home, err := FindTeam(records, cfg.HomeTeam)
	if err != nil {
		return estimate, fmt.Errorf("home team: %w", err)
	}
	away, err := FindTeam(records, cfg.AwayTeam)
	if err != nil {
		return estimate, fmt.Errorf("away team: %w", err)
	}
	if home.Team == away.Team {
		return estimate, fmt.Errorf("home and away team are both %q", home.Team)
	}

	pctHome, err := WinPercentage(home.Wins, home.Losses)
	if err != nil {
		return estimate, fmt.Errorf("%s: %w", home.Team, err)
	}
	pctAway, err := WinPercentage(away.Wins, away.Losses)
	if err != nil {
		return estimate, fmt.Errorf("%s: %w", away.Team, err)
	}

	pHome, pAway := MatchupWinProbability(pctHome, pctAway, cfg)
	return schema.MatchupEstimate{
		HomeTeam: home.Team,
		AwayTeam: away.Team,
		HomePct:  pctHome,
		AwayPct:  pctAway,
		HomeProb: pHome,
		AwayProb: pAway,
	}, nil
}
