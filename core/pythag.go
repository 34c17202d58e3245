package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/hoopworks/courtside/schema"
)

// PythagoreanExpectation computes the expected win percentage from scoring
// averages: pf^e / (pf^e + pa^e). Equal averages yield exactly 0.5 without
// touching floating point exponentiation.
func PythagoreanExpectation(pointsFor, pointsAgainst, exponent float64) (float64, error) {
	if exponent <= 0 {
		return 0, &schema.InvalidInputError{Field: "exponent", Value: exponent, Reason: "exponent must be positive"}
	}
	if pointsFor <= 0 {
		return 0, &schema.InvalidInputError{Field: "ppg", Value: pointsFor, Reason: "scoring average must be positive"}
	}
	if pointsAgainst <= 0 {
		return 0, &schema.InvalidInputError{Field: "oppg", Value: pointsAgainst, Reason: "scoring average must be positive"}
	}
	if pointsFor == pointsAgainst {
		return 0.5, nil
	}

	pf := math.Pow(pointsFor, exponent)
	pa := math.Pow(pointsAgainst, exponent)
	return pf / (pf + pa), nil
}

// ExpectedWins scales an expected win percentage by the games actually played.
func ExpectedWins(expectation float64, gamesPlayed int) float64 {
	return expectation * float64(gamesPlayed)
}

// LuckIndex is the gap between a team's actual and expected wins. Positive
// means the team wins more than its point differential supports.
func LuckIndex(actualWins int, expectedWins float64) float64 {
	return float64(actualWins) - expectedWins
}

// BuildLuckTable computes the full Pythagorean luck table, sorted descending
// by luck index. Teams whose inputs are degenerate are skipped and reported
// as issues rather than failing the whole table.
func BuildLuckTable(records []schema.TeamRecord, exponent float64) ([]schema.LuckEntry, []string) {
	entries := make([]schema.LuckEntry, 0, len(records))
	var issues []string

	for _, record := range records {
		pct, err := WinPercentage(record.Wins, record.Losses)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", record.Team, err))
			continue
		}
		expectation, err := PythagoreanExpectation(record.PPG, record.OPPG, exponent)
		if err != nil {
			issues = append(issues, fmt.Sprintf("%s: %v", record.Team, err))
			continue
		}

		expectedWins := ExpectedWins(expectation, record.GamesPlayed())
		entries = append(entries, schema.LuckEntry{
			WinPct:         pct,
			ExpectedWinPct: expectation,
			ExpectedWins:   expectedWins,
			LuckIndex:      LuckIndex(record.Wins, expectedWins),
			TeamRecord:     record,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].LuckIndex > entries[j].LuckIndex
	})
	return entries, issues
}

// RankByLuck splits a sorted luck table into its lucky and unlucky extremes.
// The requested size is truncated to half the table so the two groups can
// never share a team. Unlucky entries come back in ascending order, most
// unlucky first.
func RankByLuck(entries []schema.LuckEntry, topN int) schema.LuckRanking {
	ranking := schema.LuckRanking{Entries: entries}

	n := topN
	if half := len(entries) / 2; n > half {
		n = half
	}
	if n <= 0 {
		return ranking
	}

	ranking.Lucky = append([]schema.LuckEntry(nil), entries[:n]...)

	unlucky := make([]schema.LuckEntry, 0, n)
	for i := len(entries) - 1; i >= len(entries)-n; i-- {
		unlucky = append(unlucky, entries[i])
	}
	ranking.Unlucky = unlucky
	return ranking
}
