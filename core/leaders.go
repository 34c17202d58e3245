package core

import (
	"fmt"

	"github.com/hoopworks/courtside/schema"
)

// BuildLeaderboard returns the league leaders for a stat category from the
// embedded league snapshot, capped at limit entries.
func BuildLeaderboard(category schema.StatCategory, limit int) ([]schema.PlayerLeader, error) {
	leaders := schema.GetLeaders(category)
	if leaders == nil {
		return nil, fmt.Errorf("no leaderboard for category %q", category)
	}
	if limit > 0 && len(leaders) > limit {
		leaders = leaders[:limit]
	}
	return leaders, nil
}

// BuildMVPRace returns the MVP ladder from the embedded league snapshot,
// capped at limit entries.
func BuildMVPRace(limit int) []schema.MVPCandidate {
	race := schema.GetMVPRace()
	if limit > 0 && len(race) > limit {
		race = race[:limit]
	}
	return race
}
