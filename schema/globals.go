package schema

// LeagueSnapshotDate identifies the hand-maintained snapshot below. The
// leaderboards and MVP race are static data refreshed with the dataset, not
// fetched from a live feed.
const LeagueSnapshotDate = "2026-01-07"

// leaderSnapshot holds the top six players per category as of the snapshot date.
var leaderSnapshot = map[StatCategory][]PlayerLeader{
	PointsCategory: {
		{Rank: 1, Name: "Luka Doncic", Team: "LAL", Value: 33.7, PlayerID: 1629029, TeamID: 1610612747},
		{Rank: 2, Name: "S. Gilgeous-Alexander", Team: "OKC", Value: 31.6, PlayerID: 1628983, TeamID: 1610612760},
		{Rank: 3, Name: "Tyrese Maxey", Team: "PHI", Value: 31.0, PlayerID: 1630178, TeamID: 1610612755},
		{Rank: 4, Name: "Donovan Mitchell", Team: "CLE", Value: 29.8, PlayerID: 1628378, TeamID: 1610612739},
		{Rank: 5, Name: "Nikola Jokic", Team: "DEN", Value: 29.6, PlayerID: 203999, TeamID: 1610612743},
		{Rank: 6, Name: "Jaylen Brown", Team: "BOS", Value: 29.6, PlayerID: 1627759, TeamID: 1610612738},
	},
	AssistsCategory: {
		{Rank: 1, Name: "Nikola Jokic", Team: "DEN", Value: 11.0, PlayerID: 203999, TeamID: 1610612743},
		{Rank: 2, Name: "Cade Cunningham", Team: "DET", Value: 9.7, PlayerID: 1630595, TeamID: 1610612765},
		{Rank: 3, Name: "Josh Giddey", Team: "CHI", Value: 9.0, PlayerID: 1630581, TeamID: 1610612741},
		{Rank: 4, Name: "Luka Doncic", Team: "LAL", Value: 8.7, PlayerID: 1629029, TeamID: 1610612747},
		{Rank: 5, Name: "Jalen Johnson", Team: "ATL", Value: 8.4, PlayerID: 1630552, TeamID: 1610612737},
		{Rank: 6, Name: "James Harden", Team: "LAC", Value: 8.0, PlayerID: 201935, TeamID: 1610612746},
	},
	ReboundsCategory: {
		{Rank: 1, Name: "Nikola Jokic", Team: "DEN", Value: 12.2, PlayerID: 203999, TeamID: 1610612743},
		{Rank: 2, Name: "Karl-Anthony Towns", Team: "NYK", Value: 11.5, PlayerID: 1626157, TeamID: 1610612752},
		{Rank: 3, Name: "Rudy Gobert", Team: "MIN", Value: 11.2, PlayerID: 203497, TeamID: 1610612750},
		{Rank: 4, Name: "Ivica Zubac", Team: "LAC", Value: 11.0, PlayerID: 1627826, TeamID: 1610612746},
		{Rank: 5, Name: "Donovan Clingan", Team: "POR", Value: 10.8, PlayerID: 1642270, TeamID: 1610612757},
		{Rank: 6, Name: "Jalen Duren", Team: "DET", Value: 10.6, PlayerID: 1631105, TeamID: 1610612765},
	},
	ThreesCategory: {
		{Rank: 1, Name: "Stephen Curry", Team: "GSW", Value: 4.8, PlayerID: 201939, TeamID: 1610612744},
		{Rank: 2, Name: "Donovan Mitchell", Team: "CLE", Value: 3.9, PlayerID: 1628378, TeamID: 1610612739},
		{Rank: 3, Name: "Tyrese Maxey", Team: "PHI", Value: 3.8, PlayerID: 1630178, TeamID: 1610612755},
		{Rank: 4, Name: "Michael Porter Jr.", Team: "BKN", Value: 3.7, PlayerID: 1629008, TeamID: 1610612751},
		{Rank: 5, Name: "Kon Knueppel", Team: "CHA", Value: 3.6, PlayerID: 1642851, TeamID: 1610612766},
		{Rank: 6, Name: "Jamal Murray", Team: "DEN", Value: 3.4, PlayerID: 1627750, TeamID: 1610612743},
	},
	StealsCategory: {
		{Rank: 1, Name: "Kawhi Leonard", Team: "LAC", Value: 2.1, PlayerID: 202695, TeamID: 1610612746},
		{Rank: 2, Name: "Cason Wallace", Team: "OKC", Value: 2.1, PlayerID: 1641717, TeamID: 1610612760},
		{Rank: 3, Name: "Dyson Daniels", Team: "ATL", Value: 1.9, PlayerID: 1630700, TeamID: 1610612737},
		{Rank: 4, Name: "OG Anunoby", Team: "NYK", Value: 1.8, PlayerID: 1628384, TeamID: 1610612752},
		{Rank: 5, Name: "Tyrese Maxey", Team: "PHI", Value: 1.8, PlayerID: 1630178, TeamID: 1610612755},
		{Rank: 6, Name: "Mikal Bridges", Team: "NYK", Value: 1.6, PlayerID: 1628969, TeamID: 1610612752},
	},
}

// mvpSnapshot holds the MVP race ladder as of the snapshot date.
var mvpSnapshot = []MVPCandidate{
	{Rank: 1, Name: "Nikola Jokic", Team: "DEN", PIE: 0.23, PlayerID: 203999, TeamID: 1610612743},
	{Rank: 2, Name: "S. Gilgeous-Alexander", Team: "OKC", PIE: 0.20, PlayerID: 1628983, TeamID: 1610612760},
	{Rank: 3, Name: "Luka Doncic", Team: "LAL", PIE: 0.21, PlayerID: 1629029, TeamID: 1610612747},
	{Rank: 4, Name: "Jalen Brunson", Team: "NYK", PIE: 0.18, PlayerID: 1628973, TeamID: 1610612752},
	{Rank: 5, Name: "Victor Wembanyama", Team: "SAS", PIE: 0.20, PlayerID: 1641705, TeamID: 1610612759},
}

// GetLeaders returns a copy of the leaderboard snapshot for a category.
// Unknown categories yield nil.
func GetLeaders(category StatCategory) []PlayerLeader {
	src, ok := leaderSnapshot[category]
	if !ok {
		return nil
	}
	out := make([]PlayerLeader, len(src))
	copy(out, src)
	return out
}

// GetMVPRace returns a copy of the MVP race ladder.
func GetMVPRace() []MVPCandidate {
	out := make([]MVPCandidate, len(mvpSnapshot))
	copy(out, mvpSnapshot)
	return out
}
