package schema

import (
	"fmt"
	"strings"
)

// NBA CDN URL templates for presentation assets. Construction only; nothing
// here performs network I/O.
const (
	teamLogoURLTemplate       = "https://cdn.nba.com/logos/nba/%d/primary/L/logo.svg"
	playerHeadshotURLTemplate = "https://cdn.nba.com/headshots/nba/latest/260x190/%d.png"
)

// TeamLogoURL returns the CDN URL for a team's primary logo.
// Returns an empty string when the dataset did not provide a team id.
func TeamLogoURL(teamID int64) string {
	if teamID <= 0 {
		return ""
	}
	return fmt.Sprintf(teamLogoURLTemplate, teamID)
}

// PlayerHeadshotURL returns the CDN URL for a player's headshot.
func PlayerHeadshotURL(playerID int64) string {
	if playerID <= 0 {
		return ""
	}
	return fmt.Sprintf(playerHeadshotURLTemplate, playerID)
}

// FormatRecord formats a win-loss record as "25-5".
func FormatRecord(wins, losses int) string {
	return fmt.Sprintf("%d-%d", wins, losses)
}

// ParseConference normalizes a conference string from a dataset. It accepts
// the canonical east/west values plus common aliases and abbreviations.
func ParseConference(s string) (Conference, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "east", "eastern", "e":
		return EastConference, true
	case "west", "western", "w":
		return WestConference, true
	default:
		return "", false
	}
}

// DisplayName returns the conventional display form of a conference.
func (c Conference) DisplayName() string {
	switch c {
	case EastConference:
		return "Eastern Conference"
	case WestConference:
		return "Western Conference"
	case AllConferences:
		return "Both Conferences"
	default:
		return strings.ToUpper(string(c))
	}
}

// CategoryLabel returns the stat abbreviation shown next to leaderboard values.
func CategoryLabel(category StatCategory) string {
	switch category {
	case PointsCategory:
		return "PPG"
	case AssistsCategory:
		return "AST"
	case ReboundsCategory:
		return "REB"
	case ThreesCategory:
		return "3PM"
	case StealsCategory:
		return "STL"
	default:
		return strings.ToUpper(string(category))
	}
}
