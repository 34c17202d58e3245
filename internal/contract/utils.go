package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Luck label constants.
const (
	LuckyValue    = "Lucky"    // Winning more than the point differential supports
	ExpectedValue = "Expected" // Record in line with the point differential
	UnluckyValue  = "Unlucky"  // Winning less than the point differential supports
)

// LuckLabelThreshold is the luck index magnitude, in wins, beyond which a
// team is labeled Lucky or Unlucky instead of Expected.
const LuckLabelThreshold = 1.5

// Color variables for console output.
var (
	LuckyColor    = color.New(color.FgGreen, color.Bold) // luckyColor flags overperformers.
	ExpectedColor = color.New(color.FgYellow)            // expectedColor is the neutral band, not bold.
	UnluckyColor  = color.New(color.FgRed, color.Bold)   // unluckyColor flags underperformers.
)

// GetPlainLabel returns a plain text label classifying a team's luck index.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(luckIndex float64) string {
	switch {
	case luckIndex >= LuckLabelThreshold:
		return LuckyValue
	case luckIndex <= -LuckLabelThreshold:
		return UnluckyValue
	default:
		return ExpectedValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(luckIndex float64) string {
	text := GetPlainLabel(luckIndex)

	switch text {
	case LuckyValue:
		return LuckyColor.Sprint(text)
	case UnluckyValue:
		return UnluckyColor.Sprint(text)
	default: // "Expected"
		return ExpectedColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout for an empty path.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for memoized results.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".courtside_cache.db"
	}
	return filepath.Join(homeDir, ".courtside_cache.db")
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for standings snapshots.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".courtside_snapshots.db"
	}
	return filepath.Join(homeDir, ".courtside_snapshots.db")
}

// TruncateName truncates a team or player name to a maximum width with an
// ellipsis suffix. Requires maxWidth > 3 so there is room for both the "..."
// and at least one character of content.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
