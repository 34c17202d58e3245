package core

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/internal/source"
	"github.com/hoopworks/courtside/schema"
)

// ErrCheckFailed reports a dataset that violated the health rules.
var ErrCheckFailed = errors.New("dataset check failed")

// ExecuteSeasonCheck runs the check command for CI/CD gating. It loads the
// dataset, validates it and returns ErrCheckFailed when the dataset is
// unusable, leaving the exit code to the caller so deferred cleanup still
// runs. Row-level issues are reported but do not fail the check on their own.
func ExecuteSeasonCheck(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()

	src, err := source.Open(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(ctx)
	if err != nil {
		return err
	}

	result := buildCheckResult(cfg, src.Fingerprint(), records, issues)
	printCheckResult(result, time.Since(start))

	if !result.Passed {
		return fmt.Errorf("%w: %d violation(s) found", ErrCheckFailed, len(result.Violations))
	}
	return nil
}

// buildCheckResult evaluates dataset health rules against the loaded records.
func buildCheckResult(cfg *contract.Config, fingerprint string, records []schema.TeamRecord, issues []string) *schema.CheckResult {
	result := &schema.CheckResult{
		Dataset:     filepath.Base(cfg.DatasetPath),
		Format:      cfg.InputFormat,
		Fingerprint: fingerprint,
		TotalTeams:  len(records),
		Issues:      issues,
	}

	seen := make(map[string]bool, len(records))
	for _, record := range records {
		switch record.Conference {
		case schema.EastConference:
			result.EastTeams++
		case schema.WestConference:
			result.WestTeams++
		}
		if seen[record.Team] {
			result.Violations = append(result.Violations, fmt.Sprintf("duplicate team %q", record.Team))
		}
		seen[record.Team] = true
	}

	if len(records) == 0 {
		result.Violations = append(result.Violations, "dataset has no usable team rows")
	}

	result.Passed = len(result.Violations) == 0
	return result
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.CheckResult, duration time.Duration) {
	fmt.Println("Dataset Check Results:")

	// Define labels and values for dynamic padding
	labels := []string{"Dataset:", "Format:", "Fingerprint:", "Teams:"}
	values := []any{
		result.Dataset,
		result.Format,
		shortFingerprint(result.Fingerprint),
		fmt.Sprintf("%d total (east=%d, west=%d)", result.TotalTeams, result.EastTeams, result.WestTeams),
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		if len(label) > maxLabelLen {
			maxLabelLen = len(label)
		}
	}

	// Print each label-value pair with consistent padding
	for i, label := range labels {
		fmt.Printf("  %-*s %v\n", maxLabelLen+1, label, values[i])
	}
	fmt.Println()

	fmt.Printf("Checked %d teams in %v\n\n", result.TotalTeams, duration)

	if len(result.Issues) > 0 {
		fmt.Printf("Skipped %d row(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Printf("  - %s\n", issue)
		}
		fmt.Println()
	}

	if result.Passed {
		fmt.Printf("✅ Dataset passed all checks\n\n")
		return
	}

	fmt.Printf("❌ Dataset check failed\n\n")
	for _, violation := range result.Violations {
		fmt.Printf("  - %s\n", violation)
	}
	fmt.Println()
}

// shortFingerprint keeps CI logs readable.
func shortFingerprint(fingerprint string) string {
	if len(fingerprint) > 12 {
		return fingerprint[:12]
	}
	return fingerprint
}
