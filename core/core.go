// Package core has core logic for standings, luck and matchup analytics.
package core

import (
	"context"
	"time"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/internal/outwriter"
	"github.com/hoopworks/courtside/internal/source"
	"github.com/hoopworks/courtside/schema"
)

// ExecutorFunc defines the function signature for executing different commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// GetStandingsResults ranks the configured conference by win percentage and
// returns the standings with any skipped-row issues. One standings run is
// recorded to the snapshot store when configured.
func GetStandingsResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.ConferenceStanding, []string, error) {
	src, err := source.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	standings, rankIssues := cachedStandings(cfg, mgr, src.Fingerprint(), records)
	issues = append(issues, rankIssues...)

	recordSnapshot(cfg, mgr, src.Fingerprint(), records, standings)
	return standings, issues, nil
}

// GetLuckResults computes the Pythagorean luck table and returns the lucky
// and unlucky extremes.
func GetLuckResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (schema.LuckRanking, []string, error) {
	src, err := source.Open(cfg)
	if err != nil {
		return schema.LuckRanking{}, nil, err
	}
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(ctx)
	if err != nil {
		return schema.LuckRanking{}, nil, err
	}

	entries, luckIssues := cachedLuckTable(cfg, mgr, src.Fingerprint(), records)
	issues = append(issues, luckIssues...)
	return RankByLuck(entries, cfg.TopN), issues, nil
}

// GetMatchupResults estimates win probabilities for a single home/away pairing.
func GetMatchupResults(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) (schema.MatchupEstimate, []string, error) {
	src, err := source.Open(cfg)
	if err != nil {
		return schema.MatchupEstimate{}, nil, err
	}
	defer func() { _ = src.Close() }()

	records, issues, err := src.Load(ctx)
	if err != nil {
		return schema.MatchupEstimate{}, nil, err
	}

	estimate, err := EstimateMatchup(records, cfg)
	if err != nil {
		return schema.MatchupEstimate{}, nil, err
	}
	return estimate, issues, nil
}

// ExecuteStandings serves as the main entry point for the 'standings' command.
func ExecuteStandings(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	standings, issues, err := GetStandingsResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintStandings(standings, issues, cfg, time.Since(start))
}

// ExecuteLuck serves as the main entry point for the 'luck' command.
func ExecuteLuck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	ranking, issues, err := GetLuckResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintLuckResults(ranking, issues, cfg, time.Since(start))
}

// ExecuteMatchup serves as the main entry point for the 'matchup' command.
func ExecuteMatchup(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	estimate, issues, err := GetMatchupResults(ctx, cfg, mgr)
	if err != nil {
		return err
	}
	return outwriter.PrintMatchupResult(estimate, issues, cfg, time.Since(start))
}

// ExecuteLeaders prints the per-category leaderboard from the embedded league
// snapshot. No dataset is read.
func ExecuteLeaders(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	leaders, err := BuildLeaderboard(cfg.Category, cfg.ResultLimit)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintLeaderResults(leaders, cfg, duration)
}

// ExecuteMVP prints the MVP ladder from the embedded league snapshot.
func ExecuteMVP(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	race := BuildMVPRace(cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.PrintMVPResults(race, cfg, duration)
}

// recordSnapshot persists one standings run when a snapshot store is
// configured. Snapshot failures are warnings since the printed result is the
// primary deliverable.
func recordSnapshot(cfg *contract.Config, mgr contract.StoreManager, fingerprint string, records []schema.TeamRecord, standings []schema.ConferenceStanding) {
	store := mgr.GetSnapshotStore()
	if store == nil {
		return
	}

	params := map[string]any{
		"conference": string(cfg.Conference),
		"exponent":   cfg.Exponent,
	}
	runID, err := store.BeginRun(time.Now(), fingerprint, params)
	if err != nil {
		contract.LogWarn("snapshot begin failed", err)
		return
	}

	entries, _ := BuildLuckTable(records, cfg.Exponent)
	luckByTeam := make(map[string]schema.LuckEntry, len(entries))
	for _, entry := range entries {
		luckByTeam[entry.Team] = entry
	}

	for _, standing := range standings {
		if err := store.RecordStanding(runID, standing, luckByTeam[standing.Team]); err != nil {
			contract.LogWarn("snapshot record failed", err)
			return
		}
	}
	if err := store.EndRun(runID, len(standings)); err != nil {
		contract.LogWarn("snapshot finish failed", err)
	}
}
