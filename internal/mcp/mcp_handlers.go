package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hoopworks/courtside/core"
	"github.com/hoopworks/courtside/internal/contract"
	"github.com/hoopworks/courtside/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

// standingsPayload is the JSON shape returned by the get_standings tool.
type standingsPayload struct {
	Standings []schema.ConferenceStanding `json:"standings"`
	Issues    []string                    `json:"issues,omitempty"`
}

// applyDatasetArg overrides the dataset path when the request carries one and
// re-infers the input format from the new path, so a server started on a CSV
// dataset can still serve Parquet or SQLite datasets per request. Returns a
// tool error result when the format cannot be inferred.
func applyDatasetArg(cfg *contract.Config, request mcp.CallToolRequest) *mcp.CallToolResult {
	d := request.GetString("dataset", "")
	if d == "" {
		return nil
	}
	format, err := contract.FormatForPath(d)
	if err != nil {
		return mcp.NewToolResultError(err.Error())
	}
	cfg.DatasetPath = d
	cfg.InputFormat = format
	return nil
}

func (h *toolHandler) handleGetStandings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if res := applyDatasetArg(cfg, request); res != nil {
		return res, nil
	}
	if c := request.GetString("conference", ""); c != "" {
		conference := schema.Conference(c)
		if _, ok := schema.ValidConferences[conference]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid conference: %s", c)), nil
		}
		cfg.Conference = conference
	}
	limit := cfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = l
	}

	standings, issues, err := core.GetStandingsResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("standings failed: %v", err)), nil
	}
	if len(standings) > limit {
		standings = standings[:limit]
	}

	jsonData, _ := json.MarshalIndent(standingsPayload{Standings: standings, Issues: issues}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetLuckRankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if res := applyDatasetArg(cfg, request); res != nil {
		return res, nil
	}
	if e := request.GetFloat("exponent", 0); e != 0 {
		if e <= 0 {
			return mcp.NewToolResultError("exponent must be positive"), nil
		}
		cfg.Exponent = e
	}
	if n := request.GetInt("top_n", 0); n != 0 {
		if n < 1 {
			return mcp.NewToolResultError("top_n must be at least 1"), nil
		}
		cfg.TopN = n
	}

	ranking, issues, err := core.GetLuckResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("luck ranking failed: %v", err)), nil
	}

	payload := struct {
		Lucky   []schema.LuckEntry `json:"lucky"`
		Unlucky []schema.LuckEntry `json:"unlucky"`
		Issues  []string           `json:"issues,omitempty"`
	}{Lucky: ranking.Lucky, Unlucky: ranking.Unlucky, Issues: issues}

	jsonData, _ := json.MarshalIndent(payload, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetMatchupOdds(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.HomeTeam = request.GetString("home", "")
	cfg.AwayTeam = request.GetString("away", "")
	if cfg.HomeTeam == "" {
		return mcp.NewToolResultError("home team is required"), nil
	}
	if cfg.AwayTeam == "" {
		return mcp.NewToolResultError("away team is required"), nil
	}
	if res := applyDatasetArg(cfg, request); res != nil {
		return res, nil
	}
	if a := request.GetFloat("home_advantage", -1); a >= 0 {
		cfg.HomeAdvantage = a
	}

	estimate, _, err := core.GetMatchupResults(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("matchup estimate failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(estimate, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
