// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/hoopworks/courtside/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Courtside MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Courtside Standings Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_standings ---
	s.AddTool(mcp.NewTool("get_standings",
		mcp.WithDescription("Rank teams by winning percentage for a conference or the whole league."),
		mcp.WithString("dataset", mcp.Description("Path to the season dataset (CSV, Parquet or SQLite). Defaults to the configured dataset.")),
		mcp.WithString("conference", mcp.Description("Conference to rank (east, west, all). Defaults to 'all'."), mcp.Enum("east", "west", "all")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleGetStandings)

	// --- 2. Tool: get_luck_rankings ---
	s.AddTool(mcp.NewTool("get_luck_rankings",
		mcp.WithDescription("Rank teams by Pythagorean luck index, listing the biggest over- and underperformers."),
		mcp.WithString("dataset", mcp.Description("Path to the season dataset.")),
		mcp.WithNumber("exponent", mcp.Description("Pythagorean exponent. Defaults to 14.")),
		mcp.WithNumber("top_n", mcp.Description("How many teams to list per extreme. Defaults to 5.")),
	), h.handleGetLuckRankings)

	// --- 3. Tool: get_matchup_odds ---
	s.AddTool(mcp.NewTool("get_matchup_odds",
		mcp.WithDescription("Estimate win probabilities for a single home/away matchup from season records."),
		mcp.WithString("home", mcp.Description("The home team name (full name or unique fragment)."), mcp.Required()),
		mcp.WithString("away", mcp.Description("The away team name (full name or unique fragment)."), mcp.Required()),
		mcp.WithString("dataset", mcp.Description("Path to the season dataset.")),
		mcp.WithNumber("home_advantage", mcp.Description("Home court advantage in probability points. Defaults to 6.5.")),
	), h.handleGetMatchupOdds)

	return s
}

// StartMCPServer starts the Courtside MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
