// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"stackdeck/internal/contract"
)

// NewMCPServer initializes and configures the Stackdeck MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.SessionStore, results contract.ResultStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Stackdeck Results Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
		results: results,
	}

	// --- 1. Tool: get_aggregate_rankings ---
	s.AddTool(mcp.NewTool("get_aggregate_rankings",
		mcp.WithDescription("Aggregate all submitted sessions into ranked principle statistics."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of ranked principles returned.")),
	), h.handleGetAggregateRankings)

	// --- 2. Tool: get_session_summary ---
	s.AddTool(mcp.NewTool("get_session_summary",
		mcp.WithDescription("Summarize one user's locally stored session: decision counts, ranking, and completion state."),
		mcp.WithString("user_name", mcp.Description("The user whose session to summarize."), mcp.Required()),
	), h.handleGetSessionSummary)

	// --- 3. Tool: get_principle_catalog ---
	s.AddTool(mcp.NewTool("get_principle_catalog",
		mcp.WithDescription("List the full catalog of principles with their ids, texts, and categories."),
	), h.handleGetPrincipleCatalog)

	return s
}

// StartMCPServer starts the Stackdeck MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.SessionStore, results contract.ResultStore) error {
	s := NewMCPServer(baseCfg, store, results)
	return server.ServeStdio(s)
}
