package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"stackdeck/core"
	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.SessionStore
	results contract.ResultStore
}

// sessionSummary is the get_session_summary response shape.
type sessionSummary struct {
	UserName    string     `json:"userName"`
	Decided     int        `json:"decided"`
	Kept        int        `json:"kept"`
	Discarded   int        `json:"discarded"`
	Remaining   int        `json:"remaining"`
	Ranked      []string   `json:"ranked"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (h *toolHandler) handleGetAggregateRankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.results == nil {
		return mcp.NewToolResultError("results store is not configured: set the results endpoint and access key"), nil
	}

	rows, err := h.results.ListAll(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch results: %v", err)), nil
	}

	limit := h.baseCfg.ResultLimit
	if l := request.GetInt("limit", 0); l > 0 {
		limit = l
	}

	report := core.AggregateResults(rows)
	report.Rankings = core.TopRankings(report, limit)
	jsonData, _ := json.MarshalIndent(report, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSessionSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := strings.TrimSpace(request.GetString("user_name", ""))
	if name == "" {
		return mcp.NewToolResultError("user_name is required"), nil
	}

	rec, found, err := h.store.LoadRecord(name)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load session: %v", err)), nil
	}
	if !found {
		return mcp.NewToolResultError(fmt.Sprintf("no session found for %q", name)), nil
	}

	ranked := make([]string, 0, len(rec.RankedPrinciples))
	for _, id := range rec.RankedPrinciples {
		ranked = append(ranked, schema.PrincipleText(id))
	}
	kept := rec.KeptCount()
	summary := sessionSummary{
		UserName:    rec.UserName,
		Decided:     len(rec.Decisions),
		Kept:        kept,
		Discarded:   len(rec.Decisions) - kept,
		Remaining:   schema.CatalogSize - len(rec.Decisions),
		Ranked:      ranked,
		CompletedAt: rec.CompletedAt,
	}
	jsonData, _ := json.MarshalIndent(summary, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetPrincipleCatalog(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(schema.Catalog(), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
