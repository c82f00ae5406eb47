// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the AuditLens MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"AuditLens Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
	}

	// --- 1. Tool: scan_program ---
	s.AddTool(mcp.NewTool("scan_program",
		mcp.WithDescription("Analyze an on-chain program source tree and return aggregated audit factors with the four dimension scores."),
		mcp.WithString("repo_path", mcp.Description("Path to the program source root (defaults to the configured directory).")),
		mcp.WithString("include", mcp.Description("Comma-separated list of path substrings to restrict the scan to.")),
	), h.handleScanProgram)

	// --- 2. Tool: rank_files ---
	s.AddTool(mcp.NewTool("rank_files",
		mcp.WithDescription("Rank source files by audit attention score."),
		mcp.WithString("repo_path", mcp.Description("Path to the program source root.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleRankFiles)

	// --- 3. Tool: get_factor_catalog ---
	s.AddTool(mcp.NewTool("get_factor_catalog",
		mcp.WithDescription("List every aggregated factor with its display name, type, category and description."),
	), h.handleGetFactorCatalog)

	return s
}

// StartMCPServer starts the AuditLens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
