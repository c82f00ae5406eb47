package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/auditlens/auditlens/core"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleScanProgram(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if inc := request.GetString("include", ""); inc != "" {
		cfg.AllowList = splitIncludeList(inc)
	}
	if err := checkRepoPath(cfg.RepoPath); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.GetScanResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRankFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("repo_path", ""); p != "" {
		cfg.RepoPath = p
	}
	if l := request.GetInt("limit", 0); l > 0 {
		if l > contract.MaxResultLimit {
			l = contract.MaxResultLimit
		}
		cfg.ResultLimit = l
	}
	if err := checkRepoPath(cfg.RepoPath); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ranked, err := core.GetFilesResults(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("analysis failed: %v", err)), nil
	}

	enriched := schema.EnrichRankedFiles(ranked)
	jsonData, _ := json.MarshalIndent(enriched, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetFactorCatalog(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog := schema.FactorCatalog()

	ordered := make([]map[string]any, 0, len(schema.CatalogOrder))
	for _, key := range schema.CatalogOrder {
		info := catalog[key]
		ordered = append(ordered, map[string]any{
			"name":        string(key),
			"displayName": info.DisplayName,
			"type":        info.Type,
			"category":    info.Category,
			"description": info.Description,
		})
	}

	jsonData, _ := json.MarshalIndent(ordered, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// checkRepoPath rejects missing or non-directory roots before any analysis
// work starts, so tool callers get a parameter error instead of a pipeline
// failure.
func checkRepoPath(path string) error {
	if path == "" {
		return fmt.Errorf("repo_path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("repo_path does not exist: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("repo_path is not a directory: %s", path)
	}
	return nil
}

func splitIncludeList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
