package core

import (
	"context"
	"fmt"
	"time"

	"github.com/auditlens/auditlens/core/agg"
	"github.com/auditlens/auditlens/internal/augment"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/internal/iostore"
	"github.com/auditlens/auditlens/internal/outwriter"
	"github.com/auditlens/auditlens/schema"
)

// ExecutorFunc defines the function signature for executing different analysis modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// ExecuteScan runs the full repository analysis and prints the report.
// It serves as the main entry point for the 'scan' mode.
func ExecuteScan(ctx context.Context, cfg *contract.Config) error {
	enum := contract.NewLocalSourceEnumerator()
	var aug contract.Augmenter
	if cfg.AugmentEnabled() {
		aug = augment.NewHTTPAugmenter(cfg.AugmentURL, cfg.APIVersion, cfg.AugmentTimeout)
	}
	return runScanCore(ctx, cfg, enum, aug, iostore.Manager)
}

// ExecuteFiles runs the per-file attention ranking and prints results.
// It serves as the main entry point for the 'files' mode.
func ExecuteFiles(ctx context.Context, cfg *contract.Config) error {
	return runFilesCore(ctx, cfg, contract.NewLocalSourceEnumerator())
}

// ExecuteFactorCatalog prints the definitions of all aggregated factors.
// This is a static display that does not require source analysis.
func ExecuteFactorCatalog(_ context.Context, cfg *contract.Config) error {
	return outwriter.NewOutWriter().WriteCatalog(cfg)
}

// GetScanResults runs the analysis pipeline with the default collaborators
// and returns the report without printing or persisting it. This is the
// programmatic entry point used by the MCP server.
func GetScanResults(ctx context.Context, cfg *contract.Config) (*schema.AnalysisReport, error) {
	var aug contract.Augmenter
	if cfg.AugmentEnabled() {
		aug = augment.NewHTTPAugmenter(cfg.AugmentURL, cfg.APIVersion, cfg.AugmentTimeout)
	}
	return buildScanReport(ctx, cfg, contract.NewLocalSourceEnumerator(), aug)
}

// GetFilesResults runs the per-file pipeline and returns the ranked files
// without printing them.
func GetFilesResults(ctx context.Context, cfg *contract.Config) ([]schema.RankedFile, error) {
	return buildRankedFiles(ctx, cfg, contract.NewLocalSourceEnumerator())
}

// runScanCore performs the common Enumeration, Extraction, Aggregation and
// Scoring steps, then writes and optionally persists the report.
func runScanCore(ctx context.Context, cfg *contract.Config, enum contract.SourceEnumerator, aug contract.Augmenter, mgr contract.StoreManager) error {
	start := time.Now()

	report, err := buildScanReport(ctx, cfg, enum, aug)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	if err := outwriter.NewOutWriter().WriteReport(report, cfg, duration); err != nil {
		return err
	}

	persistReport(report, cfg, mgr)
	return nil
}

// buildScanReport assembles the analysis report: Enumeration, Extraction,
// Aggregation, optional Augmentation, Scoring.
func buildScanReport(ctx context.Context, cfg *contract.Config, enum contract.SourceEnumerator, aug contract.Augmenter) (*schema.AnalysisReport, error) {
	start := time.Now()

	// --- 1. Enumeration Phase ---
	sources, skipped, err := enum.Enumerate(ctx, cfg.RepoPath, cfg.AllowList, cfg.Excludes)
	if err != nil {
		return nil, err
	}

	// --- 2. Extraction Phase ---
	metrics := extractRepo(ctx, cfg, sources)

	// --- 3. Aggregation Phase ---
	factors := agg.Aggregate(metrics)

	report := &schema.AnalysisReport{
		RepoPath:      cfg.RepoPath,
		GeneratedAt:   start.UTC(),
		FilesAnalyzed: len(sources),
		FilesSkipped:  skipped,
	}

	// --- 4. Augmentation Phase (optional, best-effort) ---
	if aug != nil {
		applyAugmentation(ctx, cfg, aug, &factors, report)
	}

	// --- 5. Scoring Phase ---
	report.Factors = factors
	report.Scores = ComputeScores(&factors)
	report.DurationMS = time.Since(start).Milliseconds()

	return report, nil
}

// applyAugmentation requests factor overrides from the external analyzer and
// merges them into the factor record. Any failure downgrades to a warning;
// the report then carries the local factors unchanged.
func applyAugmentation(ctx context.Context, cfg *contract.Config, aug contract.Augmenter, factors *schema.AggregatedFactors, report *schema.AnalysisReport) {
	augCtx, cancel := context.WithTimeout(ctx, cfg.AugmentTimeout)
	defer cancel()

	result, err := aug.Augment(augCtx, cfg.AugmentWorkspace, cfg.AugmentFiles)
	if err != nil {
		contract.LogWarn("Augmentation failed, using local factors", err)
		return
	}

	applied := augment.ApplyOverrides(factors, result)
	report.Augmented = true
	report.OverriddenFactors = applied
}

// persistReport stores the report if a backend is configured. Storage
// failures never fail the scan.
func persistReport(report *schema.AnalysisReport, cfg *contract.Config, mgr contract.StoreManager) {
	if mgr == nil || cfg.ReportBackend == schema.NoneBackend {
		return
	}
	store := mgr.GetReportStore()
	if store == nil {
		return
	}
	runID, err := store.SaveReport(report)
	if err != nil {
		contract.LogWarn("Failed to save report", err)
		return
	}
	if runID > 0 {
		fmt.Printf("💾 Saved report as run %d (%s backend)\n", runID, cfg.ReportBackend)
	}
}
