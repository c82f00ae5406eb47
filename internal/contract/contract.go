// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/auditlens/auditlens/schema"
)

// SourceFile is one readable source file handed to the extraction pipeline.
type SourceFile struct {
	Path string // Path relative to the scan root
	Text string // Full file content
}

// SourceEnumerator supplies the ordered list of source files for a scan.
// This allows the core pipeline to be tested without touching a filesystem,
// and keeps acquisition concerns (cloning, unpacking uploads) out of the
// engine entirely.
type SourceEnumerator interface {
	// Enumerate returns the readable source files under root, in stable
	// order. A file is included when its path contains any allow-list
	// substring (an empty allow-list includes everything) and matches no
	// exclude pattern. Unreadable files are skipped, not fatal; the second
	// return value is the number of files skipped that way.
	Enumerate(ctx context.Context, root string, allowList, excludes []string) ([]SourceFile, int, error)
}

// Augmenter is the capability interface for the optional external semantic
// analyzer. Implementations must honor the context deadline; any failure is
// reported as an error and never as a partial result.
type Augmenter interface {
	// Augment requests factor overrides for the given workspace. A nil
	// result with a nil error is not a valid return.
	Augment(ctx context.Context, workspaceID string, selectedFiles []string) (*schema.AugmentResult, error)
}

// ReportStore persists analysis reports for trend tracking and export.
type ReportStore interface {
	// SaveReport stores a completed report and returns its run ID.
	SaveReport(report *schema.AnalysisReport) (int64, error)

	// ExportRuns returns every stored run, oldest first.
	ExportRuns() ([]schema.ReportRun, error)

	// GetStatus returns status information about the report store.
	GetStatus() (schema.ReportStatus, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager hands out the report store. This allows the storage layer to
// be mocked for testing.
type StoreManager interface {
	GetReportStore() ReportStore
}
