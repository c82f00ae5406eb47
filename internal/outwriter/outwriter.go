// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteReport prints an analysis report using the configured output format.
func (ow *OutWriter) WriteReport(report *schema.AnalysisReport, cfg *contract.Config, duration time.Duration) error {
	return WriteReportResults(report, cfg, duration)
}

// WriteFiles prints per-file ranking results using the configured output format.
func (ow *OutWriter) WriteFiles(files []schema.RankedFile, cfg *contract.Config, duration time.Duration) error {
	return WriteRankedFiles(files, cfg, duration)
}

// WriteCatalog prints the factor catalog using the configured output format.
func (ow *OutWriter) WriteCatalog(cfg *contract.Config) error {
	return WriteFactorCatalog(cfg)
}
