// Package parquet exports stored analysis reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/auditlens/auditlens/schema"
)

// ReportRun represents one stored analysis report for export.
// This struct maps to the auditlens_report_runs database table.
type ReportRun struct {
	// RunID is the unique identifier for this report run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoPath is the analyzed repository root
	RepoPath string `parquet:"repo_path,snappy"`

	// GeneratedAt is when the report was produced (stored as TIMESTAMP with nanosecond precision)
	GeneratedAt time.Time `parquet:"generated_at,snappy"`

	// DurationMs is the duration of the analysis run in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// FilesAnalyzed is the number of files analyzed in this run
	FilesAnalyzed int32 `parquet:"files_analyzed,snappy"`

	// Augmented indicates whether external overrides were applied
	Augmented bool `parquet:"augmented,snappy"`

	// ScoreStructural is the structural complexity score (0-100)
	ScoreStructural int32 `parquet:"score_structural,snappy"`

	// ScoreSecurity is the security risk score (0-100)
	ScoreSecurity int32 `parquet:"score_security,snappy"`

	// ScoreSystemic is the systemic complexity score (0-100)
	ScoreSystemic int32 `parquet:"score_systemic,snappy"`

	// ScoreEconomic is the economic complexity score (0-100)
	ScoreEconomic int32 `parquet:"score_economic,snappy"`

	// FactorsJSON contains the JSON-encoded aggregated factor record
	FactorsJSON string `parquet:"factors_json,snappy"`
}

// WriteReportRunsParquet writes a slice of ReportRun structs to a Parquet file.
func WriteReportRunsParquet(data []ReportRun, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ReportRun struct tags
	writer := parquet.NewGenericWriter[ReportRun](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertReportRuns converts schema.ReportRun rows to ReportRun for Parquet export.
func ConvertReportRuns(records []schema.ReportRun) []ReportRun {
	result := make([]ReportRun, len(records))
	for i, record := range records {
		result[i] = ReportRun{
			RunID:           record.ID,
			RepoPath:        record.RepoPath,
			GeneratedAt:     record.GeneratedAt,
			DurationMs:      record.DurationMS,
			FilesAnalyzed:   int32(record.FilesAnalyzed),
			Augmented:       record.Augmented,
			ScoreStructural: int32(record.StructuralScore),
			ScoreSecurity:   int32(record.SecurityScore),
			ScoreSystemic:   int32(record.SystemicScore),
			ScoreEconomic:   int32(record.EconomicScore),
			FactorsJSON:     record.FactorsJSON,
		}
	}
	return result
}
