package iostore

import (
	"errors"
	"fmt"

	"github.com/auditlens/auditlens/internal/parquet"
)

// ExecuteReportExport performs the actual export of stored reports to a Parquet file.
func ExecuteReportExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetReportStore()
	if store == nil {
		return errors.New("report store is not initialized")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get report status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no report data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total report runs: %d\n", status.TotalRuns)

	runs, err := store.ExportRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve report runs: %w", err)
	}

	parquetRuns := parquet.ConvertReportRuns(runs)

	runsFile := outputFile + ".report_runs.parquet"
	if err := parquet.WriteReportRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write report runs: %w", err)
	}
	fmt.Printf("Exported %d report runs to: %s\n", len(parquetRuns), runsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
