package cmd

import (
	"fmt"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/internal/iostore"
	"github.com/auditlens/auditlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportSetup loads minimal configuration needed for report operations.
// This is used by commands that need store access without full shared setup.
func reportSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get report-related config values
	backendStr := viper.GetString("report-backend")
	connStr := viper.GetString("report-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config
	if err := iostore.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize report store: %w", err)
	}

	cfg.ReportBackend = backend
	cfg.ReportDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// reportSetupWrapper wraps reportSetup to provide PreRunE for report commands.
func reportSetupWrapper(_ *cobra.Command, _ []string) error {
	return reportSetup()
}

// reportMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func reportMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get report-related config values
	backendStr := viper.GetString("report-backend")
	connStr := viper.GetString("report-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetReportDBFilePath()
	}

	cfg.ReportBackend = backend
	cfg.ReportDBConnect = connStr

	return nil
}

// reportMigrateSetupWrapper wraps reportMigrateSetup to provide PreRunE for migrate command.
func reportMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return reportMigrateSetup()
}

// reportCmd focused on stored report management.
//
// Note: Report subcommands use minimal initialization (reportSetup) instead of
// the full sharedSetup used by scan commands. This avoids source tree validation
// and complex config processing for simple store operations.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Manage stored analysis reports and exports",
	Long: `Manage the analysis reports persisted by scan runs.

When enabled, AuditLens stores every scan report, keeping:
- Run metadata (repository, timestamp, duration, file counts)
- The four dimension scores
- The full aggregated factor record as JSON

This enables score trend tracking across audits and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show report store statistics
  export  - Export stored runs to Parquet for analytics
  clear   - Remove all stored reports
  migrate - Run database schema migrations

Examples:
  # Check store status
  auditlens report status

  # Export for analysis in pandas/DuckDB
  auditlens report export --output-file audit-history`,
}

// reportStatusCmd shows report store status.
var reportStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display report store statistics and connection details",
	Long: `Show detailed information about the stored analysis reports.

Displays:
- Backend type and connection status
- Total number of stored runs
- Last and oldest run timestamps

Use this to:
- Verify report persistence is enabled and working
- Monitor data accumulation over time
- Check database connection health

Examples:
  # Check report store status
  auditlens report status`,
	PreRunE: reportSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := iostore.Manager.GetReportStore()
		if store == nil {
			contract.LogFatal("Report store unavailable", fmt.Errorf("backend %s is not initialized", cfg.ReportBackend))
		}
		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get report status", err)
		}
		iostore.PrintReportStatus(status)
	},
}

// reportClearCmd clears the stored reports.
var reportClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all stored analysis reports",
	Long: `Delete every stored scan report.

This removes:
- All run metadata
- Historical dimension scores
- Persisted factor records

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  auditlens report export --output-file backup
  auditlens report clear`,
	PreRunE: reportSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ClearReports(cfg.ReportBackend, contract.GetReportDBFilePath(), cfg.ReportDBConnect); err != nil {
			contract.LogFatal("Failed to clear report data", err)
		}
		fmt.Println("Report data cleared successfully.")
	},
}

// reportExportCmd exports stored reports to Parquet files.
var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored reports to Parquet for BI tools and analytics",
	Long: `Export all stored scan reports to Parquet format for analytics tooling.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all stored runs
  auditlens report export --output-file audit-history

  # Use with DuckDB for analysis
  auditlens report export --output-file data
  duckdb -c "SELECT * FROM read_parquet('data.report_runs.parquet') LIMIT 10"`,
	PreRunE: reportSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iostore.ExecuteReportExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export report data", err)
		}
	},
}

// reportMigrateCmd runs database migrations for the report store.
var reportMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the report store.

Migrations allow:
- Upgrading to new schema versions when AuditLens is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  auditlens report migrate

  # Migrate to specific version
  auditlens report migrate --target-version 1

  # Rollback to previous version
  auditlens report migrate --target-version 0`,
	PreRunE: reportMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iostore.MigrateReports(cfg.ReportBackend, cfg.ReportDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
