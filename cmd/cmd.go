// Package cmd defines the command-line interface for auditlens.
package cmd

import (
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(filesCmd)
	rootCmd.AddCommand(factorsCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the report subcommands to the parent report command
	reportCmd.AddCommand(reportStatusCmd)
	reportCmd.AddCommand(reportClearCmd)
	reportCmd.AddCommand(reportExportCmd)
	reportCmd.AddCommand(reportMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().Bool("detail", false, "Print the full factor table alongside the scores")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated list of path prefixes or patterns to ignore")
	rootCmd.PersistentFlags().StringP("include", "i", "", "Comma-separated list of path substrings to restrict the scan to")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("report-backend", string(schema.SQLiteBackend), "Report backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("report-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of scanCmd to Viper
	scanCmd.Flags().Bool("explain", false, "Print the per-dimension score breakdown")
	scanCmd.Flags().String("augment-url", "", "Endpoint of the external semantic analyzer")
	scanCmd.Flags().String("augment-workspace", "", "Workspace identifier sent to the external analyzer")
	scanCmd.Flags().String("augment-files", "", "Comma-separated list of files the analyzer should focus on")
	scanCmd.Flags().String("augment-timeout", "2m", "Timeout for the augmentation request")
	scanCmd.Flags().String("api-version", schema.DefaultAPIVersion, "Augmentation protocol version")
	if err := viper.BindPFlags(scanCmd.Flags()); err != nil {
		contract.LogFatal("Error binding scan flags", err)
	}

	// Bind all flags of reportMigrateCmd to Viper
	reportMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(reportMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report migrate flags", err)
	}
}
