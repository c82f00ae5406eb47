package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/auditlens/auditlens/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit    = 25
	MaxResultLimit        = 1000
	DefaultAugmentTimeout = 2 * time.Minute
	MaxAugmentTimeout     = 5 * time.Minute
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// DateTimeFormat is the default date time representation.
var DateTimeFormat = time.RFC3339

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath    string
	AllowList   []string
	Excludes    []string
	ResultLimit int
	Workers     int
	Detail      bool
	Explain     bool
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	ReportBackend   schema.DatabaseBackend
	ReportDBConnect string // Please use env var as this is plaintext

	AugmentURL       string
	AugmentWorkspace string
	AugmentFiles     []string
	AugmentTimeout   time.Duration
	APIVersion       string

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Include         string `mapstructure:"include"`
	Exclude         string `mapstructure:"exclude"`
	OutputFile      string `mapstructure:"output-file"`
	Limit           int    `mapstructure:"limit"`
	Workers         int    `mapstructure:"workers"`
	Output          string `mapstructure:"output"`
	Detail          bool   `mapstructure:"detail"`
	Width           int    `mapstructure:"width"`
	Color           string `mapstructure:"color"`
	ReportBackend   string `mapstructure:"report-backend"`
	ReportDBConnect string `mapstructure:"report-db-connect"`

	// --- Fields from scanCmd.Flags() ---
	Explain          bool   `mapstructure:"explain"`
	AugmentURL       string `mapstructure:"augment-url"`
	AugmentWorkspace string `mapstructure:"augment-workspace"`
	AugmentFiles     string `mapstructure:"augment-files"`
	AugmentTimeout   string `mapstructure:"augment-timeout"`
	APIVersion       string `mapstructure:"api-version"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.AllowList != nil {
		clone.AllowList = make([]string, len(c.AllowList))
		copy(clone.AllowList, c.AllowList)
	}
	if c.Excludes != nil {
		clone.Excludes = make([]string, len(c.Excludes))
		copy(clone.Excludes, c.Excludes)
	}
	if c.AugmentFiles != nil {
		clone.AugmentFiles = make([]string, len(c.AugmentFiles))
		copy(clone.AugmentFiles, c.AugmentFiles)
	}
	return &clone
}

// AugmentEnabled reports whether remote augmentation is configured for this run.
func (c *Config) AugmentEnabled() bool {
	return c.AugmentURL != "" && c.AugmentWorkspace != ""
}

// ProcessAndValidate performs all complex parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processAugmentConfig(cfg, input); err != nil {
		return err
	}
	if err := resolveRepoPath(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("report-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("report-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-path related fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.Width = input.Width

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Output Validation ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	// --- 4. Backend Validation ---
	cfg.ReportBackend = schema.DatabaseBackend(strings.ToLower(input.ReportBackend))
	if _, ok := schema.ValidReportBackends[cfg.ReportBackend]; !ok {
		return fmt.Errorf("invalid report backend '%s'. must be sqlite, mysql, postgresql, none", input.ReportBackend)
	}
	cfg.ReportDBConnect = input.ReportDBConnect
	if err := ValidateDatabaseConnectionString(cfg.ReportBackend, cfg.ReportDBConnect); err != nil {
		return err
	}

	// --- 5. Include / Exclude Processing ---
	cfg.AllowList = splitCommaList(input.Include)

	defaults := []string{
		"target/", "node_modules/", ".git/",
		"tests/", "migrations/",
		".generated.rs",
	}
	cfg.Excludes = defaults // Set defaults first
	cfg.Excludes = append(cfg.Excludes, splitCommaList(input.Exclude)...)

	return nil
}

// processAugmentConfig handles the remote augmentation parameters.
func processAugmentConfig(cfg *Config, input *ConfigRawInput) error {
	cfg.AugmentURL = strings.TrimSpace(input.AugmentURL)
	cfg.AugmentWorkspace = strings.TrimSpace(input.AugmentWorkspace)
	cfg.AugmentFiles = splitCommaList(input.AugmentFiles)

	if cfg.AugmentURL != "" && cfg.AugmentWorkspace == "" {
		return fmt.Errorf("must specify --augment-workspace when --augment-url is set")
	}

	cfg.AugmentTimeout = DefaultAugmentTimeout
	if input.AugmentTimeout != "" {
		d, err := time.ParseDuration(input.AugmentTimeout)
		if err != nil {
			return fmt.Errorf("invalid --augment-timeout value '%s': %w", input.AugmentTimeout, err)
		}
		if d <= 0 || d > MaxAugmentTimeout {
			return fmt.Errorf("--augment-timeout must be between 0 and %s (received %s)", MaxAugmentTimeout, d)
		}
		cfg.AugmentTimeout = d
	}

	cfg.APIVersion = strings.TrimSpace(input.APIVersion)
	if cfg.APIVersion == "" {
		cfg.APIVersion = schema.DefaultAPIVersion
	}

	return nil
}

// resolveRepoPath resolves the analysis root path.
func resolveRepoPath(cfg *Config, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, err := os.Stat(absSearchPath)
	if err != nil {
		return fmt.Errorf("cannot access path %q: %w", absSearchPath, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path %q is not a directory", absSearchPath)
	}

	cfg.RepoPath = absSearchPath
	return nil
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// splitCommaList splits a comma-separated flag value into trimmed, non-empty parts.
func splitCommaList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for p := range strings.SplitSeq(s, ",") {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
