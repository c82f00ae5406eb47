package schema

import "time"

// AnalysisReport is the full product of one scan: the aggregated factor
// record, the four dimension scores, and run metadata.
type AnalysisReport struct {
	RepoPath      string    `json:"repoPath"`
	GeneratedAt   time.Time `json:"generatedAt"`
	DurationMS    int64     `json:"durationMs"`
	FilesAnalyzed int       `json:"filesAnalyzed"`
	FilesSkipped  int       `json:"filesSkipped"`

	Factors AggregatedFactors `json:"factors"`
	Scores  ComplexityScores  `json:"scores"`

	Augmented         bool     `json:"augmented"`
	OverriddenFactors []string `json:"overriddenFactors,omitempty"`
}

// RankedFile is the per-file view used by the files command: a small slice of
// the raw metrics plus a derived attention score for ranking.
type RankedFile struct {
	Path             string  `json:"path"`
	LinesOfCode      int     `json:"linesOfCode"`
	NumFunctions     int     `json:"numFunctions"`
	TotalComplexity  int     `json:"totalComplexity"`
	MaxComplexity    int     `json:"maxComplexity"`
	UnsafeCodeBlocks int     `json:"unsafeCodeBlocks"`
	PanicCalls       int     `json:"panicCalls"`
	Score            float64 `json:"score"`
}

// AugmentMeta is the metadata block of an augmentation response.
type AugmentMeta struct {
	APIVersion string `json:"api_version"`
	Timestamp  string `json:"timestamp"`
}

// AugmentResult is the sparse override payload returned by the external
// semantic analyzer. Factors carries dynamically-typed values; the merger
// interprets only the keys named in Overridden and ignores the rest.
type AugmentResult struct {
	Success    bool           `json:"success"`
	Overridden []string       `json:"overridden"`
	Factors    map[string]any `json:"factors"`
	Meta       AugmentMeta    `json:"meta"`
}

// AugmentRequest is the payload sent to the external semantic analyzer.
type AugmentRequest struct {
	WorkspaceID   string   `json:"workspace_id"`
	SelectedFiles []string `json:"selected_files,omitempty"`
	APIVersion    string   `json:"api_version"`
}

// ReportRun is the persisted row shape for one stored analysis report. The
// full factor record is kept as JSON so schema evolution of the factors
// never requires a table migration.
type ReportRun struct {
	ID              int64     `json:"id"`
	RepoPath        string    `json:"repoPath"`
	GeneratedAt     time.Time `json:"generatedAt"`
	DurationMS      int64     `json:"durationMs"`
	FilesAnalyzed   int       `json:"filesAnalyzed"`
	Augmented       bool      `json:"augmented"`
	StructuralScore int       `json:"structuralScore"`
	SecurityScore   int       `json:"securityScore"`
	SystemicScore   int       `json:"systemicScore"`
	EconomicScore   int       `json:"economicScore"`
	FactorsJSON     string    `json:"factorsJson"`
}

// ReportStatus describes the state of the report store.
type ReportStatus struct {
	Backend       DatabaseBackend
	Connected     bool
	TotalRuns     int64
	TotalFactors  int64
	LastRunTime   *time.Time
	OldestRunTime *time.Time
}
