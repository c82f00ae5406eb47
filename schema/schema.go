// Package schema has configs, models and shared constants for all parts of auditlens.
package schema

// RawFileMetrics is the per-file output of pattern extraction. It is created
// once per file, never mutated afterwards, and folded into AggregatedFactors
// by the aggregator. Set-like fields are stored as unique-within-file slices;
// the aggregator owns the cross-file union.
type RawFileMetrics struct {
	Path string // Relative path to the file in the program tree

	LinesOfCode  int // Logical lines of code (comments and blanks excluded)
	NumFunctions int // Occurrences of the fn keyword followed by an identifier
	NumPrograms  int // Program entrypoint declarations found in this file

	UnsafeCodeBlocks    int // unsafe { ... } blocks
	PanicCalls          int // panic! invocations
	UnwrapCalls         int // .unwrap() and .expect() calls
	MatchWithoutDefault int // match expressions lacking a catch-all arm
	AccessControlIssues int // Unchecked account usages without a safety comment

	StateVariables   int // Public fields inside account-annotated structs/enums
	PublicFunctions  int // Explicitly public function declarations
	PrivateFunctions int // Function declarations not preceded by pub

	ExternalCallCount    int      // Raw occurrences of cross-crate call sites
	UniqueExternalCalls  []string // Distinct external call targets in this file
	StandardLibraryUsage []string // Distinct std/core modules referenced

	CPICount           int // Cross-program invocation keyword occurrences
	TokenTransferCount int // Token/lamport transfer keyword occurrences
	MathOperations     int // Weighted, span-deduplicated math operation count
	TimeDependentHits  int // Clock/timestamp/slot keyword occurrences

	DefiPatterns         []DeFiPattern        // At most one entry per category per file
	OracleUsages         []OracleUsage        // At most one entry per oracle family per file
	EconomicRisks        []EconomicRiskFactor // One entry per triggered risk category
	ProtocolInteractions []string             // Known protocol names mentioned in this file

	Anchor AnchorFeatures // Framework-specific counters

	TotalComplexity int // Sum of per-function cyclomatic complexity (>= 1)
	MaxComplexity   int // Highest per-function cyclomatic complexity (>= 1)
}

// DeFiPattern is a single detected protocol pattern instance. Instances are
// deliberately kept per file rather than deduplicated across files, since the
// number of pattern instances is itself an economic signal.
type DeFiPattern struct {
	Type       PatternType `json:"type"`
	Complexity RiskLevel   `json:"complexity"`
	RiskLevel  RiskLevel   `json:"riskLevel"`
}

// OracleUsage records one recognized oracle keyword family found in a file.
type OracleUsage struct {
	Oracle    string    `json:"oracle"`
	Functions []string  `json:"functions"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// EconomicRiskFactor is one risk category present in a file. Count is the
// number of textual hits and Weight is the fixed multiplier applied by the
// economic scoring formula.
type EconomicRiskFactor struct {
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
	Count    int      `json:"count"`
	Weight   float64  `json:"weight"`
}

// AnchorFeatures holds framework-specific counters extracted per file and
// summed during aggregation.
type AnchorFeatures struct {
	ConstraintUsage     int      `json:"constraintUsage"`
	SeedsUsage          int      `json:"seedsUsage"`
	SignerChecks        int      `json:"signerChecks"`
	OwnerChecks         int      `json:"ownerChecks"`
	SpaceAllocations    int      `json:"spaceAllocations"`
	RentExemptChecks    int      `json:"rentExemptChecks"`
	InstructionHandlers int      `json:"instructionHandlers"`
	DeriveMacros        []string `json:"deriveMacros"`
}
