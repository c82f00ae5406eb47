package schema

// ComplexityScores holds the four independent audit-priority dimensions.
// Each score is clamped to [0,100]; the details sub-objects echo the exact
// unclamped inputs that fed the formula, for explainability.
type ComplexityScores struct {
	Structural StructuralScore `json:"structural"`
	Security   SecurityScore   `json:"security"`
	Systemic   SystemicScore   `json:"systemic"`
	Economic   EconomicScore   `json:"economic"`
}

// StructuralScore measures raw size and control-flow complexity.
type StructuralScore struct {
	Score   int               `json:"score"`
	Details StructuralDetails `json:"details"`
}

// StructuralDetails echoes the factors used by the structural formula.
type StructuralDetails struct {
	LinesOfCode             int     `json:"linesOfCode"`
	NumFunctions            int     `json:"numFunctions"`
	AvgCyclomaticComplexity float64 `json:"avgCyclomaticComplexity"`
	MaxCyclomaticComplexity int     `json:"maxCyclomaticComplexity"`
}

// SecurityScore measures memory-safety and failure-mode exposure.
type SecurityScore struct {
	Score   int             `json:"score"`
	Details SecurityDetails `json:"details"`
}

// SecurityDetails echoes the factors used by the security formula.
type SecurityDetails struct {
	UnsafeCodeBlocks    int `json:"unsafeCodeBlocks"`
	PanicCalls          int `json:"panicCalls"`
	UnwrapCalls         int `json:"unwrapCalls"`
	MemorySafetyIssues  int `json:"memorySafetyIssues"`
	AccessControlIssues int `json:"accessControlIssues"`
}

// SystemicScore measures coupling to other programs and services.
type SystemicScore struct {
	Score   int             `json:"score"`
	Details SystemicDetails `json:"details"`
}

// SystemicDetails echoes the factors used by the systemic formula.
// UniqueExternalCalls is the set cardinality, never the raw occurrence count.
type SystemicDetails struct {
	ExternalCallCount   int `json:"externalCallCount"`
	UniqueExternalCalls int `json:"uniqueExternalCalls"`
	OracleCount         int `json:"oracleCount"`
	CPICount            int `json:"cpiCount"`
	ConstraintUsage     int `json:"constraintUsage"`
}

// EconomicScore measures value-movement and financial-logic exposure.
type EconomicScore struct {
	Score   int             `json:"score"`
	Details EconomicDetails `json:"details"`
}

// EconomicDetails echoes the factors used by the economic formula.
type EconomicDetails struct {
	TokenTransferCount int     `json:"tokenTransferCount"`
	MathOperations     int     `json:"mathOperations"`
	DefiPatternCount   int     `json:"defiPatternCount"`
	WeightedRiskSum    float64 `json:"weightedRiskSum"`
	TimeDependentLogic int     `json:"timeDependentLogic"`
}
