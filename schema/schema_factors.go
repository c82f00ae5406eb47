package schema

// AggregatedFactors is the repository-wide fold of all per-file metrics plus
// derived fields. One instance exists per analysis run; it is mutated only
// during aggregation and the optional augmentation patch, then read-only for
// scoring and reporting. Field names in JSON are the canonical factor names
// used by the augmentation protocol and the factor catalog.
type AggregatedFactors struct {
	LinesOfCode  int `json:"linesOfCode"`
	NumFunctions int `json:"numFunctions"`
	NumPrograms  int `json:"numPrograms"`

	TotalCyclomaticComplexity int     `json:"totalCyclomaticComplexity"`
	MaxCyclomaticComplexity   int     `json:"maxCyclomaticComplexity"`
	AvgCyclomaticComplexity   float64 `json:"avgCyclomaticComplexity"`

	UnsafeCodeBlocks    int `json:"unsafeCodeBlocks"`
	PanicCalls          int `json:"panicCalls"`
	UnwrapCalls         int `json:"unwrapCalls"`
	MatchWithoutDefault int `json:"matchWithoutDefault"`
	MemorySafetyIssues  int `json:"memorySafetyIssues"`
	AccessControlIssues int `json:"accessControlIssues"`

	StateVariables   int `json:"stateVariables"`
	PublicFunctions  int `json:"publicFunctions"`
	PrivateFunctions int `json:"privateFunctions"`

	ExternalCallCount    int      `json:"externalCallCount"`
	UniqueExternalCalls  []string `json:"uniqueExternalCalls"`
	StandardLibraryUsage []string `json:"standardLibraryUsage"`

	CPICount           int `json:"cpiCount"`
	TokenTransferCount int `json:"tokenTransferCount"`
	MathOperations     int `json:"mathOperations"`
	TimeDependentLogic int `json:"timeDependentLogic"`

	DefiPatterns              []DeFiPattern        `json:"defiPatterns"`
	OracleUsages              []OracleUsage        `json:"oracleUsages"`
	EconomicRiskFactors       []EconomicRiskFactor `json:"economicRiskFactors"`
	KnownProtocolInteractions []string             `json:"knownProtocolInteractions"`

	Anchor AnchorFeatures `json:"anchorFeatures"`
}

// Clone returns a deep copy of the factors. The augmentation merger patches a
// clone so a failed merge can never corrupt the heuristic record.
func (f *AggregatedFactors) Clone() AggregatedFactors {
	out := *f
	out.UniqueExternalCalls = append([]string(nil), f.UniqueExternalCalls...)
	out.StandardLibraryUsage = append([]string(nil), f.StandardLibraryUsage...)
	out.DefiPatterns = append([]DeFiPattern(nil), f.DefiPatterns...)
	out.OracleUsages = append([]OracleUsage(nil), f.OracleUsages...)
	out.EconomicRiskFactors = append([]EconomicRiskFactor(nil), f.EconomicRiskFactors...)
	out.KnownProtocolInteractions = append([]string(nil), f.KnownProtocolInteractions...)
	out.Anchor.DeriveMacros = append([]string(nil), f.Anchor.DeriveMacros...)
	for i, o := range f.OracleUsages {
		out.OracleUsages[i].Functions = append([]string(nil), o.Functions...)
	}
	return out
}
