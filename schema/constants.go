package schema

// Custom string types for type safety.
type (
	// PatternType represents a detected DeFi protocol pattern category.
	PatternType string

	// RiskLevel represents a qualitative risk tier for detected patterns.
	RiskLevel string

	// Severity represents the severity tier of an economic risk factor.
	Severity string

	// FactorKey represents a canonical factor name in the analysis record.
	FactorKey string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for report storage.
	DatabaseBackend string
)

// All DeFi pattern categories detected by the extractor.
const (
	AMMPattern     PatternType = "amm"
	LendingPattern PatternType = "lending"
	VestingPattern PatternType = "vesting"
	StakingPattern PatternType = "staking"
)

// All risk tiers.
const (
	LowRisk    RiskLevel = "low"
	MediumRisk RiskLevel = "medium"
	HighRisk   RiskLevel = "high"
)

// All severity tiers.
const (
	LowSeverity    Severity = "low"
	MediumSeverity Severity = "medium"
	HighSeverity   Severity = "high"
)

// Canonical factor names. These are the keys accepted by the augmentation
// protocol and listed in the factor catalog.
const (
	FactorLinesOfCode               FactorKey = "linesOfCode"
	FactorNumFunctions              FactorKey = "numFunctions"
	FactorNumPrograms               FactorKey = "numPrograms"
	FactorTotalCyclomaticComplexity FactorKey = "totalCyclomaticComplexity"
	FactorMaxCyclomaticComplexity   FactorKey = "maxCyclomaticComplexity"
	FactorAvgCyclomaticComplexity   FactorKey = "avgCyclomaticComplexity"
	FactorUnsafeCodeBlocks          FactorKey = "unsafeCodeBlocks"
	FactorPanicCalls                FactorKey = "panicCalls"
	FactorUnwrapCalls               FactorKey = "unwrapCalls"
	FactorMatchWithoutDefault       FactorKey = "matchWithoutDefault"
	FactorMemorySafetyIssues        FactorKey = "memorySafetyIssues"
	FactorAccessControlIssues       FactorKey = "accessControlIssues"
	FactorStateVariables            FactorKey = "stateVariables"
	FactorPublicFunctions           FactorKey = "publicFunctions"
	FactorPrivateFunctions          FactorKey = "privateFunctions"
	FactorExternalCallCount         FactorKey = "externalCallCount"
	FactorUniqueExternalCalls       FactorKey = "uniqueExternalCalls"
	FactorStandardLibraryUsage      FactorKey = "standardLibraryUsage"
	FactorCPICount                  FactorKey = "cpiCount"
	FactorTokenTransferCount        FactorKey = "tokenTransferCount"
	FactorMathOperations            FactorKey = "mathOperations"
	FactorTimeDependentLogic        FactorKey = "timeDependentLogic"
	FactorDefiPatterns              FactorKey = "defiPatterns"
	FactorOracleUsages              FactorKey = "oracleUsages"
	FactorEconomicRiskFactors       FactorKey = "economicRiskFactors"
	FactorKnownProtocols            FactorKey = "knownProtocolInteractions"
	FactorAnchorFeatures            FactorKey = "anchorFeatures"
)

// All output modes supported.
const (
	CSVOut  OutputMode = "csv"
	TextOut OutputMode = "text" // default
	JSONOut OutputMode = "json"
)

// All report backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// DefaultAPIVersion is the augmentation protocol version sent upstream.
const DefaultAPIVersion = "v1"

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:  {},
	TextOut: {},
	JSONOut: {},
}

// ValidReportBackends lists all valid report backends.
var ValidReportBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}
