package schema

// FactorInfo describes one factor for presentation and export. The catalog is
// informational only; it is not part of the analytical contract.
type FactorInfo struct {
	DisplayName string `json:"displayName"`
	Type        string `json:"type"` // count, ratio, set, or list
	Category    string `json:"category"`
	Description string `json:"description"`
}

// Factor categories used by the catalog.
const (
	StructuralCategory = "structural"
	SecurityCategory   = "security"
	SystemicCategory   = "systemic"
	EconomicCategory   = "economic"
)

// CatalogOrder is the stable display order for the factor catalog.
var CatalogOrder = []FactorKey{
	FactorLinesOfCode,
	FactorNumFunctions,
	FactorNumPrograms,
	FactorTotalCyclomaticComplexity,
	FactorMaxCyclomaticComplexity,
	FactorAvgCyclomaticComplexity,
	FactorStateVariables,
	FactorPublicFunctions,
	FactorPrivateFunctions,
	FactorUnsafeCodeBlocks,
	FactorPanicCalls,
	FactorUnwrapCalls,
	FactorMatchWithoutDefault,
	FactorMemorySafetyIssues,
	FactorAccessControlIssues,
	FactorExternalCallCount,
	FactorUniqueExternalCalls,
	FactorStandardLibraryUsage,
	FactorCPICount,
	FactorKnownProtocols,
	FactorAnchorFeatures,
	FactorOracleUsages,
	FactorTokenTransferCount,
	FactorMathOperations,
	FactorTimeDependentLogic,
	FactorDefiPatterns,
	FactorEconomicRiskFactors,
}

// FactorCatalog returns the presentation metadata for every canonical factor.
func FactorCatalog() map[FactorKey]FactorInfo {
	return map[FactorKey]FactorInfo{
		FactorLinesOfCode: {
			DisplayName: "Lines of Code",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Logical lines of code across all scanned files, excluding blanks and comments.",
		},
		FactorNumFunctions: {
			DisplayName: "Functions",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Function declarations found across all scanned files.",
		},
		FactorNumPrograms: {
			DisplayName: "Programs",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Program entrypoint declarations (program modules or id declarations).",
		},
		FactorTotalCyclomaticComplexity: {
			DisplayName: "Total Cyclomatic Complexity",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Sum of estimated decision points plus one per function.",
		},
		FactorMaxCyclomaticComplexity: {
			DisplayName: "Max Cyclomatic Complexity",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Highest single-function cyclomatic complexity observed.",
		},
		FactorAvgCyclomaticComplexity: {
			DisplayName: "Avg Cyclomatic Complexity",
			Type:        "ratio",
			Category:    StructuralCategory,
			Description: "Total cyclomatic complexity divided by function count (0 when no functions).",
		},
		FactorStateVariables: {
			DisplayName: "State Variables",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Public fields declared inside account-annotated structs and enums.",
		},
		FactorPublicFunctions: {
			DisplayName: "Public Functions",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Function declarations with explicit public visibility.",
		},
		FactorPrivateFunctions: {
			DisplayName: "Private Functions",
			Type:        "count",
			Category:    StructuralCategory,
			Description: "Function declarations without explicit public visibility.",
		},
		FactorUnsafeCodeBlocks: {
			DisplayName: "Unsafe Blocks",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "unsafe blocks, each bypassing compiler memory-safety guarantees.",
		},
		FactorPanicCalls: {
			DisplayName: "Panic Calls",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "Explicit panic! invocations that abort the instruction.",
		},
		FactorUnwrapCalls: {
			DisplayName: "Unwrap/Expect Calls",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "Calls to .unwrap() or .expect() that can abort on unexpected input.",
		},
		FactorMatchWithoutDefault: {
			DisplayName: "Match Without Default",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "match expressions lacking a catch-all arm.",
		},
		FactorMemorySafetyIssues: {
			DisplayName: "Memory Safety Issues",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "Memory-safety findings; currently identical to the unsafe block count.",
		},
		FactorAccessControlIssues: {
			DisplayName: "Access Control Issues",
			Type:        "count",
			Category:    SecurityCategory,
			Description: "Unchecked account usages without an accompanying safety justification.",
		},
		FactorExternalCallCount: {
			DisplayName: "External Calls",
			Type:        "count",
			Category:    SystemicCategory,
			Description: "Raw occurrences of framework and runtime call sites.",
		},
		FactorUniqueExternalCalls: {
			DisplayName: "Unique External Calls",
			Type:        "set",
			Category:    SystemicCategory,
			Description: "Distinct external call targets; reported as a set cardinality.",
		},
		FactorStandardLibraryUsage: {
			DisplayName: "Standard Library Usage",
			Type:        "set",
			Category:    SystemicCategory,
			Description: "Distinct std/core modules referenced; reported as a set cardinality.",
		},
		FactorCPICount: {
			DisplayName: "Cross-Program Invocations",
			Type:        "count",
			Category:    SystemicCategory,
			Description: "Occurrences of cross-program invocation keywords and helper types.",
		},
		FactorKnownProtocols: {
			DisplayName: "Known Protocol Interactions",
			Type:        "set",
			Category:    SystemicCategory,
			Description: "Recognized third-party protocols mentioned anywhere in the tree (deduplicated).",
		},
		FactorAnchorFeatures: {
			DisplayName: "Anchor Features",
			Type:        "list",
			Category:    SystemicCategory,
			Description: "Framework-specific counters: constraints, seeds, signer/owner checks, space, rent.",
		},
		FactorOracleUsages: {
			DisplayName: "Oracle Usages",
			Type:        "list",
			Category:    SystemicCategory,
			Description: "Recognized oracle keyword families, one entry per family per file.",
		},
		FactorTokenTransferCount: {
			DisplayName: "Token Transfers",
			Type:        "count",
			Category:    EconomicCategory,
			Description: "Occurrences of token and lamport transfer keywords.",
		},
		FactorMathOperations: {
			DisplayName: "Math Operations",
			Type:        "count",
			Category:    EconomicCategory,
			Description: "Weighted count of arithmetic and financial math patterns, deduplicated by span.",
		},
		FactorTimeDependentLogic: {
			DisplayName: "Time-Dependent Logic",
			Type:        "count",
			Category:    EconomicCategory,
			Description: "Occurrences of clock, timestamp and slot reads.",
		},
		FactorDefiPatterns: {
			DisplayName: "DeFi Patterns",
			Type:        "list",
			Category:    EconomicCategory,
			Description: "Detected protocol pattern instances (amm, lending, vesting, staking) per file.",
		},
		FactorEconomicRiskFactors: {
			DisplayName: "Economic Risk Factors",
			Type:        "list",
			Category:    EconomicCategory,
			Description: "Overflow, division and precision risk mentions with fixed weights.",
		},
	}
}
