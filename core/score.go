// Package core holds the orchestration and scoring logic for auditlens.
package core

import (
	"math"

	"github.com/auditlens/auditlens/schema"
)

// Scoring coefficients. These are calibrated thresholds, not tunables: the
// four formulas below are the analytical contract of the tool, and changing
// a coefficient changes every ranking downstream.
const (
	structuralLOCWeight        = 20.0 // per 1000 lines
	structuralFuncWeight       = 20.0 // per 50 functions
	structuralAvgWeight        = 30.0 // per 5 avg complexity
	structuralMaxWeight        = 30.0 // per 10 max complexity
	securityUnsafeWeight       = 20.0
	securityPanicWeight        = 5.0
	securityUnwrapWeight       = 2.0
	securityMemoryWeight       = 15.0
	securityAccessWeight       = 10.0
	systemicExternalWeight     = 30.0 // per 10 external calls
	systemicUniqueWeight       = 20.0 // per 5 unique calls
	systemicOracleWeight       = 15.0
	systemicCPIWeight          = 20.0 // per 5 invocations
	systemicConstraintWeight   = 15.0 // per 10 constraints
	economicTransferWeight     = 25.0 // per 10 transfers
	economicMathWeight         = 25.0 // per 20 math operations
	economicDefiWeight         = 15.0
	economicRiskWeight         = 2.0
	economicTimeDependentBonus = 20.0
)

// ComputeScores maps an aggregated factor record to the four audit-priority
// dimensions. Each raw weighted sum is unbounded; a single dominant term can
// saturate its dimension, and the final value is clamped to [0,100]. The
// details sub-objects echo the exact inputs before clamping so a report can
// always explain its own scores.
func ComputeScores(f *schema.AggregatedFactors) schema.ComplexityScores {
	return schema.ComplexityScores{
		Structural: computeStructural(f),
		Security:   computeSecurity(f),
		Systemic:   computeSystemic(f),
		Economic:   computeEconomic(f),
	}
}

func computeStructural(f *schema.AggregatedFactors) schema.StructuralScore {
	raw := structuralLOCWeight*(float64(f.LinesOfCode)/1000.0) +
		structuralFuncWeight*(float64(f.NumFunctions)/50.0) +
		structuralAvgWeight*(f.AvgCyclomaticComplexity/5.0) +
		structuralMaxWeight*(float64(f.MaxCyclomaticComplexity)/10.0)

	return schema.StructuralScore{
		Score: clampScore(raw),
		Details: schema.StructuralDetails{
			LinesOfCode:             f.LinesOfCode,
			NumFunctions:            f.NumFunctions,
			AvgCyclomaticComplexity: f.AvgCyclomaticComplexity,
			MaxCyclomaticComplexity: f.MaxCyclomaticComplexity,
		},
	}
}

func computeSecurity(f *schema.AggregatedFactors) schema.SecurityScore {
	raw := securityUnsafeWeight*float64(f.UnsafeCodeBlocks) +
		securityPanicWeight*float64(f.PanicCalls) +
		securityUnwrapWeight*float64(f.UnwrapCalls) +
		securityMemoryWeight*float64(f.MemorySafetyIssues) +
		securityAccessWeight*float64(f.AccessControlIssues)

	return schema.SecurityScore{
		Score: clampScore(raw),
		Details: schema.SecurityDetails{
			UnsafeCodeBlocks:    f.UnsafeCodeBlocks,
			PanicCalls:          f.PanicCalls,
			UnwrapCalls:         f.UnwrapCalls,
			MemorySafetyIssues:  f.MemorySafetyIssues,
			AccessControlIssues: f.AccessControlIssues,
		},
	}
}

func computeSystemic(f *schema.AggregatedFactors) schema.SystemicScore {
	oracleCount := len(f.OracleUsages)
	uniqueCalls := len(f.UniqueExternalCalls)

	raw := systemicExternalWeight*(float64(f.ExternalCallCount)/10.0) +
		systemicUniqueWeight*(float64(uniqueCalls)/5.0) +
		systemicOracleWeight*float64(oracleCount) +
		systemicCPIWeight*(float64(f.CPICount)/5.0) +
		systemicConstraintWeight*(float64(f.Anchor.ConstraintUsage)/10.0)

	return schema.SystemicScore{
		Score: clampScore(raw),
		Details: schema.SystemicDetails{
			ExternalCallCount:   f.ExternalCallCount,
			UniqueExternalCalls: uniqueCalls,
			OracleCount:         oracleCount,
			CPICount:            f.CPICount,
			ConstraintUsage:     f.Anchor.ConstraintUsage,
		},
	}
}

func computeEconomic(f *schema.AggregatedFactors) schema.EconomicScore {
	var riskSum float64
	for _, risk := range f.EconomicRiskFactors {
		riskSum += float64(risk.Count) * risk.Weight
	}

	raw := economicTransferWeight*(float64(f.TokenTransferCount)/10.0) +
		economicMathWeight*(float64(f.MathOperations)/20.0) +
		economicDefiWeight*float64(len(f.DefiPatterns)) +
		economicRiskWeight*riskSum
	if f.TimeDependentLogic > 0 {
		raw += economicTimeDependentBonus
	}

	return schema.EconomicScore{
		Score: clampScore(raw),
		Details: schema.EconomicDetails{
			TokenTransferCount: f.TokenTransferCount,
			MathOperations:     f.MathOperations,
			DefiPatternCount:   len(f.DefiPatterns),
			WeightedRiskSum:    riskSum,
			TimeDependentLogic: f.TimeDependentLogic,
		},
	}
}

// clampScore rounds a raw weighted sum and clamps it to [0,100]. Overflow is
// silent by design; the details keep the unclamped inputs.
func clampScore(raw float64) int {
	score := int(math.Round(raw))
	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
