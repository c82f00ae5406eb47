package core

import (
	"testing"

	"github.com/auditlens/auditlens/schema"
	"github.com/stretchr/testify/assert"
)

func TestComputeScoresUnsafeExample(t *testing.T) {
	// Two unsafe blocks and nothing else: 20*2 + 15*2 = 70.
	f := &schema.AggregatedFactors{
		UnsafeCodeBlocks:   2,
		MemorySafetyIssues: 2,
	}
	scores := ComputeScores(f)

	assert.Equal(t, 70, scores.Security.Score)
	assert.Equal(t, 2, scores.Security.Details.UnsafeCodeBlocks)
	assert.Equal(t, 2, scores.Security.Details.MemorySafetyIssues)
}

func TestComputeScoresBounds(t *testing.T) {
	tests := []struct {
		name    string
		factors schema.AggregatedFactors
	}{
		{
			name:    "zero factors",
			factors: schema.AggregatedFactors{},
		},
		{
			name: "saturating factors",
			factors: schema.AggregatedFactors{
				LinesOfCode:               500000,
				NumFunctions:              9000,
				AvgCyclomaticComplexity:   40,
				MaxCyclomaticComplexity:   120,
				UnsafeCodeBlocks:          50,
				PanicCalls:                200,
				UnwrapCalls:               900,
				MemorySafetyIssues:        50,
				AccessControlIssues:       30,
				ExternalCallCount:         400,
				UniqueExternalCalls:       make([]string, 60),
				OracleUsages:              make([]schema.OracleUsage, 12),
				CPICount:                  90,
				TokenTransferCount:        300,
				MathOperations:            5000,
				DefiPatterns:              make([]schema.DeFiPattern, 9),
				TimeDependentLogic:        40,
				EconomicRiskFactors:       []schema.EconomicRiskFactor{{Count: 50, Weight: 3.0}},
				KnownProtocolInteractions: make([]string, 8),
				Anchor:                    schema.AnchorFeatures{ConstraintUsage: 500},
			},
		},
		{
			name: "moderate factors",
			factors: schema.AggregatedFactors{
				LinesOfCode:             3400,
				NumFunctions:            80,
				AvgCyclomaticComplexity: 3.2,
				MaxCyclomaticComplexity: 12,
				UnwrapCalls:             25,
				ExternalCallCount:       14,
				CPICount:                4,
				MathOperations:          60,
				TokenTransferCount:      7,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := ComputeScores(&tt.factors)
			for _, s := range []int{
				scores.Structural.Score,
				scores.Security.Score,
				scores.Systemic.Score,
				scores.Economic.Score,
			} {
				assert.GreaterOrEqual(t, s, 0)
				assert.LessOrEqual(t, s, 100)
			}
		})
	}
}

func TestComputeScoresSaturationClamps(t *testing.T) {
	f := &schema.AggregatedFactors{
		UnsafeCodeBlocks:   50,
		MemorySafetyIssues: 50,
	}
	scores := ComputeScores(f)

	// Raw 20*50 + 15*50 = 1750 clamps silently.
	assert.Equal(t, 100, scores.Security.Score)
}

func TestComputeScoresStructuralFormula(t *testing.T) {
	f := &schema.AggregatedFactors{
		LinesOfCode:             1000,
		NumFunctions:            50,
		AvgCyclomaticComplexity: 5,
		MaxCyclomaticComplexity: 10,
	}
	scores := ComputeScores(f)

	// Each term exactly at its reference magnitude contributes its weight.
	assert.Equal(t, 100, scores.Structural.Score)
	assert.Equal(t, 1000, scores.Structural.Details.LinesOfCode)
	assert.InDelta(t, 5.0, scores.Structural.Details.AvgCyclomaticComplexity, 0.0001)
}

func TestComputeScoresEconomicTimeDependence(t *testing.T) {
	base := &schema.AggregatedFactors{TokenTransferCount: 10}
	withTime := &schema.AggregatedFactors{TokenTransferCount: 10, TimeDependentLogic: 3}

	baseScore := ComputeScores(base).Economic.Score
	timedScore := ComputeScores(withTime).Economic.Score

	// Time dependence adds a flat bonus regardless of hit count.
	assert.Equal(t, baseScore+20, timedScore)
}

func TestComputeScoresDeterminism(t *testing.T) {
	f := &schema.AggregatedFactors{
		LinesOfCode:             2400,
		NumFunctions:            64,
		AvgCyclomaticComplexity: 2.8,
		MaxCyclomaticComplexity: 11,
		UnsafeCodeBlocks:        1,
		MemorySafetyIssues:      1,
		UnwrapCalls:             12,
		CPICount:                5,
		MathOperations:          80,
	}
	first := ComputeScores(f)
	for range 5 {
		assert.Equal(t, first, ComputeScores(f))
	}
}
