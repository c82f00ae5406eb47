package core

import (
	"testing"

	"github.com/auditlens/auditlens/schema"
	"github.com/stretchr/testify/assert"
)

func TestAttentionScore(t *testing.T) {
	m := &schema.RawFileMetrics{
		LinesOfCode:     1000,
		NumFunctions:    50,
		TotalComplexity: 250, // avg 5
		MaxComplexity:   10,
	}
	assert.InDelta(t, 100.0, attentionScore(m), 0.0001)
}

func TestAttentionScoreZeroFunctions(t *testing.T) {
	m := &schema.RawFileMetrics{LinesOfCode: 500}
	assert.InDelta(t, 10.0, attentionScore(m), 0.0001)
}

func TestBuildRankedFile(t *testing.T) {
	m := &schema.RawFileMetrics{
		Path:             "programs/amm/src/lib.rs",
		LinesOfCode:      800,
		NumFunctions:     16,
		TotalComplexity:  48,
		MaxComplexity:    7,
		UnsafeCodeBlocks: 1,
		PanicCalls:       2,
	}

	rf := buildRankedFile(m)
	assert.Equal(t, m.Path, rf.Path)
	assert.Equal(t, 800, rf.LinesOfCode)
	assert.Equal(t, 1, rf.UnsafeCodeBlocks)
	assert.Equal(t, 2, rf.PanicCalls)
	assert.InDelta(t, attentionScore(m), rf.Score, 0.0001)
	assert.Positive(t, rf.Score)
}
