package core

import (
	"context"
	"time"

	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/internal/outwriter"
	"github.com/auditlens/auditlens/schema"
)

// runFilesCore enumerates and extracts like a scan, then ranks individual
// files by attention score instead of folding them into one record.
func runFilesCore(ctx context.Context, cfg *contract.Config, enum contract.SourceEnumerator) error {
	start := time.Now()

	ranked, err := buildRankedFiles(ctx, cfg, enum)
	if err != nil {
		return err
	}

	duration := time.Since(start)
	return outwriter.NewOutWriter().WriteFiles(ranked, cfg, duration)
}

func buildRankedFiles(ctx context.Context, cfg *contract.Config, enum contract.SourceEnumerator) ([]schema.RankedFile, error) {
	sources, _, err := enum.Enumerate(ctx, cfg.RepoPath, cfg.AllowList, cfg.Excludes)
	if err != nil {
		return nil, err
	}

	metrics := extractRepo(ctx, cfg, sources)

	files := make([]schema.RankedFile, 0, len(metrics))
	for _, m := range metrics {
		files = append(files, buildRankedFile(&m))
	}
	return RankFiles(files, cfg.ResultLimit), nil
}

// buildRankedFile projects one raw metrics record into the ranked view and
// attaches its attention score.
func buildRankedFile(m *schema.RawFileMetrics) schema.RankedFile {
	return schema.RankedFile{
		Path:             m.Path,
		LinesOfCode:      m.LinesOfCode,
		NumFunctions:     m.NumFunctions,
		TotalComplexity:  m.TotalComplexity,
		MaxComplexity:    m.MaxComplexity,
		UnsafeCodeBlocks: m.UnsafeCodeBlocks,
		PanicCalls:       m.PanicCalls,
		Score:            attentionScore(m),
	}
}

// attentionScore applies the structural formula to a single file. The score
// is left unclamped so dense files keep separating at the top of the ranking.
func attentionScore(m *schema.RawFileMetrics) float64 {
	var avg float64
	if m.NumFunctions > 0 {
		avg = float64(m.TotalComplexity) / float64(m.NumFunctions)
	}
	return structuralLOCWeight*(float64(m.LinesOfCode)/1000.0) +
		structuralFuncWeight*(float64(m.NumFunctions)/50.0) +
		structuralAvgWeight*(avg/5.0) +
		structuralMaxWeight*(float64(m.MaxComplexity)/10.0)
}
