package core

import (
	"context"
	"sync"

	"github.com/auditlens/auditlens/core/extract"
	"github.com/auditlens/auditlens/internal/contract"
	"github.com/auditlens/auditlens/schema"
)

// extractRepo processes all files in parallel using a worker pool.
// It spawns cfg.Workers number of goroutines to extract per-file metrics
// concurrently. Extraction is pure per file, so the only serialized step is
// collecting results; the downstream fold is order-independent anyway.
func extractRepo(ctx context.Context, cfg *contract.Config, sources []contract.SourceFile) []schema.RawFileMetrics {
	fileCh := make(chan contract.SourceFile, len(sources))
	resultCh := make(chan schema.RawFileMetrics, len(sources))
	var wg sync.WaitGroup

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	// Start worker pool
	for range workers {
		wg.Go(func() {
			for src := range fileCh {
				if ctx.Err() != nil {
					continue
				}
				resultCh <- extract.Extract(src.Path, src.Text)
			}
		})
	}

	// Send files to worker channel
	for _, src := range sources {
		fileCh <- src
	}
	close(fileCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(resultCh)

	results := make([]schema.RawFileMetrics, 0, len(sources))
	for r := range resultCh {
		results = append(results, r)
	}

	return results
}
