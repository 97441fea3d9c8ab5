// Package stats provides the statistics backends used by the batch
// calculator commands (median, hist, summary).
//
// Backends register a factory under a name; Select builds the configured
// backends and returns the first available one in priority order:
//
//	backend, err := stats.Select(ctx, []string{"moremath"})
//	if err != nil {
//	    // batch commands are unavailable
//	}
//	m := backend.Median([]float64{1, 2, 3, 4}) // 2.5
package stats
