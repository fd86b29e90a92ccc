package extraction

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel document extraction per batch.
const DefaultConcurrency = 4

// ExtractAll extracts every document concurrently and returns the texts in
// input order, so result i always corresponds to paths[i]. Individual
// failures surface as empty strings, never as errors; the scoring engine
// downstream expects exactly that degradation.
func ExtractAll(ctx context.Context, paths []string, concurrency int) []string {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	texts := make([]string, len(paths))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, path := range paths {
		g.Go(func() error {
			texts[i] = Extract(path)
			return nil
		})
	}
	// Workers never return errors; extraction degrades instead of failing.
	_ = g.Wait()

	return texts
}
