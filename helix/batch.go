package helix

import (
	"context"
	"net/url"
	"slices"

	"golang.org/x/sync/errgroup"
)

// maxLookupValues is the most values Helix accepts for one repeated parameter
const maxLookupValues = 100

// fetchBatched looks up values through a repeated query parameter. Inputs
// longer than maxLookupValues are split into chunks that are fetched
// concurrently; rows are returned chunk by chunk in server order.
func fetchBatched[D, T any](ctx context.Context, caller apiCaller, concurrency int, base CallOptions, param string, values []string, mapper func(D) T) ([]T, error) {
	if len(values) == 0 {
		return nil, ErrNoLookupValues
	}

	if len(values) <= maxLookupValues {
		return fetchChunk(ctx, caller, base, param, values, mapper)
	}

	chunks := slices.Collect(slices.Chunk(values, maxLookupValues))
	results := make([][]T, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, chunk := range chunks {
		g.Go(func() error {
			rows, err := fetchChunk(ctx, caller, base, param, chunk, mapper)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.Concat(results...), nil
}

func fetchChunk[D, T any](ctx context.Context, caller apiCaller, base CallOptions, param string, values []string, mapper func(D) T) ([]T, error) {
	var resp Response[D]
	if err := caller.CallAPI(ctx, base.withQuery(url.Values{param: values}), &resp); err != nil {
		return nil, err
	}
	return mapRows(resp.Data, mapper), nil
}
