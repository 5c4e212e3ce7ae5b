package helix

import (
	"context"
	"iter"
	"net/url"

	"github.com/rs/zerolog"
)

// PaginatedRequest lazily walks a cursor-paginated listing.
//
// Each call to GetNext issues exactly one request, resuming after the cursor
// returned by the previous page. Once the upstream stops returning a cursor
// the request is exhausted and further calls return an empty page without
// touching the network. A PaginatedRequest cannot be rewound; build a new one
// to start over.
//
// A PaginatedRequest is not safe for concurrent use. Callers must serialize
// calls to GetNext, GetAll and All on the same instance.
type PaginatedRequest[D any, T any] struct {
	caller apiCaller
	opts   CallOptions
	mapper func(D) T
	logger zerolog.Logger

	cursor  string
	current []T
	pages   int
	done    bool
}

func newPaginatedRequest[D, T any](caller apiCaller, opts CallOptions, mapper func(D) T, logger zerolog.Logger) *PaginatedRequest[D, T] {
	return &PaginatedRequest[D, T]{
		caller: caller,
		opts:   opts,
		mapper: mapper,
		logger: logger,
	}
}

// GetNext fetches and decodes the next page. Transport errors are returned
// unchanged and leave the cursor where it was.
func (r *PaginatedRequest[D, T]) GetNext(ctx context.Context) ([]T, error) {
	if r.done {
		return []T{}, nil
	}

	q := url.Values{}
	setOptional(q, "after", r.cursor)

	var resp PaginatedResponse[D]
	if err := r.caller.CallAPI(ctx, r.opts.withQuery(q), &resp); err != nil {
		return nil, err
	}

	page := mapRows(resp.Data, r.mapper)
	r.current = page
	r.cursor = resp.NextCursor()
	r.pages++

	// An empty page with a cursor would loop forever upstream
	if r.cursor == "" || len(page) == 0 {
		r.done = true
	}

	r.logger.Debug().
		Str("url", r.opts.URL).
		Int("page", r.pages).
		Int("count", len(page)).
		Bool("done", r.done).
		Msg("Retrieved page")

	return page, nil
}

// GetAll drains the remaining pages and returns every row
func (r *PaginatedRequest[D, T]) GetAll(ctx context.Context) ([]T, error) {
	var all []T
	for !r.done {
		page, err := r.GetNext(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

// All returns an iterator over the remaining rows, fetching pages on demand.
// Iteration stops after the first error. Rows left in a page when the caller
// stops early are not delivered again.
func (r *PaginatedRequest[D, T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for !r.done {
			page, err := r.GetNext(ctx)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range page {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Current returns the last delivered page
func (r *PaginatedRequest[D, T]) Current() []T {
	return r.current
}

// Cursor returns the cursor the next call will resume after
func (r *PaginatedRequest[D, T]) Cursor() string {
	return r.cursor
}

// Done reports whether the listing is exhausted
func (r *PaginatedRequest[D, T]) Done() bool {
	return r.done
}
