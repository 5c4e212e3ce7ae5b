package helix

import (
	"net/url"
)

// Pagination configures a single page request. Zero values are omitted
// from the query.
type Pagination struct {
	// After resumes the listing after this cursor
	After string
	// Before resumes the listing before this cursor
	Before string
	// Limit is the maximum number of rows per page (sent as "first")
	Limit int
}

func (p Pagination) query() url.Values {
	q := url.Values{}
	setOptional(q, "after", p.After)
	setOptional(q, "before", p.Before)
	setOptionalInt(q, "first", p.Limit)
	return q
}

// PaginatedResult is a single decoded page and the cursor of the next one
type PaginatedResult[T any] struct {
	Data   []T
	Cursor string
}

// HasMore reports whether the upstream returned a continuation cursor
func (r *PaginatedResult[T]) HasMore() bool {
	return r.Cursor != ""
}

// Response is the plain Helix envelope
type Response[D any] struct {
	Data []D `json:"data"`
}

// PaginatedResponse is the Helix envelope for listings
type PaginatedResponse[D any] struct {
	Data       []D                 `json:"data"`
	Pagination *ResponsePagination `json:"pagination,omitempty"`
	Total      *int                `json:"total,omitempty"`
}

// ResponsePagination carries the continuation cursor, if any
type ResponsePagination struct {
	Cursor string `json:"cursor,omitempty"`
}

// NextCursor returns the continuation cursor or "" when the listing is done
func (r *PaginatedResponse[D]) NextCursor() string {
	if r.Pagination == nil {
		return ""
	}
	return r.Pagination.Cursor
}

// mapRows decodes each row with mapper, preserving order
func mapRows[D, T any](rows []D, mapper func(D) T) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapper(row))
	}
	return out
}

// mapPage decodes a listing response into a PaginatedResult
func mapPage[D, T any](resp *PaginatedResponse[D], mapper func(D) T) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Data:   mapRows(resp.Data, mapper),
		Cursor: resp.NextCursor(),
	}
}
