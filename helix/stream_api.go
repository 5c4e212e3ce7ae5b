package helix

import (
	"context"
	"net/url"
	"slices"
)

// StreamFilter narrows a stream listing. Empty fields are not sent.
type StreamFilter struct {
	GameIDs    []string
	UserIDs    []string
	UserLogins []string
	Language   string
	Type       StreamType
}

// query copies the slices so a paginator is unaffected by later changes to f
func (f StreamFilter) query() url.Values {
	q := url.Values{}
	if len(f.GameIDs) > 0 {
		q["game_id"] = slices.Clone(f.GameIDs)
	}
	if len(f.UserIDs) > 0 {
		q["user_id"] = slices.Clone(f.UserIDs)
	}
	if len(f.UserLogins) > 0 {
		q["user_login"] = slices.Clone(f.UserLogins)
	}
	setOptional(q, "language", f.Language)
	setOptional(q, "type", string(f.Type))
	return q
}

// StreamAPI groups the Helix methods that deal with live streams.
type StreamAPI struct {
	client *Client
	caller apiCaller
}

// GetStreams retrieves one page of live streams matching filter
func (a *StreamAPI) GetStreams(ctx context.Context, filter StreamFilter, pagination Pagination) (*PaginatedResult[*Stream], error) {
	opts := CallOptions{
		Type:  APICallTypeHelix,
		URL:   "streams",
		Query: filter.query(),
	}

	var resp PaginatedResponse[StreamData]
	if err := a.caller.CallAPI(ctx, opts.withQuery(pagination.query()), &resp); err != nil {
		return nil, err
	}

	return mapPage(&resp, a.newStream), nil
}

// GetStreamsPaginated creates a paginator over live streams matching filter
func (a *StreamAPI) GetStreamsPaginated(filter StreamFilter) *PaginatedRequest[StreamData, *Stream] {
	return newPaginatedRequest(a.caller, CallOptions{
		Type:  APICallTypeHelix,
		URL:   "streams",
		Query: filter.query(),
	}, a.newStream, a.client.logger)
}

func (a *StreamAPI) newStream(data StreamData) *Stream {
	return NewStream(data, a.client)
}
