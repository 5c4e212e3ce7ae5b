package helix

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedHandler serves three pages of top games keyed by the "after" cursor
func pagedHandler(opts CallOptions) (string, error) {
	switch opts.Query.Get("after") {
	case "":
		return `{"data":[{"id":"1","name":"A"},{"id":"2","name":"B"}],"pagination":{"cursor":"c1"}}`, nil
	case "c1":
		return `{"data":[{"id":"3","name":"C"}],"pagination":{"cursor":"c2"}}`, nil
	case "c2":
		return `{"data":[{"id":"4","name":"D"}],"pagination":{}}`, nil
	default:
		return "", errors.New("unexpected cursor " + opts.Query.Get("after"))
	}
}

func gameIDs(games []*Game) []string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID())
	}
	return ids
}

func TestPaginatedRequestGetNext(t *testing.T) {
	caller := &mockCaller{handler: pagedHandler}
	paginator := newTestGameAPI(t, caller).GetTopGamesPaginated()
	ctx := context.Background()

	page, err := paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, gameIDs(page))
	assert.Equal(t, "c1", paginator.Cursor())
	assert.False(t, paginator.Done())

	page, err = paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, gameIDs(page))
	assert.Equal(t, "c2", paginator.Cursor())

	page, err = paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, gameIDs(page))
	assert.Equal(t, page, paginator.Current())
	assert.True(t, paginator.Done())

	page, err = paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Empty(t, page)

	calls := caller.Calls()
	require.Len(t, calls, 3)
	assert.NotContains(t, calls[0].Query, "after")
	assert.Equal(t, "c1", calls[1].Query.Get("after"))
	assert.Equal(t, "c2", calls[2].Query.Get("after"))
	for _, call := range calls {
		assert.Equal(t, "games/top", call.URL)
	}
}

func TestPaginatedRequestErrorKeepsCursor(t *testing.T) {
	boom := errors.New("gateway timeout")
	fail := true
	caller := &mockCaller{handler: func(opts CallOptions) (string, error) {
		if opts.Query.Get("after") == "c1" && fail {
			fail = false
			return "", boom
		}
		return pagedHandler(opts)
	}}
	paginator := newTestGameAPI(t, caller).GetTopGamesPaginated()
	ctx := context.Background()

	_, err := paginator.GetNext(ctx)
	require.NoError(t, err)

	page, err := paginator.GetNext(ctx)
	assert.Equal(t, boom, err)
	assert.Nil(t, page)
	assert.Equal(t, "c1", paginator.Cursor())
	assert.False(t, paginator.Done())

	page, err = paginator.GetNext(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, gameIDs(page))
}

func TestPaginatedRequestEmptyPageEndsListing(t *testing.T) {
	caller := &mockCaller{handler: func(CallOptions) (string, error) {
		return `{"data":[],"pagination":{"cursor":"stuck"}}`, nil
	}}
	paginator := newTestGameAPI(t, caller).GetTopGamesPaginated()

	all, err := paginator.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.True(t, paginator.Done())
	assert.Len(t, caller.Calls(), 1)
}

func TestPaginatedRequestGetAll(t *testing.T) {
	caller := &mockCaller{handler: pagedHandler}
	paginator := newTestGameAPI(t, caller).GetTopGamesPaginated()

	all, err := paginator.GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, gameIDs(all))
	assert.Len(t, caller.Calls(), 3)
}

func TestPaginatedRequestAll(t *testing.T) {
	t.Run("iterates every row", func(t *testing.T) {
		paginator := newTestGameAPI(t, &mockCaller{handler: pagedHandler}).GetTopGamesPaginated()

		var ids []string
		for game, err := range paginator.All(context.Background()) {
			require.NoError(t, err)
			ids = append(ids, game.ID())
		}
		assert.Equal(t, []string{"1", "2", "3", "4"}, ids)
	})

	t.Run("stopping early fetches no further pages", func(t *testing.T) {
		caller := &mockCaller{handler: pagedHandler}
		paginator := newTestGameAPI(t, caller).GetTopGamesPaginated()

		for game := range paginator.All(context.Background()) {
			assert.Equal(t, "1", game.ID())
			break
		}
		assert.Len(t, caller.Calls(), 1)
	})

	t.Run("yields the error and stops", func(t *testing.T) {
		boom := errors.New("boom")
		paginator := newTestGameAPI(t, &mockCaller{handler: func(CallOptions) (string, error) {
			return "", boom
		}}).GetTopGamesPaginated()

		var errs []error
		for _, err := range paginator.All(context.Background()) {
			errs = append(errs, err)
		}
		assert.Equal(t, []error{boom}, errs)
	})
}

func TestPaginatedRequestOverHTTP(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/games/top", r.URL.Path)
		body, err := pagedHandler(CallOptions{Query: r.URL.Query()})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	client := newTestClient(t, WithBaseURL(server.URL))
	all, err := client.Games().GetTopGamesPaginated().GetAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, gameIDs(all))
	assert.Equal(t, 3, requests)
}
