package helix

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const streamsPage = `{
	"data": [{
		"id": "40952121085",
		"user_id": "101051819",
		"user_login": "afro",
		"user_name": "Afro",
		"game_id": "32982",
		"game_name": "Grand Theft Auto V",
		"type": "live",
		"title": "Jacob: Digital Den Laptops & Routers",
		"viewer_count": 1490,
		"started_at": "2021-03-10T03:18:11Z",
		"language": "en",
		"thumbnail_url": "https://static-cdn.jtvnw.net/previews-ttv/live_user_afro-{width}x{height}.jpg",
		"tags": ["English"],
		"is_mature": false
	}],
	"pagination": {"cursor": "eyJiIjp7IkN1cnNvciI6ImV5SnpJam8zT0RNMk5TNDBORFF4TlRjMU1UY3hOU3dpWkNJNlptRnNjMlVzSW5RaU9uUnlkV1Y5In0sImEiOnsiQ3Vyc29yIjoiZXlKeklqb3hOVGd6TGpVM05EQXhPRGs1TlRFeU5Td2laQ0k2Wm1Gc2MyVXNJblFpT25SeWRXVjkifX0"}
}`

func TestGetStreams(t *testing.T) {
	caller := &mockCaller{handler: func(CallOptions) (string, error) { return streamsPage, nil }}
	api := &StreamAPI{client: newTestClient(t), caller: caller}

	result, err := api.GetStreams(context.Background(), StreamFilter{
		GameIDs:  []string{"32982", "509658"},
		Language: "en",
	}, Pagination{Limit: 10})
	require.NoError(t, err)
	require.Len(t, result.Data, 1)
	assert.True(t, result.HasMore())

	stream := result.Data[0]
	assert.Equal(t, "40952121085", stream.ID())
	assert.Equal(t, "afro", stream.UserLogin())
	assert.Equal(t, "Afro", stream.UserName())
	assert.Equal(t, StreamTypeLive, stream.Type())
	assert.Equal(t, 1490, stream.ViewerCount())
	assert.Equal(t, time.Date(2021, 3, 10, 3, 18, 11, 0, time.UTC), stream.StartedAt())
	assert.Equal(t, []string{"English"}, stream.Tags())
	assert.Equal(t, "https://static-cdn.jtvnw.net/previews-ttv/live_user_afro-440x248.jpg", stream.ThumbnailURLForSize(440, 248))

	calls := caller.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "streams", calls[0].URL)
	assert.Equal(t, []string{"32982", "509658"}, calls[0].Query["game_id"])
	assert.Equal(t, "en", calls[0].Query.Get("language"))
	assert.Equal(t, "10", calls[0].Query.Get("first"))
	assert.NotContains(t, calls[0].Query, "user_id")
	assert.NotContains(t, calls[0].Query, "type")
}

func TestGetStreamsPaginatedKeepsFilter(t *testing.T) {
	caller := &mockCaller{handler: func(opts CallOptions) (string, error) {
		if opts.Query.Get("after") == "" {
			return `{"data":[{"id":"1"}],"pagination":{"cursor":"c1"}}`, nil
		}
		return `{"data":[{"id":"2"}],"pagination":{}}`, nil
	}}
	api := &StreamAPI{client: newTestClient(t), caller: caller}

	logins := []string{"afro"}
	req := api.GetStreamsPaginated(StreamFilter{UserLogins: logins})
	logins[0] = "someone-else"

	all, err := req.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)

	calls := caller.Calls()
	require.Len(t, calls, 2)
	for _, call := range calls {
		assert.Equal(t, []string{"afro"}, call.Query["user_login"])
	}
	assert.Equal(t, "c1", calls[1].Query.Get("after"))
}

func TestStreamEnrichment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users":
			assert.Equal(t, "101051819", r.URL.Query().Get("id"))
			w.Write([]byte(`{"data":[{"id":"101051819","login":"afro","display_name":"Afro","created_at":"2015-10-02T14:05:26Z"}]}`))
		case "/games":
			assert.Equal(t, "32982", r.URL.Query().Get("id"))
			w.Write([]byte(`{"data":[{"id":"32982","name":"Grand Theft Auto V","box_art_url":"x"}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := newTestClient(t, WithBaseURL(server.URL))
	stream := NewStream(StreamData{ID: "1", UserID: "101051819", GameID: "32982"}, client)

	user, err := stream.User(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Afro", user.DisplayName())
	assert.Equal(t, 2015, user.CreatedAt().Year())

	game, err := stream.Game(context.Background())
	require.NoError(t, err)
	require.NotNil(t, game)
	assert.Equal(t, "Grand Theft Auto V", game.Name())

	t.Run("no game set", func(t *testing.T) {
		game, err := NewStream(StreamData{ID: "2"}, client).Game(context.Background())
		require.NoError(t, err)
		assert.Nil(t, game)
	})

	t.Run("no client", func(t *testing.T) {
		_, err := NewStream(StreamData{ID: "3"}, nil).User(context.Background())
		assert.ErrorIs(t, err, ErrNoClient)
	})
}
