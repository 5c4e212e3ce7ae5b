package helix

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserLookups(t *testing.T) {
	handler := func(opts CallOptions) (string, error) {
		if opts.Query.Get("login") == "afro" || opts.Query.Get("id") == "101051819" {
			return `{"data":[{"id":"101051819","login":"afro","display_name":"Afro","broadcaster_type":"partner","type":""}]}`, nil
		}
		return `{"data":[]}`, nil
	}

	t.Run("by login uses the login parameter", func(t *testing.T) {
		caller := &mockCaller{handler: handler}
		api := &UserAPI{client: newTestClient(t), caller: caller}

		user, err := api.GetUserByName(context.Background(), "afro")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "101051819", user.ID())
		assert.Equal(t, "afro", user.Name())
		assert.Equal(t, "partner", user.BroadcasterType())

		calls := caller.Calls()
		require.Len(t, calls, 1)
		assert.Equal(t, "users", calls[0].URL)
		assert.NotContains(t, calls[0].Query, "id")
	})

	t.Run("by id not found", func(t *testing.T) {
		api := &UserAPI{client: newTestClient(t), caller: &mockCaller{handler: handler}}

		user, err := api.GetUserByID(context.Background(), "0")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("batch omits unknown ids", func(t *testing.T) {
		caller := &mockCaller{handler: handler}
		api := &UserAPI{client: newTestClient(t), caller: caller}

		users, err := api.GetUsersByIDs(context.Background(), []string{"101051819", "0"})
		require.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, []string{"101051819", "0"}, caller.Calls()[0].Query["id"])
	})

	t.Run("empty batch", func(t *testing.T) {
		api := &UserAPI{client: newTestClient(t), caller: &mockCaller{handler: handler}}

		_, err := api.GetUsersByNames(context.Background(), []string{})
		assert.ErrorIs(t, err, ErrNoLookupValues)
	})
}

func TestUserFilterType(t *testing.T) {
	assert.Equal(t, "id", UserFilterByID.String())
	assert.Equal(t, "login", UserFilterByName.String())
}
