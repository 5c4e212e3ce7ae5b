package helix

import (
	"context"
)

// UserFilterType selects the query parameter used for user lookups
type UserFilterType int

const (
	// UserFilterByID looks users up by ID
	UserFilterByID UserFilterType = iota
	// UserFilterByName looks users up by login name
	UserFilterByName
)

// String returns the query parameter name
func (f UserFilterType) String() string {
	switch f {
	case UserFilterByName:
		return "login"
	default:
		return "id"
	}
}

// UserAPI groups the Helix methods that deal with users.
type UserAPI struct {
	client *Client
	caller apiCaller
}

// GetUsersByIDs retrieves the users with the given IDs
func (a *UserAPI) GetUsersByIDs(ctx context.Context, ids []string) ([]*User, error) {
	return a.getUsers(ctx, UserFilterByID, ids)
}

// GetUsersByNames retrieves the users with the given login names
func (a *UserAPI) GetUsersByNames(ctx context.Context, names []string) ([]*User, error) {
	return a.getUsers(ctx, UserFilterByName, names)
}

// GetUserByID retrieves a single user, or nil if none exists
func (a *UserAPI) GetUserByID(ctx context.Context, id string) (*User, error) {
	users, err := a.getUsers(ctx, UserFilterByID, []string{id})
	return firstOrNil(users, err)
}

// GetUserByName retrieves a single user by login, or nil if none exists
func (a *UserAPI) GetUserByName(ctx context.Context, name string) (*User, error) {
	users, err := a.getUsers(ctx, UserFilterByName, []string{name})
	return firstOrNil(users, err)
}

func (a *UserAPI) getUsers(ctx context.Context, filter UserFilterType, values []string) ([]*User, error) {
	return fetchBatched(ctx, a.caller, a.client.batchLimit, CallOptions{
		Type: APICallTypeHelix,
		URL:  "users",
	}, filter.String(), values, func(data UserData) *User {
		return NewUser(data, a.client)
	})
}
