package helix

import (
	"context"
)

// apiCaller is the call dispatcher the resource APIs depend on.
// *Client satisfies this interface.
type apiCaller interface {
	CallAPI(ctx context.Context, opts CallOptions, out any) error
}

// GameFetcher defines the game lookups
type GameFetcher interface {
	GetGamesByIDs(ctx context.Context, ids []string) ([]*Game, error)
	GetGamesByNames(ctx context.Context, names []string) ([]*Game, error)
	GetGameByID(ctx context.Context, id string) (*Game, error)
	GetGameByName(ctx context.Context, name string) (*Game, error)
	GetTopGames(ctx context.Context, pagination Pagination) (*PaginatedResult[*Game], error)
}

// UserFetcher defines the user lookups
type UserFetcher interface {
	GetUsersByIDs(ctx context.Context, ids []string) ([]*User, error)
	GetUsersByNames(ctx context.Context, names []string) ([]*User, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByName(ctx context.Context, name string) (*User, error)
}

// StreamFetcher defines the stream listings
type StreamFetcher interface {
	GetStreams(ctx context.Context, filter StreamFilter, pagination Pagination) (*PaginatedResult[*Stream], error)
}

var (
	_ GameFetcher   = (*GameAPI)(nil)
	_ UserFetcher   = (*UserAPI)(nil)
	_ StreamFetcher = (*StreamAPI)(nil)
	_ apiCaller     = (*Client)(nil)
)
