package helix

import (
	"context"
)

// GameFilterType selects the query parameter used for game lookups
type GameFilterType int

const (
	// GameFilterByID looks games up by ID
	GameFilterByID GameFilterType = iota
	// GameFilterByName looks games up by exact name
	GameFilterByName
)

// String returns the query parameter name
func (f GameFilterType) String() string {
	switch f {
	case GameFilterByName:
		return "name"
	default:
		return "id"
	}
}

// GameAPI groups the Helix methods that deal with games.
// Obtain one with Client.Games.
type GameAPI struct {
	client *Client
	caller apiCaller
}

// GetGamesByIDs retrieves the games with the given IDs. Unknown IDs are
// omitted; the order is the server's.
func (a *GameAPI) GetGamesByIDs(ctx context.Context, ids []string) ([]*Game, error) {
	return a.getGames(ctx, GameFilterByID, ids)
}

// GetGamesByNames retrieves the games with the given names.
func (a *GameAPI) GetGamesByNames(ctx context.Context, names []string) ([]*Game, error) {
	return a.getGames(ctx, GameFilterByName, names)
}

// GetGameByID retrieves a single game. It returns nil, nil when the game
// does not exist.
func (a *GameAPI) GetGameByID(ctx context.Context, id string) (*Game, error) {
	games, err := a.getGames(ctx, GameFilterByID, []string{id})
	return firstOrNil(games, err)
}

// GetGameByName retrieves a single game by name. It returns nil, nil when
// the game does not exist.
func (a *GameAPI) GetGameByName(ctx context.Context, name string) (*Game, error) {
	games, err := a.getGames(ctx, GameFilterByName, []string{name})
	return firstOrNil(games, err)
}

// GetTopGames retrieves one page of the most viewed games
func (a *GameAPI) GetTopGames(ctx context.Context, pagination Pagination) (*PaginatedResult[*Game], error) {
	var resp PaginatedResponse[GameData]
	err := a.caller.CallAPI(ctx, CallOptions{
		Type:  APICallTypeHelix,
		URL:   "games/top",
		Query: pagination.query(),
	}, &resp)
	if err != nil {
		return nil, err
	}

	return mapPage(&resp, a.newGame), nil
}

// GetTopGamesPaginated creates a paginator over the most viewed games
func (a *GameAPI) GetTopGamesPaginated() *PaginatedRequest[GameData, *Game] {
	return newPaginatedRequest(a.caller, CallOptions{
		Type: APICallTypeHelix,
		URL:  "games/top",
	}, a.newGame, a.client.logger)
}

func (a *GameAPI) getGames(ctx context.Context, filter GameFilterType, values []string) ([]*Game, error) {
	games, err := fetchBatched(ctx, a.caller, a.client.batchLimit, CallOptions{
		Type: APICallTypeHelix,
		URL:  "games",
	}, filter.String(), values, a.newGame)
	if err != nil {
		return nil, err
	}

	a.client.logger.Debug().
		Str("filter", filter.String()).
		Int("requested", len(values)).
		Int("found", len(games)).
		Msg("Retrieved games")

	return games, nil
}

func (a *GameAPI) newGame(data GameData) *Game {
	return NewGame(data, a.client)
}

// firstOrNil turns a lookup result into a single-item result
func firstOrNil[T any](items []*T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[0], nil
}
