// Package helix provides a typed client for the Twitch Helix REST API.
//
// The package is organized around a single Client that knows how to issue
// authenticated calls, and a set of stateless resource APIs that shape
// queries and decode the returned rows into entity views.
//
// # Architecture
//
//   - Client: issues calls through CallAPI and hands out the resource APIs
//   - GameAPI, UserAPI, StreamAPI: query builders and row decoders
//   - PaginatedRequest: a lazy, cursor-driven page iterator
//   - Errors: sentinel errors and the structured APIError
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := helix.NewClient(
//		"your-client-id",
//		logger,
//		helix.WithAccessToken("your-access-token"),
//		helix.WithTimeout(15*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	game, err := client.Games().GetGameByName(ctx, "Hearthstone")
//	if err != nil {
//		log.Fatal(err)
//	}
//	if game == nil {
//		// not found
//	}
//
//	top := client.Games().GetTopGamesPaginated()
//	for game, err := range top.All(ctx) {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(game.Name())
//	}
//
// # Error Handling
//
// Resource APIs return errors from the call dispatcher unchanged. Lookups of
// a single item that does not exist return a nil entity and a nil error.
// Non-2xx responses surface as *APIError:
//
//	var apiErr *helix.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// refresh credentials
//	}
package helix
