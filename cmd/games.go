package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchclient/filter"
	"github.com/s0up4200/twitchclient/helix"
)

var (
	gameIDs   []string
	gameNames []string

	topLimit  int
	topAfter  string
	topBefore string
	topPages  int
	topAll    bool
	topFilter string
	topPreset string
)

// gamesCmd groups game lookups
var gamesCmd = &cobra.Command{
	Use:   "games",
	Short: "Look up games and categories",
}

var gamesGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Get games by ID or name",
	Long: `Look up games by ID or by exact name. Exactly one of --id or --name is
required. --id accepts repeated or comma separated values; --name is taken
verbatim, since game names may contain commas, and is repeated for several
games. Unknown games are silently omitted.`,
	PreRunE: initializeApp,
	RunE:    runGamesGet,
}

var gamesTopCmd = &cobra.Command{
	Use:   "top",
	Short: "List the most watched games",
	Long: `List games sorted by current viewer count.

A single page honours --limit, --after and --before. Use --pages or --all to
walk several pages with the cursor returned by Helix; those use the default
page size and start from the first page.`,
	PreRunE: initializeApp,
	RunE:    runGamesTop,
}

func init() {
	rootCmd.AddCommand(gamesCmd)
	gamesCmd.AddCommand(gamesGetCmd, gamesTopCmd)

	gamesGetCmd.Flags().StringSliceVar(&gameIDs, "id", nil, "game IDs")
	gamesGetCmd.Flags().StringArrayVar(&gameNames, "name", nil, "game name, repeat for several")
	gamesGetCmd.MarkFlagsMutuallyExclusive("id", "name")
	gamesGetCmd.MarkFlagsOneRequired("id", "name")

	gamesTopCmd.Flags().IntVar(&topLimit, "limit", 0, "page size (max 100)")
	gamesTopCmd.Flags().StringVar(&topAfter, "after", "", "cursor to start after")
	gamesTopCmd.Flags().StringVar(&topBefore, "before", "", "cursor to end before")
	gamesTopCmd.Flags().IntVar(&topPages, "pages", 1, "number of pages to fetch")
	gamesTopCmd.Flags().BoolVar(&topAll, "all", false, "fetch every page")
	gamesTopCmd.Flags().StringVarP(&topFilter, "filter", "f", "", "filter expression")
	gamesTopCmd.Flags().StringVarP(&topPreset, "preset", "p", "", "use a preset filter from config")
}

func runGamesGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		games []*helix.Game
		err   error
	)
	if len(gameIDs) > 0 {
		games, err = helixClient.Games().GetGamesByIDs(ctx, gameIDs)
	} else {
		games, err = helixClient.Games().GetGamesByNames(ctx, gameNames)
	}
	if err != nil {
		return fmt.Errorf("failed to get games: %w", err)
	}

	return printGames(games, "")
}

func runGamesTop(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := resolveFilter(topFilter, topPreset)
	if err != nil {
		return err
	}

	var (
		games  []*helix.Game
		cursor string
	)

	if !topAll && topPages <= 1 {
		page, err := helixClient.Games().GetTopGames(ctx, helix.Pagination{
			After:  topAfter,
			Before: topBefore,
			Limit:  topLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to get top games: %w", err)
		}
		games, cursor = page.Data, page.Cursor
	} else {
		warnIgnoredFlags(cmd, "walking multiple pages", "limit", "after", "before")

		req := helixClient.Games().GetTopGamesPaginated()
		for fetched := 0; (topAll || fetched < topPages) && !req.Done(); fetched++ {
			page, err := req.GetNext(ctx)
			if err != nil {
				return fmt.Errorf("failed to get top games page %d: %w", fetched+1, err)
			}
			games = append(games, page...)
		}
		cursor = req.Cursor()
	}

	if f != nil {
		logger.Info().Str("filter", f.Expression()).Msg("Applying filter")
		games = filter.Games(f, games)
	}

	return printGames(games, cursor)
}

func printGames(games []*helix.Game, cursor string) error {
	if jsonOutput {
		return printJSON(struct {
			Data   []*helix.Game `json:"data"`
			Cursor string        `json:"cursor,omitempty"`
		}{games, cursor})
	}

	if len(games) == 0 {
		fmt.Println("No games found.")
		return nil
	}

	fmt.Printf("Found %d %s:\n\n", len(games), plural(len(games), "game", "games"))
	printRule(80)
	fmt.Printf("%-12s %-50s %s\n", "ID", "NAME", "IGDB")
	printRule(80)
	for _, g := range games {
		fmt.Printf("%-12s %-50s %s\n", g.ID(), truncate(g.Name(), 50), g.IGDBID())
	}

	if cursor != "" {
		fmt.Printf("\nNext cursor: %s\n", cursor)
	}

	return nil
}
