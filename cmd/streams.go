package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/s0up4200/twitchclient/filter"
	"github.com/s0up4200/twitchclient/helix"
)

var (
	streamGameIDs    []string
	streamUserLogins []string
	streamLanguage   string
	streamLimit      int
	streamPages      int
	streamFilter     string
	streamPreset     string
)

// streamsCmd groups stream listings
var streamsCmd = &cobra.Command{
	Use:   "streams",
	Short: "List live streams",
}

var streamsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List live streams sorted by viewers",
	Long: `List live streams, optionally narrowed to games, users or a language.

Filter expressions see ID, UserID, UserLogin, UserName, GameID, GameName,
Title, ViewerCount, StartedAt, Language, Tags and IsMature. Helpers are
containsFold, hasPrefixFold, hasSuffixFold, lower, upper and hasTag, e.g.
  --filter 'ViewerCount > 500 and hasTag("english")'
  --filter 'containsFold(Title, "speedrun") or lower(GameName) contains "minecraft"'`,
	PreRunE: initializeApp,
	RunE:    runStreamsList,
}

func init() {
	rootCmd.AddCommand(streamsCmd)
	streamsCmd.AddCommand(streamsListCmd)

	streamsListCmd.Flags().StringSliceVar(&streamGameIDs, "game-id", nil, "only streams playing these game IDs")
	streamsListCmd.Flags().StringSliceVar(&streamUserLogins, "user-login", nil, "only these broadcasters")
	streamsListCmd.Flags().StringVar(&streamLanguage, "language", "", "stream language (ISO 639-1)")
	streamsListCmd.Flags().IntVar(&streamLimit, "limit", 0, "page size for a single page (max 100)")
	streamsListCmd.Flags().IntVar(&streamPages, "pages", 1, "number of pages to fetch")
	streamsListCmd.Flags().StringVarP(&streamFilter, "filter", "f", "", "filter expression")
	streamsListCmd.Flags().StringVarP(&streamPreset, "preset", "p", "", "use a preset filter from config")
}

func runStreamsList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	f, err := resolveFilter(streamFilter, streamPreset)
	if err != nil {
		return err
	}

	sf := helix.StreamFilter{
		GameIDs:    streamGameIDs,
		UserLogins: streamUserLogins,
		Language:   streamLanguage,
	}

	var streams []*helix.Stream
	if streamPages <= 1 {
		page, err := helixClient.Streams().GetStreams(ctx, sf, helix.Pagination{Limit: streamLimit})
		if err != nil {
			return fmt.Errorf("failed to get streams: %w", err)
		}
		streams = page.Data
	} else {
		warnIgnoredFlags(cmd, "walking multiple pages", "limit")

		req := helixClient.Streams().GetStreamsPaginated(sf)
		for fetched := 0; fetched < streamPages && !req.Done(); fetched++ {
			page, err := req.GetNext(ctx)
			if err != nil {
				return fmt.Errorf("failed to get streams page %d: %w", fetched+1, err)
			}
			streams = append(streams, page...)
		}
	}

	if f != nil {
		logger.Info().Str("filter", f.Expression()).Msg("Applying filter")
		streams = filter.Streams(f, streams)
	}

	if jsonOutput {
		return printJSON(streams)
	}

	if len(streams) == 0 {
		fmt.Println("No live streams found.")
		return nil
	}

	fmt.Printf("Found %d live %s:\n\n", len(streams), plural(len(streams), "stream", "streams"))
	printRule(100)
	fmt.Printf("%-20s %-8s %-25s %-6s %s\n", "CHANNEL", "VIEWERS", "GAME", "UPTIME", "TITLE")
	printRule(100)
	for _, s := range streams {
		fmt.Printf("%-20s %-8d %-25s %-6s %s\n",
			truncate(s.UserLogin(), 20),
			s.ViewerCount(),
			truncate(s.GameName(), 25),
			uptime(s.StartedAt()),
			truncate(s.Title(), 36),
		)
	}

	return nil
}

func uptime(started time.Time) string {
	if started.IsZero() {
		return "-"
	}
	d := time.Since(started).Round(time.Minute)
	return fmt.Sprintf("%dh%02d", int(d.Hours()), int(d.Minutes())%60)
}
