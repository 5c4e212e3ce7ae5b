package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/s0up4200/twitchclient/config"
	"github.com/s0up4200/twitchclient/filter"
	"github.com/s0up4200/twitchclient/helix"
)

var (
	cfgFile       string
	cfg           *config.Config
	logger        = zerolog.New(os.Stderr).With().Timestamp().Logger()
	helixClient   *helix.Client
	filterManager *filter.Manager

	// Command flags
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twitchclient",
	Short: "A typed client for the Twitch Helix API and PubSub payloads",
	Long: `twitchclient queries Twitch Helix resources such as games, users and
streams, and decodes PubSub event payloads like channel point redemptions.

Results can be narrowed with filter expressions, for example:
  twitchclient streams list --game-id 33214 --filter 'ViewerCount > 1000'`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(testCmd)
}

// initializeApp loads configuration and builds the Helix client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	filterManager = filter.NewManager()
	if err := filterManager.RegisterFilters(cfg.Filter); err != nil {
		return fmt.Errorf("failed to load filter presets: %w", err)
	}

	opts := []helix.Option{
		helix.WithBaseURL(cfg.Twitch.APIURL),
		helix.WithAuthURL(cfg.Twitch.AuthURL),
		helix.WithTimeout(cfg.Twitch.Timeout),
		helix.WithBatchConcurrency(cfg.Twitch.BatchConcurrency),
		helix.WithTokenSource(tokenSource(cmd.Context(), cfg.Twitch)),
	}
	if cfg.Twitch.UserAgent != "" {
		opts = append(opts, helix.WithUserAgent(cfg.Twitch.UserAgent))
	}

	helixClient, err = helix.NewClient(cfg.Twitch.ClientID, logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create Helix client: %w", err)
	}

	return nil
}

// tokenSource returns a fixed token source, or one that mints app access
// tokens through the client credentials grant.
func tokenSource(ctx context.Context, tc config.TwitchConfig) oauth2.TokenSource {
	if !tc.UsesClientCredentials() {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tc.AccessToken, TokenType: "Bearer"})
	}

	if ctx == nil {
		ctx = context.Background()
	}

	cc := &clientcredentials.Config{
		ClientID:     tc.ClientID,
		ClientSecret: tc.ClientSecret,
		TokenURL:     strings.TrimRight(tc.AuthURL, "/") + "/token",
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	return cc.TokenSource(ctx)
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:     "test",
	Short:   "Test connection to the Helix API",
	Long:    `Verify credentials by requesting a single page of top games.`,
	PreRunE: initializeApp,
	RunE:    runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to Helix at %s...\n", cfg.Twitch.APIURL)

	if err := helixClient.TestConnection(cmd.Context()); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Client ID: %s\n", helixClient.ClientID())
	fmt.Printf("- Auth: %s\n", authMode(cfg.Twitch))
	if presets := filterManager.ListFilters(); len(presets) > 0 {
		fmt.Printf("- Filter presets: %s\n", strings.Join(presets, ", "))
	}

	return nil
}

func authMode(tc config.TwitchConfig) string {
	if tc.UsesClientCredentials() {
		return "client credentials"
	}
	return "access token"
}

// resolveFilter determines the filter to apply. Priority: expression > preset.
// A nil filter with a nil error means no filtering.
func resolveFilter(expr, preset string) (filter.CompiledFilter, error) {
	if expr != "" {
		f, err := filterManager.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	if preset != "" {
		if f, ok := filterManager.GetFilter(preset); ok {
			return f, nil
		}
		return nil, fmt.Errorf("preset '%s' not found in config", preset)
	}

	return nil, nil
}

// warnIgnoredFlags logs the flags among names that were set explicitly but
// have no effect in the current mode, and returns them.
func warnIgnoredFlags(cmd *cobra.Command, mode string, names ...string) []string {
	var ignored []string
	for _, name := range names {
		if cmd.Flags().Changed(name) {
			ignored = append(ignored, "--"+name)
		}
	}

	if len(ignored) > 0 {
		logger.Warn().
			Strs("flags", ignored).
			Msgf("Flags are ignored when %s", mode)
	}

	return ignored
}
