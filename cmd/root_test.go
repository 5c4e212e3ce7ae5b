package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/twitchclient/config"
	"github.com/s0up4200/twitchclient/filter"
)

func TestSetupLogger_Level(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			setupLogger(config.LoggingConfig{Level: tt.level, Format: "json"})
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestTokenSource_Static(t *testing.T) {
	ts := tokenSource(t.Context(), config.TwitchConfig{ClientID: "id", AccessToken: "tok"})

	tok, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok.AccessToken)
	assert.Equal(t, "Bearer", tok.Type())
}

func TestResolveFilter(t *testing.T) {
	filterManager = filter.NewManager()
	require.NoError(t, filterManager.RegisterFilters(map[string]string{"popular": "ViewerCount > 1000"}))

	f, err := resolveFilter("", "")
	require.NoError(t, err)
	assert.Nil(t, f)

	f, err = resolveFilter(`Name == "x"`, "popular")
	require.NoError(t, err)
	assert.Equal(t, `Name == "x"`, f.Expression())

	f, err = resolveFilter("", "popular")
	require.NoError(t, err)
	assert.Equal(t, "ViewerCount > 1000", f.Expression())

	f, err = resolveFilter("", "Popular")
	require.NoError(t, err)
	assert.Equal(t, "ViewerCount > 1000", f.Expression())

	_, err = resolveFilter("", "missing")
	assert.ErrorContains(t, err, "preset 'missing' not found")

	_, err = resolveFilter("Name ==", "")
	assert.ErrorContains(t, err, "invalid filter expression")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ääääääá...", truncate("ääääääáéíóú", 10))
}

func TestResolveFilter_ConfigPresetCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "twitch:\n  client_id: abc\n  access_token: tok\nfilter:\n  Popular: \"ViewerCount > 1000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	loaded, err := config.Load(path)
	require.NoError(t, err)

	filterManager = filter.NewManager()
	require.NoError(t, filterManager.RegisterFilters(loaded.Filter))
	assert.Equal(t, []string{"popular"}, filterManager.ListFilters())

	f, err := resolveFilter("", "Popular")
	require.NoError(t, err)
	assert.Equal(t, "ViewerCount > 1000", f.Expression())
}

func TestGamesGet_NameKeepsCommas(t *testing.T) {
	t.Cleanup(func() { gameNames = nil })

	err := gamesGetCmd.Flags().Parse([]string{
		"--name", "Warhammer 40,000: Space Marine 2",
		"--name", "Just Chatting",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Warhammer 40,000: Space Marine 2", "Just Chatting"}, gameNames)
}

func TestWarnIgnoredFlags(t *testing.T) {
	newCmd := func() *cobra.Command {
		c := &cobra.Command{Use: "top"}
		c.Flags().Int("limit", 0, "")
		c.Flags().String("after", "", "")
		c.Flags().String("before", "", "")
		return c
	}

	c := newCmd()
	require.NoError(t, c.Flags().Parse([]string{"--limit", "50", "--before", "abc"}))
	assert.Equal(t, []string{"--limit", "--before"}, warnIgnoredFlags(c, "walking multiple pages", "limit", "after", "before"))

	c = newCmd()
	require.NoError(t, c.Flags().Parse(nil))
	assert.Empty(t, warnIgnoredFlags(c, "walking multiple pages", "limit", "after", "before"))
}
