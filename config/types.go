package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	Twitch  TwitchConfig  `mapstructure:"twitch"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TwitchConfig holds Helix API connection details and credentials
type TwitchConfig struct {
	ClientID         string        `mapstructure:"client_id"`
	ClientSecret     string        `mapstructure:"client_secret"`
	AccessToken      string        `mapstructure:"access_token"`
	APIURL           string        `mapstructure:"api_url"`
	AuthURL          string        `mapstructure:"auth_url"`
	UserAgent        string        `mapstructure:"user_agent"`
	Timeout          time.Duration `mapstructure:"timeout"`
	BatchConcurrency int           `mapstructure:"batch_concurrency"`
}

// UsesClientCredentials reports whether an app token should be minted from
// the client secret instead of using a fixed access token.
func (c TwitchConfig) UsesClientCredentials() bool {
	return c.AccessToken == "" && c.ClientSecret != ""
}

// FilterConfig contains named filter presets
type FilterConfig map[string]string

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
