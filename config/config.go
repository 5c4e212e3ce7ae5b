package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/s0up4200/twitchclient/helix"
)

// EnvPrefix prefixes every environment override, e.g. TWITCHCLIENT_TWITCH_CLIENT_ID
const EnvPrefix = "TWITCHCLIENT"

// Load loads the configuration. A missing config file is only an error when
// configPath is set explicitly; otherwise defaults and environment apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".twitchclient"))
		}

		// Check /etc
		v.AddConfigPath("/etc/twitchclient/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Twitch defaults; empty credentials are registered so env overrides bind
	v.SetDefault("twitch.client_id", "")
	v.SetDefault("twitch.client_secret", "")
	v.SetDefault("twitch.access_token", "")
	v.SetDefault("twitch.api_url", helix.DefaultBaseURL)
	v.SetDefault("twitch.auth_url", helix.DefaultAuthURL)
	v.SetDefault("twitch.user_agent", "")
	v.SetDefault("twitch.timeout", "30s")
	v.SetDefault("twitch.batch_concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Twitch.ClientID == "" {
		return fmt.Errorf("twitch.client_id is required")
	}

	if cfg.Twitch.AccessToken == "" && cfg.Twitch.ClientSecret == "" {
		return fmt.Errorf("either twitch.access_token or twitch.client_secret must be set")
	}

	if cfg.Twitch.APIURL == "" {
		return fmt.Errorf("twitch.api_url is required")
	}

	if cfg.Twitch.Timeout <= 0 {
		return fmt.Errorf("twitch.timeout must be positive")
	}

	for name, expr := range cfg.Filter {
		if strings.TrimSpace(expr) == "" {
			return fmt.Errorf("filter preset %q has an empty expression", name)
		}
	}

	// Validate logging level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
