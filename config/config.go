package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides, e.g. MARQUEE_TMDB_API_KEY
const EnvPrefix = "MARQUEE"

// Load loads the configuration from file, environment and defaults. An
// explicit configPath must exist; otherwise a missing file is not an error
// so the CLI can run from environment variables alone.
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
			v.AddConfigPath(filepath.Join(home, ".marquee"))
		}

		// Check /etc
		v.AddConfigPath("/etc/marquee/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
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
	// TMDb defaults; keys without a real default are registered so env overrides reach them
	v.SetDefault("tmdb.api_key", "")
	v.SetDefault("tmdb.read_token", "")
	v.SetDefault("tmdb.session_id", "")
	v.SetDefault("tmdb.base_url", "https://api.themoviedb.org/3")
	v.SetDefault("tmdb.language", "en-US")
	v.SetDefault("tmdb.timeout", "30s")
	v.SetDefault("tmdb.rate_limit", 20)
	v.SetDefault("tmdb.subfetch_concurrency", 1)
	// include_adult stays nil unless set, so it is bound instead of defaulted
	_ = v.BindEnv("tmdb.include_adult", EnvPrefix+"_TMDB_INCLUDE_ADULT")

	// Output defaults
	v.SetDefault("output.format", "console")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if (cfg.TMDb.APIKey == "" || cfg.TMDb.APIKey == "your-api-key-here") && cfg.TMDb.ReadToken == "" {
		return fmt.Errorf("tmdb.api_key or tmdb.read_token must be set")
	}

	if u, err := url.Parse(cfg.TMDb.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("tmdb.base_url must be an absolute URL: %q", cfg.TMDb.BaseURL)
	}

	if cfg.TMDb.Timeout <= 0 {
		return fmt.Errorf("tmdb.timeout must be positive")
	}

	if cfg.TMDb.RateLimit < 0 {
		return fmt.Errorf("tmdb.rate_limit must not be negative")
	}

	if cfg.TMDb.SubFetchConcurrency < 1 {
		return fmt.Errorf("tmdb.subfetch_concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
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

	if err := ValidateOutputFormat(cfg.Output.Format); err != nil {
		return err
	}

	for name, expression := range cfg.Filter.Presets {
		if strings.TrimSpace(expression) == "" {
			return fmt.Errorf("filter preset %q is empty", name)
		}
	}

	return nil
}

// ValidateOutputFormat checks an output format name
func ValidateOutputFormat(format string) error {
	switch format {
	case "console", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (must be console, json or yaml)", format)
	}
}
