package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	TMDb    TMDbConfig    `mapstructure:"tmdb"`
	Output  OutputConfig  `mapstructure:"output"`
	Filter  FilterConfig  `mapstructure:"filter"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDbConfig holds TMDb API connection details
type TMDbConfig struct {
	APIKey    string `mapstructure:"api_key"`
	ReadToken string `mapstructure:"read_token"`
	BaseURL   string `mapstructure:"base_url"`
	Language  string `mapstructure:"language"`
	// IncludeAdult is sent with every request when set
	IncludeAdult        *bool         `mapstructure:"include_adult"`
	SessionID           string        `mapstructure:"session_id"`
	Timeout             time.Duration `mapstructure:"timeout"`
	RateLimit           float64       `mapstructure:"rate_limit"`
	SubFetchConcurrency int           `mapstructure:"subfetch_concurrency"`
}

// OutputConfig controls how results are printed
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// FilterConfig contains named filter expressions
type FilterConfig struct {
	Presets map[string]string `mapstructure:"presets"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
