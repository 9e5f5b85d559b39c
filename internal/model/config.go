package model

import "time"

// Config holds all planreader settings. Field tags mirror the YAML layout of
// ~/.planreader/config.yaml.
type Config struct {
	OCR         OCRConfig         `yaml:"ocr" mapstructure:"ocr"`
	Fetch       FetchConfig       `yaml:"fetch" mapstructure:"fetch"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Logging     LoggingConfig     `yaml:"logging" mapstructure:"logging"`
	Metrics     MetricsConfig     `yaml:"metrics" mapstructure:"metrics"`
}

// OCRConfig configures the OCR collaborator used for scanned pages
type OCRConfig struct {
	Provider          string  `yaml:"provider" mapstructure:"provider"` // "", "openai", "anthropic", "ollama"
	Model             string  `yaml:"model" mapstructure:"model"`
	APIKey            string  `yaml:"api_key,omitempty" mapstructure:"api_key"`
	BaseURL           string  `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout           int     `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens         int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	MinTextChars      int     `yaml:"min_text_chars" mapstructure:"min_text_chars"` // Below this a page is OCR'd
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	HTTPProxy         string  `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy        string  `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
}

// FetchConfig configures downloading plans given as http(s) URLs
type FetchConfig struct {
	Timeout       int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	UserAgent     string `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBytes      int64  `yaml:"max_bytes" mapstructure:"max_bytes"`
	Retries       int    `yaml:"retries" mapstructure:"retries"`
	RespectRobots bool   `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// CacheConfig configures the parsed-estimate cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// StoreConfig configures takeoff persistence
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // SQLite file; empty keeps takeoffs in memory
}

// ConcurrencyConfig configures batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig configures CLI output
type OutputConfig struct {
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
	Format  string `yaml:"format" mapstructure:"format"` // table, json, csv
}

// LoggingConfig configures the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"` // json, console
}

// MetricsConfig configures metrics export
type MetricsConfig struct {
	TextfilePath string `yaml:"textfile_path,omitempty" mapstructure:"textfile_path"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Model:             "gpt-4o-mini",
			Timeout:           60,
			MaxTokens:         4000,
			MinTextChars:      50,
			RequestsPerSecond: 2,
			Burst:             2,
		},
		Fetch: FetchConfig{
			Timeout:       60,
			UserAgent:     "planreader/0.1 (+https://github.com/ppiankov/planreader)",
			MaxBytes:      50 << 20,
			Retries:       2,
			RespectRobots: true,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".planreader-cache",
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Store: StoreConfig{
			Path: "",
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
