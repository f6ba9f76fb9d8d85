package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "GQLPARSE"

// Config holds the settings of the parse service.
type Config struct {
	ListenAddr string `json:"listen_addr" split_words:"true"`
	LogLevel   string `json:"log_level" split_words:"true"`
	LogFormat  string `json:"log_format" split_words:"true"`
	CacheSize  int    `json:"cache_size" split_words:"true"`
	// CacheMaxSourceBytes is the largest document kept in the cache.
	CacheMaxSourceBytes int   `json:"cache_max_source_bytes" split_words:"true"`
	MaxBodyBytes        int64 `json:"max_body_bytes" split_words:"true"`
	// MaxDepth bounds the nesting of selection sets, lists and objects.
	MaxDepth         int           `json:"max_depth" split_words:"true"`
	BatchConcurrency int           `json:"batch_concurrency" split_words:"true"`
	ShutdownTimeout  time.Duration `json:"shutdown_timeout" split_words:"true"`
	// AllowedOrigins restricts WebSocket upgrades. Empty allows any origin.
	AllowedOrigins []string `json:"allowed_origins" split_words:"true"`
}

// Default is the configuration used for every setting the environment
// leaves unset.
var Default = Config{
	ListenAddr:          ":8080",
	LogLevel:            "info",
	LogFormat:           "text",
	CacheSize:           512,
	CacheMaxSourceBytes: 64 << 10,
	MaxBodyBytes:        1 << 20,
	MaxDepth:            256,
	BatchConcurrency:    8,
	ShutdownTimeout:     10 * time.Second,
}

// Load returns Default overridden by GQLPARSE_* environment variables, e.g.
// GQLPARSE_LISTEN_ADDR or GQLPARSE_CACHE_SIZE.
func Load() (Config, error) {
	conf := Default
	if err := envconfig.Process(envPrefix, &conf); err != nil {
		return Config{}, fmt.Errorf("failed to process config env vars: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Validate reports the first setting that the service cannot run with.
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return errors.New("config: listen_addr must not be empty")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("config: log_format must be text or json, got %q", c.LogFormat)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config: cache_size must not be negative, got %d", c.CacheSize)
	}
	if c.CacheMaxSourceBytes <= 0 {
		return fmt.Errorf("config: cache_max_source_bytes must be positive, got %d", c.CacheMaxSourceBytes)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("config: max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("config: batch_concurrency must be positive, got %d", c.BatchConcurrency)
	}
	return nil
}
