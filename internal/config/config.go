package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	DefaultWeeklyCalorieGoal = 2000
	DefaultRateLimitPerMin   = 60
	DefaultIdempotencyTTLSec = 600
	DefaultChartCacheSizeMB  = 32
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis is optional; empty host disables rate limiting and idempotency keys
	RedisHost             string `toml:"redis_host"`
	RedisPort             string `toml:"redis_port"`
	RateLimitPerMin       int    `toml:"rate_limit_per_min"`
	IdempotencyTTLSeconds int    `toml:"idempotency_ttl_seconds"`

	AllowedOrigins []string `toml:"allowed_origins"`

	// workouts
	UnknownCategoryPolicy string  `toml:"unknown_category_policy"`
	WeeklyCalorieGoal     float64 `toml:"weekly_calorie_goal"`
	ChartCacheSizeMB      int     `toml:"chart_cache_size_mb"`
}

type Toml struct {
	Development *Config `toml:"development"`
	Production  *Config `toml:"production"`
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config for env [%s] missing", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env,
// with defaults applied.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for in-memory TOML content.
func Parse(env, content string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.RateLimitPerMin == 0 {
		c.RateLimitPerMin = DefaultRateLimitPerMin
	}
	if c.IdempotencyTTLSeconds == 0 {
		c.IdempotencyTTLSeconds = DefaultIdempotencyTTLSec
	}
	if c.UnknownCategoryPolicy == "" {
		c.UnknownCategoryPolicy = "coerce"
	}
	if c.WeeklyCalorieGoal == 0 {
		c.WeeklyCalorieGoal = DefaultWeeklyCalorieGoal
	}
	if c.ChartCacheSizeMB == 0 {
		c.ChartCacheSizeMB = DefaultChartCacheSizeMB
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d", c.Port))
	}
	if c.RateLimitPerMin < 0 {
		errs = append(errs, fmt.Errorf("invalid rate_limit_per_min %d", c.RateLimitPerMin))
	}
	if c.WeeklyCalorieGoal < 0 {
		errs = append(errs, fmt.Errorf("invalid weekly_calorie_goal %.0f", c.WeeklyCalorieGoal))
	}
	switch strings.ToLower(c.UnknownCategoryPolicy) {
	case "coerce", "accept", "reject":
	default:
		errs = append(errs, fmt.Errorf("invalid unknown_category_policy [%s]", c.UnknownCategoryPolicy))
	}
	return errors.Join(errs...)
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}
