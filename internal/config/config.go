// Package config provides configuration management for the OddsIQ platform.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	App          AppConfig          `mapstructure:"app" validate:"required"`
	Database     DatabaseConfig     `mapstructure:"database" validate:"required"`
	OddsFeed     OddsFeedConfig     `mapstructure:"odds_feed" validate:"required"`
	Scoring      ScoringConfig      `mapstructure:"scoring" validate:"required"`
	Verification VerificationConfig `mapstructure:"verification" validate:"required"`
	Metrics      MetricsConfig      `mapstructure:"metrics" validate:"required"`
	Sports       []SportConfig      `mapstructure:"sports"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatabaseConfig represents database connection configuration
type DatabaseConfig struct {
	Host               string `mapstructure:"host" validate:"required"`
	Port               int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Name               string `mapstructure:"name" validate:"required"`
	User               string `mapstructure:"user" validate:"required"`
	Password           string `mapstructure:"password" validate:"required"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"required,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"required,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"required,gt=0"`
}

// OddsFeedConfig represents the external odds feed configuration
type OddsFeedConfig struct {
	APIURL                 string   `mapstructure:"api_url" validate:"required,url"`
	APIKey                 string   `mapstructure:"api_key"`
	SportKeys              []string `mapstructure:"sport_keys" validate:"required,min=1"`
	Regions                string   `mapstructure:"regions"`
	Markets                string   `mapstructure:"markets"`
	PollIntervalSeconds    int      `mapstructure:"poll_interval_seconds" validate:"required,gt=0"`
	RequestTimeoutSeconds  int      `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	MaxRetries             int      `mapstructure:"max_retries" validate:"gte=0"`
	RateLimitPerSecond     float64  `mapstructure:"rate_limit_per_second" validate:"gt=0"`
	ScoresLookbackDays     int      `mapstructure:"scores_lookback_days" validate:"required,gt=0"`
	HistoricalSyncSchedule string   `mapstructure:"historical_sync_schedule"`
}

// ScoringConfig represents prediction scoring configuration
type ScoringConfig struct {
	HouseBookmakerKey         string  `mapstructure:"house_bookmaker_key" validate:"required"`
	BoostPercent              float64 `mapstructure:"boost_percent" validate:"gt=0,lt=1"`
	DrawProbabilityFloor      float64 `mapstructure:"draw_probability_floor" validate:"gt=0,lt=1"`
	HighConfidenceThreshold   float64 `mapstructure:"high_confidence_threshold" validate:"gt=0,lte=100"`
	MediumConfidenceThreshold float64 `mapstructure:"medium_confidence_threshold" validate:"gt=0,lte=100"`
	MinArbitrageBookmakers    int     `mapstructure:"min_arbitrage_bookmakers" validate:"required,gt=0"`
	CacheTTLSeconds           int     `mapstructure:"cache_ttl_seconds" validate:"required,gt=0"`
	CacheMaxSize              int     `mapstructure:"cache_max_size" validate:"required,gt=0"`
}

// VerificationConfig represents result verification configuration
type VerificationConfig struct {
	SweepSchedule      string `mapstructure:"sweep_schedule" validate:"required"`
	BatchSize          int    `mapstructure:"batch_size" validate:"required,gt=0"`
	AccuracyWindowDays int    `mapstructure:"accuracy_window_days" validate:"required,gt=0"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Port    int    `mapstructure:"port" validate:"required,min=1,max=65535"`
	Path    string `mapstructure:"path" validate:"required"`
}

// SportConfig represents a per-sport policy override
type SportConfig struct {
	Key          string  `mapstructure:"key" validate:"required"`
	AllowsDraw   bool    `mapstructure:"allows_draw"`
	BoostPercent float64 `mapstructure:"boost_percent" validate:"omitempty,gt=0,lt=1"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// GetDatabaseDSN returns a PostgreSQL DSN string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// PollInterval returns the feed polling cadence as a duration
func (c *OddsFeedConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

// RequestTimeout returns the per-request timeout as a duration
func (c *OddsFeedConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// CacheTTL returns the prediction cache TTL as a duration
func (c *ScoringConfig) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
