// Package config loads application settings from defaults, an optional
// YAML file and HEARTS_* environment variables.
package config

import "time"

// Config holds all application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Output  string        `mapstructure:"output" validate:"required,oneof=text json"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Type   string       `mapstructure:"type" validate:"required,oneof=memory redis sqlite"`
	SQLite SQLiteConfig `mapstructure:"sqlite"`
	Redis  RedisConfig  `mapstructure:"redis"`
}

// SQLiteConfig configures the file-backed store
type SQLiteConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// RedisConfig configures the shared redis store
type RedisConfig struct {
	URL          string        `mapstructure:"url" validate:"required,url"`
	Namespace    string        `mapstructure:"namespace" validate:"required,excludesall=:"`
	PoolSize     int           `mapstructure:"pool_size" validate:"gte=1"`
	MinIdleConns int           `mapstructure:"min_idle_conns" validate:"gte=0"`
	TTL          time.Duration `mapstructure:"ttl" validate:"gte=0"`
}

// LogConfig configures the slog handler
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}
