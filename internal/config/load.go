package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "HEARTS"

// Dir is the per-user directory holding the config file and sqlite db
const Dir = ".hearts"

// Load reads configuration. When path is empty, config.yaml is looked up
// in ~/.hearts and the working directory, and a missing file is not an
// error. Environment variables take precedence over file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, Dir))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks a Config against its struct tags
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Type:   "sqlite",
			SQLite: SQLiteConfig{Path: defaultSQLitePath()},
			Redis: RedisConfig{
				URL:          "redis://localhost:6379",
				Namespace:    "default",
				PoolSize:     4,
				MinIdleConns: 1,
			},
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: "text",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("storage.type", d.Storage.Type)
	v.SetDefault("storage.sqlite.path", d.Storage.SQLite.Path)
	v.SetDefault("storage.redis.url", d.Storage.Redis.URL)
	v.SetDefault("storage.redis.namespace", d.Storage.Redis.Namespace)
	v.SetDefault("storage.redis.pool_size", d.Storage.Redis.PoolSize)
	v.SetDefault("storage.redis.min_idle_conns", d.Storage.Redis.MinIdleConns)
	v.SetDefault("storage.redis.ttl", d.Storage.Redis.TTL)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output", d.Output)
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(Dir, "hearts.db")
	}
	return filepath.Join(home, Dir, "hearts.db")
}
