package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/hearts/internal/config"
	"github.com/mcoot/hearts/internal/dependencies/clock"
	"github.com/mcoot/hearts/internal/dependencies/ids"
	"github.com/mcoot/hearts/internal/services/analytics"
	"github.com/mcoot/hearts/internal/services/persistence"
	"github.com/mcoot/hearts/internal/services/scoreboard"
	"github.com/mcoot/hearts/internal/storage"
	"github.com/mcoot/hearts/internal/storage/memory"
	redisstorage "github.com/mcoot/hearts/internal/storage/redis"
	"github.com/mcoot/hearts/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Store

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	Repository *persistence.Repository
	Analytics  analytics.Sink
	Scoreboard *scoreboard.Controller

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// ConfigFrom maps loaded application settings onto a factory Config
func ConfigFrom(cfg *config.Config, logger *slog.Logger) Config {
	redisCfg := redisstorage.Config{
		URL:          cfg.Storage.Redis.URL,
		Namespace:    cfg.Storage.Redis.Namespace,
		PoolSize:     cfg.Storage.Redis.PoolSize,
		MinIdleConns: cfg.Storage.Redis.MinIdleConns,
		TTL:          cfg.Storage.Redis.TTL,
	}
	return Config{
		Logger:      logger,
		StorageType: cfg.Storage.Type,
		SQLitePath:  cfg.Storage.SQLite.Path,
		RedisConfig: &redisCfg,
	}
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	app, err := newWithDependencies(ctx, store, clock.New(), ids.New(), analytics.NewLogSink(logger), logger)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return app, nil
}

func openStore(cfg Config, logger *slog.Logger) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		return redisStore, nil
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		sqliteStore, err := sqlite.Open(cfg.SQLitePath, logger)
		if err != nil {
			return nil, err
		}
		return sqliteStore, nil
	default:
		return nil, fmt.Errorf("invalid StorageType %q: must be 'memory', 'redis' or 'sqlite'", storageType)
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	ctx context.Context,
	store storage.Store,
	clk clock.Clock,
	gen ids.Generator,
	sink analytics.Sink,
	logger *slog.Logger,
) (*App, error) {
	repo := persistence.New(store, gen, logger)

	board, err := scoreboard.Open(ctx, repo, sink, clk, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:    store,
		Clock:      clk,
		IDs:        gen,
		Repository: repo,
		Analytics:  sink,
		Scoreboard: board,
		Logger:     logger,
	}, nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.Storage.Close()
}
