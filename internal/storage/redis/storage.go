package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hearts/internal/model"
	"github.com/mcoot/hearts/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Store = (*Storage)(nil)

func (s *Storage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, namespacedKey(s.cfg.Namespace, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *Storage) Set(ctx context.Context, key, value string) error {
	rKey := namespacedKey(s.cfg.Namespace, key)
	indexKey := namespaceIndexKey(s.cfg.Namespace)

	// Use pipeline for atomic save + index update
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, rKey, value, s.cfg.TTL)
	pipe.SAdd(ctx, indexKey, rKey)
	if s.cfg.TTL > 0 {
		pipe.Expire(ctx, indexKey, s.cfg.TTL) // Keep index TTL in sync
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) Remove(ctx context.Context, key string) error {
	rKey := namespacedKey(s.cfg.Namespace, key)

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, rKey)
	pipe.SRem(ctx, namespaceIndexKey(s.cfg.Namespace), rKey)
	_, err := pipe.Exec(ctx)
	return err
}
