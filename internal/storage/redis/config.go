package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Namespace scopes every key to one installation
	Namespace string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// TTL expires idle scoreboards; zero keeps them forever
	TTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		Namespace:    "default",
		PoolSize:     4,
		MinIdleConns: 1,
		TTL:          0,
	}
}
