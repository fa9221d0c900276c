package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"problem_app/internal/platform/config"
)

// Connect creates a Redis client and verifies the connection.
func Connect(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("could not connect to redis at %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// Pinger adapts a Redis client to the PingContext shape used by health checks.
type Pinger struct {
	Client *redis.Client
}

func (p Pinger) PingContext(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}
