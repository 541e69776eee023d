package redis

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/GlebRadaev/goldmart/internal/config"
)

// New builds the single shared redis client used by the price cache
// and the rate limiter. It is created once at startup and reused for
// every operation; go-redis handles reconnects internally.
func New(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddress,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can't connect to redis at %s: %w", cfg.RedisAddress, err)
	}

	zap.L().Info("redis connection established", zap.String("addr", cfg.RedisAddress))
	return client, nil
}
