package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"samecity/internal/pkg/config"
	"samecity/internal/pkg/connect"
	"samecity/pkg/logger"
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	ping := func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
	if err := connect.WaitDefault(ctx, redisLog, "redis", ping); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}
