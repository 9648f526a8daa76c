package cache

import (
	"context"
	"log/slog"

	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	cli := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, nil, errs.Wrap(err, "failed to ping redis")
	}

	cleanup := func() {
		if err := cli.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return cli, cleanup, nil
}
