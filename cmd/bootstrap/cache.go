package bootstrap

import (
	"context"

	"ticket-marketplace/internal/infra/cache"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedis,
		fx.Annotate(
			func(cli *redis.Client) *cache.OrderCache {
				return cache.NewOrderCache(cli)
			},
			fx.As(new(shared.OrderCache)),
		),
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	cli, cleanup, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return cli, nil
}
