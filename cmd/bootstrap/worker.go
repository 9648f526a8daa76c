package bootstrap

import (
	"context"
	"errors"

	"ticket-marketplace/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewOfferSweeper,
		worker.NewOutboxRelay,
	),
	fx.Invoke(startWorkers),
)

func startWorkers(lc fx.Lifecycle, sweeper *worker.OfferSweeper, relay *worker.OutboxRelay) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if err := sweeper.Start(); err != nil {
				return err
			}
			return relay.Start()
		},
		OnStop: func(ctx context.Context) error {
			return errors.Join(sweeper.Stop(ctx), relay.Stop(ctx))
		},
	})
}
