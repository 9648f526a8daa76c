package bootstrap

import (
	"ticket-marketplace/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	CacheModule,
	MessagingModule,
	MetricsModule,
	ProviderModule,
	AuthModule,
	components.PersistenceModule,
	components.UseCaseModule,
	WorkerModule,
	components.HandlerModule,
)
