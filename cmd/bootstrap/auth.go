package bootstrap

import (
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/jwt"

	"go.uber.org/fx"
)

var AuthModule = fx.Module("auth",
	fx.Provide(
		func(cfg config.Config) (*jwt.Service, error) {
			return jwt.NewService(cfg.JWT)
		},
	),
)
