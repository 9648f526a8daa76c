package bootstrap

import (
	"ticket-marketplace/internal/handler/middleware"
	"ticket-marketplace/internal/infra/metrics"
	"ticket-marketplace/internal/infra/razorpay"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var ProviderModule = fx.Module("provider",
	fx.Provide(
		fx.Annotate(
			razorpay.NewClient,
			fx.As(new(shared.PaymentProvider)),
		),
	),
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.NewRegistry,
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		func(reg *prometheus.Registry) *metrics.Prometheus { return metrics.NewPrometheus(reg) },
		func(p *metrics.Prometheus) shared.Metrics { return p },
		func(p *metrics.Prometheus) middleware.HTTPRecorder { return p },
	),
)
