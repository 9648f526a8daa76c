package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ticket_marketplace"

type Prometheus struct {
	offersGranted    prometheus.Counter
	offersExpired    prometheus.Counter
	settlements      *prometheus.CounterVec
	webhookResponses *prometheus.CounterVec
	refunds          *prometheus.CounterVec
	outboxPublished  *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	factory := promauto.With(reg)
	return &Prometheus{
		offersGranted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_granted_total",
			Help:      "Ticket offers granted to waiting users",
		}),
		offersExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_expired_total",
			Help:      "Offers reclaimed after their window lapsed",
		}),
		settlements: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_total",
			Help:      "Payment webhook settlement outcomes",
		}, []string{"outcome"}),
		webhookResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_responses_total",
			Help:      "HTTP statuses returned to the payment provider",
		}, []string{"status"}),
		refunds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refunds_total",
			Help:      "Per-ticket refund results",
		}, []string{"result"}),
		outboxPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "outbox_published_total",
			Help:      "Outbox publish attempts",
		}, []string{"topic", "result"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (p *Prometheus) OffersGranted(n int) {
	p.offersGranted.Add(float64(n))
}

func (p *Prometheus) OffersExpired(n int) {
	p.offersExpired.Add(float64(n))
}

func (p *Prometheus) SettlementOutcome(outcome string) {
	p.settlements.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) WebhookResponse(status int) {
	p.webhookResponses.WithLabelValues(strconv.Itoa(status)).Inc()
}

func (p *Prometheus) RefundResult(result string) {
	p.refunds.WithLabelValues(result).Inc()
}

func (p *Prometheus) OutboxPublished(topic string, ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	p.outboxPublished.WithLabelValues(topic, result).Inc()
}

func (p *Prometheus) HTTPRequest(method, route string, status int, elapsed time.Duration) {
	p.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
