//go:build unit

package metrics_test

import (
	"testing"
	"time"

	"ticket-marketplace/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheus_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewPrometheus(reg)

	m.OffersGranted(3)
	m.OffersExpired(2)
	m.SettlementOutcome("settled")
	m.SettlementOutcome("settled")
	m.SettlementOutcome("already_settled")
	m.WebhookResponse(200)
	m.WebhookResponse(400)
	m.RefundResult("succeeded")
	m.OutboxPublished("ticket.purchased", true)
	m.OutboxPublished("ticket.purchased", false)
	m.HTTPRequest("POST", "/webhooks/razorpay", 200, 15*time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ticket_marketplace_offers_granted_total")
	assert.Contains(t, names, "ticket_marketplace_http_request_duration_seconds")

	count, err := testutil.GatherAndCount(reg, "ticket_marketplace_settlements_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "ticket_marketplace_webhook_responses_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(reg, "ticket_marketplace_outbox_published_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNewRegistry_RegistersRuntimeCollectors(t *testing.T) {
	reg := metrics.NewRegistry()

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
