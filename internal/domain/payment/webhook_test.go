//go:build unit

package payment_test

import (
	"testing"

	"ticket-marketplace/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWebhook(t *testing.T) {
	eventID, userID, entryID := uuid.New(), uuid.New(), uuid.New()

	t.Run("success: captured payment with notes", func(t *testing.T) {
		body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{
			"id":"pay_1","order_id":"order_1","amount":500,"currency":"INR","status":"captured","created_at":1772359320,
			"notes":{"eventId":"` + eventID.String() + `","userId":"` + userID.String() + `","waitingListId":"` + entryID.String() + `"}}}}}`)

		evt, err := payment.ParseWebhook(body)
		require.NoError(t, err)
		assert.True(t, evt.IsPaymentCaptured())

		p, err := evt.Payment()
		require.NoError(t, err)
		in, err := payment.NewSettlementInput(p, "INR")
		require.NoError(t, err)

		assert.Equal(t, "pay_1", in.PaymentID)
		assert.Equal(t, "order_1", in.OrderID)
		assert.Equal(t, eventID, in.EventID)
		assert.Equal(t, userID, in.UserID)
		assert.Equal(t, entryID, in.WaitingListID)
		assert.Equal(t, "5.00", in.Amount.Display().StringFixed(2))
		require.NotNil(t, in.PaidAt)
		assert.Equal(t, int64(1772359320), in.PaidAt.Unix())
	})

	t.Run("success: other event types parse without a payment", func(t *testing.T) {
		evt, err := payment.ParseWebhook([]byte(`{"event":"order.paid","payload":{}}`))
		require.NoError(t, err)
		assert.False(t, evt.IsPaymentCaptured())
		_, err = evt.Payment()
		assert.ErrorIs(t, err, payment.ErrMalformedPayload)
	})

	t.Run("error: not json", func(t *testing.T) {
		_, err := payment.ParseWebhook([]byte(`event=payment.captured`))
		assert.ErrorIs(t, err, payment.ErrMalformedPayload)
	})

	t.Run("error: missing event type", func(t *testing.T) {
		_, err := payment.ParseWebhook([]byte(`{"payload":{}}`))
		assert.ErrorIs(t, err, payment.ErrMalformedPayload)
	})
}

func TestNewSettlementInput(t *testing.T) {
	valid := func() *payment.PaymentEntity {
		return &payment.PaymentEntity{
			ID:     "pay_1",
			Amount: 500,
			Notes: payment.Notes{
				EventID:       uuid.NewString(),
				UserID:        uuid.NewString(),
				WaitingListID: uuid.NewString(),
			},
		}
	}

	testCases := []struct {
		name   string
		mutate func(p *payment.PaymentEntity)
	}{
		{name: "error: missing payment id", mutate: func(p *payment.PaymentEntity) { p.ID = "" }},
		{name: "error: missing eventId", mutate: func(p *payment.PaymentEntity) { p.Notes.EventID = "" }},
		{name: "error: missing userId", mutate: func(p *payment.PaymentEntity) { p.Notes.UserID = "" }},
		{name: "error: missing waitingListId", mutate: func(p *payment.PaymentEntity) { p.Notes.WaitingListID = "" }},
		{name: "error: garbage waitingListId", mutate: func(p *payment.PaymentEntity) { p.Notes.WaitingListID = "wl_123" }},
		{name: "error: zero amount", mutate: func(p *payment.PaymentEntity) { p.Amount = 0 }},
		{name: "error: bad currency", mutate: func(p *payment.PaymentEntity) { p.Currency = "RUPEES" }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid()
			tc.mutate(p)
			_, err := payment.NewSettlementInput(p, "INR")
			assert.ErrorIs(t, err, payment.ErrMalformedPayload)
		})
	}

	t.Run("success: default currency and no timestamp", func(t *testing.T) {
		in, err := payment.NewSettlementInput(valid(), "INR")
		require.NoError(t, err)
		assert.Equal(t, "INR", in.Amount.Currency())
		assert.Nil(t, in.PaidAt)
	})

	t.Run("error: empty-array notes decode as missing", func(t *testing.T) {
		evt, err := payment.ParseWebhook([]byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"id":"pay_1","amount":500,"notes":[]}}}}`))
		require.NoError(t, err)
		p, err := evt.Payment()
		require.NoError(t, err)
		_, err = payment.NewSettlementInput(p, "INR")
		assert.ErrorIs(t, err, payment.ErrMalformedPayload)
	})
}
