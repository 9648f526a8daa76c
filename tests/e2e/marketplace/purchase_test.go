//go:build e2e

package marketplace

import (
	"net/http"
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/tests/common/dbtest"
	"ticket-marketplace/tests/common/httptest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PurchaseE2ESuite struct {
	marketplaceSuite
}

func TestPurchaseE2ESuite(t *testing.T) {
	suite.Run(t, new(PurchaseE2ESuite))
}

type purchaseFixture struct {
	eventID uuid.UUID
	buyer   uuid.UUID
	token   string
}

func (s *PurchaseE2ESuite) offeredBuyer() purchaseFixture {
	seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 2)
	buyer := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")
	token := s.token(buyer, user.RoleBuyer)

	rec := s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), token, nil)
	s.Require().Equal(http.StatusCreated, rec.Code)
	return purchaseFixture{eventID: eventID, buyer: buyer, token: token}
}

func (s *PurchaseE2ESuite) TestCheckoutAndSettlement() {
	s.Run("success: checkout, captured payment and redelivery", func() {
		f := s.offeredBuyer()

		var checkout resdto.CheckoutResponse
		rec := s.do(http.MethodPost, eventPath(f.eventID, "/checkout"), f.token, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &checkout)
		s.Equal("order_e2e0001", checkout.OrderID)
		s.Equal(int64(49900), checkout.Amount)
		s.Equal("499.00", checkout.DisplayAmount)
		s.Equal(s.Config.Razorpay.KeyID, checkout.ProviderPublicKey)

		// A second checkout reuses the cached order.
		rec = s.do(http.MethodPost, eventPath(f.eventID, "/checkout"), f.token, nil)
		s.Equal(http.StatusOK, rec.Code)
		orders := s.Provider.Orders()
		s.Require().Len(orders, 1)
		s.Equal("acc_seller01", orders[0].Account)

		body, sig := capturedPayment(s.T(), s.Config.Razorpay.WebhookSecret, "pay_e2e1", checkout.OrderID,
			49900, orders[0].Body["notes"], time.Now())

		var ack resdto.WebhookAckResponse
		rec = s.deliver(body, sig)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &ack)
		s.Equal("settled", ack.Status)
		s.Require().NotNil(ack.TicketID)

		rec = s.deliver(body, sig)
		var replay resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
		s.Equal("already_settled", replay.Status)
		s.Equal(ack.TicketID, replay.TicketID)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM tickets WHERE event_id = $1", f.eventID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB,
			"SELECT count(*) FROM notification_jobs WHERE topic = 'ticket.purchased'"))

		var tickets []resdto.TicketResponse
		rec = s.do(http.MethodGet, "/api/tickets", f.token, nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &tickets)
		expected := []resdto.TicketResponse{{
			ID:          *ack.TicketID,
			EventID:     f.eventID,
			EventName:   "Indie Night",
			PaymentID:   "pay_e2e1",
			Status:      "valid",
			AmountMinor: 49900,
			Amount:      "499.00",
			Currency:    "INR",
		}}
		if diff := cmp.Diff(expected, tickets, cmpopts.IgnoreFields(resdto.TicketResponse{}, "PurchasedAt")); diff != "" {
			s.T().Errorf("tickets mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: a second payment for the same offer raises an operator alert", func() {
		f := s.offeredBuyer()
		rec := s.do(http.MethodPost, eventPath(f.eventID, "/checkout"), f.token, nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		notes := s.Provider.Orders()[0].Body["notes"]

		body, sig := capturedPayment(s.T(), s.Config.Razorpay.WebhookSecret, "pay_first", "order_e2e0001", 49900, notes, time.Now())
		s.Equal(http.StatusOK, s.deliver(body, sig).Code)

		body, sig = capturedPayment(s.T(), s.Config.Razorpay.WebhookSecret, "pay_second", "order_e2e0001", 49900, notes, time.Now())
		var ack resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), s.deliver(body, sig), http.StatusOK, &ack)
		s.Equal("duplicate_capture", ack.Status)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM tickets WHERE event_id = $1", f.eventID))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB,
			"SELECT count(*) FROM notification_jobs WHERE topic = 'payment.duplicate_capture'"))
	})

	s.Run("error: checkout without an offer", func() {
		seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
		eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 2)
		buyer := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")

		rec := s.do(http.MethodPost, eventPath(eventID, "/checkout"), s.token(buyer, user.RoleBuyer), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "valid ticket offer")
		s.Empty(s.Provider.Orders())
	})

	s.Run("error: forged and tampered deliveries are rejected", func() {
		f := s.offeredBuyer()
		rec := s.do(http.MethodPost, eventPath(f.eventID, "/checkout"), f.token, nil)
		s.Require().Equal(http.StatusOK, rec.Code)
		notes := s.Provider.Orders()[0].Body["notes"]

		body, _ := capturedPayment(s.T(), s.Config.Razorpay.WebhookSecret, "pay_forged", "order_e2e0001", 49900, notes, time.Now())
		_, forged := capturedPayment(s.T(), "not-the-secret", "pay_forged", "order_e2e0001", 49900, notes, time.Now())
		httptest.AssertErrorResponse(s.T(), s.deliver(body, forged), http.StatusUnauthorized, "")

		httptest.AssertErrorResponse(s.T(), s.deliver(body, ""), http.StatusBadRequest, "")

		tampered := map[string]any{"eventId": f.eventID.String(), "userId": uuid.NewString(), "waitingListId": uuid.NewString()}
		body, sig := capturedPayment(s.T(), s.Config.Razorpay.WebhookSecret, "pay_tampered", "order_e2e0001", 49900, tampered, time.Now())
		httptest.AssertErrorResponse(s.T(), s.deliver(body, sig), http.StatusBadRequest, "")

		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM tickets"))
	})
}
