//go:build e2e

package marketplace

import (
	"net/http"
	"testing"

	"ticket-marketplace/internal/domain/user"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/tests/common/dbtest"
	"ticket-marketplace/tests/common/httptest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AdmissionE2ESuite struct {
	marketplaceSuite
}

func TestAdmissionE2ESuite(t *testing.T) {
	suite.Run(t, new(AdmissionE2ESuite))
}

func (s *AdmissionE2ESuite) TestWaitingList() {
	s.Run("success: first buyer is offered the only ticket and the second waits", func() {
		seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
		eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 1)
		alice := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")
		bob := dbtest.CreateTestUser(s.T(), s.DB, "bob@example.com", "buyer")

		var first resdto.EntryResponse
		rec := s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)
		s.Equal("offered", first.Status)
		s.Require().NotNil(first.OfferExpiresAt)

		var second resdto.EntryResponse
		rec = s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(bob, user.RoleBuyer), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &second)
		s.Equal("waiting", second.Status)

		var pos resdto.QueuePositionResponse
		rec = s.do(http.MethodGet, eventPath(eventID, "/queue-position"), s.token(bob, user.RoleBuyer), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &pos)
		one := 1
		expected := resdto.QueuePositionResponse{EntryID: second.ID, Status: "waiting", Position: &one, WaitingTotal: 1}
		if diff := cmp.Diff(expected, pos); diff != "" {
			s.T().Errorf("queue position mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: leaving with an offer passes it to the next buyer", func() {
		seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
		eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 1)
		alice := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")
		bob := dbtest.CreateTestUser(s.T(), s.DB, "bob@example.com", "buyer")

		s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(bob, user.RoleBuyer), nil)

		rec := s.do(http.MethodDelete, eventPath(eventID, "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		s.Equal(http.StatusNoContent, rec.Code)

		var pos resdto.QueuePositionResponse
		rec = s.do(http.MethodGet, eventPath(eventID, "/queue-position"), s.token(bob, user.RoleBuyer), nil)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &pos)
		s.Equal("offered", pos.Status)
		s.Nil(pos.Position)
		s.NotNil(pos.OfferExpiresAt)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB,
			"SELECT count(*) FROM waiting_list WHERE event_id = $1 AND status = 'offered'", eventID))
	})

	s.Run("error: joining twice is a conflict", func() {
		seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
		eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 0)
		alice := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")

		rec := s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		s.Equal(http.StatusCreated, rec.Code)

		rec = s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already in the waiting list")
	})

	s.Run("error: offers cannot be granted for a sold out event", func() {
		seller := dbtest.CreateOnboardedSeller(s.T(), s.DB, "seller@example.com", "acc_seller01")
		eventID := dbtest.CreateTestEvent(s.T(), s.DB, seller, "Indie Night", 49900, 1)
		alice := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")
		bob := dbtest.CreateTestUser(s.T(), s.DB, "bob@example.com", "buyer")
		dbtest.CreatePurchasedTicket(s.T(), s.DB, eventID, alice, "pay_sold", 49900)

		s.do(http.MethodPost, eventPath(eventID, "/waiting-list"), s.token(bob, user.RoleBuyer), nil)
		rec := s.do(http.MethodPost, eventPath(eventID, "/offers"), s.token(bob, user.RoleBuyer), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "no tickets are available")
	})

	s.Run("error: unknown event and missing session", func() {
		alice := dbtest.CreateTestUser(s.T(), s.DB, "alice@example.com", "buyer")

		rec := s.do(http.MethodPost, eventPath(uuid.New(), "/waiting-list"), s.token(alice, user.RoleBuyer), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Event not found")

		rec = s.do(http.MethodPost, eventPath(uuid.New(), "/waiting-list"), "", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")

		expired := s.jwt.CreateExpiredToken(s.T(), alice, user.RoleBuyer)
		rec = s.do(http.MethodPost, eventPath(uuid.New(), "/waiting-list"), expired, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func (s *AdmissionE2ESuite) TestHealthAndMetrics() {
	s.Run("success: probes are public", func() {
		rec := s.do(http.MethodGet, "/health", "", nil)
		s.Equal(http.StatusOK, rec.Code)

		rec = s.do(http.MethodGet, "/metrics", "", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "ticket_marketplace_http_request_duration_seconds")
	})
}
