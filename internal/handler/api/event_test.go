//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/handler/api"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"
	"ticket-marketplace/tests/common/authtest"
	"ticket-marketplace/tests/common/httptest"
	commandsmock "ticket-marketplace/tests/mock/commands"
	queriesmock "ticket-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EventHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockRefunds *commandsmock.MockRefundCommands
	mockQueries *queriesmock.MockRefundQueries
	sellerID    uuid.UUID
	eventID     uuid.UUID
}

func (s *EventHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRefunds = commandsmock.NewMockRefundCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRefundQueries(s.mockCtrl)
	h := api.NewEventHandler(s.mockRefunds, s.mockQueries)

	s.sellerID = uuid.New()
	s.eventID = uuid.New()
	events := s.router.Group("/api/events/:id", authtest.FakeAuth(s.sellerID, user.RoleSeller))
	events.POST("/cancel", h.Cancel)
	events.GET("/refunds", h.Refunds)
}

func (s *EventHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerTestSuite))
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *EventHandlerTestSuite) TestCancel() {
	url := "/api/events/" + s.eventID.String() + "/cancel"

	s.Run("success: all refunds succeeded and the event is cancelled", func() {
		refunded := []uuid.UUID{uuid.New(), uuid.New()}
		report := &commands.RefundReport{
			EventID:        s.eventID,
			Success:        true,
			Refunded:       refunded,
			Failures:       []commands.RefundFailure{},
			EventCancelled: true,
		}
		s.mockRefunds.EXPECT().CancelEventAndRefund(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).Return(report, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.RefundReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		expected := resdto.RefundReportResponse{
			EventID:        s.eventID,
			Success:        true,
			Refunded:       refunded,
			Failures:       []resdto.RefundFailureResponse{},
			EventCancelled: true,
		}
		if diff := cmp.Diff(expected, body); diff != "" {
			s.T().Errorf("refund report mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: partial failure returns 502 with the report", func() {
		failed := uuid.New()
		report := &commands.RefundReport{
			EventID:  s.eventID,
			Success:  false,
			Refunded: []uuid.UUID{uuid.New()},
			Failures: []commands.RefundFailure{{TicketID: failed, Reason: "payment provider unavailable"}},
		}
		s.mockRefunds.EXPECT().CancelEventAndRefund(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).Return(report, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		s.Equal(http.StatusBadGateway, rec.Code)
		var body resdto.RefundReportResponse
		s.Require().NoError(httptest.DecodeJSON(rec, &body))
		s.False(body.Success)
		s.False(body.EventCancelled)
		s.Require().Len(body.Failures, 1)
		s.Equal(failed, body.Failures[0].TicketID)
		s.Equal("payment provider unavailable", body.Failures[0].Reason)
	})

	testCases := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{name: "error: not the owner", err: commands.ErrNotEventOwner, expectCode: http.StatusForbidden, expectInBody: "event owner"},
		{name: "error: already cancelled", err: commands.ErrEventCancelled, expectCode: http.StatusConflict, expectInBody: "cancelled"},
		{name: "error: unknown event", err: commands.ErrEventNotFound, expectCode: http.StatusNotFound, expectInBody: "Event not found"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockRefunds.EXPECT().CancelEventAndRefund(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}

// ================================================================================
// TestRefunds
// ================================================================================

func (s *EventHandlerTestSuite) TestRefunds() {
	url := "/api/events/" + s.eventID.String() + "/refunds"

	s.Run("success: lists attempts", func() {
		reason := "gateway timeout"
		attempts := []*queries.RefundAttemptView{
			{ID: uuid.New(), TicketID: uuid.New(), PaymentID: "pay_1", Status: "failed", Error: &reason,
				AttemptedAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)},
		}
		s.mockQueries.EXPECT().ListAttempts(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).Return(attempts, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.RefundAttemptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		expected := []resdto.RefundAttemptResponse{{
			ID:          attempts[0].ID,
			TicketID:    attempts[0].TicketID,
			PaymentID:   "pay_1",
			Status:      "failed",
			Error:       &reason,
			AttemptedAt: attempts[0].AttemptedAt,
		}}
		if diff := cmp.Diff(expected, body); diff != "" {
			s.T().Errorf("refund attempts mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("success: empty list is an empty array", func() {
		s.mockQueries.EXPECT().ListAttempts(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).
			Return([]*queries.RefundAttemptView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	s.Run("error: another seller's event", func() {
		s.mockQueries.EXPECT().ListAttempts(gomock.Any(), s.eventID, s.sellerID, user.RoleSeller).Return(nil, queries.ErrEventAccess)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "event owner")
	})
}
