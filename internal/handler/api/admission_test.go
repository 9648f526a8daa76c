//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/domain/waitinglist"
	"ticket-marketplace/internal/handler/api"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"
	"ticket-marketplace/tests/common/authtest"
	"ticket-marketplace/tests/common/builder"
	"ticket-marketplace/tests/common/httptest"
	commandsmock "ticket-marketplace/tests/mock/commands"
	queriesmock "ticket-marketplace/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdmissionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAdmissionCommands
	mockQueries  *queriesmock.MockQueueQueries
	userID       uuid.UUID
	eventID      uuid.UUID
}

func (s *AdmissionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAdmissionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQueueQueries(s.mockCtrl)
	h := api.NewAdmissionHandler(s.mockCommands, s.mockQueries)

	s.userID = uuid.New()
	s.eventID = uuid.New()

	events := s.router.Group("/api/events/:id", authtest.FakeAuth(s.userID, user.RoleBuyer))
	events.POST("/waiting-list", h.Join)
	events.DELETE("/waiting-list", h.Leave)
	events.GET("/queue-position", h.QueuePosition)
	events.POST("/offers", h.GrantOffer)
}

func (s *AdmissionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdmissionHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdmissionHandlerTestSuite))
}

func (s *AdmissionHandlerTestSuite) url(suffix string) string {
	return "/api/events/" + s.eventID.String() + suffix
}

// ================================================================================
// TestJoin
// ================================================================================

func (s *AdmissionHandlerTestSuite) TestJoin() {
	s.Run("success: returns 201 with the new entry", func() {
		entry := builder.NewEntryBuilder().ForEvent(s.eventID).ForUser(s.userID).BuildDomain()
		s.mockCommands.EXPECT().JoinWaitingList(gomock.Any(), s.eventID, s.userID).Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/waiting-list"), nil, "bearer-token")

		var body resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(entry.ID(), body.ID)
		s.Equal("waiting", body.Status)
		s.Nil(body.OfferExpiresAt)
	})

	s.Run("success: offer granted straight away", func() {
		offeredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		entry := builder.NewEntryBuilder().ForEvent(s.eventID).ForUser(s.userID).
			Offered(offeredAt, 10*time.Minute).BuildDomain()
		s.mockCommands.EXPECT().JoinWaitingList(gomock.Any(), s.eventID, s.userID).Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/waiting-list"), nil, "bearer-token")

		var body resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("offered", body.Status)
		s.Require().NotNil(body.OfferExpiresAt)
		s.True(offeredAt.Add(10 * time.Minute).Equal(*body.OfferExpiresAt))
	})

	testCases := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{name: "error: unknown event", err: commands.ErrEventNotFound, expectCode: http.StatusNotFound, expectInBody: "Event not found"},
		{name: "error: cancelled event", err: commands.ErrEventCancelled, expectCode: http.StatusConflict, expectInBody: "cancelled"},
		{name: "error: already queued", err: commands.ErrAlreadyInQueue, expectCode: http.StatusConflict, expectInBody: "already in the waiting list"},
		{name: "error: unexpected failure", err: errors.New("connection refused"), expectCode: http.StatusInternalServerError, expectInBody: "Internal server error"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().JoinWaitingList(gomock.Any(), s.eventID, s.userID).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/waiting-list"), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}

	s.Run("error: 400 on malformed event id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/events/not-a-uuid/waiting-list", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid event id")
	})

	s.Run("error: 401 without a session", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/waiting-list"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestLeave
// ================================================================================

func (s *AdmissionHandlerTestSuite) TestLeave() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().LeaveWaitingList(gomock.Any(), s.eventID, s.userID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url("/waiting-list"), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when not queued", func() {
		s.mockCommands.EXPECT().LeaveWaitingList(gomock.Any(), s.eventID, s.userID).Return(commands.ErrNotInQueue)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, s.url("/waiting-list"), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not in the waiting list")
	})
}

// ================================================================================
// TestQueuePosition
// ================================================================================

func (s *AdmissionHandlerTestSuite) TestQueuePosition() {
	s.Run("success: returns the caller's place in line", func() {
		pos := 2
		view := &queries.QueuePositionView{EntryID: uuid.New(), Status: "waiting", Position: &pos, WaitingTotal: 7}
		s.mockQueries.EXPECT().Position(gomock.Any(), s.eventID, s.userID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/queue-position"), nil, "bearer-token")

		var body resdto.QueuePositionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		expected := resdto.QueuePositionResponse{EntryID: view.EntryID, Status: "waiting", Position: &pos, WaitingTotal: 7}
		if diff := cmp.Diff(expected, body); diff != "" {
			s.T().Errorf("queue position mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("error: 404 without an entry", func() {
		s.mockQueries.EXPECT().Position(gomock.Any(), s.eventID, s.userID).Return(nil, queries.ErrQueueEntryNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url("/queue-position"), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not in the waiting list")
	})
}

// ================================================================================
// TestGrantOffer
// ================================================================================

func (s *AdmissionHandlerTestSuite) TestGrantOffer() {
	s.Run("success: returns 201 with the offer", func() {
		entry := builder.NewEntryBuilder().ForEvent(s.eventID).ForUser(s.userID).
			Offered(time.Now().UTC(), 10*time.Minute).BuildDomain()
		s.mockCommands.EXPECT().GrantOffer(gomock.Any(), s.eventID, s.userID).Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/offers"), nil, "bearer-token")

		var body resdto.EntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(waitinglist.StatusOffered.String(), body.Status)
	})

	testCases := []struct {
		name         string
		err          error
		expectCode   int
		expectInBody string
	}{
		{name: "error: sold out", err: commands.ErrSoldOut, expectCode: http.StatusConflict, expectInBody: "no tickets are available"},
		{name: "error: offer already held", err: commands.ErrAlreadyOffered, expectCode: http.StatusConflict, expectInBody: "already hold"},
		{name: "error: earlier entrants still waiting", err: commands.ErrQueueAhead, expectCode: http.StatusConflict, expectInBody: "ahead of you"},
		{name: "error: concurrent update", err: commands.ErrConcurrentUpdate, expectCode: http.StatusConflict, expectInBody: "retry"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockCommands.EXPECT().GrantOffer(gomock.Any(), s.eventID, s.userID).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/offers"), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectInBody)
		})
	}
}
