//go:build unit

package api_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"ticket-marketplace/internal/handler/api"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/shared"
	"ticket-marketplace/tests/common/httptest"
	"ticket-marketplace/tests/common/testutil"
	commandsmock "ticket-marketplace/tests/mock/commands"
	sharedmock "ticket-marketplace/tests/mock/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router         *gin.Engine
	mockCtrl       *gomock.Controller
	mockSettlement *commandsmock.MockSettlementCommands
	mockMetrics    *sharedmock.MockMetrics
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettlement = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.mockMetrics = sharedmock.NewMockMetrics(s.mockCtrl)
	h := api.NewWebhookHandler(s.mockSettlement, s.mockMetrics, testutil.DiscardLogger())

	s.router.POST("/webhooks/razorpay", h.Razorpay)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

const webhookURL = "/webhooks/razorpay"

// Whitespace and key order matter for the signature, so the handler must pass these bytes through untouched.
var capturedBody = []byte(`{"event": "payment.captured",  "payload":{"payment":{"entity":{"id":"pay_1"}}}}`)

func (s *WebhookHandlerTestSuite) TestRazorpay() {
	s.Run("success: raw body and signature reach the settlement", func() {
		ticketID := uuid.New()
		s.mockSettlement.EXPECT().
			HandlePaymentEvent(gomock.Any(), capturedBody, "sig-hex").
			Return(&commands.SettlementResult{Outcome: commands.OutcomeSettled, TicketID: ticketID}, nil)
		s.mockMetrics.EXPECT().WebhookResponse(http.StatusOK)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, capturedBody,
			map[string]string{"X-Razorpay-Signature": "sig-hex"})

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("settled", body.Status)
		s.Require().NotNil(body.TicketID)
		s.Equal(ticketID, *body.TicketID)
	})

	s.Run("success: acknowledged events carry no ticket", func() {
		s.mockSettlement.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.SettlementResult{Outcome: commands.OutcomeIgnored, EventType: "payment.failed"}, nil)
		s.mockMetrics.EXPECT().WebhookResponse(http.StatusOK)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, []byte(`{}`),
			map[string]string{"X-Razorpay-Signature": "sig"})

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("ignored", body.Status)
		s.Nil(body.TicketID)
	})

	s.Run("error: failures map to the status the provider sees", func() {
		testCases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "bad signature", err: commands.ErrBadSignature, expectCode: http.StatusUnauthorized},
			{name: "missing signature", err: commands.ErrMissingSignature, expectCode: http.StatusBadRequest},
			{name: "malformed payload", err: errs.Mark(errors.New("notes: missing eventId"), commands.ErrMalformedPayload), expectCode: http.StatusBadRequest},
			{name: "expired offer", err: commands.ErrOfferExpired, expectCode: http.StatusBadRequest},
			{name: "user mismatch", err: commands.ErrUserMismatch, expectCode: http.StatusBadRequest},
			{name: "secret not configured", err: commands.ErrWebhookNotConfigured, expectCode: http.StatusInternalServerError},
			{name: "provider down", err: errs.Wrap(shared.ErrProviderUnavailable, "fetch"), expectCode: http.StatusBadGateway},
			{name: "database failure", err: errs.Wrap(errs.ErrDatabaseOperationFailed, "insert ticket"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockSettlement.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				s.mockMetrics.EXPECT().WebhookResponse(tc.expectCode)

				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, capturedBody,
					map[string]string{"X-Razorpay-Signature": "sig"})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, http.StatusText(tc.expectCode))
			})
		}
	})

	s.Run("error: oversized body is rejected before settlement", func() {
		s.mockSettlement.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.mockMetrics.EXPECT().WebhookResponse(http.StatusBadRequest)

		huge := bytes.Repeat([]byte("a"), 1<<20+1)
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, huge,
			map[string]string{"X-Razorpay-Signature": "sig"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("success: request context is forwarded", func() {
		s.mockSettlement.EXPECT().HandlePaymentEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ []byte, _ string) (*commands.SettlementResult, error) {
				s.NoError(ctx.Err())
				return &commands.SettlementResult{Outcome: commands.OutcomeAlreadySettled}, nil
			})
		s.mockMetrics.EXPECT().WebhookResponse(http.StatusOK)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, webhookURL, capturedBody,
			map[string]string{"X-Razorpay-Signature": "sig"})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
