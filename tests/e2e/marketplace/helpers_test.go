//go:build e2e

package marketplace

import (
	"encoding/json"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"
	"time"

	"ticket-marketplace/internal/domain/user"
	"ticket-marketplace/internal/pkg/signature"
	"ticket-marketplace/tests/common/authtest"
	"ticket-marketplace/tests/common/httptest"
	"ticket-marketplace/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type marketplaceSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *marketplaceSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *marketplaceSuite) token(userID uuid.UUID, role user.Role) string {
	return s.jwt.GenerateToken(s.T(), userID, role)
}

func (s *marketplaceSuite) do(method, path, token string, body any) *stdhttptest.ResponseRecorder {
	return httptest.PerformRequest(s.T(), s.Router, method, path, body, token)
}

func eventPath(eventID uuid.UUID, suffix string) string {
	return "/api/events/" + eventID.String() + suffix
}

// capturedPayment builds a payment.captured delivery carrying the order notes, signed with the webhook secret.
func capturedPayment(t *testing.T, secret, paymentID, orderID string, amount int64, notes any, paidAt time.Time) ([]byte, string) {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"entity":     "event",
		"event":      "payment.captured",
		"created_at": paidAt.Unix(),
		"payload": map[string]any{
			"payment": map[string]any{
				"entity": map[string]any{
					"id":         paymentID,
					"order_id":   orderID,
					"amount":     amount,
					"currency":   "INR",
					"status":     "captured",
					"notes":      notes,
					"created_at": paidAt.Unix(),
				},
			},
		},
	})
	require.NoError(t, err)
	return body, signature.Sign([]byte(secret), body)
}

func (s *marketplaceSuite) deliver(body []byte, sig string) *stdhttptest.ResponseRecorder {
	return httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/webhooks/razorpay", body,
		map[string]string{"X-Razorpay-Signature": sig})
}
