package api

import (
	"io"
	"log/slog"
	"net/http"

	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	signatureHeader = "X-Razorpay-Signature"
	// Provider payloads are a few KB; anything near this is not a real webhook.
	maxWebhookBodyBytes = 1 << 20
)

type WebhookHandler struct {
	settlement commands.SettlementCommands
	metrics    shared.Metrics
	logger     *slog.Logger
}

func NewWebhookHandler(settlement commands.SettlementCommands, metrics shared.Metrics, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		settlement: settlement,
		metrics:    metrics,
		logger:     logger,
	}
}

// @Summary Payment provider webhook
// @Description Verifies X-Razorpay-Signature over the raw body and settles captured payments.
// @Description 200 settled or ignored, 400 malformed, 401 bad signature, 500 misconfigured, 502 provider failure.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Razorpay-Signature header string true "hex HMAC-SHA256 of the raw body"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /webhooks/razorpay [post]
func (h *WebhookHandler) Razorpay(c *gin.Context) {
	// The signature covers the exact bytes received, so the body is never re-encoded.
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		h.reject(c, http.StatusBadRequest, err)
		return
	}

	result, err := h.settlement.HandlePaymentEvent(c.Request.Context(), body, c.GetHeader(signatureHeader))
	if err != nil {
		h.reject(c, webhookStatus(err), err)
		return
	}

	h.metrics.WebhookResponse(http.StatusOK)
	c.JSON(http.StatusOK, resdto.FromSettlementResult(result))
}

func (h *WebhookHandler) reject(c *gin.Context, status int, err error) {
	h.metrics.WebhookResponse(status)

	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	h.logger.Log(c.Request.Context(), level, "payment webhook rejected",
		"status", status,
		"kind", commands.FailureKind(err).String(),
		"error", err)

	httperr.AbortWithError(c, status, err, http.StatusText(status), nil)
}
