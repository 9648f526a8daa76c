package api

import (
	"net/http"

	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	refunds commands.RefundCommands
	q       queries.RefundQueries
}

func NewEventHandler(refunds commands.RefundCommands, q queries.RefundQueries) *EventHandler {
	return &EventHandler{refunds: refunds, q: q}
}

// @Summary Cancel event
// @Description Refund every valid ticket and cancel the event once all refunds succeeded.
// @Description A partial failure leaves the event open and returns 502 with the report; calling again retries only the failed tickets.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.RefundReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} resdto.RefundReportResponse
// @Router /api/events/{id}/cancel [post]
func (h *EventHandler) Cancel(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	actorID, role, ok := currentUser(c)
	if !ok {
		return
	}

	report, err := h.refunds.CancelEventAndRefund(c.Request.Context(), eventID, actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRefundReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	status := http.StatusOK
	if !report.Success {
		status = http.StatusBadGateway
	}
	c.JSON(status, res)
}

// @Summary List refund attempts
// @Description Audit trail of refund attempts for an event, newest first
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.RefundAttemptResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/refunds [get]
func (h *EventHandler) Refunds(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	actorID, role, ok := currentUser(c)
	if !ok {
		return
	}

	attempts, err := h.q.ListAttempts(c.Request.Context(), eventID, actorID, role)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromRefundAttempts(attempts)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
