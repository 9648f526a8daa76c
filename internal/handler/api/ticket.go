package api

import (
	"net/http"

	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	q queries.TicketQueries
}

func NewTicketHandler(q queries.TicketQueries) *TicketHandler {
	return &TicketHandler{q: q}
}

// @Summary List my tickets
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TicketResponse
// @Failure 401 {object} httperr.Response
// @Router /api/tickets [get]
func (h *TicketHandler) ListMine(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	tickets, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromTicketViews(tickets)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
