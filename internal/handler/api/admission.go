package api

import (
	"net/http"

	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdmissionHandler struct {
	cmds commands.AdmissionCommands
	q    queries.QueueQueries
}

func NewAdmissionHandler(cmds commands.AdmissionCommands, q queries.QueueQueries) *AdmissionHandler {
	return &AdmissionHandler{cmds: cmds, q: q}
}

// @Summary Join waiting list
// @Description Queue the caller for an event. An offer is granted right away when tickets are available.
// @Tags waiting-list
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/events/{id}/waiting-list [post]
func (h *AdmissionHandler) Join(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.cmds.JoinWaitingList(c.Request.Context(), eventID, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEntry(entry))
}

// @Summary Leave waiting list
// @Description Cancel the caller's live entry. A released offer passes to the next user in line.
// @Tags waiting-list
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/waiting-list [delete]
func (h *AdmissionHandler) Leave(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	if err := h.cmds.LeaveWaitingList(c.Request.Context(), eventID, userID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Queue position
// @Description The caller's latest entry for the event and its place among waiting users
// @Tags waiting-list
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.QueuePositionResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/events/{id}/queue-position [get]
func (h *AdmissionHandler) QueuePosition(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	view, err := h.q.Position(c.Request.Context(), eventID, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromQueuePosition(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Request ticket offer
// @Description Grant the caller a time-boxed offer if inventory allows and no earlier entrant is still waiting
// @Tags waiting-list
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 201 {object} resdto.EntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/events/{id}/offers [post]
func (h *AdmissionHandler) GrantOffer(c *gin.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}

	entry, err := h.cmds.GrantOffer(c.Request.Context(), eventID, userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromEntry(entry))
}
