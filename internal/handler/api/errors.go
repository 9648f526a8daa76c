package api

import (
	"net/http"

	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/pkg/errs"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"
	"ticket-marketplace/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	err     error
	status  int
	message string
}

// userFacingErrors is matched in order; the first entry whose sentinel is in the chain wins.
var userFacingErrors = []errorResponse{
	{commands.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{queries.ErrEventNotFound, http.StatusNotFound, "Event not found"},
	{commands.ErrEventCancelled, http.StatusConflict, "This event has been cancelled"},
	{commands.ErrNotEventOwner, http.StatusForbidden, "Only the event owner can do this"},
	{queries.ErrEventAccess, http.StatusForbidden, "Only the event owner can do this"},
	{commands.ErrAlreadyInQueue, http.StatusConflict, "You are already in the waiting list"},
	{commands.ErrNotInQueue, http.StatusNotFound, "You are not in the waiting list"},
	{queries.ErrQueueEntryNotFound, http.StatusNotFound, "You are not in the waiting list"},
	{commands.ErrAlreadyOffered, http.StatusConflict, "You already hold a ticket offer"},
	{commands.ErrSoldOut, http.StatusConflict, "Sorry, no tickets are available right now"},
	{commands.ErrQueueAhead, http.StatusConflict, "Others are ahead of you in the waiting list, you will be offered a ticket in turn"},
	{commands.ErrConcurrentUpdate, http.StatusConflict, "Your request conflicted with another update, please retry"},
	{commands.ErrNoValidOffer, http.StatusConflict, "You do not have a valid ticket offer"},
	{commands.ErrSellerNotOnboarded, http.StatusConflict, "The seller is not ready to accept payments"},
	{commands.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{queries.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{commands.ErrInvalidProfile, http.StatusBadRequest, "Invalid profile data"},
	{commands.ErrNotSeller, http.StatusForbidden, "Only sellers can do this"},
	{queries.ErrNotSeller, http.StatusForbidden, "Only sellers can do this"},
	{shared.ErrProviderUnavailable, http.StatusServiceUnavailable, "Payment provider is unavailable, please retry"},
	{shared.ErrProviderRejected, http.StatusBadGateway, "Payment provider rejected the request"},
}

func abortWithUseCaseError(c *gin.Context, err error) {
	for _, e := range userFacingErrors {
		if errs.Is(err, e.err) {
			httperr.AbortWithError(c, e.status, err, e.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

// webhookStatus maps a settlement failure to the status the provider sees.
// Anything other than 2xx makes the provider redeliver.
func webhookStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	switch commands.FailureKind(err) {
	case errs.KindAuthentication:
		return http.StatusUnauthorized
	case errs.KindValidation:
		return http.StatusBadRequest
	case errs.KindUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
