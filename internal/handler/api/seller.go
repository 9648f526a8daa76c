package api

import (
	"net/http"

	reqdto "ticket-marketplace/internal/handler/dto/request"
	resdto "ticket-marketplace/internal/handler/dto/response"
	"ticket-marketplace/internal/handler/httperr"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SellerHandler struct {
	cmds commands.SellerCommands
	q    queries.SellerQueries
}

func NewSellerHandler(cmds commands.SellerCommands, q queries.SellerQueries) *SellerHandler {
	return &SellerHandler{cmds: cmds, q: q}
}

// @Summary Ensure provider contact
// @Description Create the caller's payment provider contact on first use; later calls return the same id
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SellerContactRequest true "Contact details"
// @Success 200 {object} resdto.SellerContactResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/sellers/contact [post]
func (h *SellerHandler) EnsureContact(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.SellerContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	contactID, err := h.cmds.EnsureContact(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.SellerContactResponse{ContactID: contactID})
}

// @Summary Link payout account
// @Description Store the seller's payment sub-account once provider onboarding completes
// @Tags sellers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.LinkAccountRequest true "Sub-account"
// @Success 200 {object} resdto.SellerAccountResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sellers/account [put]
func (h *SellerHandler) LinkAccount(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	var req reqdto.LinkAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.LinkAccount(c.Request.Context(), userID, req.AccountID); err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	h.writeAccount(c, userID)
}

// @Summary Seller account
// @Description Payout account status and provider dashboard links
// @Tags sellers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SellerAccountResponse
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/sellers/account [get]
func (h *SellerHandler) Account(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		return
	}
	h.writeAccount(c, userID)
}

func (h *SellerHandler) writeAccount(c *gin.Context, userID uuid.UUID) {
	view, err := h.q.Account(c.Request.Context(), userID)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromSellerAccount(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
