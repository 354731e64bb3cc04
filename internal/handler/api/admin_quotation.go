package api

import (
	"net/http"

	"gin-jewelry-b2b/internal/domain/quotation"
	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminQuotationHandler serves the admin side of the quotation lifecycle, per line and per group.
type AdminQuotationHandler struct {
	cmds commands.QuotationCommands
	q    queries.QuotationQueries
}

func NewAdminQuotationHandler(cmds commands.QuotationCommands, q queries.QuotationQueries) *AdminQuotationHandler {
	return &AdminQuotationHandler{cmds: cmds, q: q}
}

// @Summary Reject quotation
// @Tags admin-quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Param request body reqdto.TransitionRequest false "Optional comment"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/quotations/{id}/reject [post]
func (h *AdminQuotationHandler) Reject(c *gin.Context) {
	h.transition(c, quotation.EventReject)
}

// @Summary Request customer confirmation
// @Description Prices the line at current rates and asks the customer to confirm. Quantity and notes may be amended
// @Tags admin-quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Param request body reqdto.TransitionRequest false "Amendments, message and discount codes"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/quotations/{id}/request-confirmation [post]
func (h *AdminQuotationHandler) RequestConfirmation(c *gin.Context) {
	h.transition(c, quotation.EventRequestConfirmation)
}

// @Summary Approve quotation
// @Description Approves a confirmed line and creates its order
// @Tags admin-quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/quotations/{id}/approve [post]
func (h *AdminQuotationHandler) Approve(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	orderID, err := h.cmds.Approve(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Approve failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load quotation")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quotation": resdto.FromQuotationView(view),
		"order_id":  orderID,
	})
}

func (h *AdminQuotationHandler) transition(c *gin.Context, event quotation.Event) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	res, err := h.cmds.Transition(c.Request.Context(), actor, id, event, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Transition failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(res))
}

// @Summary Reject quotation group
// @Description Rejects every open line of the group. Already rejected or declined lines are skipped
// @Tags admin-quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Quotation group ID"
// @Param request body reqdto.TransitionRequest false "Optional comment"
// @Success 200 {object} resdto.GroupTransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/quotation-groups/{groupId}/reject [post]
func (h *AdminQuotationHandler) RejectGroup(c *gin.Context) {
	h.transitionGroup(c, quotation.EventReject)
}

// @Summary Request confirmation for a group
// @Tags admin-quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Quotation group ID"
// @Param request body reqdto.TransitionRequest false "Message and discount codes"
// @Success 200 {object} resdto.GroupTransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /admin/quotation-groups/{groupId}/request-confirmation [post]
func (h *AdminQuotationHandler) RequestGroupConfirmation(c *gin.Context) {
	h.transitionGroup(c, quotation.EventRequestConfirmation)
}

// @Summary Approve quotation group
// @Description Approves every confirmed line of the group into a single order
// @Tags admin-quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param groupId path string true "Quotation group ID"
// @Param request body reqdto.TransitionRequest false "Optional comment"
// @Success 200 {object} resdto.GroupTransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/quotation-groups/{groupId}/approve [post]
func (h *AdminQuotationHandler) ApproveGroup(c *gin.Context) {
	h.transitionGroup(c, quotation.EventApprove)
}

func (h *AdminQuotationHandler) transitionGroup(c *gin.Context, event quotation.Event) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid group id", nil)
		return
	}
	var req reqdto.TransitionRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	res, err := h.cmds.TransitionGroup(c.Request.Context(), actor, groupID, event, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Group transition failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromGroupTransitionResult(res))
}
