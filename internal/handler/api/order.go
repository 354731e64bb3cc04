package api

import (
	"net/http"

	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load order")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Order history
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/history [get]
func (h *OrderHandler) History(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	items, err := h.q.History(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load history")
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": resdto.FromHistoryList(items)})
}

// @Summary Cancel order
// @Description Customers may cancel their own order while it is pending payment or pending
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Optional reason"
// @Success 200 {object} resdto.HistoryEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelOrderRequest
	if !bindOptionalJSON(c, &req) {
		return
	}
	entry, err := h.cmds.Cancel(c.Request.Context(), actor, id, req.Reason)
	if err != nil {
		httperr.Abort(c, err, "Cancel failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryEntry(entry))
}

// @Summary Transition order status
// @Description Admins, and system collaborators such as payment capture, move an order to any defined status except back to the initial one
// @Tags admin-orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body reqdto.TransitionOrderStatusRequest true "Target status"
// @Success 200 {object} resdto.HistoryEntryResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/orders/{id}/status [post]
// @Router /system/orders/{id}/status [post]
func (h *OrderHandler) TransitionStatus(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.TransitionOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entry, err := h.cmds.TransitionStatus(c.Request.Context(), actor, id, req.Status, req.Meta())
	if err != nil {
		httperr.Abort(c, err, "Status change failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromHistoryEntry(entry))
}
