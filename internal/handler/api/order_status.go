package api

import (
	"net/http"
	"strconv"

	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OrderStatusHandler struct {
	cmds commands.OrderStatusCommands
	q    queries.OrderQueries
}

func NewOrderStatusHandler(cmds commands.OrderStatusCommands, q queries.OrderQueries) *OrderStatusHandler {
	return &OrderStatusHandler{cmds: cmds, q: q}
}

// @Summary List order statuses
// @Tags admin-order-statuses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/order-statuses [get]
func (h *OrderStatusHandler) List(c *gin.Context) {
	items, err := h.q.ListStatuses(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order_statuses": resdto.FromOrderStatusList(items)})
}

// @Summary Create order status
// @Tags admin-order-statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateOrderStatusRequest true "New status"
// @Success 201 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/order-statuses [post]
func (h *OrderStatusHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	s, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create status failed")
		return
	}
	c.Header("Location", "/api/admin/order-statuses/"+strconv.FormatInt(s.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromOrderStatus(s))
}

// @Summary Update order status
// @Description Partial update. Setting is_default moves the default flag to this status
// @Tags admin-order-statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Status ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Changes"
// @Success 200 {object} resdto.OrderStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/order-statuses/{id} [patch]
func (h *OrderStatusHandler) Update(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	s, err := h.cmds.Update(c.Request.Context(), actor, id, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Update status failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderStatus(s))
}

// @Summary Delete order statuses
// @Description All-or-nothing. Built-in, default and in-use statuses cannot be deleted
// @Tags admin-order-statuses
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.DeleteOrderStatusesRequest true "Status IDs"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /admin/order-statuses [delete]
func (h *OrderStatusHandler) DeleteMany(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.DeleteOrderStatusesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.DeleteMany(c.Request.Context(), actor, req.IDs); err != nil {
		httperr.Abort(c, err, "Delete statuses failed")
		return
	}
	c.Status(http.StatusNoContent)
}
