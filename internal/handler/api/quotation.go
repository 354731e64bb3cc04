package api

import (
	"net/http"
	"strconv"

	"gin-jewelry-b2b/internal/domain/quotation"
	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/usecase/commands"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuotationHandler struct {
	cmds commands.QuotationCommands
	q    queries.QuotationQueries
}

func NewQuotationHandler(cmds commands.QuotationCommands, q queries.QuotationQueries) *QuotationHandler {
	return &QuotationHandler{cmds: cmds, q: q}
}

// @Summary Create quotation
// @Description Request a quotation for one product line
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateQuotationRequest true "Create quotation request"
// @Success 201 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations [post]
func (h *QuotationHandler) Create(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	q, err := h.cmds.Create(c.Request.Context(), actor, req.ToCommand())
	if err != nil {
		httperr.Abort(c, err, "Create quotation failed")
		return
	}
	c.Header("Location", "/api/quotations/"+strconv.FormatInt(q.ID(), 10))
	c.JSON(http.StatusCreated, resdto.FromQuotation(q))
}

// @Summary Convert cart
// @Description Turn every cart item into a quotation sharing one group id
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /quotations/from-cart [post]
func (h *QuotationHandler) CreateFromCart(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	qs, err := h.cmds.CreateFromCart(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err, "Cart conversion failed")
		return
	}
	resp := gin.H{"quotations": resdto.FromQuotations(qs)}
	if len(qs) > 0 && qs[0].GroupID() != nil {
		resp["quotation_group_id"] = qs[0].GroupID().String()
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary List quotations
// @Description Customers see their own quotations, admins see all. Newest first with keyset pagination
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /quotations [get]
func (h *QuotationHandler) List(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var filters queries.QuotationFilters
	if s := c.Query("status"); s != "" {
		if !quotation.Status(s).IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errUnknownStatus, "Invalid status", nil)
			return
		}
		filters.Status = &s
	}
	cursor, limit := pageParams(c)
	items, next, err := h.q.List(c.Request.Context(), actor, filters, cursor, limit)
	if err != nil {
		httperr.Abort(c, err, "Internal error")
		return
	}
	resp := gin.H{"quotations": resdto.FromQuotationList(items)}
	if next != nil {
		resp["next_cursor"] = next.After
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get quotation
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Success 200 {object} resdto.QuotationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [get]
func (h *QuotationHandler) Get(c *gin.Context) {
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
		httperr.Abort(c, err, "Failed to load quotation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuotationView(view))
}

// @Summary Delete quotation
// @Description Owners may delete a quotation while it is still pending
// @Tags quotations
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err, "Delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm quotation
// @Description Customer accepts the price attached by request-confirmation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Param request body reqdto.TransitionRequest false "Optional comment"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/confirm [post]
func (h *QuotationHandler) Confirm(c *gin.Context) {
	h.transition(c, quotation.EventConfirm)
}

// @Summary Decline quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Param request body reqdto.TransitionRequest false "Optional comment"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/decline [post]
func (h *QuotationHandler) Decline(c *gin.Context) {
	h.transition(c, quotation.EventDecline)
}

func (h *QuotationHandler) transition(c *gin.Context, event quotation.Event) {
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

// @Summary Quotation messages
// @Description Discussion thread of a quotation, oldest first
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/messages [get]
func (h *QuotationHandler) Messages(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	items, err := h.q.Messages(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err, "Failed to load messages")
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": resdto.FromMessageList(items)})
}

// @Summary Post quotation message
// @Tags quotations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Param request body reqdto.PostMessageRequest true "Message"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/messages [post]
func (h *QuotationHandler) PostMessage(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}
	var req reqdto.PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	m, err := h.cmds.PostMessage(c.Request.Context(), actor, id, req.Body)
	if err != nil {
		httperr.Abort(c, err, "Post message failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMessage(m))
}

// @Summary Quotation history
// @Description Status ledger of a quotation, oldest first
// @Tags quotations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Quotation ID"
// @Success 200 {object} map[string]any
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /quotations/{id}/history [get]
func (h *QuotationHandler) History(c *gin.Context) {
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
