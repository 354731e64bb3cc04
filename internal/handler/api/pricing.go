package api

import (
	"net/http"

	reqdto "gin-jewelry-b2b/internal/handler/dto/request"
	resdto "gin-jewelry-b2b/internal/handler/dto/response"
	"gin-jewelry-b2b/internal/handler/httperr"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote a price
// @Description Computes the per-unit breakdown at current rates, plus the line total when quantity is given
// @Tags pricing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ComputePriceRequest true "Price request"
// @Success 200 {object} resdto.PriceQuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req reqdto.ComputePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	quote, err := h.q.ComputePrice(c.Request.Context(), actor, req.ToQuery())
	if err != nil {
		httperr.Abort(c, err, "Pricing failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromPriceQuote(quote))
}
