package httperr

import (
	"errors"
	"net/http"

	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

var ErrUnauthorized = errors.New("unauthorized")

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort answers with the status the error kind maps to. fallback is used for 500s only.
func Abort(c *gin.Context, err error, fallback string) {
	status := StatusFor(err)
	msg := fallback
	if status != http.StatusInternalServerError {
		msg = err.Error()
	}
	AbortWithError(c, status, err, msg, DetailFor(err))
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrIllegalTransition),
		errors.Is(err, errs.ErrIllegalStatus),
		errors.Is(err, errs.ErrOutOfStock),
		errors.Is(err, errs.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrRateUnavailable):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// DetailFor extracts the structured part of the detailed error types, if any.
func DetailFor(err error) any {
	var it *quotation.IllegalTransitionError
	if errors.As(err, &it) {
		return gin.H{
			"quotation_id": it.QuotationID,
			"event":        it.Event,
			"current":      it.Current,
			"required":     it.Required,
		}
	}
	var is *order.IllegalStatusError
	if errors.As(err, &is) {
		return gin.H{"order_id": is.OrderID, "from": is.From, "to": is.To}
	}
	var oos *inventory.OutOfStockError
	if errors.As(err, &oos) {
		return gin.H{"variant_id": oos.VariantID, "requested": oos.Requested, "available": oos.Available}
	}
	var ru *pricing.RateUnavailableError
	if errors.As(err, &ru) {
		return gin.H{"kind": ru.Kind, "key": ru.Key}
	}
	return nil
}
