package order

import (
	"fmt"

	"gin-jewelry-b2b/internal/pkg/errs"
)

var (
	ErrInvalidStatusCode    = errs.New("status code must be 2-50 lowercase letters, digits or underscores")
	ErrInvalidStatusName    = errs.New("status name must be 1-100 characters")
	ErrNoLines              = errs.New("order needs at least one line")
	ErrMixedCustomers       = errs.New("order lines belong to different customers")
	ErrMissingPriceSnapshot = errs.New("quotation has no price snapshot")

	ErrBuiltinStatus error = conflictError("built-in statuses cannot be deleted")
	ErrDefaultStatus error = conflictError("the default status cannot be deleted")
	ErrStatusInUse   error = conflictError("status is referenced by orders")
)

type conflictError string

func (e conflictError) Error() string { return string(e) }

func (e conflictError) Is(target error) bool {
	return target == errs.ErrConflict
}

// IllegalStatusError is returned when an order cannot move from From to To.
type IllegalStatusError struct {
	OrderID int64
	From    Code
	To      Code
	Reason  string
}

func (e *IllegalStatusError) Error() string {
	msg := fmt.Sprintf("order %d cannot move from %s to %s", e.OrderID, e.From, e.To)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *IllegalStatusError) Is(target error) bool {
	return target == errs.ErrIllegalStatus
}

var ErrDefaultRequired error = conflictError("a default status is required, mark another status as default instead")
