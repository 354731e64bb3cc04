package quotation

import (
	"fmt"
	"strings"

	"gin-jewelry-b2b/internal/pkg/errs"
)

var (
	ErrUnknownEvent    = errs.New("unknown quotation event")
	ErrInvalidQuantity = errs.New("quantity must be between 1 and 10000")
	ErrNotesTooLong    = errs.New("notes exceed maximum length")
	ErrEmptyMessage    = errs.New("message cannot be empty")
	ErrMessageTooLong  = errs.New("message exceeds maximum length")
	ErrProductInactive = errs.New("product is not active")
)

// IllegalTransitionError carries what a client needs to explain the refusal.
type IllegalTransitionError struct {
	QuotationID int64
	Event       Event
	Current     Status
	Required    []Status
}

func (e *IllegalTransitionError) Error() string {
	required := make([]string, len(e.Required))
	for i, s := range e.Required {
		required[i] = string(s)
	}
	return fmt.Sprintf("cannot %s quotation %d in status %s (requires %s)",
		e.Event, e.QuotationID, e.Current, strings.Join(required, " or "))
}

func (e *IllegalTransitionError) Is(target error) bool {
	return target == errs.ErrIllegalTransition
}
