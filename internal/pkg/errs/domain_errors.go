package errs

import "errors"

// Error taxonomy shared by the pricing engine and the quotation/order lifecycle.
// Detailed error types elsewhere implement Is against these sentinels.
var (
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrOutOfStock        = errors.New("out of stock")
	ErrRateUnavailable   = errors.New("rate unavailable")
	ErrConflict          = errors.New("conflict")
	ErrIllegalStatus     = errors.New("illegal order status")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// classified ties a detailed error to one taxonomy sentinel without losing it.
type classified struct {
	kind error
	err  error
}

func (e *classified) Error() string        { return e.err.Error() }
func (e *classified) Unwrap() error        { return e.err }
func (e *classified) Is(target error) bool { return target == e.kind }

// Classify makes err match kind under errors.Is while still matching its own chain.
func Classify(err, kind error) error {
	if err == nil {
		return nil
	}
	return &classified{kind: kind, err: err}
}

func Validation(err error) error {
	return Classify(err, ErrValidation)
}
