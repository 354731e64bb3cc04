package pricing

import (
	"fmt"

	"gin-jewelry-b2b/internal/pkg/errs"
)

var (
	ErrInvalidChargeType   = errs.New("invalid making charge type")
	ErrInvalidMakingCharge = errs.New("making charge amount and percentage must be non-negative")
	ErrNegativeInput       = errs.New("weights, carats and rates must be non-negative")
	ErrInvalidQuantity     = errs.New("quantity must be positive")
	ErrBrokenInvariant     = errs.New("price breakdown invariant violated")
)

// RateUnavailableError reports a pricing input that could not be resolved.
type RateUnavailableError struct {
	Kind string // metal, diamond, making_charge, tax_group
	Key  string
}

func (e *RateUnavailableError) Error() string {
	return fmt.Sprintf("%s rate unavailable for %s", e.Kind, e.Key)
}

func (e *RateUnavailableError) Is(target error) bool {
	return target == errs.ErrRateUnavailable
}

func MetalKey(metal, purity, tone, currency string) string {
	if tone == "" {
		return fmt.Sprintf("%s/%s/%s", metal, purity, currency)
	}
	return fmt.Sprintf("%s/%s/%s/%s", metal, purity, tone, currency)
}

func DiamondKey(typ, shape, color, clarity string) string {
	return fmt.Sprintf("%s/%s/%s/%s", typ, shape, color, clarity)
}
