package inventory

import (
	"fmt"

	"gin-jewelry-b2b/internal/pkg/errs"
)

// Stock is the advisory availability of a variant. Nothing is reserved.
type Stock struct {
	Tracked   bool
	Available int
}

func Untracked() Stock {
	return Stock{}
}

func Tracked(available int) Stock {
	return Stock{Tracked: true, Available: available}
}

type OutOfStockError struct {
	VariantID int64
	Requested int
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("variant %d: requested %d, available %d", e.VariantID, e.Requested, e.Available)
}

func (e *OutOfStockError) Is(target error) bool {
	return target == errs.ErrOutOfStock
}

// Check validates requested quantity against stock. Untracked variants always pass.
func Check(variantID int64, requested int, stock Stock) error {
	if !stock.Tracked {
		return nil
	}
	if requested > stock.Available {
		available := max(stock.Available, 0)
		return &OutOfStockError{VariantID: variantID, Requested: requested, Available: available}
	}
	return nil
}
