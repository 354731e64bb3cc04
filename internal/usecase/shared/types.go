package shared

import (
	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/pricing"
)

// CatalogItemSnapshot is a product merged with its optional variant.
// Variant metals, diamonds and stock take precedence over the product's.
type CatalogItemSnapshot struct {
	ProductID  int64
	VariantID  *int64
	Name       string
	SKU        string
	Active     bool
	TaxGroupID *int64
	Metals     []pricing.MetalComponent
	Diamonds   []pricing.DiamondSpec
	Stock      inventory.Stock
}

// StockKey identifies the stock line: the variant when present, else the product.
func (s *CatalogItemSnapshot) StockKey() int64 {
	if s.VariantID != nil {
		return *s.VariantID
	}
	return s.ProductID
}

type CartItemSnapshot struct {
	ID        int64
	ProductID int64
	VariantID *int64
	Quantity  int
	Notes     string
}
