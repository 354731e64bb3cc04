//go:build unit

package memuow

import (
	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

const (
	RingProductID  int64 = 1
	RingVariantID  int64 = 11
	BandProductID  int64 = 2
	TaxGroupGST    int64 = 1
	InactiveItemID int64 = 9
	Currency             = "INR"
)

// SeedCatalog stores a priced solitaire ring variant with 10 in stock and an untracked gold
// band. A ring unit prices at 67465.00: 10g of 22k gold at 6500, fixed making 500, 3% GST.
func (s *Store) SeedCatalog() {
	gst := TaxGroupGST
	variantID := RingVariantID
	gold := pricing.MetalComponent{Metal: "gold", Purity: "22k", Tone: "yellow", WeightGrams: decimal.NewFromInt(10)}

	s.PutCatalogItem(shared.CatalogItemSnapshot{
		ProductID:  RingProductID,
		VariantID:  &variantID,
		Name:       "Solitaire Ring",
		SKU:        "RING-001-Y",
		Active:     true,
		TaxGroupID: &gst,
		Metals:     []pricing.MetalComponent{gold},
		Stock:      inventory.Tracked(10),
	})
	s.PutCatalogItem(shared.CatalogItemSnapshot{
		ProductID:  BandProductID,
		Name:       "Plain Band",
		SKU:        "BAND-002",
		Active:     true,
		TaxGroupID: &gst,
		Metals:     []pricing.MetalComponent{gold},
		Stock:      inventory.Untracked(),
	})
	s.PutCatalogItem(shared.CatalogItemSnapshot{
		ProductID: InactiveItemID,
		Name:      "Retired Pendant",
		SKU:       "PEND-009",
		Metals:    []pricing.MetalComponent{gold},
	})

	s.PutMetalRate("gold", "22k", "yellow", Currency, decimal.NewFromInt(6500))
	fixed := decimal.NewFromInt(500)
	for _, id := range []int64{RingProductID, BandProductID, InactiveItemID} {
		policy, err := pricing.NewMakingChargePolicy([]pricing.ChargeType{pricing.ChargeTypeFixed}, &fixed, nil)
		if err != nil {
			panic(err)
		}
		s.PutPolicy(id, policy)
	}
	s.PutTaxes(TaxGroupGST, pricing.TaxRate{Name: "GST", Rate: decimal.NewFromInt(3), Active: true})
}
