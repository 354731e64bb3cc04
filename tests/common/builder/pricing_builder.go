//go:build unit || e2e

package builder

import (
	"time"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"

	"github.com/shopspring/decimal"
)

type PricingInputBuilder struct {
	ProductID      int64
	Currency       string
	Metals         []pricing.MetalLine
	Diamonds       []pricing.DiamondLine
	ChargeTypes    []pricing.ChargeType
	MakingAmount   *decimal.Decimal
	MakingPercent  *decimal.Decimal
	Discounts      []pricing.DiscountRule
	Taxes          []pricing.TaxRate
	CustomerType   user.CustomerType
	DiscountCodes  []string
	nextDiscountID int64
}

// NewPricingInputBuilder defaults to 10g of 22k gold at 6500/g, fixed making 500 and 3% tax.
func NewPricingInputBuilder() *PricingInputBuilder {
	return &PricingInputBuilder{
		ProductID: 1,
		Currency:  "INR",
		Metals: []pricing.MetalLine{{
			Component:   pricing.MetalComponent{Metal: "gold", Purity: "22k", Tone: "yellow", WeightGrams: decimal.NewFromInt(10)},
			RatePerGram: decimal.NewFromInt(6500),
		}},
		ChargeTypes:  []pricing.ChargeType{pricing.ChargeTypeFixed},
		MakingAmount: decPtr("500"),
		Taxes:        []pricing.TaxRate{{Name: "GST", Rate: decimal.NewFromInt(3), Active: true}},
		CustomerType: user.CustomerTypeRetailer,
	}
}

func (b *PricingInputBuilder) With(mutate func(*PricingInputBuilder)) *PricingInputBuilder {
	mutate(b)
	return b
}

func (b *PricingInputBuilder) WithoutMetals() *PricingInputBuilder {
	b.Metals = nil
	return b
}

func (b *PricingInputBuilder) WithMetal(metal, purity, weight, rate string) *PricingInputBuilder {
	b.Metals = append(b.Metals, pricing.MetalLine{
		Component:   pricing.MetalComponent{Metal: metal, Purity: purity, WeightGrams: decimal.RequireFromString(weight)},
		RatePerGram: decimal.RequireFromString(rate),
	})
	return b
}

func (b *PricingInputBuilder) WithDiamond(carat, rate string) *PricingInputBuilder {
	b.Diamonds = append(b.Diamonds, pricing.DiamondLine{
		Spec:         pricing.DiamondSpec{Type: "natural", Shape: "round", Color: "G", Clarity: "VS1", Carat: decimal.RequireFromString(carat)},
		RatePerCarat: decimal.RequireFromString(rate),
	})
	return b
}

func (b *PricingInputBuilder) WithFixedMaking(amount string) *PricingInputBuilder {
	b.ChargeTypes = []pricing.ChargeType{pricing.ChargeTypeFixed}
	b.MakingAmount = decPtr(amount)
	b.MakingPercent = nil
	return b
}

func (b *PricingInputBuilder) WithFixedAndPercentageMaking(amount, percent string) *PricingInputBuilder {
	b.ChargeTypes = []pricing.ChargeType{pricing.ChargeTypeFixed, pricing.ChargeTypePercentage}
	b.MakingAmount = decPtr(amount)
	b.MakingPercent = decPtr(percent)
	return b
}

func (b *PricingInputBuilder) WithPercentageMaking(percent string) *PricingInputBuilder {
	b.ChargeTypes = []pricing.ChargeType{pricing.ChargeTypePercentage}
	b.MakingAmount = nil
	b.MakingPercent = decPtr(percent)
	return b
}

func (b *PricingInputBuilder) WithoutMaking() *PricingInputBuilder {
	b.ChargeTypes = nil
	b.MakingAmount = nil
	b.MakingPercent = nil
	return b
}

func (b *PricingInputBuilder) WithTaxes(taxes ...pricing.TaxRate) *PricingInputBuilder {
	b.Taxes = taxes
	return b
}

func (b *PricingInputBuilder) WithCustomerType(ct user.CustomerType) *PricingInputBuilder {
	b.CustomerType = ct
	return b
}

func (b *PricingInputBuilder) WithDiscountCodes(codes ...string) *PricingInputBuilder {
	b.DiscountCodes = codes
	return b
}

// WithDiscount appends a rule for the given customer types; createdAt offsets order ties.
func (b *PricingInputBuilder) WithDiscount(kind pricing.DiscountKind, value string, createdAt time.Time, types ...user.CustomerType) *PricingInputBuilder {
	b.nextDiscountID++
	if len(types) == 0 {
		types = []user.CustomerType{user.CustomerTypeRetailer, user.CustomerTypeWholesaler}
	}
	b.Discounts = append(b.Discounts, pricing.DiscountRule{
		ID:            b.nextDiscountID,
		Name:          "rule",
		Kind:          kind,
		Value:         decimal.RequireFromString(value),
		CustomerTypes: types,
		CreatedAt:     createdAt,
	})
	return b
}

func (b *PricingInputBuilder) WithDiscountRule(rule pricing.DiscountRule) *PricingInputBuilder {
	b.Discounts = append(b.Discounts, rule)
	return b
}

func (b *PricingInputBuilder) BuildPolicy() (pricing.MakingChargePolicy, error) {
	return pricing.NewMakingChargePolicy(b.ChargeTypes, b.MakingAmount, b.MakingPercent)
}

func (b *PricingInputBuilder) BuildInput() (pricing.Input, error) {
	policy, err := b.BuildPolicy()
	if err != nil {
		return pricing.Input{}, err
	}
	return pricing.Input{
		ProductID:     b.ProductID,
		Currency:      b.Currency,
		Metals:        b.Metals,
		Diamonds:      b.Diamonds,
		Policy:        policy,
		Discounts:     b.Discounts,
		Taxes:         b.Taxes,
		CustomerType:  b.CustomerType,
		DiscountCodes: b.DiscountCodes,
	}, nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
