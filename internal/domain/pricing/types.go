package pricing

import (
	"time"

	"gin-jewelry-b2b/internal/domain/user"

	"github.com/shopspring/decimal"
)

type ChargeType string

const (
	ChargeTypeFixed      ChargeType = "fixed"
	ChargeTypePercentage ChargeType = "percentage"
)

func (t ChargeType) IsValid() bool {
	switch t {
	case ChargeTypeFixed, ChargeTypePercentage:
		return true
	default:
		return false
	}
}

// MakingChargePolicy is a product's labor charge. Fixed and percentage parts stack additively.
type MakingChargePolicy struct {
	types      []ChargeType
	amount     decimal.Decimal
	percentage decimal.Decimal
}

func NewMakingChargePolicy(types []ChargeType, amount, percentage *decimal.Decimal) (MakingChargePolicy, error) {
	p := MakingChargePolicy{}
	for _, t := range types {
		if !t.IsValid() {
			return MakingChargePolicy{}, ErrInvalidChargeType
		}
		if p.Has(t) {
			continue
		}
		switch t {
		case ChargeTypeFixed:
			if amount == nil || amount.IsNegative() {
				return MakingChargePolicy{}, ErrInvalidMakingCharge
			}
			p.amount = *amount
		case ChargeTypePercentage:
			if percentage == nil || percentage.IsNegative() {
				return MakingChargePolicy{}, ErrInvalidMakingCharge
			}
			p.percentage = *percentage
		}
		p.types = append(p.types, t)
	}
	return p, nil
}

func (p MakingChargePolicy) Has(t ChargeType) bool {
	for _, have := range p.types {
		if have == t {
			return true
		}
	}
	return false
}

func (p MakingChargePolicy) Types() []ChargeType        { return p.types }
func (p MakingChargePolicy) Amount() decimal.Decimal     { return p.amount }
func (p MakingChargePolicy) Percentage() decimal.Decimal { return p.percentage }

type MetalComponent struct {
	Metal       string          `json:"metal"`
	Purity      string          `json:"purity"`
	Tone        string          `json:"tone,omitempty"`
	WeightGrams decimal.Decimal `json:"weight_grams"`
}

type DiamondSpec struct {
	Type    string          `json:"type"`
	Shape   string          `json:"shape"`
	Color   string          `json:"color"`
	Clarity string          `json:"clarity"`
	Carat   decimal.Decimal `json:"carat"`
}

// MetalLine is a metal component with its resolved per-gram rate.
type MetalLine struct {
	Component   MetalComponent
	RatePerGram decimal.Decimal
}

type DiamondLine struct {
	Spec         DiamondSpec
	RatePerCarat decimal.Decimal
}

type DiscountKind string

const (
	DiscountKindFixed      DiscountKind = "fixed"
	DiscountKindPercentage DiscountKind = "percentage"
)

// DiscountRule discounts the making charge only.
type DiscountRule struct {
	ID            int64
	Name          string
	Code          string // rules with a code apply only when the code is requested
	Kind          DiscountKind
	Value         decimal.Decimal
	CustomerTypes []user.CustomerType
	ProductIDs    []int64 // empty means every product
	CreatedAt     time.Time
}

type TaxRate struct {
	Name   string
	Rate   decimal.Decimal // percent
	Active bool
}

type Input struct {
	ProductID     int64
	Currency      string
	Metals        []MetalLine
	Diamonds      []DiamondLine
	Policy        MakingChargePolicy
	Discounts     []DiscountRule
	Taxes         []TaxRate
	CustomerType  user.CustomerType
	DiscountCodes []string
}
