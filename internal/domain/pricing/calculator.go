package pricing

import "github.com/shopspring/decimal"

type Calculator interface {
	Calculate(in Input) (Breakdown, error)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (c *DefaultCalculator) Calculate(in Input) (Breakdown, error) {
	metal := decimal.Zero
	for _, m := range in.Metals {
		if m.Component.WeightGrams.IsNegative() || m.RatePerGram.IsNegative() {
			return Breakdown{}, ErrNegativeInput
		}
		metal = metal.Add(m.Component.WeightGrams.Mul(m.RatePerGram))
	}
	metal = round(metal)

	diamond := decimal.Zero
	for _, d := range in.Diamonds {
		if d.Spec.Carat.IsNegative() || d.RatePerCarat.IsNegative() {
			return Breakdown{}, ErrNegativeInput
		}
		diamond = diamond.Add(d.Spec.Carat.Mul(d.RatePerCarat))
	}
	diamond = round(diamond)

	making := MakingCharge(in.Policy, metal.Add(diamond))
	subtotal := metal.Add(diamond).Add(making)

	rule, discount := SelectDiscount(in.Discounts, making, in.ProductID, in.CustomerType, in.DiscountCodes)

	taxRate := EffectiveTaxRate(in.Taxes)
	tax := round(subtotal.Sub(discount).Mul(taxRate).Div(hundred))

	b := Breakdown{
		Currency: in.Currency,
		Metal:    metal,
		Diamond:  diamond,
		Making:   making,
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Total:    subtotal.Sub(discount).Add(tax),
	}
	if rule != nil {
		id := rule.ID
		b.DiscountRuleID = &id
	}
	if err := b.Validate(); err != nil {
		return Breakdown{}, err
	}
	return b, nil
}

// MakingCharge adds the fixed amount and the percentage of material cost when both apply.
func MakingCharge(p MakingChargePolicy, material decimal.Decimal) decimal.Decimal {
	making := decimal.Zero
	if p.Has(ChargeTypeFixed) {
		making = making.Add(p.Amount())
	}
	if p.Has(ChargeTypePercentage) {
		making = making.Add(material.Mul(p.Percentage()).Div(hundred))
	}
	return round(making)
}

func EffectiveTaxRate(taxes []TaxRate) decimal.Decimal {
	rate := decimal.Zero
	for _, t := range taxes {
		if t.Active {
			rate = rate.Add(t.Rate)
		}
	}
	return rate
}
