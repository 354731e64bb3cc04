package pricing

import "github.com/shopspring/decimal"

const scale = 2

var hundred = decimal.NewFromInt(100)

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(scale)
}

// Breakdown is a per-unit price unless produced by Times.
// Every component is rounded on its own; Total is the sum of rounded parts.
type Breakdown struct {
	Currency       string          `json:"currency"`
	Metal          decimal.Decimal `json:"metal"`
	Diamond        decimal.Decimal `json:"diamond"`
	Making         decimal.Decimal `json:"making"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
	DiscountRuleID *int64          `json:"discount_rule_id,omitempty"`
}

// LineTotal is Times with a positive-quantity check.
func (b Breakdown) LineTotal(qty int) (Breakdown, error) {
	if qty <= 0 {
		return Breakdown{}, ErrInvalidQuantity
	}
	return b.Times(qty), nil
}

// Times scales every component by qty. Components are already at two decimals so the
// products are exact and the additive identity still holds.
func (b Breakdown) Times(qty int) Breakdown {
	q := decimal.NewFromInt(int64(qty))
	return Breakdown{
		Currency:       b.Currency,
		Metal:          b.Metal.Mul(q),
		Diamond:        b.Diamond.Mul(q),
		Making:         b.Making.Mul(q),
		Subtotal:       b.Subtotal.Mul(q),
		Discount:       b.Discount.Mul(q),
		Tax:            b.Tax.Mul(q),
		Total:          b.Total.Mul(q),
		DiscountRuleID: b.DiscountRuleID,
	}
}

func (b Breakdown) Validate() error {
	if !b.Subtotal.Equal(b.Metal.Add(b.Diamond).Add(b.Making)) {
		return ErrBrokenInvariant
	}
	if !b.Total.Equal(b.Subtotal.Sub(b.Discount).Add(b.Tax)) {
		return ErrBrokenInvariant
	}
	if b.Discount.GreaterThan(b.Making) || b.Discount.IsNegative() {
		return ErrBrokenInvariant
	}
	if b.Total.IsNegative() {
		return ErrBrokenInvariant
	}
	return nil
}
