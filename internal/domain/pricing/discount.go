package pricing

import (
	"slices"
	"strings"

	"gin-jewelry-b2b/internal/domain/user"

	"github.com/shopspring/decimal"
)

func (r DiscountRule) Applies(productID int64, customerType user.CustomerType, codes []string) bool {
	if !slices.Contains(r.CustomerTypes, customerType) {
		return false
	}
	if len(r.ProductIDs) > 0 && !slices.Contains(r.ProductIDs, productID) {
		return false
	}
	if r.Code != "" && !slices.ContainsFunc(codes, func(c string) bool { return strings.EqualFold(c, r.Code) }) {
		return false
	}
	return true
}

// AmountOn returns the rounded discount this rule grants on making, capped at making.
func (r DiscountRule) AmountOn(making decimal.Decimal) decimal.Decimal {
	var amount decimal.Decimal
	switch r.Kind {
	case DiscountKindFixed:
		amount = r.Value
	case DiscountKindPercentage:
		amount = making.Mul(r.Value).Div(hundred)
	default:
		return decimal.Zero
	}
	amount = round(amount)
	if amount.IsNegative() {
		return decimal.Zero
	}
	if amount.GreaterThan(making) {
		return making
	}
	return amount
}

// SelectDiscount picks the single best applicable rule. Ties go to the most recently created
// rule, then to the higher id. Discounts never stack.
func SelectDiscount(rules []DiscountRule, making decimal.Decimal, productID int64, customerType user.CustomerType, codes []string) (*DiscountRule, decimal.Decimal) {
	var (
		best       *DiscountRule
		bestAmount = decimal.Zero
	)
	for i := range rules {
		r := rules[i]
		if !r.Applies(productID, customerType, codes) {
			continue
		}
		amount := r.AmountOn(making)
		if best == nil || amount.GreaterThan(bestAmount) || (amount.Equal(bestAmount) && newer(r, *best)) {
			best = &rules[i]
			bestAmount = amount
		}
	}
	if best == nil || bestAmount.IsZero() {
		return nil, decimal.Zero
	}
	return best, bestAmount
}

func newer(a, b DiscountRule) bool {
	if a.CreatedAt.Equal(b.CreatedAt) {
		return a.ID > b.ID
	}
	return a.CreatedAt.After(b.CreatedAt)
}
