package response

import (
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// BreakdownResponse renders every amount with exactly two decimals.
type BreakdownResponse struct {
	Currency       string `json:"currency"`
	Metal          string `json:"metal"`
	Diamond        string `json:"diamond"`
	Making         string `json:"making"`
	Subtotal       string `json:"subtotal"`
	Discount       string `json:"discount"`
	Tax            string `json:"tax"`
	Total          string `json:"total"`
	DiscountRuleID *int64 `json:"discount_rule_id,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func FromBreakdown(b pricing.Breakdown) *BreakdownResponse {
	return &BreakdownResponse{
		Currency:       b.Currency,
		Metal:          money(b.Metal),
		Diamond:        money(b.Diamond),
		Making:         money(b.Making),
		Subtotal:       money(b.Subtotal),
		Discount:       money(b.Discount),
		Tax:            money(b.Tax),
		Total:          money(b.Total),
		DiscountRuleID: b.DiscountRuleID,
	}
}

func fromBreakdownPtr(b *pricing.Breakdown) *BreakdownResponse {
	if b == nil {
		return nil
	}
	return FromBreakdown(*b)
}

type PriceQuoteResponse struct {
	ProductID    int64              `json:"product_id"`
	VariantID    *int64             `json:"variant_id,omitempty"`
	Quantity     int                `json:"quantity,omitempty"`
	CustomerType string             `json:"customer_type"`
	Unit         *BreakdownResponse `json:"unit"`
	Line         *BreakdownResponse `json:"line,omitempty"`
}

func FromPriceQuote(q *queries.PriceQuote) *PriceQuoteResponse {
	return &PriceQuoteResponse{
		ProductID:    q.ProductID,
		VariantID:    q.VariantID,
		Quantity:     q.Quantity,
		CustomerType: q.CustomerType,
		Unit:         FromBreakdown(q.Unit),
		Line:         fromBreakdownPtr(q.Line),
	}
}
