package shared

import (
	"context"
	"errors"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/google/uuid"
)

type PriceRequest struct {
	Item          *CatalogItemSnapshot
	CustomerType  user.CustomerType
	DiscountCodes []string
}

// Pricer resolves rates, policy, discounts and taxes, then runs the calculator.
// Every missing input is a RateUnavailableError; nothing defaults to zero.
type Pricer struct {
	calc                pricing.Calculator
	clock               clock.Clock
	currency            string
	defaultCustomerType user.CustomerType
}

func NewPricer(calc pricing.Calculator, clock clock.Clock, currency string, defaultCustomerType user.CustomerType) *Pricer {
	return &Pricer{calc: calc, clock: clock, currency: currency, defaultCustomerType: defaultCustomerType}
}

func (p *Pricer) Currency() string {
	return p.currency
}

func (p *Pricer) DefaultCustomerType() user.CustomerType {
	return p.defaultCustomerType
}

// CustomerTypeOf returns the stored type of customerID, or the configured default when the
// profile has none.
func (p *Pricer) CustomerTypeOf(ctx context.Context, reads CommandReads, customerID uuid.UUID) (user.CustomerType, error) {
	ct, err := reads.CustomerType(ctx, customerID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return p.defaultCustomerType, nil
		}
		return "", err
	}
	return ct, nil
}

func (p *Pricer) Price(ctx context.Context, reads CommandReads, req PriceRequest) (pricing.Breakdown, error) {
	in, err := p.Resolve(ctx, reads, req)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return p.calc.Calculate(in)
}

func (p *Pricer) Resolve(ctx context.Context, reads CommandReads, req PriceRequest) (pricing.Input, error) {
	item := req.Item
	in := pricing.Input{
		ProductID:     item.ProductID,
		Currency:      p.currency,
		CustomerType:  req.CustomerType,
		DiscountCodes: req.DiscountCodes,
	}

	for _, m := range item.Metals {
		rate, err := reads.MetalRate(ctx, m.Metal, m.Purity, m.Tone, p.currency)
		if err != nil {
			return pricing.Input{}, unavailable(err, "metal", pricing.MetalKey(m.Metal, m.Purity, m.Tone, p.currency))
		}
		in.Metals = append(in.Metals, pricing.MetalLine{Component: m, RatePerGram: rate})
	}

	for _, d := range item.Diamonds {
		rate, err := reads.DiamondRate(ctx, d.Type, d.Shape, d.Color, d.Clarity)
		if err != nil {
			return pricing.Input{}, unavailable(err, "diamond", pricing.DiamondKey(d.Type, d.Shape, d.Color, d.Clarity))
		}
		in.Diamonds = append(in.Diamonds, pricing.DiamondLine{Spec: d, RatePerCarat: rate})
	}

	policy, err := reads.MakingChargePolicy(ctx, item.ProductID)
	if err != nil {
		return pricing.Input{}, unavailable(err, "making_charge", item.SKU)
	}
	in.Policy = policy

	rules, err := reads.DiscountRules(ctx, p.clock.Now())
	if err != nil {
		return pricing.Input{}, errs.Wrap(err, "failed to load discount rules")
	}
	in.Discounts = rules

	// No tax group means an untaxed product.
	if item.TaxGroupID != nil {
		taxes, err := reads.TaxRates(ctx, *item.TaxGroupID)
		if err != nil {
			return pricing.Input{}, unavailable(err, "tax_group", item.SKU)
		}
		in.Taxes = taxes
	}

	return in, nil
}

func unavailable(err error, kind, key string) error {
	if errors.Is(err, errs.ErrNotFound) {
		return &pricing.RateUnavailableError{Kind: kind, Key: key}
	}
	return err
}
