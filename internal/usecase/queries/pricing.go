package queries

import (
	"context"
	"errors"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/shared"
)

var ErrProductNotFound = errs.Classify(errs.New("product not found"), errs.ErrNotFound)

type ComputePriceRequest struct {
	ProductID     int64
	VariantID     *int64
	Quantity      int
	CustomerType  *string
	DiscountCodes []string
}

type PricingQueries interface {
	ComputePrice(ctx context.Context, actor user.Actor, req ComputePriceRequest) (*PriceQuote, error)
}

type pricingQueriesImpl struct {
	uow     shared.UnitOfWork
	pricer  *shared.Pricer
	metrics shared.Metrics
}

func NewPricingQueries(uow shared.UnitOfWork, pricer *shared.Pricer, metrics shared.Metrics) PricingQueries {
	return &pricingQueriesImpl{
		uow:     uow,
		pricer:  pricer,
		metrics: metrics,
	}
}

// ComputePrice is display pricing only and persists nothing. Customers are always priced as
// their own profile type; admins may ask for either type.
func (q *pricingQueriesImpl) ComputePrice(ctx context.Context, actor user.Actor, req ComputePriceRequest) (*PriceQuote, error) {
	var quote *PriceQuote
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, reads shared.CommandReads) error {
		item, err := reads.CatalogItem(ctx, req.ProductID, req.VariantID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}

		customerType, err := q.customerType(ctx, reads, actor, req.CustomerType)
		if err != nil {
			return err
		}

		unit, err := q.pricer.Price(ctx, reads, shared.PriceRequest{
			Item:          item,
			CustomerType:  customerType,
			DiscountCodes: req.DiscountCodes,
		})
		if err != nil {
			return err
		}

		quote = &PriceQuote{
			ProductID:    req.ProductID,
			VariantID:    req.VariantID,
			Quantity:     req.Quantity,
			CustomerType: string(customerType),
			Unit:         unit,
		}
		if req.Quantity > 0 {
			line, err := unit.LineTotal(req.Quantity)
			if err != nil {
				return errs.Validation(err)
			}
			quote.Line = &line
		}
		return nil
	})
	q.metrics.PriceComputed(shared.Outcome(err))
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (q *pricingQueriesImpl) customerType(ctx context.Context, reads shared.CommandReads, actor user.Actor, requested *string) (user.CustomerType, error) {
	if actor.IsCustomer() {
		return q.pricer.CustomerTypeOf(ctx, reads, actor.ID)
	}
	if requested != nil {
		ct, err := user.NewCustomerType(*requested)
		if err != nil {
			return "", errs.Validation(err)
		}
		return ct, nil
	}
	return q.pricer.DefaultCustomerType(), nil
}
