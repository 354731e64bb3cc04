package readstore

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PricingReadQueries interface {
	GetMetalRate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetMetalRateParams) (decimal.Decimal, error)
	GetDiamondRate(ctx context.Context, db sqlc.DBTX, arg sqlc.GetDiamondRateParams) (decimal.Decimal, error)
	GetMakingCharge(ctx context.Context, db sqlc.DBTX, productID int64) (sqlc.MakingCharges, error)
	ListActiveDiscountRules(ctx context.Context, db sqlc.DBTX, at pgtype.Timestamptz) ([]sqlc.DiscountRules, error)
	GetTaxGroup(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.TaxGroups, error)
	ListTaxRatesByGroup(ctx context.Context, db sqlc.DBTX, taxGroupID int64) ([]sqlc.TaxRates, error)
}

// PricingReadStore resolves the rate tables. Missing rows are KindNotFound; the pricer turns
// them into RateUnavailable.
type PricingReadStore struct {
	queries PricingReadQueries
	db      sqlc.DBTX
}

func NewPricingReadStore(queries PricingReadQueries, db sqlc.DBTX) *PricingReadStore {
	return &PricingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PricingReadStore) MetalRate(ctx context.Context, metal, purity, tone, currency string) (decimal.Decimal, error) {
	rate, err := r.queries.GetMetalRate(ctx, r.db, sqlc.GetMetalRateParams{
		Metal:    metal,
		Purity:   purity,
		Tone:     tone,
		Currency: currency,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Zero, infra.WrapRepoErr("metal rate not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("failed to find metal rate", err)
	}
	return rate, nil
}

func (r *PricingReadStore) DiamondRate(ctx context.Context, typ, shape, color, clarity string) (decimal.Decimal, error) {
	rate, err := r.queries.GetDiamondRate(ctx, r.db, sqlc.GetDiamondRateParams{
		Type:    typ,
		Shape:   shape,
		Color:   color,
		Clarity: clarity,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return decimal.Zero, infra.WrapRepoErr("diamond rate not found", err, infra.KindNotFound)
		}
		return decimal.Zero, infra.WrapRepoErr("failed to find diamond rate", err)
	}
	return rate, nil
}

func (r *PricingReadStore) MakingChargePolicy(ctx context.Context, productID int64) (pricing.MakingChargePolicy, error) {
	row, err := r.queries.GetMakingCharge(ctx, r.db, productID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return pricing.MakingChargePolicy{}, infra.WrapRepoErr("making charge not found", err, infra.KindNotFound)
		}
		return pricing.MakingChargePolicy{}, infra.WrapRepoErr("failed to find making charge", err)
	}

	types := make([]pricing.ChargeType, len(row.ChargeTypes))
	for i, t := range row.ChargeTypes {
		types[i] = pricing.ChargeType(t)
	}

	policy, err := pricing.NewMakingChargePolicy(types, pgconv.DecimalPtrFromNull(row.Amount), pgconv.DecimalPtrFromNull(row.Percentage))
	if err != nil {
		return pricing.MakingChargePolicy{}, errs.Wrapf(err, "making charge of product %d", productID)
	}
	return policy, nil
}

func (r *PricingReadStore) DiscountRules(ctx context.Context, at time.Time) ([]pricing.DiscountRule, error) {
	rows, err := r.queries.ListActiveDiscountRules(ctx, r.db, pgconv.TimeToPgtype(at))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rules", err)
	}

	result := make([]pricing.DiscountRule, len(rows))
	for i, row := range rows {
		customerTypes := make([]user.CustomerType, len(row.CustomerTypes))
		for j, ct := range row.CustomerTypes {
			customerTypes[j] = user.CustomerType(ct)
		}
		result[i] = pricing.DiscountRule{
			ID:            row.ID,
			Name:          row.Name,
			Code:          pgconv.StringFromPgtype(row.Code),
			Kind:          pricing.DiscountKind(row.Kind),
			Value:         row.Value,
			CustomerTypes: customerTypes,
			ProductIDs:    row.ProductIds,
			CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

// TaxRates distinguishes an unknown group (not found) from a group without rates (empty).
func (r *PricingReadStore) TaxRates(ctx context.Context, taxGroupID int64) ([]pricing.TaxRate, error) {
	if _, err := r.queries.GetTaxGroup(ctx, r.db, taxGroupID); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("tax group not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tax group", err)
	}

	rows, err := r.queries.ListTaxRatesByGroup(ctx, r.db, taxGroupID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tax rates", err)
	}

	result := make([]pricing.TaxRate, len(rows))
	for i, row := range rows {
		result[i] = pricing.TaxRate{
			Name:   row.Name,
			Rate:   row.Rate,
			Active: row.IsActive,
		}
	}
	return result, nil
}
