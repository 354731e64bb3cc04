package converter

import (
	"encoding/json"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/quotation"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
)

func QuotationToInfra(q *quotation.Quotation) (sqlc.CreateQuotationParams, error) {
	breakdown, err := BreakdownToJSON(q.Breakdown())
	if err != nil {
		return sqlc.CreateQuotationParams{}, err
	}

	return sqlc.CreateQuotationParams{
		QuotationGroupID: pgconv.UUIDPtrToPgtype(q.GroupID()),
		CustomerID:       q.CustomerID(),
		ProductID:        q.ProductID(),
		VariantID:        pgconv.Int64PtrToPgtype(q.VariantID()),
		Quantity:         int32(q.Quantity()), // #nosec G115 -- bounded by quotation.MaxQuantity
		Notes:            pgconv.StringToNullablePgtype(q.Notes()),
		PriceBreakdown:   breakdown,
		Status:           q.Status().String(),
		CreatedAt:        pgconv.TimeToPgtype(q.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(q.UpdatedAt()),
	}, nil
}

func QuotationTermsToInfra(q *quotation.Quotation) (sqlc.UpdateQuotationTermsParams, error) {
	breakdown, err := BreakdownToJSON(q.Breakdown())
	if err != nil {
		return sqlc.UpdateQuotationTermsParams{}, err
	}

	return sqlc.UpdateQuotationTermsParams{
		ID:             q.ID(),
		Quantity:       int32(q.Quantity()), // #nosec G115 -- bounded by quotation.MaxQuantity
		Notes:          pgconv.StringToNullablePgtype(q.Notes()),
		PriceBreakdown: breakdown,
		UpdatedAt:      pgconv.TimeToPgtype(q.UpdatedAt()),
	}, nil
}

func QuotationFromRow(row sqlc.Quotations) (*quotation.Quotation, error) {
	breakdown, err := BreakdownFromJSON(row.PriceBreakdown)
	if err != nil {
		return nil, err
	}

	return quotation.ReconstructQuotation(
		row.ID,
		pgconv.UUIDPtrFromPgtype(row.QuotationGroupID),
		row.CustomerID,
		row.ProductID,
		pgconv.Int64PtrFromPgtype(row.VariantID),
		int(row.Quantity),
		pgconv.StringFromPgtype(row.Notes),
		breakdown,
		quotation.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

// BreakdownToJSON returns nil for a missing snapshot so the column stays NULL.
func BreakdownToJSON(b *pricing.Breakdown) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode price breakdown")
	}
	return raw, nil
}

func BreakdownFromJSON(raw []byte) (*pricing.Breakdown, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var b pricing.Breakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, errs.Wrap(err, "failed to decode price breakdown")
	}
	return &b, nil
}
