package converter

import (
	"encoding/json"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
)

func OrderToInfra(o *order.Order) sqlc.CreateOrderParams {
	return sqlc.CreateOrderParams{
		Number:           o.Number(),
		CustomerID:       o.CustomerID(),
		QuotationGroupID: pgconv.UUIDPtrToPgtype(o.GroupID()),
		Status:           o.Status().String(),
		Currency:         o.Currency(),
		Total:            o.Total(),
		CreatedAt:        pgconv.TimeToPgtype(o.CreatedAt()),
		UpdatedAt:        pgconv.TimeToPgtype(o.UpdatedAt()),
	}
}

func OrderItemToInfra(orderID int64, it order.Item) (sqlc.CreateOrderItemParams, error) {
	unit, err := json.Marshal(it.UnitPrice())
	if err != nil {
		return sqlc.CreateOrderItemParams{}, errs.Wrap(err, "failed to encode unit price")
	}
	line, err := json.Marshal(it.LinePrice())
	if err != nil {
		return sqlc.CreateOrderItemParams{}, errs.Wrap(err, "failed to encode line price")
	}
	cfg, err := json.Marshal(it.Configuration())
	if err != nil {
		return sqlc.CreateOrderItemParams{}, errs.Wrap(err, "failed to encode configuration")
	}

	return sqlc.CreateOrderItemParams{
		OrderID:       orderID,
		QuotationID:   it.QuotationID(),
		ProductID:     it.ProductID(),
		VariantID:     pgconv.Int64PtrToPgtype(it.VariantID()),
		Quantity:      int32(it.Quantity()), // #nosec G115 -- copied from a bounded quotation quantity
		UnitPrice:     unit,
		LinePrice:     line,
		Configuration: cfg,
	}, nil
}

func OrderItemFromRow(row sqlc.OrderItems) (order.Item, error) {
	var unit, line pricing.Breakdown
	if err := json.Unmarshal(row.UnitPrice, &unit); err != nil {
		return order.Item{}, errs.Wrap(err, "failed to decode unit price")
	}
	if err := json.Unmarshal(row.LinePrice, &line); err != nil {
		return order.Item{}, errs.Wrap(err, "failed to decode line price")
	}
	var cfg order.Configuration
	if err := json.Unmarshal(row.Configuration, &cfg); err != nil {
		return order.Item{}, errs.Wrap(err, "failed to decode configuration")
	}

	return order.ReconstructItem(row.ID, row.QuotationID, row.ProductID, pgconv.Int64PtrFromPgtype(row.VariantID),
		int(row.Quantity), unit, line, cfg), nil
}

func OrderFromRows(row sqlc.Orders, itemRows []sqlc.OrderItems) (*order.Order, error) {
	items := make([]order.Item, 0, len(itemRows))
	for _, r := range itemRows {
		it, err := OrderItemFromRow(r)
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	return order.ReconstructOrder(
		row.ID,
		row.Number,
		row.CustomerID,
		pgconv.UUIDPtrFromPgtype(row.QuotationGroupID),
		order.Code(row.Status),
		row.Currency,
		row.Total,
		items,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func StatusFromRow(row sqlc.OrderStatuses) *order.Status {
	return order.ReconstructStatus(row.ID, order.Code(row.Code), row.Name, int(row.SortOrder), row.IsDefault,
		pgconv.TimeFromPgtype(row.CreatedAt))
}
