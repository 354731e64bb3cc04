package readstore

import (
	"context"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/queries"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
	ListOrderHistory(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderHistory, error)
	CountOrdersInStatus(ctx context.Context, db sqlc.DBTX, status string) (int64, error)
	ListOrderStatuses(ctx context.Context, db sqlc.DBTX) ([]sqlc.OrderStatuses, error)
	GetDefaultOrderStatus(ctx context.Context, db sqlc.DBTX) (sqlc.OrderStatuses, error)
	GetOrderStatusByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.OrderStatuses, error)
	GetOrderStatusByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.OrderStatuses, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) Load(ctx context.Context, id int64) (*order.Order, error) {
	row, items, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return converter.OrderFromRows(row, items)
}

func (r *OrderReadStore) FindByID(ctx context.Context, id int64) (*queries.OrderView, error) {
	row, itemRows, err := r.load(ctx, id)
	if err != nil {
		return nil, err
	}

	o, err := converter.OrderFromRows(row, itemRows)
	if err != nil {
		return nil, err
	}

	view := &queries.OrderView{
		ID:         o.ID(),
		Number:     o.Number(),
		CustomerID: o.CustomerID(),
		GroupID:    o.GroupID(),
		Status:     o.Status().String(),
		Currency:   o.Currency(),
		Total:      o.Total(),
		Items:      make([]queries.OrderItemView, len(o.Items())),
		CreatedAt:  o.CreatedAt(),
		UpdatedAt:  o.UpdatedAt(),
	}
	for i, it := range o.Items() {
		view.Items[i] = queries.OrderItemView{
			ID:            it.ID(),
			QuotationID:   it.QuotationID(),
			ProductID:     it.ProductID(),
			VariantID:     it.VariantID(),
			Quantity:      it.Quantity(),
			UnitPrice:     it.UnitPrice(),
			LinePrice:     it.LinePrice(),
			Configuration: it.Configuration(),
		}
	}
	return view, nil
}

func (r *OrderReadStore) load(ctx context.Context, id int64) (sqlc.Orders, []sqlc.OrderItems, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.Orders{}, nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return sqlc.Orders{}, nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return sqlc.Orders{}, nil, infra.WrapRepoErr("failed to list order items", err)
	}
	return row, items, nil
}

func (r *OrderReadStore) History(ctx context.Context, id int64) ([]*queries.HistoryEntryView, error) {
	rows, err := r.queries.ListOrderHistory(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order history", err)
	}

	result := make([]*queries.HistoryEntryView, len(rows))
	for i, row := range rows {
		result[i] = toHistoryEntryView(row.Status, row.ActorGuard, row.ActorID, row.Meta, row.CreatedAt)
	}
	return result, nil
}

func (r *OrderReadStore) CountInStatus(ctx context.Context, code order.Code) (int64, error) {
	n, err := r.queries.CountOrdersInStatus(ctx, r.db, code.String())
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count orders in status", err)
	}
	return n, nil
}

func (r *OrderReadStore) ListStatuses(ctx context.Context) ([]*queries.OrderStatusView, error) {
	rows, err := r.queries.ListOrderStatuses(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order statuses", err)
	}

	result := make([]*queries.OrderStatusView, len(rows))
	for i, row := range rows {
		result[i] = &queries.OrderStatusView{
			ID:        row.ID,
			Code:      row.Code,
			Name:      row.Name,
			SortOrder: int(row.SortOrder),
			IsDefault: row.IsDefault,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *OrderReadStore) DefaultStatus(ctx context.Context) (*order.Status, error) {
	row, err := r.queries.GetDefaultOrderStatus(ctx, r.db)
	return statusOrErr(row, err, "failed to find default order status")
}

func (r *OrderReadStore) StatusByCode(ctx context.Context, code order.Code) (*order.Status, error) {
	row, err := r.queries.GetOrderStatusByCode(ctx, r.db, code.String())
	return statusOrErr(row, err, "failed to find order status by code")
}

func (r *OrderReadStore) StatusByID(ctx context.Context, id int64) (*order.Status, error) {
	row, err := r.queries.GetOrderStatusByID(ctx, r.db, id)
	return statusOrErr(row, err, "failed to find order status by ID")
}

func statusOrErr(row sqlc.OrderStatuses, err error, msg string) (*order.Status, error) {
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order status not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr(msg, err)
	}
	return converter.StatusFromRow(row), nil
}
