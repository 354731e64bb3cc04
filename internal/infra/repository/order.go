package repository

import (
	"context"
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/shared"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error)
	CreateOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderItemParams) (int64, error)
	LockOrderByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Orders, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderID int64) ([]sqlc.OrderItems, error)
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the header then one row per item. The unique index on
// order_items.quotation_id turns a second order for the same quotation into KindDuplicateKey.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) (int64, error) {
	id, err := r.queries.CreateOrder(ctx, r.db, converter.OrderToInfra(o))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		params, err := converter.OrderItemToInfra(id, it)
		if err != nil {
			return 0, err
		}
		if _, err := r.queries.CreateOrderItem(ctx, r.db, params); err != nil {
			return 0, infra.WrapRepoErr("failed to create order item", err)
		}
	}

	return id, nil
}

func (r *OrderRepository) LockByID(ctx context.Context, id int64) (*order.Order, error) {
	row, err := r.queries.LockOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}

	items, err := r.queries.ListOrderItems(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}

	return converter.OrderFromRows(row, items)
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tr order.Transition, at time.Time) error {
	params := sqlc.UpdateOrderStatusParams{
		ToStatus:   tr.To.String(),
		UpdatedAt:  pgconv.TimeToPgtype(at),
		ID:         tr.OrderID,
		FromStatus: tr.From.String(),
	}

	n, err := r.queries.UpdateOrderStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return shared.ErrStaleWrite
	}

	return nil
}
