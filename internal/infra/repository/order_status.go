package repository

import (
	"context"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
)

type OrderStatusWriteQueries interface {
	CreateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderStatusParams) (int64, error)
	UpdateOrderStatusDefinition(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusDefinitionParams) (int64, error)
	ClearDefaultOrderStatus(ctx context.Context, db sqlc.DBTX, id int64) error
	LockOrderStatusesByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) ([]sqlc.OrderStatuses, error)
	DeleteOrderStatusesByIDs(ctx context.Context, db sqlc.DBTX, ids []int64) error
}

type OrderStatusRepository struct {
	queries OrderStatusWriteQueries
	db      sqlc.DBTX
}

func NewOrderStatusRepository(queries OrderStatusWriteQueries, db sqlc.DBTX) *OrderStatusRepository {
	return &OrderStatusRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderStatusRepository) Create(ctx context.Context, s *order.Status) (int64, error) {
	params := sqlc.CreateOrderStatusParams{
		Code:      s.Code().String(),
		Name:      s.Name(),
		SortOrder: int32(s.SortOrder()), // #nosec G115 -- admin supplied ordinal
		IsDefault: s.IsDefault(),
		CreatedAt: pgconv.TimeToPgtype(s.CreatedAt()),
	}

	id, err := r.queries.CreateOrderStatus(ctx, r.db, params)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create order status", err)
	}
	return id, nil
}

func (r *OrderStatusRepository) Update(ctx context.Context, s *order.Status) error {
	params := sqlc.UpdateOrderStatusDefinitionParams{
		ID:        s.ID(),
		Name:      s.Name(),
		SortOrder: int32(s.SortOrder()), // #nosec G115 -- admin supplied ordinal
		IsDefault: s.IsDefault(),
	}

	n, err := r.queries.UpdateOrderStatusDefinition(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("order status not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *OrderStatusRepository) ClearDefault(ctx context.Context, keepID int64) error {
	if err := r.queries.ClearDefaultOrderStatus(ctx, r.db, keepID); err != nil {
		return infra.WrapRepoErr("failed to clear default order status", err)
	}
	return nil
}

// LockByIDs silently skips unknown ids; callers compare lengths.
func (r *OrderStatusRepository) LockByIDs(ctx context.Context, ids []int64) ([]*order.Status, error) {
	rows, err := r.queries.LockOrderStatusesByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock order statuses", err)
	}

	result := make([]*order.Status, len(rows))
	for i, row := range rows {
		result[i] = converter.StatusFromRow(row)
	}
	return result, nil
}

func (r *OrderStatusRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if err := r.queries.DeleteOrderStatusesByIDs(ctx, r.db, ids); err != nil {
		return infra.WrapRepoErr("failed to delete order statuses", err)
	}
	return nil
}
