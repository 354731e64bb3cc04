package repository

import (
	"context"

	"gin-jewelry-b2b/internal/domain/history"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository/converter"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
)

type HistoryWriteQueries interface {
	CreateQuotationHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateQuotationHistoryParams) error
	CreateOrderHistory(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderHistoryParams) error
}

// QuotationHistoryRepository appends to quotation_history. Rows are never updated.
type QuotationHistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewQuotationHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *QuotationHistoryRepository {
	return &QuotationHistoryRepository{queries: queries, db: db}
}

func (r *QuotationHistoryRepository) Append(ctx context.Context, quotationID int64, entry history.Entry) error {
	params, err := converter.QuotationHistoryToInfra(quotationID, entry)
	if err != nil {
		return err
	}
	if err := r.queries.CreateQuotationHistory(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append quotation history", err)
	}
	return nil
}

type OrderHistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewOrderHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *OrderHistoryRepository {
	return &OrderHistoryRepository{queries: queries, db: db}
}

func (r *OrderHistoryRepository) Append(ctx context.Context, orderID int64, entry history.Entry) error {
	params, err := converter.OrderHistoryToInfra(orderID, entry)
	if err != nil {
		return err
	}
	if err := r.queries.CreateOrderHistory(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to append order history", err)
	}
	return nil
}
