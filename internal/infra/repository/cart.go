package repository

import (
	"context"

	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type CartWriteQueries interface {
	DeleteCartItems(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteCartItemsParams) error
}

type CartRepository struct {
	queries CartWriteQueries
	db      sqlc.DBTX
}

func NewCartRepository(queries CartWriteQueries, db sqlc.DBTX) *CartRepository {
	return &CartRepository{queries: queries, db: db}
}

func (r *CartRepository) DeleteItems(ctx context.Context, customerID uuid.UUID, itemIDs []int64) error {
	if len(itemIDs) == 0 {
		return nil
	}
	err := r.queries.DeleteCartItems(ctx, r.db, sqlc.DeleteCartItemsParams{CustomerID: customerID, Ids: itemIDs})
	if err != nil {
		return infra.WrapRepoErr("failed to delete cart items", err)
	}
	return nil
}
