package readstore

import (
	"context"
	"encoding/json"

	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadQueries interface {
	GetCatalogItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCatalogItemParams) (sqlc.GetCatalogItemRow, error)
	GetUserCustomerType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.Text, error)
	ListCartItemsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.CartItems, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// Item merges the product with the variant when variantID is set. An unknown variant,
// or one belonging to another product, is not found.
func (r *CatalogReadStore) Item(ctx context.Context, productID int64, variantID *int64) (*shared.CatalogItemSnapshot, error) {
	row, err := r.queries.GetCatalogItem(ctx, r.db, sqlc.GetCatalogItemParams{
		VariantID: pgconv.Int64PtrToPgtype(variantID),
		ProductID: productID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("catalog item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find catalog item", err)
	}

	return toCatalogItemSnapshot(row)
}

func (r *CatalogReadStore) CustomerType(ctx context.Context, customerID uuid.UUID) (user.CustomerType, error) {
	raw, err := r.queries.GetUserCustomerType(ctx, r.db, customerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find customer type", err)
	}
	if !raw.Valid {
		return "", infra.WrapRepoErr("customer type not set", nil, infra.KindNotFound)
	}

	ct, err := user.NewCustomerType(raw.String)
	if err != nil {
		return "", errs.Wrapf(err, "customer %s", customerID)
	}
	return ct, nil
}

func (r *CatalogReadStore) CartItems(ctx context.Context, customerID uuid.UUID) ([]shared.CartItemSnapshot, error) {
	rows, err := r.queries.ListCartItemsByCustomer(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}

	result := make([]shared.CartItemSnapshot, len(rows))
	for i, row := range rows {
		result[i] = shared.CartItemSnapshot{
			ID:        row.ID,
			ProductID: row.ProductID,
			VariantID: pgconv.Int64PtrFromPgtype(row.VariantID),
			Quantity:  int(row.Quantity),
			Notes:     pgconv.StringFromPgtype(row.Notes),
		}
	}
	return result, nil
}

func toCatalogItemSnapshot(row sqlc.GetCatalogItemRow) (*shared.CatalogItemSnapshot, error) {
	snap := &shared.CatalogItemSnapshot{
		ProductID:  row.ProductID,
		VariantID:  pgconv.Int64PtrFromPgtype(row.VariantID),
		Name:       row.Name,
		SKU:        row.Sku,
		Active:     row.IsActive,
		TaxGroupID: pgconv.Int64PtrFromPgtype(row.TaxGroupID),
		Stock:      inventory.Untracked(),
	}
	if row.TrackStock {
		snap.Stock = inventory.Tracked(int(row.StockQuantity))
	}

	if len(row.Metals) > 0 {
		if err := json.Unmarshal(row.Metals, &snap.Metals); err != nil {
			return nil, errs.Wrapf(err, "failed to decode metals of product %d", row.ProductID)
		}
	}
	if len(row.Diamonds) > 0 {
		if err := json.Unmarshal(row.Diamonds, &snap.Diamonds); err != nil {
			return nil, errs.Wrapf(err, "failed to decode diamonds of product %d", row.ProductID)
		}
	}
	return snap, nil
}
