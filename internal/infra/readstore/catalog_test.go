//go:build unit

package readstore

import (
	"context"
	"database/sql"
	"testing"

	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/infra"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCatalogReadQueries struct {
	mock.Mock
}

func (m *MockCatalogReadQueries) GetCatalogItem(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCatalogItemParams) (sqlc.GetCatalogItemRow, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.GetCatalogItemRow), args.Error(1)
}

func (m *MockCatalogReadQueries) GetUserCustomerType(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (pgtype.Text, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(pgtype.Text), args.Error(1)
}

func (m *MockCatalogReadQueries) ListCartItemsByCustomer(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.CartItems, error) {
	args := m.Called(ctx, db, customerID)
	return args.Get(0).([]sqlc.CartItems), args.Error(1)
}

func TestCatalogItem(t *testing.T) {
	variantID := int64(11)

	tests := []struct {
		name       string
		variantID  *int64
		mockReturn sqlc.GetCatalogItemRow
		mockError  error
		wantStock  inventory.Stock
		wantMetals int
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:      "success - variant with tracked stock",
			variantID: &variantID,
			mockReturn: sqlc.GetCatalogItemRow{
				ProductID:     1,
				VariantID:     pgtype.Int8{Int64: variantID, Valid: true},
				Name:          "Solitaire Ring",
				Sku:           "RING-001-18K",
				IsActive:      true,
				TaxGroupID:    pgtype.Int8{Int64: 3, Valid: true},
				Metals:        []byte(`[{"metal":"gold","purity":"18k","weight_grams":"4.5"}]`),
				Diamonds:      []byte(`[]`),
				TrackStock:    true,
				StockQuantity: 4,
			},
			wantStock:  inventory.Tracked(4),
			wantMetals: 1,
		},
		{
			name: "success - product without variant is untracked",
			mockReturn: sqlc.GetCatalogItemRow{
				ProductID: 1,
				Name:      "Solitaire Ring",
				Sku:       "RING-001",
				IsActive:  true,
			},
			wantStock: inventory.Untracked(),
		},
		{
			name:      "variant not found",
			variantID: &variantID,
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCatalogReadQueries)
			mockQueries.On("GetCatalogItem", mock.Anything, mock.Anything, mock.MatchedBy(func(arg sqlc.GetCatalogItemParams) bool {
				return arg.ProductID == 1 && arg.VariantID.Valid == (tt.variantID != nil)
			})).Return(tt.mockReturn, tt.mockError)

			store := NewCatalogReadStore(mockQueries, nil)

			item, err := store.Item(context.Background(), 1, tt.variantID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, item)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantStock, item.Stock)
				assert.Len(t, item.Metals, tt.wantMetals)
				assert.Equal(t, tt.variantID != nil, item.VariantID != nil)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCustomerType(t *testing.T) {
	customerID := uuid.New()

	tests := []struct {
		name       string
		mockReturn pgtype.Text
		mockError  error
		want       user.CustomerType
		wantKind   infra.RepositoryErrorKind
		wantError  bool
	}{
		{
			name:       "success - wholesaler",
			mockReturn: pgtype.Text{String: "wholesaler", Valid: true},
			want:       user.CustomerTypeWholesaler,
		},
		{
			name:       "customer type not set",
			mockReturn: pgtype.Text{},
			wantKind:   infra.KindNotFound,
			wantError:  true,
		},
		{
			name:      "user not found",
			mockError: sql.ErrNoRows,
			wantKind:  infra.KindNotFound,
			wantError: true,
		},
		{
			name:       "unknown customer type stored",
			mockReturn: pgtype.Text{String: "distributor", Valid: true},
			wantError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockCatalogReadQueries)
			mockQueries.On("GetUserCustomerType", mock.Anything, mock.Anything, customerID).Return(tt.mockReturn, tt.mockError)

			store := NewCatalogReadStore(mockQueries, nil)

			ct, err := store.CustomerType(context.Background(), customerID)

			if tt.wantError {
				assert.Error(t, err)
				if tt.wantKind != "" {
					assert.True(t, infra.IsKind(err, tt.wantKind))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, ct)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestCartItems(t *testing.T) {
	customerID := uuid.New()
	mockQueries := new(MockCatalogReadQueries)
	mockQueries.On("ListCartItemsByCustomer", mock.Anything, mock.Anything, customerID).Return([]sqlc.CartItems{
		{ID: 1, CustomerID: customerID, ProductID: 1, Quantity: 2, Notes: pgtype.Text{String: "rush", Valid: true}},
		{ID: 2, CustomerID: customerID, ProductID: 2, VariantID: pgtype.Int8{Int64: 21, Valid: true}, Quantity: 1},
	}, nil)

	store := NewCatalogReadStore(mockQueries, nil)

	items, err := store.CartItems(context.Background(), customerID)

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "rush", items[0].Notes)
	assert.Nil(t, items[0].VariantID)
	require.NotNil(t, items[1].VariantID)
	assert.Equal(t, int64(21), *items[1].VariantID)
	assert.Empty(t, items[1].Notes)
	mockQueries.AssertExpectations(t)
}
