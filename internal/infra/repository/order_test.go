//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/shared"
	repositorymock "gin-jewelry-b2b/tests/mock/repository"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleOrder(t *testing.T) *order.Order {
	t.Helper()
	now := time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)
	unit := sampleBreakdown()
	line := unit.Times(2)
	cfg := order.Configuration{
		Name: "Solitaire Ring",
		SKU:  "RING-001",
		Metals: []pricing.MetalComponent{
			{Metal: "gold", Purity: "18k", WeightGrams: decimal.RequireFromString("4.5")},
		},
	}
	items := []order.Item{
		order.ReconstructItem(0, 41, 1, nil, 2, unit, line, cfg),
		order.ReconstructItem(0, 42, 2, nil, 2, unit, line, cfg),
	}
	groupID := uuid.New()
	return order.ReconstructOrder(0, "ORD-01JNZ3", uuid.New(), &groupID, order.CodePendingPayment, "INR",
		line.Total.Add(line.Total), items, now, now)
}

// =============================================================================
// Create Order Tests
// =============================================================================

func TestOrderRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderWriteQueries, sqlc.DBTX)
		expectedID    int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: header and one row per item",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, db sqlc.DBTX) {
				gomock.InOrder(
					mock.EXPECT().CreateOrder(ctx, db, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderParams) (int64, error) {
							assert.Equal(t, "pending_payment", arg.Status)
							assert.True(t, arg.QuotationGroupID.Valid)
							assert.Equal(t, "189520.00", arg.Total.StringFixed(2))
							return 500, nil
						}),
					mock.EXPECT().CreateOrderItem(ctx, db, gomock.Any()).
						DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateOrderItemParams) (int64, error) {
							assert.Equal(t, int64(500), arg.OrderID)
							assert.Equal(t, int64(41), arg.QuotationID)
							return 1, nil
						}),
					mock.EXPECT().CreateOrderItem(ctx, db, gomock.Any()).Return(int64(2), nil),
				)
			},
			expectedID: 500,
		},
		{
			name: "error: quotation already backs an order item",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateOrder(ctx, db, gomock.Any()).Return(int64(500), nil)
				mock.EXPECT().CreateOrderItem(ctx, db, gomock.Any()).Return(int64(0), dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: duplicate order number",
			setupMock: func(mock *repositorymock.MockOrderWriteQueries, db sqlc.DBTX) {
				dup := &pgconn.PgError{Code: "23505"}
				mock.EXPECT().CreateOrder(ctx, db, gomock.Any()).Return(int64(0), dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, sampleOrder(t))

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.ErrorIs(t, actualError, errs.ErrConflict)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, tc.expectedID, id)
			}
		})
	}
}

// =============================================================================
// Lock Order Tests
// =============================================================================

func TestOrderRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	src := sampleOrder(t)

	itemRows := make([]sqlc.OrderItems, 0, len(src.Items()))
	for i, it := range src.Items() {
		params := mustItemParams(t, 77, it)
		itemRows = append(itemRows, sqlc.OrderItems{
			ID:            int64(i + 1),
			OrderID:       params.OrderID,
			QuotationID:   params.QuotationID,
			ProductID:     params.ProductID,
			VariantID:     params.VariantID,
			Quantity:      params.Quantity,
			UnitPrice:     params.UnitPrice,
			LinePrice:     params.LinePrice,
			Configuration: params.Configuration,
		})
	}

	t.Run("success: order reconstructed with items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockOrderByID(ctx, mockDB, int64(77)).Return(sqlc.Orders{
			ID:               77,
			Number:           src.Number(),
			CustomerID:       src.CustomerID(),
			QuotationGroupID: pgconv.UUIDPtrToPgtype(src.GroupID()),
			Status:           "in_production",
			Currency:         "INR",
			Total:            src.Total(),
			CreatedAt:        pgconv.TimeToPgtype(src.CreatedAt()),
			UpdatedAt:        pgconv.TimeToPgtype(src.UpdatedAt()),
		}, nil)
		mockQueries.EXPECT().ListOrderItems(ctx, mockDB, int64(77)).Return(itemRows, nil)

		got, err := repo.LockByID(ctx, 77)

		require.NoError(t, err)
		assert.Equal(t, order.CodeInProduction, got.Status())
		assert.Equal(t, []int64{41, 42}, got.QuotationIDs())
		if diff := cmp.Diff(src.Items()[0].Configuration(), got.Items()[0].Configuration(), decimalEqual); diff != "" {
			t.Errorf("configuration mismatch (-want +got):\n%s", diff)
		}
		assert.True(t, src.Items()[1].LinePrice().Total.Equal(got.Items()[1].LinePrice().Total))
	})

	t.Run("error: order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewOrderRepository(mockQueries, mockDB)

		mockQueries.EXPECT().LockOrderByID(ctx, mockDB, int64(77)).Return(sqlc.Orders{}, pgx.ErrNoRows)

		got, err := repo.LockByID(ctx, 77)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 4, 8, 0, 0, 0, time.UTC)
	tr := order.Transition{OrderID: 77, From: order.CodePendingPayment, To: order.CodeCancelled}

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectedError error
	}{
		{name: "success: status moved", affected: 1},
		{name: "error: status changed concurrently", affected: 0, expectedError: shared.ErrStaleWrite},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectedError: errs.ErrDatabaseOperationFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateOrderStatus(ctx, mockDB, sqlc.UpdateOrderStatusParams{
				ToStatus:   "cancelled",
				UpdatedAt:  pgconv.TimeToPgtype(at),
				ID:         77,
				FromStatus: "pending_payment",
			}).Return(tc.affected, tc.dbErr)

			err := repo.UpdateStatus(ctx, tr, at)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func mustItemParams(t *testing.T, orderID int64, it order.Item) sqlc.CreateOrderItemParams {
	t.Helper()
	unit, err := json.Marshal(it.UnitPrice())
	require.NoError(t, err)
	line, err := json.Marshal(it.LinePrice())
	require.NoError(t, err)
	cfg, err := json.Marshal(it.Configuration())
	require.NoError(t, err)
	return sqlc.CreateOrderItemParams{
		OrderID:       orderID,
		QuotationID:   it.QuotationID(),
		ProductID:     it.ProductID(),
		Quantity:      int32(it.Quantity()),
		UnitPrice:     unit,
		LinePrice:     line,
		Configuration: cfg,
	}
}
