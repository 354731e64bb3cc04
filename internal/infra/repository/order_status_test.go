//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/repository"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	repositorymock "gin-jewelry-b2b/tests/mock/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create / Update Order Status Tests
// =============================================================================

func TestOrderStatusRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockOrderStatusWriteQueries, sqlc.DBTX)
		expectedError error
	}{
		{
			name: "success: status inserted",
			setupMock: func(mock *repositorymock.MockOrderStatusWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateOrderStatus(ctx, db, sqlc.CreateOrderStatusParams{
					Code:      "on_hold",
					Name:      "On Hold",
					SortOrder: 35,
					IsDefault: false,
					CreatedAt: pgconv.TimeToPgtype(now),
				}).Return(int64(10), nil)
			},
		},
		{
			name: "error: code or name already taken",
			setupMock: func(mock *repositorymock.MockOrderStatusWriteQueries, db sqlc.DBTX) {
				mock.EXPECT().CreateOrderStatus(ctx, db, gomock.Any()).
					Return(int64(0), &pgconn.PgError{Code: "23505", ConstraintName: "uq_order_statuses_name"})
			},
			expectedError: errs.ErrConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderStatusWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderStatusRepository(mockQueries, mockDB)

			s, err := order.NewStatus("on_hold", "On Hold", 35, false, now)
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			id, actualError := repo.Create(ctx, s)

			if tc.expectedError != nil {
				assert.ErrorIs(t, actualError, tc.expectedError)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, int64(10), id)
			}
		})
	}
}

func TestOrderStatusRepository_Update(t *testing.T) {
	ctx := context.Background()
	s := order.ReconstructStatus(10, "on_hold", "Paused", 36, true, time.Now())

	testCases := []struct {
		name          string
		affected      int64
		dbErr         error
		expectKind    infra.RepositoryErrorKind
		expectedError bool
	}{
		{name: "success: definition updated", affected: 1},
		{name: "error: status not found", affected: 0, expectedError: true, expectKind: infra.KindNotFound},
		{name: "error: database error occurs", dbErr: errors.New("database connection error"), expectedError: true, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockOrderStatusWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewOrderStatusRepository(mockQueries, mockDB)

			mockQueries.EXPECT().UpdateOrderStatusDefinition(ctx, mockDB, sqlc.UpdateOrderStatusDefinitionParams{
				ID:        10,
				Name:      "Paused",
				SortOrder: 36,
				IsDefault: true,
			}).Return(tc.affected, tc.dbErr)

			err := repo.Update(ctx, s)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// =============================================================================
// Bulk Delete Support Tests
// =============================================================================

func TestOrderStatusRepository_LockByIDs(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOrderStatusWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOrderStatusRepository(mockQueries, mockDB)

	mockQueries.EXPECT().LockOrderStatusesByIDs(ctx, mockDB, []int64{1, 10, 99}).Return([]sqlc.OrderStatuses{
		{ID: 1, Code: "pending_payment", Name: "Pending Payment", SortOrder: 10, IsDefault: true},
		{ID: 10, Code: "on_hold", Name: "On Hold", SortOrder: 35},
	}, nil)

	got, err := repo.LockByIDs(ctx, []int64{1, 10, 99})

	require.NoError(t, err)
	require.Len(t, got, 2, "unknown ids are skipped")
	assert.True(t, got[0].IsDefault())
	assert.Equal(t, order.Code("on_hold"), got[1].Code())
	assert.ErrorIs(t, got[0].CheckDeletable(0), order.ErrDefaultStatus)
}

func TestOrderStatusRepository_ClearDefaultAndDelete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockOrderStatusWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewOrderStatusRepository(mockQueries, mockDB)

	mockQueries.EXPECT().ClearDefaultOrderStatus(ctx, mockDB, int64(10)).Return(nil)
	mockQueries.EXPECT().DeleteOrderStatusesByIDs(ctx, mockDB, []int64{11, 12}).
		Return(&pgconn.PgError{Code: "23503", Message: "update or delete violates foreign key constraint"})

	require.NoError(t, repo.ClearDefault(ctx, 10))

	err := repo.DeleteByIDs(ctx, []int64{11, 12})
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
}
