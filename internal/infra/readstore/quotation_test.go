//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/readstore"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	"gin-jewelry-b2b/internal/usecase/queries"
	readstoremock "gin-jewelry-b2b/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const breakdownJSON = `{"currency":"INR","metal":"31500","diamond":"12000","making":"2500","subtotal":"46000","discount":"0","tax":"1380","total":"47380"}`

func quotationViewRow(id int64, status string, createdAt time.Time) sqlc.GetQuotationViewRow {
	return sqlc.GetQuotationViewRow{
		ID:          id,
		CustomerID:  uuid.New(),
		ProductID:   1,
		ProductName: "Solitaire Ring",
		Quantity:    2,
		Status:      status,
		CreatedAt:   pgconv.TimeToPgtype(createdAt),
		UpdatedAt:   pgconv.TimeToPgtype(createdAt),
	}
}

// =============================================================================
// FindByID Tests
// =============================================================================

func TestQuotationReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockQuotationReadQueries)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
		verify        func(*testing.T, *queries.QuotationView)
	}{
		{
			name: "success: approved quotation with snapshot and order",
			setupMock: func(mock *readstoremock.MockQuotationReadQueries) {
				row := quotationViewRow(5, "approved", now)
				row.PriceBreakdown = []byte(breakdownJSON)
				row.OrderID = pgtype.Int8{Int64: 900, Valid: true}
				row.Notes = pgtype.Text{String: "Rose tone", Valid: true}
				mock.EXPECT().GetQuotationView(ctx, gomock.Any(), int64(5)).Return(row, nil)
			},
			verify: func(t *testing.T, v *queries.QuotationView) {
				require.NotNil(t, v.Price)
				assert.Equal(t, "47380", v.Price.Total.String())
				require.NotNil(t, v.OrderID)
				assert.Equal(t, int64(900), *v.OrderID)
				require.NotNil(t, v.Notes)
				assert.Equal(t, "Rose tone", *v.Notes)
			},
		},
		{
			name: "success: pending quotation has no snapshot",
			setupMock: func(mock *readstoremock.MockQuotationReadQueries) {
				mock.EXPECT().GetQuotationView(ctx, gomock.Any(), int64(5)).Return(quotationViewRow(5, "pending", now), nil)
			},
			verify: func(t *testing.T, v *queries.QuotationView) {
				assert.Nil(t, v.Price)
				assert.Nil(t, v.OrderID)
				assert.Nil(t, v.GroupID)
			},
		},
		{
			name: "error: quotation not found",
			setupMock: func(mock *readstoremock.MockQuotationReadQueries) {
				mock.EXPECT().GetQuotationView(ctx, gomock.Any(), int64(5)).Return(sqlc.GetQuotationViewRow{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockQuotationReadQueries) {
				mock.EXPECT().GetQuotationView(ctx, gomock.Any(), int64(5)).Return(sqlc.GetQuotationViewRow{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockQuotationReadQueries(ctrl)
			mockDB := &mockDBTX{}
			store := readstore.NewQuotationReadStore(mockQueries, mockDB)

			tc.setupMock(mockQueries)

			result, actualError := store.FindByID(ctx, 5)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, result, "result should be nil when error occurs")
			} else {
				require.NoError(t, actualError)
				require.NotNil(t, result)
				assert.Equal(t, int64(5), result.ID)
				tc.verify(t, result)
			}
		})
	}
}

// =============================================================================
// List Tests
// =============================================================================

func TestQuotationReadStore_ListFirstPage(t *testing.T) {
	ctx := context.Background()
	customerID := uuid.New()
	status := "pending"
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockQuotationReadQueries(ctrl)
	store := readstore.NewQuotationReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListQuotationViewsFirstPage(ctx, gomock.Any(), sqlc.ListQuotationViewsFirstPageParams{
		CustomerID: pgconv.UUIDToPgtype(customerID),
		Status:     pgtype.Text{String: "pending", Valid: true},
		Limit:      21,
	}).Return([]sqlc.ListQuotationViewsFirstPageRow{
		sqlc.ListQuotationViewsFirstPageRow(quotationViewRow(9, "pending", now)),
		sqlc.ListQuotationViewsFirstPageRow(quotationViewRow(8, "pending", now.Add(-time.Hour))),
	}, nil)

	views, err := store.ListFirstPage(ctx, &customerID, &status, 21)

	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(9), views[0].ID)
	assert.Equal(t, "Solitaire Ring", views[1].ProductName)
}

func TestQuotationReadStore_ListKeyset(t *testing.T) {
	ctx := context.Background()
	lastCreatedAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockQuotationReadQueries(ctrl)
	store := readstore.NewQuotationReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListQuotationViewsKeyset(ctx, gomock.Any(), sqlc.ListQuotationViewsKeysetParams{
		CustomerID:    pgtype.UUID{},
		Status:        pgtype.Text{},
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        8,
		Limit:         11,
	}).Return(nil, errDBConnectionLost)

	views, err := store.ListKeyset(ctx, nil, nil, lastCreatedAt, 8, 11)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	assert.Nil(t, views)
}

// =============================================================================
// History / Messages Tests
// =============================================================================

func TestQuotationReadStore_HistoryAndMessages(t *testing.T) {
	ctx := context.Background()
	adminID := uuid.New()
	customerID := uuid.New()
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockQuotationReadQueries(ctrl)
	store := readstore.NewQuotationReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListQuotationHistory(ctx, gomock.Any(), int64(5)).Return([]sqlc.QuotationHistory{
		{ID: 1, QuotationID: 5, Status: "pending", ActorGuard: "customer", ActorID: pgconv.UUIDToPgtype(customerID), Meta: []byte(`{}`), CreatedAt: pgconv.TimeToPgtype(now)},
		{ID: 2, QuotationID: 5, Status: "rejected", ActorGuard: "admin", ActorID: pgconv.UUIDToPgtype(adminID), Meta: []byte(`{"reason":"rate expired"}`), CreatedAt: pgconv.TimeToPgtype(now.Add(time.Minute))},
	}, nil)
	mockQueries.EXPECT().ListQuotationMessages(ctx, gomock.Any(), int64(5)).Return([]sqlc.QuotationMessages{
		{ID: 1, QuotationID: 5, SenderID: adminID, SenderRole: "admin", Body: "Gold rate moved, please resubmit", CreatedAt: pgconv.TimeToPgtype(now)},
	}, nil)

	entries, err := store.History(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "rejected", entries[1].Status)
	assert.Equal(t, "rate expired", entries[1].Meta["reason"])
	require.NotNil(t, entries[1].ActorID)
	assert.Equal(t, adminID, *entries[1].ActorID)

	messages, err := store.Messages(ctx, 5)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "admin", messages[0].SenderRole)
	assert.Equal(t, now, messages[0].CreatedAt)
}
