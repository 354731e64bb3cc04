//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/usecase/queries"
	queriesmock "gin-jewelry-b2b/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func view(id int64, owner uuid.UUID) *queries.QuotationView {
	return &queries.QuotationView{
		ID:         id,
		CustomerID: owner,
		ProductID:  1,
		Quantity:   1,
		Status:     "pending",
		CreatedAt:  createdAt.Add(-time.Duration(id) * time.Minute),
	}
}

// =============================================================================
// GetByID
// =============================================================================

func TestQuotationQueries_GetByID(t *testing.T) {
	owner := uuid.New()

	testCases := []struct {
		name      string
		actor     user.Actor
		setupMock func(m *queriesmock.MockQuotationReadStore)
		expectErr error
	}{
		{
			name:  "success: owner",
			actor: user.NewActor(owner, user.RoleCustomer),
			setupMock: func(m *queriesmock.MockQuotationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view(7, owner), nil)
			},
		},
		{
			name:  "success: any admin",
			actor: user.NewActor(uuid.New(), user.RoleAdmin),
			setupMock: func(m *queriesmock.MockQuotationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view(7, owner), nil)
			},
		},
		{
			name:  "error: other customer is forbidden, not told it is missing",
			actor: user.NewActor(uuid.New(), user.RoleCustomer),
			setupMock: func(m *queriesmock.MockQuotationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(view(7, owner), nil)
			},
			expectErr: errs.ErrForbidden,
		},
		{
			name:  "error: missing row",
			actor: user.NewActor(owner, user.RoleCustomer),
			setupMock: func(m *queriesmock.MockQuotationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, errs.Classify(errors.New("no rows"), errs.ErrNotFound))
			},
			expectErr: queries.ErrQuotationNotFound,
		},
		{
			name:  "error: storage failure passes through",
			actor: user.NewActor(owner, user.RoleCustomer),
			setupMock: func(m *queriesmock.MockQuotationReadStore) {
				m.EXPECT().FindByID(gomock.Any(), int64(7)).Return(nil, errs.ErrDatabaseOperationFailed)
			},
			expectErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockQuotationReadStore(ctrl)
			tc.setupMock(store)
			qs := queries.NewQuotationQueries(store)

			v, err := qs.GetByID(context.Background(), tc.actor, 7)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, v)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(7), v.ID)
		})
	}
}

func TestQuotationQueries_HistoryAndMessagesCheckAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockQuotationReadStore(ctrl)
	owner := uuid.New()
	stranger := user.NewActor(uuid.New(), user.RoleCustomer)
	store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(view(3, owner), nil).Times(2)
	qs := queries.NewQuotationQueries(store)

	_, err := qs.History(context.Background(), stranger, 3)
	assert.ErrorIs(t, err, errs.ErrForbidden)

	_, err = qs.Messages(context.Background(), stranger, 3)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestQuotationQueries_History(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockQuotationReadStore(ctrl)
	owner := uuid.New()
	entries := []*queries.HistoryEntryView{
		{Status: "pending", ActorGuard: "customer", CreatedAt: createdAt},
		{Status: "rejected", ActorGuard: "admin", CreatedAt: createdAt.Add(time.Hour)},
	}
	gomock.InOrder(
		store.EXPECT().FindByID(gomock.Any(), int64(3)).Return(view(3, owner), nil),
		store.EXPECT().History(gomock.Any(), int64(3)).Return(entries, nil),
	)
	qs := queries.NewQuotationQueries(store)

	got, err := qs.History(context.Background(), user.NewActor(owner, user.RoleCustomer), 3)

	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

// =============================================================================
// List
// =============================================================================

func TestQuotationQueries_List_Scope(t *testing.T) {
	customer := user.NewActor(uuid.New(), user.RoleCustomer)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	t.Run("success: customers only see their own", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		store.EXPECT().
			ListFirstPage(gomock.Any(), &customer.ID, gomock.Nil(), int32(21)).
			Return([]*queries.QuotationView{view(1, customer.ID)}, nil)

		rows, next, err := queries.NewQuotationQueries(store).List(context.Background(), customer, queries.QuotationFilters{}, nil, 0)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
		assert.Nil(t, next)
	})

	t.Run("success: admins list everyone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		status := "approved"
		store.EXPECT().
			ListFirstPage(gomock.Any(), gomock.Nil(), &status, int32(6)).
			Return(nil, nil)

		_, _, err := queries.NewQuotationQueries(store).List(context.Background(), admin, queries.QuotationFilters{Status: &status}, nil, 5)

		require.NoError(t, err)
	})

	t.Run("error: unknown status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)
		status := "lost"

		_, _, err := queries.NewQuotationQueries(store).List(context.Background(), admin, queries.QuotationFilters{Status: &status}, nil, 5)

		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("error: undecodable cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockQuotationReadStore(ctrl)

		_, _, err := queries.NewQuotationQueries(store).List(context.Background(), admin, queries.QuotationFilters{}, &queries.Cursor{After: "%%%"}, 5)

		assert.ErrorIs(t, err, queries.ErrInvalidCursor)
	})
}

func TestQuotationQueries_List_Pagination(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockQuotationReadStore(ctrl)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	owner := uuid.New()

	firstPage := []*queries.QuotationView{view(1, owner), view(2, owner), view(3, owner)}
	store.EXPECT().ListFirstPage(gomock.Any(), gomock.Nil(), gomock.Nil(), int32(3)).Return(firstPage, nil)
	qs := queries.NewQuotationQueries(store)

	rows, next, err := qs.List(context.Background(), admin, queries.QuotationFilters{}, nil, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.NotNil(t, next)

	after, err := queries.DecodeKeyset(next.After, "")
	require.NoError(t, err)
	assert.Equal(t, int64(2), after.ID)
	assert.True(t, after.CreatedAt.Equal(firstPage[1].CreatedAt))

	store.EXPECT().
		ListKeyset(gomock.Any(), gomock.Nil(), gomock.Nil(), gomock.Any(), int64(2), int32(3)).
		Return([]*queries.QuotationView{view(3, owner)}, nil)

	rows, next, err = qs.List(context.Background(), admin, queries.QuotationFilters{}, next, 2)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Nil(t, next)
}
