//go:build unit

package readstore_test

import (
	"context"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/infra"
	"gin-jewelry-b2b/internal/infra/readstore"
	sqlc "gin-jewelry-b2b/internal/infra/sqlc/generated"
	"gin-jewelry-b2b/internal/pkg/pgconv"
	readstoremock "gin-jewelry-b2b/tests/mock/readstore"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Rate Lookup Tests
// =============================================================================

func TestPricingReadStore_MetalRate(t *testing.T) {
	ctx := context.Background()
	params := sqlc.GetMetalRateParams{Metal: "gold", Purity: "18k", Tone: "", Currency: "INR"}

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockPricingReadQueries)
		want       decimal.Decimal
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: rate found",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetMetalRate(ctx, gomock.Any(), params).Return(decimal.RequireFromString("7000.0000"), nil)
			},
			want: decimal.RequireFromString("7000"),
		},
		{
			name: "error: no rate for metal and purity",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetMetalRate(ctx, gomock.Any(), params).Return(decimal.Zero, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetMetalRate(ctx, gomock.Any(), params).Return(decimal.Zero, errDBConnectionLost)
			},
			expectKind: infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			rate, err := store.MetalRate(ctx, "gold", "18k", "", "INR")

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, err, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(rate))
		})
	}
}

func TestPricingReadStore_DiamondRate(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
	store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().GetDiamondRate(ctx, gomock.Any(), sqlc.GetDiamondRateParams{
		Type: "natural", Shape: "round", Color: "G", Clarity: "VS1",
	}).Return(decimal.Zero, pgx.ErrNoRows)

	_, err := store.DiamondRate(ctx, "natural", "round", "G", "VS1")

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

// =============================================================================
// Making Charge / Discount / Tax Tests
// =============================================================================

func TestPricingReadStore_MakingChargePolicy(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        sqlc.MakingCharges
		dbErr      error
		wantTypes  []pricing.ChargeType
		wantError  bool
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: fixed and percentage stack",
			row: sqlc.MakingCharges{
				ProductID:   1,
				ChargeTypes: []string{"fixed", "percentage"},
				Amount:      decimal.NewNullDecimal(decimal.RequireFromString("500")),
				Percentage:  decimal.NewNullDecimal(decimal.RequireFromString("10")),
			},
			wantTypes: []pricing.ChargeType{pricing.ChargeTypeFixed, pricing.ChargeTypePercentage},
		},
		{
			name: "error: fixed charge without amount",
			row: sqlc.MakingCharges{
				ProductID:   1,
				ChargeTypes: []string{"fixed"},
			},
			wantError: true,
		},
		{
			name:       "error: product has no making charge",
			dbErr:      pgx.ErrNoRows,
			wantError:  true,
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

			mockQueries.EXPECT().GetMakingCharge(ctx, gomock.Any(), int64(1)).Return(tc.row, tc.dbErr)

			policy, err := store.MakingChargePolicy(ctx, 1)

			if tc.wantError {
				require.Error(t, err)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(err, tc.expectKind))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTypes, policy.Types())
			assert.True(t, decimal.RequireFromString("500").Equal(policy.Amount()))
		})
	}
}

func TestPricingReadStore_DiscountRules(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
	store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

	mockQueries.EXPECT().ListActiveDiscountRules(ctx, gomock.Any(), pgconv.TimeToPgtype(at)).Return([]sqlc.DiscountRules{
		{
			ID:            1,
			Name:          "Wholesale 5%",
			Kind:          "percentage",
			Value:         decimal.RequireFromString("5"),
			CustomerTypes: []string{"wholesaler"},
			ProductIds:    []int64{},
			IsActive:      true,
			CreatedAt:     pgconv.TimeToPgtype(created),
		},
		{
			ID:            2,
			Name:          "Diwali coupon",
			Code:          pgtype.Text{String: "DIWALI", Valid: true},
			Kind:          "fixed",
			Value:         decimal.RequireFromString("250"),
			CustomerTypes: []string{"retailer", "wholesaler"},
			ProductIds:    []int64{1, 2},
			IsActive:      true,
			CreatedAt:     pgconv.TimeToPgtype(created),
		},
	}, nil)

	rules, err := store.DiscountRules(ctx, at)

	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Empty(t, rules[0].Code)
	assert.Equal(t, pricing.DiscountKindPercentage, rules[0].Kind)
	assert.Equal(t, []user.CustomerType{user.CustomerTypeWholesaler}, rules[0].CustomerTypes)
	assert.Equal(t, "DIWALI", rules[1].Code)
	assert.Equal(t, []int64{1, 2}, rules[1].ProductIDs)
	assert.Equal(t, created, rules[1].CreatedAt)
}

func TestPricingReadStore_TaxRates(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		setupMock  func(*readstoremock.MockPricingReadQueries)
		wantLen    int
		expectKind infra.RepositoryErrorKind
	}{
		{
			name: "success: active and inactive rates returned",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetTaxGroup(ctx, gomock.Any(), int64(3)).Return(sqlc.TaxGroups{ID: 3, Name: "GST jewellery"}, nil)
				mock.EXPECT().ListTaxRatesByGroup(ctx, gomock.Any(), int64(3)).Return([]sqlc.TaxRates{
					{ID: 1, TaxGroupID: 3, Name: "CGST", Rate: decimal.RequireFromString("1.5"), IsActive: true},
					{ID: 2, TaxGroupID: 3, Name: "SGST", Rate: decimal.RequireFromString("1.5"), IsActive: true},
					{ID: 3, TaxGroupID: 3, Name: "Legacy", Rate: decimal.RequireFromString("4"), IsActive: false},
				}, nil)
			},
			wantLen: 3,
		},
		{
			name: "success: group without rates is empty",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetTaxGroup(ctx, gomock.Any(), int64(3)).Return(sqlc.TaxGroups{ID: 3}, nil)
				mock.EXPECT().ListTaxRatesByGroup(ctx, gomock.Any(), int64(3)).Return([]sqlc.TaxRates{}, nil)
			},
			wantLen: 0,
		},
		{
			name: "error: unknown tax group",
			setupMock: func(mock *readstoremock.MockPricingReadQueries) {
				mock.EXPECT().GetTaxGroup(ctx, gomock.Any(), int64(3)).Return(sqlc.TaxGroups{}, pgx.ErrNoRows)
			},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockPricingReadQueries(ctrl)
			store := readstore.NewPricingReadStore(mockQueries, &mockDBTX{})

			tc.setupMock(mockQueries)

			rates, err := store.TaxRates(ctx, 3)

			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				assert.Nil(t, rates)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rates)
			assert.Len(t, rates, tc.wantLen)
		})
	}
}
