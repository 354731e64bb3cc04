//go:build unit

package queries_test

import (
	"context"
	"testing"

	"gin-jewelry-b2b/internal/domain/pricing"
	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/clock"
	"gin-jewelry-b2b/internal/pkg/errs"
	"gin-jewelry-b2b/internal/pkg/ptr"
	"gin-jewelry-b2b/internal/usecase/queries"
	"gin-jewelry-b2b/internal/usecase/shared"
	"gin-jewelry-b2b/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingQueries(store *memuow.Store) queries.PricingQueries {
	clk := clock.NewMockClock(createdAt)
	return queries.NewPricingQueries(
		memuow.New(store),
		shared.NewPricer(pricing.NewDefaultCalculator(), clk, memuow.Currency, user.CustomerTypeRetailer),
		shared.NopMetrics{},
	)
}

func TestPricingQueries_ComputePrice(t *testing.T) {
	wholesaler := user.NewActor(uuid.New(), user.RoleCustomer)
	unprofiled := user.NewActor(uuid.New(), user.RoleCustomer)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	testCases := []struct {
		name         string
		actor        user.Actor
		req          queries.ComputePriceRequest
		expectType   string
		expectUnit   string
		expectLine   string
		expectErr    error
		expectNoLine bool
	}{
		{
			name:       "success: retailer default with line total",
			actor:      unprofiled,
			req:        queries.ComputePriceRequest{ProductID: memuow.RingProductID, VariantID: ptr.Of(memuow.RingVariantID), Quantity: 3},
			expectType: "retailer",
			expectUnit: "67465",
			expectLine: "202395",
		},
		{
			name:       "success: customer profile type wins over a requested type",
			actor:      wholesaler,
			req:        queries.ComputePriceRequest{ProductID: memuow.BandProductID, Quantity: 1, CustomerType: ptr.Of("retailer")},
			expectType: "wholesaler",
			// 10% of 500 making off the subtotal, then 3% tax on 65450
			expectUnit: "67413.50",
			expectLine: "67413.50",
		},
		{
			name:         "success: admin asks for the wholesale price",
			actor:        admin,
			req:          queries.ComputePriceRequest{ProductID: memuow.BandProductID, CustomerType: ptr.Of("wholesaler")},
			expectType:   "wholesaler",
			expectUnit:   "67413.50",
			expectNoLine: true,
		},
		{
			name:      "error: admin asks for an unknown type",
			actor:     admin,
			req:       queries.ComputePriceRequest{ProductID: memuow.BandProductID, CustomerType: ptr.Of("vip")},
			expectErr: errs.ErrValidation,
		},
		{
			name:      "error: unknown product",
			actor:     admin,
			req:       queries.ComputePriceRequest{ProductID: 404},
			expectErr: errs.ErrNotFound,
		},
		{
			name:         "success: non-positive quantity prices one unit only",
			actor:        admin,
			req:          queries.ComputePriceRequest{ProductID: memuow.BandProductID, Quantity: -1},
			expectType:   "retailer",
			expectUnit:   "67465",
			expectNoLine: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memuow.NewStore()
			store.SeedCatalog()
			store.PutCustomerType(wholesaler.ID, user.CustomerTypeWholesaler)
			store.PutDiscount(pricing.DiscountRule{
				ID:            1,
				Name:          "wholesale making",
				Kind:          pricing.DiscountKindPercentage,
				Value:         decimal.NewFromInt(10),
				CustomerTypes: []user.CustomerType{user.CustomerTypeWholesaler},
				CreatedAt:     createdAt,
			})

			quote, err := newPricingQueries(store).ComputePrice(context.Background(), tc.actor, tc.req)

			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				assert.Nil(t, quote)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectType, quote.CustomerType)
			assert.True(t, decimal.RequireFromString(tc.expectUnit).Equal(quote.Unit.Total), "unit: %s", quote.Unit.Total)
			assert.Equal(t, memuow.Currency, quote.Unit.Currency)
			if tc.expectNoLine {
				assert.Nil(t, quote.Line)
				return
			}
			require.NotNil(t, quote.Line)
			assert.True(t, decimal.RequireFromString(tc.expectLine).Equal(quote.Line.Total), "line: %s", quote.Line.Total)
		})
	}
}

func TestPricingQueries_ComputePrice_RateUnavailable(t *testing.T) {
	store := memuow.NewStore()
	store.SeedCatalog()
	variantID := int64(51)
	gst := int64(77)
	store.PutCatalogItem(shared.CatalogItemSnapshot{
		ProductID:  5,
		VariantID:  &variantID,
		Name:       "Tennis Bracelet",
		SKU:        "BR-005",
		Active:     true,
		TaxGroupID: &gst,
		Metals: []pricing.MetalComponent{{
			Metal: "gold", Purity: "22k", Tone: "yellow", WeightGrams: decimal.NewFromInt(12),
		}},
		Diamonds: []pricing.DiamondSpec{{
			Type: "natural", Shape: "round", Color: "G", Clarity: "VS1", Carat: decimal.RequireFromString("1.5"),
		}},
	})
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	_, err := newPricingQueries(store).ComputePrice(context.Background(), admin, queries.ComputePriceRequest{ProductID: 5, VariantID: &variantID})

	var rue *pricing.RateUnavailableError
	require.ErrorAs(t, err, &rue)
	assert.Equal(t, "diamond", rue.Kind)
	assert.ErrorIs(t, err, errs.ErrRateUnavailable)
}

func TestPricingQueries_ComputePrice_UntaxedProduct(t *testing.T) {
	store := memuow.NewStore()
	store.SeedCatalog()
	store.PutCatalogItem(shared.CatalogItemSnapshot{
		ProductID: 6,
		Name:      "Gold Coin",
		SKU:       "COIN-006",
		Active:    true,
		Metals: []pricing.MetalComponent{{
			Metal: "gold", Purity: "22k", Tone: "yellow", WeightGrams: decimal.NewFromInt(10),
		}},
	})
	fixed := decimal.NewFromInt(500)
	policy, err := pricing.NewMakingChargePolicy([]pricing.ChargeType{pricing.ChargeTypeFixed}, &fixed, nil)
	require.NoError(t, err)
	store.PutPolicy(6, policy)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	quote, err := newPricingQueries(store).ComputePrice(context.Background(), admin, queries.ComputePriceRequest{ProductID: 6})

	require.NoError(t, err)
	assert.True(t, quote.Unit.Tax.IsZero(), "tax: %s", quote.Unit.Tax)
	assert.True(t, decimal.NewFromInt(65500).Equal(quote.Unit.Total), "total: %s", quote.Unit.Total)
}

func TestPricingQueries_ComputePrice_UntypedCustomerGetsDefault(t *testing.T) {
	store := memuow.NewStore()
	store.SeedCatalog()
	walkIn := user.NewActor(uuid.New(), user.RoleCustomer)

	quote, err := newPricingQueries(store).ComputePrice(context.Background(), walkIn, queries.ComputePriceRequest{ProductID: memuow.BandProductID})

	require.NoError(t, err)
	assert.Equal(t, "retailer", quote.CustomerType)
}

func TestPricingQueries_ComputePrice_DiscountCode(t *testing.T) {
	store := memuow.NewStore()
	store.SeedCatalog()
	store.PutDiscount(pricing.DiscountRule{
		ID:            2,
		Name:          "festive",
		Code:          "DIWALI",
		Kind:          pricing.DiscountKindFixed,
		Value:         decimal.NewFromInt(800),
		CustomerTypes: []user.CustomerType{user.CustomerTypeRetailer},
		CreatedAt:     createdAt,
	})
	admin := user.NewActor(uuid.New(), user.RoleAdmin)
	qs := newPricingQueries(store)

	without, err := qs.ComputePrice(context.Background(), admin, queries.ComputePriceRequest{ProductID: memuow.BandProductID})
	require.NoError(t, err)
	assert.True(t, without.Unit.Discount.IsZero())

	with, err := qs.ComputePrice(context.Background(), admin, queries.ComputePriceRequest{ProductID: memuow.BandProductID, DiscountCodes: []string{"diwali"}})
	require.NoError(t, err)
	// capped at the 500 making charge
	assert.True(t, decimal.NewFromInt(500).Equal(with.Unit.Discount), "discount: %s", with.Unit.Discount)
	require.NotNil(t, with.Unit.DiscountRuleID)
	assert.Equal(t, int64(2), *with.Unit.DiscountRuleID)
}
