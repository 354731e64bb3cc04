//go:build unit

package inventory_test

import (
	"errors"
	"testing"

	"gin-jewelry-b2b/internal/domain/inventory"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name      string
		requested int
		stock     inventory.Stock
		wantErr   bool
	}{
		{name: "untracked always passes", requested: 1000, stock: inventory.Untracked()},
		{name: "within stock", requested: 5, stock: inventory.Tracked(10)},
		{name: "exactly stock", requested: 10, stock: inventory.Tracked(10)},
		{name: "over stock", requested: 20, stock: inventory.Tracked(10), wantErr: true},
		{name: "sold out", requested: 1, stock: inventory.Tracked(0), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := inventory.Check(7, tc.requested, tc.stock)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrOutOfStock)
		})
	}
}

func TestOutOfStockError_Detail(t *testing.T) {
	err := inventory.Check(3, 20, inventory.Tracked(10))

	var oos *inventory.OutOfStockError
	require.True(t, errors.As(err, &oos))
	assert.Equal(t, int64(3), oos.VariantID)
	assert.Equal(t, 20, oos.Requested)
	assert.Equal(t, 10, oos.Available)
	assert.Equal(t, "variant 3: requested 20, available 10", oos.Error())
}

func TestCheck_NegativeAvailabilityReportsZero(t *testing.T) {
	err := inventory.Check(3, 1, inventory.Tracked(-2))

	var oos *inventory.OutOfStockError
	require.True(t, errors.As(err, &oos))
	assert.Equal(t, 0, oos.Available)
}
