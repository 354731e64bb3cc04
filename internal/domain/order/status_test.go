//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"gin-jewelry-b2b/internal/domain/order"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	s, err := order.NewStatus("stone_setting", " Stone setting ", 35, true, now)
	require.NoError(t, err)
	assert.Equal(t, order.Code("stone_setting"), s.Code())
	assert.Equal(t, "Stone setting", s.Name())
	assert.Equal(t, 35, s.SortOrder())
	assert.True(t, s.IsDefault())

	_, err = order.NewStatus("stone_setting", "", 0, false, now)
	assert.ErrorIs(t, err, order.ErrInvalidStatusName)

	_, err = order.NewStatus("stone_setting", strings.Repeat("n", order.MaxStatusNameLength+1), 0, false, now)
	assert.ErrorIs(t, err, order.ErrInvalidStatusName)

	_, err = order.NewStatus("Stone Setting!", "Stone setting", 0, false, now)
	assert.ErrorIs(t, err, order.ErrInvalidStatusCode)
}

func TestStatus_CheckDeletable(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		status  *order.Status
		inUse   int64
		wantErr error
	}{
		{name: "unused custom status", status: order.ReconstructStatus(10, "engraving", "Engraving", 35, false, now)},
		{name: "default", status: order.ReconstructStatus(10, "engraving", "Engraving", 35, true, now), wantErr: order.ErrDefaultStatus},
		{name: "builtin", status: order.ReconstructStatus(1, order.CodeShipped, "Shipped", 60, false, now), wantErr: order.ErrBuiltinStatus},
		{name: "in use", status: order.ReconstructStatus(10, "engraving", "Engraving", 35, false, now), inUse: 2, wantErr: order.ErrStatusInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.CheckDeletable(tt.inUse)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, errs.ErrConflict)
		})
	}
}

func TestStatus_Mutators(t *testing.T) {
	s := order.ReconstructStatus(10, "engraving", "Engraving", 35, false, time.Now())

	require.NoError(t, s.Rename("Hand engraving"))
	s.Reorder(40)
	s.MarkDefault(true)

	assert.Equal(t, "Hand engraving", s.Name())
	assert.Equal(t, 40, s.SortOrder())
	assert.True(t, s.IsDefault())
	assert.ErrorIs(t, s.Rename("  "), order.ErrInvalidStatusName)
}
