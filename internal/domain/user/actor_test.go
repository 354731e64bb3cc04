//go:build unit

package user_test

import (
	"testing"

	"gin-jewelry-b2b/internal/domain/user"
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownedResource struct{ owner uuid.UUID }

func (o ownedResource) OwnerID() uuid.UUID { return o.owner }

func TestAuthorize(t *testing.T) {
	ownerID := uuid.New()
	res := ownedResource{owner: ownerID}

	owner := user.NewActor(ownerID, user.RoleCustomer)
	stranger := user.NewActor(uuid.New(), user.RoleCustomer)
	admin := user.NewActor(uuid.New(), user.RoleAdmin)

	cases := []struct {
		name       string
		actor      user.Actor
		capability user.Capability
		allowed    bool
	}{
		{name: "owner can view", actor: owner, capability: user.CapViewOwned, allowed: true},
		{name: "admin can view", actor: admin, capability: user.CapViewOwned, allowed: true},
		{name: "other customer cannot view", actor: stranger, capability: user.CapViewOwned},
		{name: "owner can act as customer", actor: owner, capability: user.CapCustomerWrite, allowed: true},
		{name: "admin cannot act as customer", actor: admin, capability: user.CapCustomerWrite},
		{name: "other customer cannot act", actor: stranger, capability: user.CapCustomerWrite},
		{name: "admin can act as admin", actor: admin, capability: user.CapAdminWrite, allowed: true},
		{name: "owner cannot act as admin", actor: owner, capability: user.CapAdminWrite},
		{name: "unknown capability denied", actor: admin, capability: user.Capability("bogus")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := user.Authorize(tc.actor, tc.capability, res)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrForbidden)
		})
	}
}

func TestNewRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		for _, s := range []string{"customer", "admin", "system"} {
			role, err := user.NewRole(s)
			require.NoError(t, err)
			assert.Equal(t, s, role.String())
		}
	})

	t.Run("legacy or unknown roles are rejected", func(t *testing.T) {
		for _, s := range []string{"", "viewer", "operator", "ADMIN"} {
			_, err := user.NewRole(s)
			assert.ErrorIs(t, err, user.ErrInvalidRole, s)
		}
	})
}

func TestNewCustomerType(t *testing.T) {
	ct, err := user.NewCustomerType("wholesaler")
	require.NoError(t, err)
	assert.Equal(t, user.CustomerTypeWholesaler, ct)

	_, err = user.NewCustomerType("distributor")
	assert.ErrorIs(t, err, user.ErrInvalidCustomerType)
}

func TestRequireAdmin(t *testing.T) {
	assert.NoError(t, user.RequireAdmin(user.NewActor(uuid.New(), user.RoleAdmin)))
	assert.ErrorIs(t, user.RequireAdmin(user.NewActor(uuid.New(), user.RoleCustomer)), errs.ErrForbidden)
	assert.ErrorIs(t, user.RequireAdmin(user.NewActor(uuid.New(), user.RoleSystem)), errs.ErrForbidden)
}

func TestRequireOperator(t *testing.T) {
	assert.NoError(t, user.RequireOperator(user.NewActor(uuid.New(), user.RoleAdmin)))
	assert.NoError(t, user.RequireOperator(user.NewActor(uuid.New(), user.RoleSystem)))
	assert.ErrorIs(t, user.RequireOperator(user.NewActor(uuid.New(), user.RoleCustomer)), errs.ErrForbidden)
}
