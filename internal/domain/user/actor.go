package user

import (
	"gin-jewelry-b2b/internal/pkg/errs"

	"github.com/google/uuid"
)

// Actor is the caller identity supplied by the auth layer. It is trusted as-is.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func NewActor(id uuid.UUID, role Role) Actor {
	return Actor{ID: id, Role: role}
}

func (a Actor) IsAdmin() bool    { return a.Role == RoleAdmin }
func (a Actor) IsCustomer() bool { return a.Role == RoleCustomer }
func (a Actor) IsSystem() bool   { return a.Role == RoleSystem }

type Capability string

const (
	CapViewOwned     Capability = "view_owned"
	CapCustomerWrite Capability = "customer_write"
	CapAdminWrite    Capability = "admin_write"
)

// Owned is anything exclusively owned by one customer.
type Owned interface {
	OwnerID() uuid.UUID
}

// Authorize decides whether actor may exercise capability on resource.
//
//	view_owned:     owner customer or any admin
//	customer_write: owner customer only
//	admin_write:    admin only
func Authorize(actor Actor, capability Capability, resource Owned) error {
	switch capability {
	case CapViewOwned:
		if actor.IsAdmin() || (actor.IsCustomer() && resource.OwnerID() == actor.ID) {
			return nil
		}
	case CapCustomerWrite:
		if actor.IsCustomer() && resource.OwnerID() == actor.ID {
			return nil
		}
	case CapAdminWrite:
		if actor.IsAdmin() {
			return nil
		}
	}
	return errs.ErrForbidden
}

// RequireAdmin covers admin operations that have no owned resource.
func RequireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return errs.ErrForbidden
	}
	return nil
}

// RequireOperator admits admins and system collaborators.
func RequireOperator(actor Actor) error {
	if !actor.IsAdmin() && !actor.IsSystem() {
		return errs.ErrForbidden
	}
	return nil
}
