package user

import "errors"

var (
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidCustomerType = errors.New("invalid customer type")
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
	// RoleSystem is carried by service tokens of external collaborators such as payment capture.
	RoleSystem   Role = "system"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleSystem:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// CustomerType selects which making-charge discount rules apply.
type CustomerType string

const (
	CustomerTypeRetailer   CustomerType = "retailer"
	CustomerTypeWholesaler CustomerType = "wholesaler"
)

func (t CustomerType) String() string {
	return string(t)
}

func (t CustomerType) IsValid() bool {
	switch t {
	case CustomerTypeRetailer, CustomerTypeWholesaler:
		return true
	default:
		return false
	}
}

func NewCustomerType(s string) (CustomerType, error) {
	t := CustomerType(s)
	if !t.IsValid() {
		return "", ErrInvalidCustomerType
	}
	return t, nil
}
