package user

import (
	"fmt"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// Role describes what a user is allowed to do in the system.
// It is assigned at creation time and is immutable afterwards:
// no operation changes a user's role.
type Role string

const (
	// Manager creates orders, manages delivery partners, and assigns
	// partners to orders.
	Manager Role = "manager"

	// DeliveryPartner is bound to at most one active order at a time and
	// advances that order's status.
	DeliveryPartner Role = "delivery_partner"
)

// RoleFromString parses a role from its wire representation.
func RoleFromString(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the two known roles.
func (r Role) Validate() error {
	switch r {
	case Manager, DeliveryPartner:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}
