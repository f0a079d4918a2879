package user

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// DefaultEstimatedDeliveryTime is the ETA in minutes assigned to a delivery
// partner when none is supplied at creation.
const DefaultEstimatedDeliveryTime = 30

const minUsernameLength = 3

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is the identity aggregate. A user is either a manager or a delivery
// partner; the delivery-partner-only state (estimated delivery time,
// availability, current order binding) lives here as well.
//
// Invariants:
//   - email and username are non-empty; username has at least three characters
//   - role is valid and immutable after construction
//   - a delivery partner holds currentOrderID != nil iff they are mid-delivery
//     on exactly one order, and isAvailable is false whenever currentOrderID
//     is set
//   - only the password hash is ever stored, never the plaintext secret
type User struct {
	id                    kernel.UUID
	username              string
	email                 string
	passwordHash          string
	role                  Role
	estimatedDeliveryTime int
	isAvailable           bool
	currentOrderID        *kernel.UUID
	version               int

	isConstructed bool
}

// NewUser creates a user with validated identity fields. Delivery partners
// start available with no bound order; estimatedDeliveryTime falls back to
// DefaultEstimatedDeliveryTime when zero. The passwordHash must already be a
// one-way hash; this constructor never sees a plaintext secret.
func NewUser(id kernel.UUID, username, email, passwordHash string, role Role, estimatedDeliveryTime int) (*User, error) {
	u := &User{
		isAvailable:   true,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if u.role == DeliveryPartner {
		if estimatedDeliveryTime == 0 {
			estimatedDeliveryTime = DefaultEstimatedDeliveryTime
		}
		if err := u.setEstimatedDeliveryTime(estimatedDeliveryTime); err != nil {
			return nil, err
		}
	}

	return u, nil
}

// RestoreUser reconstructs a user from persistence, including the
// optimistic-lock version. It re-checks the availability invariant so
// drifted rows are caught at load time.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	role Role,
	estimatedDeliveryTime int,
	isAvailable bool,
	currentOrderID *kernel.UUID,
	version int,
) (*User, error) {
	u := &User{
		isAvailable:           isAvailable,
		currentOrderID:        currentOrderID,
		estimatedDeliveryTime: estimatedDeliveryTime,
		version:               version,
		isConstructed:         true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if currentOrderID != nil && isAvailable {
		return nil, errs.NewValueIsInvalidErrorWithCause("isAvailable",
			errors.New("partner with a current order cannot be available"))
	}

	return u, nil
}

// Validate ensures the user was created through a factory function.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID { return u.id }

// Username returns the unique display name.
func (u *User) Username() string { return u.username }

// Email returns the unique login email.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored one-way hash of the user's secret.
func (u *User) PasswordHash() string { return u.passwordHash }

// Role returns the user's immutable role.
func (u *User) Role() Role { return u.role }

// EstimatedDeliveryTime returns the partner's advertised ETA in minutes.
func (u *User) EstimatedDeliveryTime() int { return u.estimatedDeliveryTime }

// IsAvailable reports whether the partner can accept a new assignment.
func (u *User) IsAvailable() bool { return u.isAvailable }

// CurrentOrderID returns the order the partner is bound to, or nil.
func (u *User) CurrentOrderID() *kernel.UUID { return u.currentOrderID }

// Version returns the optimistic concurrency version loaded from storage.
func (u *User) Version() int { return u.version }

// IsManager reports whether the user holds the manager role.
func (u *User) IsManager() bool { return u.role == Manager }

// IsDeliveryPartner reports whether the user holds the delivery partner role.
func (u *User) IsDeliveryPartner() bool { return u.role == DeliveryPartner }

// MarkBusy binds the partner to an order. Fails with a conflict unless the
// partner is available and holds no current order; both conditions are
// checked, not just one.
func (u *User) MarkBusy(orderID kernel.UUID) error {
	if u.role != DeliveryPartner {
		return errs.NewConflictError("only delivery partners can take orders")
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if !u.isAvailable || u.currentOrderID != nil {
		return errs.NewConflictError("partner not available")
	}

	u.isAvailable = false
	u.currentOrderID = &orderID
	return nil
}

// Release unbinds the partner from their current order and makes them
// available again. Releasing an unbound partner is a no-op.
func (u *User) Release() {
	u.isAvailable = true
	u.currentOrderID = nil
}

// SetAvailability toggles the partner's readiness for new assignments.
// The toggle is rejected while an order is bound: release happens through
// delivery completion or order deletion, never by hand.
func (u *User) SetAvailability(available bool) error {
	if u.role != DeliveryPartner {
		return errs.NewConflictError("only delivery partners have availability")
	}
	if u.currentOrderID != nil {
		return errs.NewConflictError("cannot change availability while delivering an order")
	}

	u.isAvailable = available
	return nil
}

// Rename updates the username, applying the same validation as creation.
func (u *User) Rename(username string) error {
	return u.setUsername(username)
}

// SetEstimatedDeliveryTime updates the partner's advertised ETA.
func (u *User) SetEstimatedDeliveryTime(minutes int) error {
	if u.role != DeliveryPartner {
		return errs.NewConflictError("only delivery partners have an estimated delivery time")
	}
	return u.setEstimatedDeliveryTime(minutes)
}

// EnsureDeletable fails with a conflict while the partner is mid-delivery.
// Enforced at deletion time so an active order is never orphaned.
func (u *User) EnsureDeletable() error {
	if u.currentOrderID != nil {
		return errs.NewConflictError("cannot delete partner with an active order")
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return errs.NewValueIsInvalidErrorWithCause("username",
			fmt.Errorf("must be at least %d characters", minUsernameLength))
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = strings.ToLower(email)
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setEstimatedDeliveryTime(minutes int) error {
	if minutes < 1 {
		return errs.NewValueIsInvalidErrorWithCause("estimatedDeliveryTime",
			fmt.Errorf("%d is not a positive number of minutes", minutes))
	}
	u.estimatedDeliveryTime = minutes
	return nil
}
