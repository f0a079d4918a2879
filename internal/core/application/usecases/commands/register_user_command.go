package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

const minPasswordLength = 6

// RegisterUserCommand represents a signup request for a manager or delivery
// partner account. The plaintext password lives only in the command; the
// handler hashes it before the aggregate ever sees it.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	id                    kernel.UUID
	username              string
	email                 string
	password              string
	role                  user.Role
	estimatedDeliveryTime int

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// estimatedDeliveryTime is only meaningful for delivery partners; zero means
// the domain default.
func NewRegisterUserCommand(
	id kernel.UUID,
	username, email, password string,
	role user.Role,
	estimatedDeliveryTime int,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		username:              username,
		email:                 email,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// ID returns the unique identifier for the new user.
func (c RegisterUserCommand) ID() kernel.UUID {
	return c.id
}

// Username returns the requested display name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the login email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext secret. Never logged, never persisted.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

// EstimatedDeliveryTime returns the partner's advertised ETA in minutes.
func (c RegisterUserCommand) EstimatedDeliveryTime() int {
	return c.estimatedDeliveryTime
}

func (c *RegisterUserCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return errs.NewValueIsOutOfRangeError("password length", len(password), minPasswordLength, 72)
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
