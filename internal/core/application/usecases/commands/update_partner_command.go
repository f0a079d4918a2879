package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand represents a request to update a delivery partner's
// profile: username and advertised ETA. A zero value leaves the field as-is.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID             kernel.UUID
	username              string
	estimatedDeliveryTime int

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand creates a command to update a partner's profile.
func NewUpdatePartnerCommand(partnerID kernel.UUID, username string, estimatedDeliveryTime int) (UpdatePartnerCommand, error) {
	cmd := UpdatePartnerCommand{
		username:              username,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return UpdatePartnerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Username returns the replacement display name, or empty to keep the current one.
func (c UpdatePartnerCommand) Username() string {
	return c.username
}

// EstimatedDeliveryTime returns the replacement ETA in minutes, or zero to
// keep the current one.
func (c UpdatePartnerCommand) EstimatedDeliveryTime() int {
	return c.estimatedDeliveryTime
}

func (c *UpdatePartnerCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
