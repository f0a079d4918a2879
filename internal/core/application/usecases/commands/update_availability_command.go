package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrUpdateAvailabilityCommandIsNotConstructed = errors.New(
	"UpdateAvailabilityCommand must be created via NewUpdateAvailabilityCommand constructor",
)

// UpdateAvailabilityCommand represents a delivery partner toggling their own
// readiness for new assignments.
type UpdateAvailabilityCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewUpdateAvailabilityCommand creates a command to toggle partner availability.
func NewUpdateAvailabilityCommand(partnerID kernel.UUID, available bool) (UpdateAvailabilityCommand, error) {
	cmd := UpdateAvailabilityCommand{
		available: available,
		guard:     guard.NewConstructorGuard(),
	}

	if err := cmd.setPartnerID(partnerID); err != nil {
		return UpdateAvailabilityCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAvailabilityCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner toggling availability.
func (c UpdateAvailabilityCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Available returns the requested availability state.
func (c UpdateAvailabilityCommand) Available() bool {
	return c.available
}

func (c *UpdateAvailabilityCommand) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	c.partnerID = partnerID
	return nil
}
