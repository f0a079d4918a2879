package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrReconcileAvailabilityCommandIsNotConstructed = errors.New(
	"ReconcileAvailabilityCommand must be created via NewReconcileAvailabilityCommand constructor",
)

// ReconcileAvailabilityCommand triggers a sweep over busy delivery partners,
// releasing any whose bound order no longer exists or has already reached the
// terminal state. The sweep repairs drift left behind by crashes between the
// order write and the partner write outside the unit of work, or by manual
// data surgery.
type ReconcileAvailabilityCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewReconcileAvailabilityCommand creates a command to run the availability sweep.
func NewReconcileAvailabilityCommand() ReconcileAvailabilityCommand {
	return ReconcileAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ReconcileAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrReconcileAvailabilityCommandIsNotConstructed)
}
