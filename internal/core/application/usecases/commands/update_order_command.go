package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a manager's request to edit an order's items,
// preparation time, or customer details. Edits are only legal while the order
// is still being prepared.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	items    []ItemInput
	prepTime int
	customer CustomerInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit an existing order.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	items []ItemInput,
	prepTime int,
	customer CustomerInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		items:    items,
		prepTime: prepTime,
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement line-item payload.
func (c UpdateOrderCommand) Items() []ItemInput {
	return c.items
}

// PrepTime returns the replacement preparation time in minutes.
func (c UpdateOrderCommand) PrepTime() int {
	return c.prepTime
}

// Customer returns the replacement delivery-destination payload.
func (c UpdateOrderCommand) Customer() CustomerInput {
	return c.customer
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
