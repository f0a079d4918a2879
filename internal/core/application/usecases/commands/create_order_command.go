package commands

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is the raw line-item payload carried by order commands before it
// is validated into a domain Item.
type ItemInput struct {
	Name     string
	Quantity int
	Price    float64
}

// CustomerInput is the raw delivery-destination payload carried by order
// commands.
type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateOrderCommand represents a manager's request to create a new order.
// Item and customer validation happens in the domain constructors; the command
// only checks the identifiers and that the payload is present.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), items, 20, customer, managerID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, notifier)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	id        kernel.UUID
	items     []ItemInput
	prepTime  int
	customer  CustomerInput
	createdBy kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
func NewCreateOrderCommand(
	id kernel.UUID,
	items []ItemInput,
	prepTime int,
	customer CustomerInput,
	createdBy kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		items:    items,
		prepTime: prepTime,
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setCreatedBy(createdBy),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ID returns the unique identifier for the new order.
func (c CreateOrderCommand) ID() kernel.UUID {
	return c.id
}

// Items returns the raw line-item payload.
func (c CreateOrderCommand) Items() []ItemInput {
	return c.items
}

// PrepTime returns the kitchen preparation time in minutes.
func (c CreateOrderCommand) PrepTime() int {
	return c.prepTime
}

// Customer returns the raw delivery-destination payload.
func (c CreateOrderCommand) Customer() CustomerInput {
	return c.customer
}

// CreatedBy returns the manager issuing the order.
func (c CreateOrderCommand) CreatedBy() kernel.UUID {
	return c.createdBy
}

func (c *CreateOrderCommand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

func (c *CreateOrderCommand) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}

	c.createdBy = createdBy
	return nil
}

// toDomainItems validates raw item inputs into domain line items.
func toDomainItems(inputs []ItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.Name, input.Quantity, input.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
