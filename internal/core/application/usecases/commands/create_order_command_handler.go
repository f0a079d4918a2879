package commands

import (
	"context"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in the preparation status with a generated human-readable
// identifier and their initial history entry.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationPort
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order creation command and returns the created order.
// The notification fires only after the transaction commits; a failed publish
// never fails the request.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	items, err := toDomainItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomerInfo(cmd.Customer().Name, cmd.Customer().Phone, cmd.Customer().Address)
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(
		cmd.ID(),
		order.GenerateOrderID(),
		items,
		cmd.PrepTime(),
		customer,
		cmd.CreatedBy(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ports.EventOrderCreated, ports.Broadcast(), presenter.OrderToView(aggregate))

	return aggregate, nil
}
