package commands

import (
	"context"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// UpdateOrderCommandHandler handles order edits. When the order already has a
// bound partner, the partner's current ETA is loaded so the dispatch estimate
// can be recomputed alongside the new prep time.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationPort
}

// NewUpdateOrderCommandHandler creates a handler for order edit operations.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the order edit command and returns the updated order.
// Rejected with a conflict once the order has been picked up.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	partnerETA := user.DefaultEstimatedDeliveryTime
	if aggregate.PartnerID() != nil {
		partner, err := uow.UserRepository().Get(ctx, *aggregate.PartnerID())
		if err != nil {
			return nil, err
		}
		partnerETA = partner.EstimatedDeliveryTime()
	}

	if err = aggregate.UpdateDetails(items, cmd.PrepTime(), customer, partnerETA, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ports.EventOrderUpdated, ports.Broadcast(), presenter.OrderToView(aggregate))

	return aggregate, nil
}
