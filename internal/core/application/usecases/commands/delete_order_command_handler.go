package commands

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/services"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// DeleteOrderCommandHandler handles order deletion. Deletion is only legal
// before pickup; a bound partner is released in the same transaction so no
// partner stays locked to a vanished order.
type DeleteOrderCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
	notifier    ports.NotificationPort
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
		notifier:    notifier,
	}
}

// Handle processes the order deletion command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var partner *user.User
	if aggregate.PartnerID() != nil {
		partner, err = uow.UserRepository().Get(ctx, *aggregate.PartnerID())
		if err != nil {
			return err
		}
	}

	if err = h.coordinator.ReleaseForDeletion(aggregate, partner); err != nil {
		return err
	}

	if partner != nil {
		if err = uow.UserRepository().Update(ctx, partner); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(ports.EventOrderDeleted, ports.Broadcast(), presenter.OrderToRef(aggregate))
	if partner != nil {
		h.notifier.Publish(
			ports.EventPartnerAvailabilityChange,
			ports.Broadcast(),
			presenter.UserToAvailabilityView(partner),
		)
	}

	return nil
}
