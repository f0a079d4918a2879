package commands

import (
	"context"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/services"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles lifecycle transitions, exactly one
// step at a time. A delivery partner may only advance the order bound to
// them; managers may advance any order. Reaching the terminal state releases
// the bound partner in the same transaction.
//
// Two racing transitions on one order are serialized by the aggregate's
// optimistic version: the loser's Update fails with a version error and the
// whole transaction rolls back.
type UpdateOrderStatusCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
	notifier    ports.NotificationPort
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
		notifier:    notifier,
	}
}

// Handle processes the status transition command and returns the updated order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.ActorRole() == user.DeliveryPartner && !aggregate.IsBoundTo(cmd.ActorID()) {
		return nil, errs.NewForbiddenError("order is assigned to a different delivery partner")
	}

	// The release on the terminal step applies to the bound partner, not the
	// actor: a manager completing an order still frees its partner.
	var partner *user.User
	if aggregate.PartnerID() != nil {
		partner, err = uow.UserRepository().Get(ctx, *aggregate.PartnerID())
		if err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	if cmd.Target() == order.Delivered {
		err = h.coordinator.CompleteDelivery(aggregate, partner, cmd.ActorID(), now)
	} else {
		err = aggregate.AdvanceStatus(cmd.Target(), cmd.ActorID(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if cmd.Target() == order.Delivered && partner != nil {
		if err = uow.UserRepository().Update(ctx, partner); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	rooms := []string{ports.RoomManagers}
	if partner != nil {
		rooms = append(rooms, ports.UserRoom(partner.ID()))
	}
	h.notifier.Publish(
		ports.EventOrderStatusUpdated,
		ports.BroadcastAndRooms(rooms...),
		presenter.OrderToView(aggregate),
	)
	if cmd.Target() == order.Delivered && partner != nil {
		h.notifier.Publish(
			ports.EventPartnerAvailabilityChange,
			ports.Broadcast(),
			presenter.UserToAvailabilityView(partner),
		)
	}

	return aggregate, nil
}
