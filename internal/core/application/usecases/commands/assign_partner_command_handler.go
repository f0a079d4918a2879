package commands

import (
	"context"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/services"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// AssignPartnerCommandHandler orchestrates the partner assignment process.
// The order gains the partner binding and the dispatch estimate, the partner
// loses availability and gains the current order, and all four fields commit
// in a single transaction; no interleaving of two assignments can leave a
// partner on two orders.
type AssignPartnerCommandHandler struct {
	uowFactory  UoWFactory
	coordinator services.AssignmentCoordinator
	notifier    ports.NotificationPort
}

// NewAssignPartnerCommandHandler creates a handler for assignment operations.
func NewAssignPartnerCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) AssignPartnerCommandHandler {
	return AssignPartnerCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewAssignmentCoordinator(),
		notifier:    notifier,
	}
}

// Handle processes the assignment command and returns the updated order.
// Precondition failures surface in a fixed sequence: missing order, order
// already assigned, missing partner, partner unavailable. The order-side
// conflict is checked before the partner is even loaded so a double
// assignment never reports a partner problem.
func (h AssignPartnerCommandHandler) Handle(ctx context.Context, cmd AssignPartnerCommand) (*order.Order, error) {
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
	if aggregate.PartnerID() != nil {
		return nil, errs.NewConflictError("order already has a delivery partner assigned")
	}

	partner, err := uow.UserRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = h.coordinator.Assign(aggregate, partner, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Update(ctx, partner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	orderView := presenter.OrderToView(aggregate)
	h.notifier.Publish(
		ports.EventOrderAssigned,
		ports.BroadcastAndRooms(ports.RoomManagers, ports.UserRoom(partner.ID())),
		orderView,
	)
	h.notifier.Publish(
		ports.EventPartnerAvailabilityChange,
		ports.Broadcast(),
		presenter.UserToAvailabilityView(partner),
	)

	return aggregate, nil
}
