package commands

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// UpdateAvailabilityCommandHandler handles the availability toggle. The
// domain rejects the toggle while an order is bound: release only ever
// happens through delivery completion or order deletion.
type UpdateAvailabilityCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.NotificationPort
}

// NewUpdateAvailabilityCommandHandler creates a handler for availability toggles.
func NewUpdateAvailabilityCommandHandler(uowFactory UserUoWFactory, notifier ports.NotificationPort) UpdateAvailabilityCommandHandler {
	return UpdateAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the availability toggle and returns the updated user.
func (h UpdateAvailabilityCommandHandler) Handle(ctx context.Context, cmd UpdateAvailabilityCommand) (*user.User, error) {
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

	partner, err := uow.UserRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return nil, err
	}

	if err = partner.SetAvailability(cmd.Available()); err != nil {
		return nil, err
	}

	if err = uow.UserRepository().Update(ctx, partner); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(
		ports.EventPartnerAvailabilityChange,
		ports.Broadcast(),
		presenter.UserToAvailabilityView(partner),
	)

	return partner, nil
}
