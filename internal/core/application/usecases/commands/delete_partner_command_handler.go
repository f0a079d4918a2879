package commands

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// DeletePartnerCommandHandler handles partner removal. A partner with an
// active order cannot be deleted; the order must complete or be deleted first.
type DeletePartnerCommandHandler struct {
	uowFactory UserUoWFactory
	notifier   ports.NotificationPort
}

// NewDeletePartnerCommandHandler creates a handler for partner removal.
func NewDeletePartnerCommandHandler(uowFactory UserUoWFactory, notifier ports.NotificationPort) DeletePartnerCommandHandler {
	return DeletePartnerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the partner removal command.
func (h DeletePartnerCommandHandler) Handle(ctx context.Context, cmd DeletePartnerCommand) error {
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

	partner, err := uow.UserRepository().Get(ctx, cmd.PartnerID())
	if err != nil {
		return err
	}

	if err = partner.EnsureDeletable(); err != nil {
		return err
	}

	if err = uow.UserRepository().Delete(ctx, cmd.PartnerID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.Publish(
		ports.EventPartnerDeleted,
		ports.BroadcastAndRooms(ports.RoomManagers),
		presenter.UserToView(partner),
	)

	return nil
}
