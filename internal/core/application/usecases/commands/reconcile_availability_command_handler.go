package commands

import (
	"context"
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// ReconcileAvailabilityCommandHandler runs the availability sweep. Each
// repaired partner is released and persisted within the sweep's transaction.
type ReconcileAvailabilityCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationPort
}

// NewReconcileAvailabilityCommandHandler creates a handler for the sweep.
func NewReconcileAvailabilityCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) ReconcileAvailabilityCommandHandler {
	return ReconcileAvailabilityCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the sweep and returns the partners that were released.
func (h ReconcileAvailabilityCommandHandler) Handle(
	ctx context.Context,
	cmd ReconcileAvailabilityCommand,
) ([]*user.User, error) {
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

	busy, err := uow.UserRepository().GetBusyPartners(ctx)
	if err != nil {
		return nil, err
	}

	var released []*user.User
	for _, partner := range busy {
		_, err = uow.OrderRepository().GetActiveByPartner(ctx, partner.ID())
		if err == nil {
			continue
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return nil, err
		}

		partner.Release()
		if err = uow.UserRepository().Update(ctx, partner); err != nil {
			return nil, err
		}
		released = append(released, partner)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	for _, partner := range released {
		h.notifier.Publish(
			ports.EventPartnerAvailabilityChange,
			ports.Broadcast(),
			presenter.UserToAvailabilityView(partner),
		)
	}

	return released, nil
}
