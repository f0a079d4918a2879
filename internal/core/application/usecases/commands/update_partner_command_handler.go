package commands

import (
	"context"
	"errors"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/application/presenter"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// UpdatePartnerCommandHandler handles partner profile updates. When the ETA
// changes while the partner is mid-delivery, the bound order's dispatch
// estimate is recomputed in the same transaction so the two never disagree.
type UpdatePartnerCommandHandler struct {
	uowFactory UoWFactory
	notifier   ports.NotificationPort
}

// NewUpdatePartnerCommandHandler creates a handler for partner profile updates.
func NewUpdatePartnerCommandHandler(uowFactory UoWFactory, notifier ports.NotificationPort) UpdatePartnerCommandHandler {
	return UpdatePartnerCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the partner profile update and returns the updated user.
func (h UpdatePartnerCommandHandler) Handle(ctx context.Context, cmd UpdatePartnerCommand) (*user.User, error) {
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

	if cmd.Username() != "" {
		if err = partner.Rename(cmd.Username()); err != nil {
			return nil, err
		}
	}

	etaChanged := false
	if cmd.EstimatedDeliveryTime() != 0 && cmd.EstimatedDeliveryTime() != partner.EstimatedDeliveryTime() {
		if err = partner.SetEstimatedDeliveryTime(cmd.EstimatedDeliveryTime()); err != nil {
			return nil, err
		}
		etaChanged = true
	}

	if err = uow.UserRepository().Update(ctx, partner); err != nil {
		return nil, err
	}

	var boundOrderView *presenter.OrderView
	if etaChanged && partner.CurrentOrderID() != nil {
		bound, err := uow.OrderRepository().Get(ctx, *partner.CurrentOrderID())
		if err != nil {
			return nil, err
		}

		err = bound.RecomputeDispatchTime(partner.EstimatedDeliveryTime(), time.Now().UTC())
		switch {
		case errors.Is(err, errs.ErrConflict):
			// On-route orders keep their fixed estimate.
		case err != nil:
			return nil, err
		default:
			if err = uow.OrderRepository().Update(ctx, bound); err != nil {
				return nil, err
			}
			view := presenter.OrderToView(bound)
			boundOrderView = &view
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(
		ports.EventPartnerUpdated,
		ports.BroadcastAndRooms(ports.UserRoom(partner.ID())),
		presenter.UserToView(partner),
	)
	if boundOrderView != nil {
		h.notifier.Publish(ports.EventOrderUpdated, ports.Broadcast(), *boundOrderView)
	}

	return partner, nil
}
