package services

import (
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// AssignmentCoordinator is the domain service binding delivery partners to
// orders. It owns the mutual-exclusion rule that a partner carries at most
// one active order, and keeps the two sides of the binding consistent.
//
// The coordinator mutates both aggregates in memory; the caller persists them
// inside one unit of work so the four-field effect (order partner binding,
// dispatch estimate, partner availability, partner current order) commits or
// rolls back as a whole.
type AssignmentCoordinator struct{}

// NewAssignmentCoordinator creates a new AssignmentCoordinator instance.
func NewAssignmentCoordinator() AssignmentCoordinator {
	return AssignmentCoordinator{}
}

// Assign binds a partner to an order. Preconditions, first failure wins:
//
//  1. the order must not already have a bound partner (conflict)
//  2. the partner must hold the delivery partner role (not found; the
//     candidate pool only contains partners, so anything else is a dangling
//     reference)
//  3. the partner must be available and hold no current order (conflict)
//
// On success the order carries the partner binding and the derived dispatch
// estimate, and the partner is busy on this order.
func (AssignmentCoordinator) Assign(o *order.Order, partner *user.User, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := partner.Validate(); err != nil {
		return err
	}

	if o.PartnerID() != nil {
		return errs.NewConflictError("order already has a delivery partner assigned")
	}
	if !partner.IsDeliveryPartner() {
		return errs.NewObjectNotFoundError("deliveryPartnerId", partner.ID().String())
	}

	if err := partner.MarkBusy(o.ID()); err != nil {
		return err
	}

	return o.AssignPartner(partner.ID(), partner.EstimatedDeliveryTime(), now)
}

// CompleteDelivery advances the order to Delivered and releases the bound
// partner in the same step. The caller persists both aggregates in one unit
// of work; a partially applied release is a correctness violation.
func (AssignmentCoordinator) CompleteDelivery(o *order.Order, partner *user.User, actorID kernel.UUID, now time.Time) error {
	if err := o.AdvanceStatus(order.Delivered, actorID, now); err != nil {
		return err
	}
	if partner != nil {
		partner.Release()
	}
	return nil
}

// ReleaseForDeletion frees the bound partner of an order that is about to be
// deleted pre-pickup. Safe to call when no partner is bound.
func (AssignmentCoordinator) ReleaseForDeletion(o *order.Order, partner *user.User) error {
	if err := o.EnsureDeletable(); err != nil {
		return err
	}
	if partner != nil {
		partner.Release()
	}
	return nil
}
