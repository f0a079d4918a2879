package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for the dispatch lifecycle. It owns the status
// state machine, the append-only status history, and the derived fields
// (total amount, dispatch time).
//
// Invariants:
//   - totalAmount always equals the sum of price*quantity over the items;
//     it is recomputed on every mutation of the items, never trusted from input
//   - statusHistory gains exactly one entry per transition, starting with the
//     initial Prep entry at creation, non-decreasing in time
//   - dispatchTime is nil until a partner is bound, then equals
//     prepTime + partner ETA as of the assignment (or a later prepTime/ETA edit)
//   - edits and deletion are only possible while the status is Prep
type Order struct {
	id           kernel.UUID
	orderID      string
	items        []Item
	prepTime     int
	status       Status
	partnerID    *kernel.UUID
	dispatchTime *int
	customer     CustomerInfo
	totalAmount  float64
	history      []HistoryEntry
	createdBy    kernel.UUID
	createdAt    time.Time
	updatedAt    time.Time
	version      int

	isConstructed bool
}

// NewOrder creates an order in Prep status with its initial history entry and
// computed total. The orderID is the human-readable identifier (see
// GenerateOrderID); createdBy is the manager issuing the order.
func NewOrder(
	id kernel.UUID,
	orderID string,
	items []Item,
	prepTime int,
	customer CustomerInfo,
	createdBy kernel.UUID,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Prep,
		customer:      customer,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderID(orderID),
		o.setItems(items),
		o.setPrepTime(prepTime),
		o.setCreatedBy(createdBy),
	); err != nil {
		return nil, err
	}

	o.computeTotal()
	o.appendHistory(Prep, createdBy, now)

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its history
// and optimistic-lock version.
func RestoreOrder(
	id kernel.UUID,
	orderID string,
	items []Item,
	prepTime int,
	status Status,
	partnerID *kernel.UUID,
	dispatchTime *int,
	customer CustomerInfo,
	history []HistoryEntry,
	createdBy kernel.UUID,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		partnerID:     partnerID,
		dispatchTime:  dispatchTime,
		customer:      customer,
		history:       history,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderID(orderID),
		o.setItems(items),
		o.setPrepTime(prepTime),
		o.setCreatedBy(createdBy),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.computeTotal()

	return o, nil
}

// Validate ensures the order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// OrderID returns the human-readable order identifier.
func (o *Order) OrderID() string { return o.orderID }

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// PrepTime returns the kitchen preparation time in minutes.
func (o *Order) PrepTime() int { return o.prepTime }

// Status returns the current lifecycle state.
func (o *Order) Status() Status { return o.status }

// PartnerID returns the bound delivery partner's ID, or nil if unassigned.
func (o *Order) PartnerID() *kernel.UUID { return o.partnerID }

// DispatchTime returns the advisory dispatch estimate in minutes, or nil
// while no partner is bound.
func (o *Order) DispatchTime() *int { return o.dispatchTime }

// Customer returns the delivery destination details.
func (o *Order) Customer() CustomerInfo { return o.customer }

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() float64 { return o.totalAmount }

// History returns a copy of the append-only status audit trail.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedBy returns the manager who created the order.
func (o *Order) CreatedBy() kernel.UUID { return o.createdBy }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the last-mutation timestamp.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Version returns the optimistic-lock version loaded from persistence.
func (o *Order) Version() int { return o.version }

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// IsActive reports whether the order has not reached the terminal status.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// IsBoundTo reports whether the given user is the order's bound partner.
// Comparison is by identity, not by mere presence of a binding.
func (o *Order) IsBoundTo(userID kernel.UUID) bool {
	return o.partnerID != nil && o.partnerID.IsEqual(userID)
}

// AdvanceStatus moves the order exactly one step forward in the lifecycle and
// appends the matching history entry. Illegal moves fail with a conflict and
// leave the order untouched. Releasing the partner on the Delivered step is
// coordinated by the caller inside the same transaction, since it mutates the
// partner aggregate.
func (o *Order) AdvanceStatus(target Status, actor kernel.UUID, now time.Time) error {
	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendHistory(newStatus, actor, now)
	o.updatedAt = now
	return nil
}

// AssignPartner binds a delivery partner and derives the dispatch estimate
// from the order's prep time and the partner's ETA. Assignment is one-shot:
// a second bind fails with a conflict.
func (o *Order) AssignPartner(partnerID kernel.UUID, partnerETA int, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}
	if o.partnerID != nil {
		return errs.NewConflictError("order already has a delivery partner assigned")
	}

	o.partnerID = &partnerID
	o.computeDispatchTime(partnerETA)
	o.updatedAt = now
	return nil
}

// UpdateDetails replaces the editable fields (items, prep time, customer
// info) while the order is still in Prep. The total is recomputed, and when a
// partner is bound the dispatch estimate is recomputed against partnerETA.
func (o *Order) UpdateDetails(items []Item, prepTime int, customer CustomerInfo, partnerETA int, now time.Time) error {
	if err := o.ensureEditable(); err != nil {
		return err
	}

	if err := errors.Join(
		o.setItems(items),
		o.setPrepTime(prepTime),
	); err != nil {
		return err
	}

	o.customer = customer
	o.computeTotal()
	if o.partnerID != nil {
		o.computeDispatchTime(partnerETA)
	}
	o.updatedAt = now
	return nil
}

// RecomputeDispatchTime refreshes the dispatch estimate after the bound
// partner changed their ETA. Only meaningful before the order is on route;
// later calls are rejected as conflicts.
func (o *Order) RecomputeDispatchTime(partnerETA int, now time.Time) error {
	if o.partnerID == nil {
		return errs.NewConflictError("order has no delivery partner assigned")
	}
	if o.status != Prep && o.status != Picked {
		return errs.NewConflictError("dispatch time is fixed once the order is on route")
	}

	o.computeDispatchTime(partnerETA)
	o.updatedAt = now
	return nil
}

// EnsureDeletable fails with a conflict once the order has been picked up.
func (o *Order) EnsureDeletable() error {
	if o.status != Prep {
		return errs.NewConflictError("cannot delete order after it has been picked up")
	}
	return nil
}

func (o *Order) ensureEditable() error {
	if o.status != Prep {
		return errs.NewConflictError("cannot modify after pickup")
	}
	return nil
}

// computeTotal derives totalAmount from the line items. Called explicitly by
// every mutation that touches items, never as a hidden save hook.
func (o *Order) computeTotal() {
	var total float64
	for _, item := range o.items {
		total += item.Subtotal()
	}
	o.totalAmount = total
}

// computeDispatchTime derives the advisory estimate. It is a plain sum of two
// supplied durations and carries no routing semantics.
func (o *Order) computeDispatchTime(partnerETA int) {
	dispatch := o.prepTime + partnerETA
	o.dispatchTime = &dispatch
}

// appendHistory records a status entry. History is append-only; nothing ever
// rewrites or removes entries.
func (o *Order) appendHistory(status Status, actor kernel.UUID, now time.Time) {
	o.history = append(o.history, NewHistoryEntry(status, now, actor))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setPrepTime(prepTime int) error {
	if prepTime < 1 {
		return errs.NewValueIsInvalidErrorWithCause("prepTime",
			fmt.Errorf("%d is not at least one minute", prepTime))
	}
	o.prepTime = prepTime
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}
