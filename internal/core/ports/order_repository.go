// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the
// notification port. These interfaces enable dependency inversion and
// testability.
package ports

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails with a conflict when the
	// human-readable order identifier collides.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. The write is guarded by
	// the aggregate's optimistic-lock version: a concurrent update to the
	// same order makes the stale writer fail with a version error, so two
	// transitions can never both advance past the same boundary.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetActiveByPartner retrieves the partner's current non-terminal order.
	// Returns a not-found error when the partner has no active order.
	GetActiveByPartner(ctx context.Context, partnerID kernel.UUID) (*order.Order, error)

	// Delete removes an order. Callers enforce the pre-pickup rule and
	// release the bound partner within the same unit of work.
	Delete(ctx context.Context, id kernel.UUID) error
}
