package ports

import (
	"context"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates
// (managers and delivery partners).
type UserRepository interface {
	// Add persists a new user. Email and username uniqueness are enforced by
	// the storage layer in the same statement; a collision on either fails
	// with a conflict.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user by login email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// GetBusyPartners retrieves all delivery partners currently bound to an
	// order. Used by the availability reconciliation sweep.
	GetBusyPartners(ctx context.Context) ([]*user.User, error)

	// Delete removes a user. Callers enforce the no-active-order rule first.
	Delete(ctx context.Context, id kernel.UUID) error
}
