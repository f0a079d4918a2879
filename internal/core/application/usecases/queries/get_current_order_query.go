package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetCurrentOrderQueryIsNotConstructed = errors.New(
	"GetCurrentOrderQuery must be created via NewGetCurrentOrderQuery constructor",
)

// GetCurrentOrderQuery retrieves the delivery partner's active order: the one
// they are bound to that has not yet been delivered.
type GetCurrentOrderQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentOrderQuery creates a query for a partner's active order.
func NewGetCurrentOrderQuery(partnerID kernel.UUID) (GetCurrentOrderQuery, error) {
	query := GetCurrentOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetCurrentOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentOrderQueryIsNotConstructed)
}

// PartnerID returns the delivery partner whose active order is requested.
func (q GetCurrentOrderQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetCurrentOrderQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}
