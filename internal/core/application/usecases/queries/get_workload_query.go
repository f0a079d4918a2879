package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetWorkloadQueryIsNotConstructed = errors.New(
	"GetWorkloadQuery must be created via NewGetWorkloadQuery constructor",
)

// GetWorkloadQuery retrieves the per-partner workload overview for the
// manager dashboard: who is carrying an active order and how much each
// partner has delivered today.
type GetWorkloadQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWorkloadQuery creates a parameterless workload query.
func NewGetWorkloadQuery() GetWorkloadQuery {
	return GetWorkloadQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWorkloadQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkloadQueryIsNotConstructed)
}

// GetWorkloadQueryResponse is one partner's row in the workload overview.
type GetWorkloadQueryResponse struct {
	PartnerID      string `json:"partnerId"`
	Username       string `json:"username"`
	IsAvailable    bool   `json:"isAvailable"`
	ActiveOrders   int64  `json:"activeOrders"`
	DeliveredToday int64  `json:"deliveredToday"`
}
