package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetPartnersQueryIsNotConstructed = errors.New(
	"GetPartnersQuery must be created via NewGetPartnersQuery constructor",
)

// GetPartnersQuery retrieves delivery partners for the manager views: the
// full roster, or only the partners currently eligible for assignment.
//
// Example:
//
//	query := NewGetPartnersQuery(true)
//	available, err := NewGetPartnersQueryHandler(db).Handle(ctx, query)
type GetPartnersQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

// NewGetPartnersQuery creates a query for delivery partners. With
// onlyAvailable set, partners that are unavailable or bound to an order are
// filtered out.
func NewGetPartnersQuery(onlyAvailable bool) GetPartnersQuery {
	return GetPartnersQuery{
		onlyAvailable: onlyAvailable,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetPartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnersQueryIsNotConstructed)
}

// OnlyAvailable reports whether busy and unavailable partners are filtered out.
func (q GetPartnersQuery) OnlyAvailable() bool {
	return q.onlyAvailable
}

// GetPartnersQueryResponse is one delivery partner in the roster read model.
type GetPartnersQueryResponse struct {
	ID                    string  `json:"id"`
	Username              string  `json:"username"`
	Email                 string  `json:"email"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime"`
	IsAvailable           bool    `json:"isAvailable"`
	CurrentOrderID        *string `json:"currentOrderId"`
	CurrentOrderNumber    *string `json:"currentOrderNumber"`
}
