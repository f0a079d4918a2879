package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetProfileQueryIsNotConstructed = errors.New(
	"GetProfileQuery must be created via NewGetProfileQuery constructor",
)

// GetProfileQuery retrieves the authenticated user's own profile.
type GetProfileQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProfileQuery creates a query for a user's profile.
func NewGetProfileQuery(userID kernel.UUID) (GetProfileQuery, error) {
	query := GetProfileQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetProfileQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetProfileQueryIsNotConstructed)
}

// UserID returns the profile owner.
func (q GetProfileQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetProfileQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

// GetProfileQueryResponse is the profile read model. The password hash never
// appears here.
type GetProfileQueryResponse struct {
	ID                    string  `json:"id"`
	Username              string  `json:"username"`
	Email                 string  `json:"email"`
	Role                  string  `json:"role"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime,omitempty"`
	IsAvailable           bool    `json:"isAvailable"`
	CurrentOrderID        *string `json:"currentOrderId"`
}
