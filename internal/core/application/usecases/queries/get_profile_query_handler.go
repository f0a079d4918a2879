package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// GetProfileQueryHandler retrieves a user's profile read model.
type GetProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetProfileQueryHandler creates a handler for profile queries.
func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

// Handle executes the profile query.
func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (GetProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProfileQueryResponse{}, err
	}

	var (
		resp           GetProfileQueryResponse
		id             uuid.UUID
		currentOrderID *uuid.UUID
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			email,
			role,
			estimated_delivery_time,
			is_available,
			current_order_id
		FROM users
		WHERE id = ?
	`, query.UserID().String()).
		Row().
		Scan(
			&id,
			&resp.Username,
			&resp.Email,
			&resp.Role,
			&resp.EstimatedDeliveryTime,
			&resp.IsAvailable,
			&currentOrderID,
		)
	if errors.Is(err, sql.ErrNoRows) {
		return GetProfileQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}
	if err != nil {
		return GetProfileQueryResponse{}, err
	}

	resp.ID = id.String()
	if currentOrderID != nil {
		s := currentOrderID.String()
		resp.CurrentOrderID = &s
	}

	return resp, nil
}
