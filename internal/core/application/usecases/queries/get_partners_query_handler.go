package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// GetPartnersQueryHandler retrieves the delivery partner roster from the
// database. Each row joins in the human-readable number of the partner's
// current order so the manager view needs no second round trip.
type GetPartnersQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnersQueryHandler creates a handler for partner roster queries.
func NewGetPartnersQueryHandler(db *gorm.DB) GetPartnersQueryHandler {
	return GetPartnersQueryHandler{db: db}
}

// Handle executes the query and returns partners sorted by username.
func (h GetPartnersQueryHandler) Handle(
	ctx context.Context,
	query GetPartnersQuery,
) ([]GetPartnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			u.id,
			u.username,
			u.email,
			u.estimated_delivery_time,
			u.is_available,
			u.current_order_id,
			o.order_id
		FROM users u
		LEFT JOIN orders o ON o.id = u.current_order_id
		WHERE u.role = ?
	`
	if query.OnlyAvailable() {
		sql += " AND u.is_available AND u.current_order_id IS NULL"
	}
	sql += " ORDER BY u.username"

	rows, err := h.db.WithContext(ctx).Raw(sql, user.DeliveryPartner.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	partners := make([]GetPartnersQueryResponse, 0)
	for rows.Next() {
		var partner GetPartnersQueryResponse
		var id uuid.UUID
		var currentOrderID *uuid.UUID

		err = rows.Scan(
			&id,
			&partner.Username,
			&partner.Email,
			&partner.EstimatedDeliveryTime,
			&partner.IsAvailable,
			&currentOrderID,
			&partner.CurrentOrderNumber,
		)
		if err != nil {
			return nil, err
		}

		partner.ID = id.String()
		if currentOrderID != nil {
			s := currentOrderID.String()
			partner.CurrentOrderID = &s
		}
		partners = append(partners, partner)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return partners, nil
}
