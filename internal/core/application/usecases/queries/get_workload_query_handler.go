package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// GetWorkloadQueryHandler computes the per-partner workload overview with a
// grouped join over partners and their orders.
type GetWorkloadQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkloadQueryHandler creates a handler for workload queries.
func NewGetWorkloadQueryHandler(db *gorm.DB) GetWorkloadQueryHandler {
	return GetWorkloadQueryHandler{db: db}
}

// Handle executes the workload query, one row per delivery partner sorted by
// username. Partners without any orders still appear with zero counts.
func (h GetWorkloadQueryHandler) Handle(
	ctx context.Context,
	query GetWorkloadQuery,
) ([]GetWorkloadQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			u.id,
			u.username,
			u.is_available,
			COUNT(o.id) FILTER (WHERE o.status != @delivered),
			COUNT(o.id) FILTER (WHERE o.status = @delivered AND o.updated_at >= date_trunc('day', now()))
		FROM users u
		LEFT JOIN orders o ON o.partner_id = u.id
		WHERE u.role = @role
		GROUP BY u.id, u.username, u.is_available
		ORDER BY u.username
	`,
		map[string]any{
			"delivered": order.Delivered.String(),
			"role":      user.DeliveryPartner.String(),
		}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workload := make([]GetWorkloadQueryResponse, 0)
	for rows.Next() {
		var row GetWorkloadQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &row.Username, &row.IsAvailable, &row.ActiveOrders, &row.DeliveredToday)
		if err != nil {
			return nil, err
		}

		row.PartnerID = id.String()
		workload = append(workload, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return workload, nil
}
