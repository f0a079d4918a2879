package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// GetDashboardStatsQueryHandler computes the manager dashboard counters with
// grouped aggregate queries.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard stats.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle executes the stats query. Statuses with no orders still appear in
// the map with a zero count so the dashboard never renders holes.
func (h GetDashboardStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDashboardStatsQuery,
) (GetDashboardStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	resp := GetDashboardStatsQueryResponse{
		OrdersByStatus: map[string]int64{
			order.Prep.External():      0,
			order.Picked.External():    0,
			order.OnRoute.External():   0,
			order.Delivered.External(): 0,
		},
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var statusName string
		var count int64
		if err = rows.Scan(&statusName, &count); err != nil {
			return GetDashboardStatsQueryResponse{}, err
		}

		status, statusErr := order.StatusFromString(statusName)
		if statusErr != nil {
			return GetDashboardStatsQueryResponse{}, statusErr
		}
		resp.OrdersByStatus[status.External()] = count
		resp.TotalOrders += count
	}
	if err = rows.Err(); err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	err = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE is_available AND current_order_id IS NULL),
			COUNT(*) FILTER (WHERE current_order_id IS NOT NULL)
		FROM users
		WHERE role = ?
	`, user.DeliveryPartner.String()).
		Row().
		Scan(&resp.TotalPartners, &resp.AvailablePartners, &resp.BusyPartners)
	if err != nil {
		return GetDashboardStatsQueryResponse{}, err
	}

	return resp, nil
}
