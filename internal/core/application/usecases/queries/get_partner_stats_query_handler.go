package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
)

// GetPartnerStatsQueryHandler computes a partner's delivery counters in a
// single aggregate query. "Today" and "this week" are taken in the database's
// timezone; a delivery is dated by the last status change. The average
// delivery time spans pickup to the terminal status, read from the persisted
// status history of the partner's delivered orders.
type GetPartnerStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetPartnerStatsQueryHandler creates a handler for partner counters.
func NewGetPartnerStatsQueryHandler(db *gorm.DB) GetPartnerStatsQueryHandler {
	return GetPartnerStatsQueryHandler{db: db}
}

// Handle executes the counters query.
func (h GetPartnerStatsQueryHandler) Handle(
	ctx context.Context,
	query GetPartnerStatsQuery,
) (GetPartnerStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPartnerStatsQueryResponse{}, err
	}

	var resp GetPartnerStatsQueryResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = @delivered),
			COUNT(*) FILTER (WHERE status != @delivered),
			COUNT(*) FILTER (WHERE status = @delivered AND updated_at >= date_trunc('day', now())),
			COUNT(*) FILTER (WHERE status = @delivered AND updated_at >= date_trunc('week', now())),
			(
				SELECT COALESCE(AVG(minutes), 0)
				FROM (
					SELECT EXTRACT(EPOCH FROM (
						MAX((entry->>'timestamp')::timestamptz) FILTER (WHERE entry->>'status' = @delivered)
						- MAX((entry->>'timestamp')::timestamptz) FILTER (WHERE entry->>'status' = @picked)
					)) / 60 AS minutes
					FROM orders, jsonb_array_elements(history) entry
					WHERE partner_id = @partner AND status = @delivered
					GROUP BY orders.id
				) deltas
			)
		FROM orders
		WHERE partner_id = @partner
	`,
		map[string]any{
			"delivered": order.Delivered.String(),
			"picked":    order.Picked.String(),
			"partner":   query.PartnerID().String(),
		}).
		Row().
		Scan(&resp.TotalDelivered, &resp.InProgress, &resp.DeliveredToday, &resp.DeliveredWeek, &resp.AvgDeliveryTime)
	if err != nil {
		return GetPartnerStatsQueryResponse{}, err
	}

	return resp, nil
}
