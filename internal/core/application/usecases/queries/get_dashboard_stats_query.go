package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the aggregate counters for the manager
// dashboard: orders per lifecycle state and partner availability.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a parameterless dashboard stats query.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// GetDashboardStatsQueryResponse carries the dashboard counters. Order counts
// are keyed by the external status vocabulary.
type GetDashboardStatsQueryResponse struct {
	TotalOrders       int64            `json:"totalOrders"`
	OrdersByStatus    map[string]int64 `json:"ordersByStatus"`
	TotalPartners     int64            `json:"totalPartners"`
	AvailablePartners int64            `json:"availablePartners"`
	BusyPartners      int64            `json:"busyPartners"`
}
