package queries

import (
	"errors"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/guard"
)

var ErrGetPartnerStatsQueryIsNotConstructed = errors.New(
	"GetPartnerStatsQuery must be created via NewGetPartnerStatsQuery constructor",
)

// GetPartnerStatsQuery retrieves a delivery partner's personal counters:
// lifetime deliveries, in-progress work, and the recent delivery totals shown
// on the partner dashboard.
type GetPartnerStatsQuery struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPartnerStatsQuery creates a query for a partner's delivery counters.
func NewGetPartnerStatsQuery(partnerID kernel.UUID) (GetPartnerStatsQuery, error) {
	query := GetPartnerStatsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPartnerID(partnerID); err != nil {
		return GetPartnerStatsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPartnerStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetPartnerStatsQueryIsNotConstructed)
}

// PartnerID returns the partner whose counters are requested.
func (q GetPartnerStatsQuery) PartnerID() kernel.UUID {
	return q.partnerID
}

func (q *GetPartnerStatsQuery) setPartnerID(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	q.partnerID = partnerID
	return nil
}

// GetPartnerStatsQueryResponse carries one partner's delivery counters.
// AvgDeliveryTime is the mean pickup-to-delivery span in minutes across the
// partner's delivered orders, zero when nothing was delivered yet.
type GetPartnerStatsQueryResponse struct {
	TotalDelivered  int64   `json:"totalDelivered"`
	InProgress      int64   `json:"inProgress"`
	DeliveredToday  int64   `json:"deliveredToday"`
	DeliveredWeek   int64   `json:"deliveredThisWeek"`
	AvgDeliveryTime float64 `json:"avgDeliveryTime"`
}
