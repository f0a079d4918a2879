package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// GetCurrentOrderQueryHandler retrieves a partner's active order from the
// database.
type GetCurrentOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentOrderQueryHandler creates a handler for active-order queries.
func NewGetCurrentOrderQueryHandler(db *gorm.DB) GetCurrentOrderQueryHandler {
	return GetCurrentOrderQueryHandler{db: db}
}

// Handle executes the query. Returns errs.ErrObjectNotFound when the partner
// has no active order.
func (h GetCurrentOrderQueryHandler) Handle(ctx context.Context, query GetCurrentOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE partner_id = ? AND status != ?
		ORDER BY created_at DESC
		LIMIT 1
	`, query.PartnerID().String(), order.Delivered.String()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("partnerId", query.PartnerID().String())
	}

	resp, err := scanOrderRow(rows)
	if err != nil {
		return OrderResponse{}, err
	}

	return resp, rows.Err()
}
