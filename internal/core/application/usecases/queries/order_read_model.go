// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read straight from the database and return externalized read
// models; the internal status vocabulary never leaves this package.
package queries

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
)

// OrderItemResponse is one line item of an order read model.
type OrderItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderCustomerResponse is the delivery destination of an order read model.
type OrderCustomerResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// OrderHistoryResponse is one audit entry of an order read model. Status
// carries the external vocabulary.
type OrderHistoryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
}

// OrderResponse is the full order read model. Status carries the external
// vocabulary only.
type OrderResponse struct {
	ID           string                 `json:"id"`
	OrderID      string                 `json:"orderId"`
	Items        []OrderItemResponse    `json:"items"`
	PrepTime     int                    `json:"prepTime"`
	Status       string                 `json:"status"`
	PartnerID    *string                `json:"deliveryPartnerId"`
	DispatchTime *int                   `json:"dispatchTime"`
	Customer     OrderCustomerResponse  `json:"customerInfo"`
	TotalAmount  float64                `json:"totalAmount"`
	History      []OrderHistoryResponse `json:"statusHistory"`
	CreatedBy    string                 `json:"createdBy"`
	CreatedAt    time.Time              `json:"createdAt"`
	UpdatedAt    time.Time              `json:"updatedAt"`
}

// orderColumns is the select list every order query scans with scanOrderRow.
const orderColumns = `
	id,
	order_id,
	items,
	prep_time,
	status,
	partner_id,
	dispatch_time,
	customer,
	total_amount,
	history,
	created_by,
	created_at,
	updated_at
`

type historyRecord struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
}

// scanOrderRow maps one database row onto the read model, unmarshaling the
// jsonb payloads and translating stored status names to the external
// vocabulary.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var (
		resp         OrderResponse
		id           uuid.UUID
		createdBy    uuid.UUID
		partnerID    *uuid.UUID
		statusName   string
		itemsJSON    []byte
		customerJSON []byte
		historyJSON  []byte
	)

	err := rows.Scan(
		&id,
		&resp.OrderID,
		&itemsJSON,
		&resp.PrepTime,
		&statusName,
		&partnerID,
		&resp.DispatchTime,
		&customerJSON,
		&resp.TotalAmount,
		&historyJSON,
		&createdBy,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	status, err := order.StatusFromString(statusName)
	if err != nil {
		return OrderResponse{}, err
	}
	resp.Status = status.External()

	resp.ID = id.String()
	resp.CreatedBy = createdBy.String()
	if partnerID != nil {
		s := partnerID.String()
		resp.PartnerID = &s
	}

	if err = json.Unmarshal(itemsJSON, &resp.Items); err != nil {
		return OrderResponse{}, err
	}
	if err = json.Unmarshal(customerJSON, &resp.Customer); err != nil {
		return OrderResponse{}, err
	}

	var records []historyRecord
	if err = json.Unmarshal(historyJSON, &records); err != nil {
		return OrderResponse{}, err
	}
	resp.History = make([]OrderHistoryResponse, 0, len(records))
	for _, record := range records {
		entryStatus, entryErr := order.StatusFromString(record.Status)
		if entryErr != nil {
			return OrderResponse{}, entryErr
		}
		resp.History = append(resp.History, OrderHistoryResponse{
			Status:    entryStatus.External(),
			Timestamp: record.Timestamp,
			UpdatedBy: record.UpdatedBy,
		})
	}

	return resp, nil
}
