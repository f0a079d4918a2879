// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It converts between the order domain aggregate and its
// relational representation; the structured payloads (items, customer,
// history) live in jsonb columns.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status holds the internal vocabulary name; version backs the optimistic
// concurrency check on updates.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID      string     `gorm:"uniqueIndex"`
	Items        []byte     `gorm:"type:jsonb"`
	PrepTime     int        `gorm:""`
	Status       string     `gorm:"index"`
	PartnerID    *uuid.UUID `gorm:"type:uuid;index"`
	DispatchTime *int       `gorm:""`
	Customer     []byte     `gorm:"type:jsonb"`
	TotalAmount  float64    `gorm:""`
	History      []byte     `gorm:"type:jsonb"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid"`
	CreatedAt    time.Time  `gorm:""`
	UpdatedAt    time.Time  `gorm:""`
	Version      int        `gorm:""`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type itemRecord struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type customerRecord struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type historyRecord struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := aggregate.Items()
	itemRecords := make([]itemRecord, 0, len(items))
	for _, item := range items {
		itemRecords = append(itemRecords, itemRecord{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}
	itemsJSON, err := json.Marshal(itemRecords)
	if err != nil {
		return OrderDTO{}, err
	}

	customer := aggregate.Customer()
	customerJSON, err := json.Marshal(customerRecord{
		Name:    customer.Name(),
		Phone:   customer.Phone(),
		Address: customer.Address(),
	})
	if err != nil {
		return OrderDTO{}, err
	}

	history := aggregate.History()
	historyRecords := make([]historyRecord, 0, len(history))
	for _, entry := range history {
		historyRecords = append(historyRecords, historyRecord{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			UpdatedBy: entry.UpdatedBy().String(),
		})
	}
	historyJSON, err := json.Marshal(historyRecords)
	if err != nil {
		return OrderDTO{}, err
	}

	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID(),
		Items:        itemsJSON,
		PrepTime:     aggregate.PrepTime(),
		Status:       aggregate.Status().String(),
		PartnerID:    partnerID,
		DispatchTime: aggregate.DispatchTime(),
		Customer:     customerJSON,
		TotalAmount:  aggregate.TotalAmount(),
		History:      historyJSON,
		CreatedBy:    aggregate.CreatedBy().Bytes(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
		Version:      aggregate.Version(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var itemRecords []itemRecord
	if err = json.Unmarshal(dto.Items, &itemRecords); err != nil {
		return nil, err
	}
	items := make([]order.Item, 0, len(itemRecords))
	for _, record := range itemRecords {
		item, itemErr := order.NewItem(record.Name, record.Quantity, record.Price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var custRecord customerRecord
	if err = json.Unmarshal(dto.Customer, &custRecord); err != nil {
		return nil, err
	}
	customer, err := order.NewCustomerInfo(custRecord.Name, custRecord.Phone, custRecord.Address)
	if err != nil {
		return nil, err
	}

	var historyRecords []historyRecord
	if err = json.Unmarshal(dto.History, &historyRecords); err != nil {
		return nil, err
	}
	history := make([]order.HistoryEntry, 0, len(historyRecords))
	for _, record := range historyRecords {
		entryStatus, entryErr := order.StatusFromString(record.Status)
		if entryErr != nil {
			return nil, entryErr
		}
		updatedBy, actorErr := kernel.UUIDFromString(record.UpdatedBy)
		if actorErr != nil {
			return nil, actorErr
		}
		history = append(history, order.NewHistoryEntry(entryStatus, record.Timestamp, updatedBy))
	}

	return order.RestoreOrder(
		id,
		dto.OrderID,
		items,
		dto.PrepTime,
		status,
		partnerID,
		dto.DispatchTime,
		customer,
		history,
		createdBy,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
