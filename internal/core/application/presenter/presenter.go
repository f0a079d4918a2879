// Package presenter builds the externalized views of the domain aggregates.
// It is the only place where the internal status vocabulary is translated to
// the external one; HTTP responses and push payloads both go through it, so
// internal status names never leak out.
package presenter

import (
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/order"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// ItemView is the external shape of an order line item.
type ItemView struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CustomerView is the external shape of the delivery destination.
type CustomerView struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// HistoryView is the external shape of one status audit entry.
type HistoryView struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	UpdatedBy string    `json:"updatedBy"`
}

// OrderView is the external shape of an order. Status and history carry the
// external vocabulary only.
type OrderView struct {
	ID           string        `json:"id"`
	OrderID      string        `json:"orderId"`
	Items        []ItemView    `json:"items"`
	PrepTime     int           `json:"prepTime"`
	Status       string        `json:"status"`
	PartnerID    *string       `json:"deliveryPartnerId"`
	DispatchTime *int          `json:"dispatchTime"`
	Customer     CustomerView  `json:"customerInfo"`
	TotalAmount  float64       `json:"totalAmount"`
	History      []HistoryView `json:"statusHistory"`
	CreatedBy    string        `json:"createdBy"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// OrderRefView carries the order identifiers only. Used for deletion events,
// where the full view would describe a row that no longer exists.
type OrderRefView struct {
	ID      string `json:"id"`
	OrderID string `json:"orderId"`
}

// AvailabilityView carries a partner's identity and new availability only.
type AvailabilityView struct {
	ID          string `json:"id"`
	IsAvailable bool   `json:"isAvailable"`
}

// PartnerView is the external shape of a user. PasswordHash never appears
// here; CurrentOrderID is nil for managers and unbound partners.
type PartnerView struct {
	ID                    string  `json:"id"`
	Username              string  `json:"username"`
	Email                 string  `json:"email"`
	Role                  string  `json:"role"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime,omitempty"`
	IsAvailable           bool    `json:"isAvailable"`
	CurrentOrderID        *string `json:"currentOrderId"`
}

// OrderToView externalizes an order aggregate.
func OrderToView(o *order.Order) OrderView {
	items := o.Items()
	itemViews := make([]ItemView, 0, len(items))
	for _, item := range items {
		itemViews = append(itemViews, ItemView{
			Name:     item.Name(),
			Quantity: item.Quantity(),
			Price:    item.Price(),
		})
	}

	history := o.History()
	historyViews := make([]HistoryView, 0, len(history))
	for _, entry := range history {
		historyViews = append(historyViews, HistoryView{
			Status:    entry.Status().External(),
			Timestamp: entry.Timestamp(),
			UpdatedBy: entry.UpdatedBy().String(),
		})
	}

	var partnerID *string
	if o.PartnerID() != nil {
		s := o.PartnerID().String()
		partnerID = &s
	}

	customer := o.Customer()
	return OrderView{
		ID:           o.ID().String(),
		OrderID:      o.OrderID(),
		Items:        itemViews,
		PrepTime:     o.PrepTime(),
		Status:       o.Status().External(),
		PartnerID:    partnerID,
		DispatchTime: o.DispatchTime(),
		Customer: CustomerView{
			Name:    customer.Name(),
			Phone:   customer.Phone(),
			Address: customer.Address(),
		},
		TotalAmount: o.TotalAmount(),
		History:     historyViews,
		CreatedBy:   o.CreatedBy().String(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}

// OrderToRef externalizes only the order identifiers.
func OrderToRef(o *order.Order) OrderRefView {
	return OrderRefView{
		ID:      o.ID().String(),
		OrderID: o.OrderID(),
	}
}

// OrdersToView externalizes a slice of orders.
func OrdersToView(orders []*order.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, OrderToView(o))
	}
	return views
}

// UserToView externalizes a user aggregate.
func UserToView(u *user.User) PartnerView {
	var currentOrderID *string
	if u.CurrentOrderID() != nil {
		s := u.CurrentOrderID().String()
		currentOrderID = &s
	}

	view := PartnerView{
		ID:             u.ID().String(),
		Username:       u.Username(),
		Email:          u.Email(),
		Role:           u.Role().String(),
		IsAvailable:    u.IsAvailable(),
		CurrentOrderID: currentOrderID,
	}
	if u.IsDeliveryPartner() {
		view.EstimatedDeliveryTime = u.EstimatedDeliveryTime()
	}
	return view
}

// UserToAvailabilityView externalizes a partner's availability change.
func UserToAvailabilityView(u *user.User) AvailabilityView {
	return AvailabilityView{
		ID:          u.ID().String(),
		IsAvailable: u.IsAvailable(),
	}
}

// UsersToView externalizes a slice of users.
func UsersToView(users []*user.User) []PartnerView {
	views := make([]PartnerView, 0, len(users))
	for _, u := range users {
		views = append(views, UserToView(u))
	}
	return views
}
