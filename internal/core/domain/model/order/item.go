package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/errs"
)

// Item is a single line of an order: a named dish with a positive quantity
// and a non-negative unit price.
type Item struct {
	name     string
	quantity int
	price    float64
}

// NewItem creates a validated line item.
func NewItem(name string, quantity int, price float64) (Item, error) {
	item := Item{}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Name returns the dish name.
func (i Item) Name() string { return i.name }

// Quantity returns the ordered count.
func (i Item) Quantity() int { return i.quantity }

// Price returns the unit price.
func (i Item) Price() float64 { return i.price }

// Subtotal returns price multiplied by quantity.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not a positive integer", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

// CustomerInfo carries the delivery destination details. All three fields
// are required.
type CustomerInfo struct {
	name    string
	phone   string
	address string
}

// NewCustomerInfo creates validated customer details.
func NewCustomerInfo(name, phone, address string) (CustomerInfo, error) {
	var err error
	if strings.TrimSpace(name) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer name"))
	}
	if strings.TrimSpace(phone) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer phone"))
	}
	if strings.TrimSpace(address) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("customer address"))
	}
	if err != nil {
		return CustomerInfo{}, err
	}

	return CustomerInfo{name: name, phone: phone, address: address}, nil
}

// Name returns the customer's name.
func (c CustomerInfo) Name() string { return c.name }

// Phone returns the customer's phone number.
func (c CustomerInfo) Phone() string { return c.phone }

// Address returns the delivery address.
func (c CustomerInfo) Address() string { return c.address }

// HistoryEntry is one element of the append-only status audit trail:
// which status was entered, when, and by whom.
type HistoryEntry struct {
	status    Status
	timestamp time.Time
	updatedBy kernel.UUID
}

// NewHistoryEntry creates an audit entry for a status change.
func NewHistoryEntry(status Status, timestamp time.Time, updatedBy kernel.UUID) HistoryEntry {
	return HistoryEntry{status: status, timestamp: timestamp, updatedBy: updatedBy}
}

// Status returns the status entered.
func (h HistoryEntry) Status() Status { return h.status }

// Timestamp returns when the status was entered.
func (h HistoryEntry) Timestamp() time.Time { return h.timestamp }

// UpdatedBy returns the acting user.
func (h HistoryEntry) UpdatedBy() kernel.UUID { return h.updatedBy }
