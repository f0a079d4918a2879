// Package partnerfeed is the delivery-partner side of the push channel. A
// Feed folds pushed order events into the partner's local view of its single
// bound order; a Client keeps a Feed updated from a live connection.
package partnerfeed

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Event names as they appear on the wire.
const (
	eventOrderAssigned      = "order-assigned"
	eventOrderStatusUpdated = "order-status-updated"
	eventOrderUpdated       = "order-updated"
	eventOrderDeleted       = "order-deleted"
)

// statusDelivered is the terminal status in the external vocabulary.
const statusDelivered = "DELIVERED"

// Order is the partner's view of an order, decoded from push payloads.
type Order struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"orderId"`
	Status       string  `json:"status"`
	PartnerID    *string `json:"deliveryPartnerId"`
	PrepTime     int     `json:"prepTime"`
	DispatchTime *int    `json:"dispatchTime"`
}

// orderRef is the payload of a deletion event.
type orderRef struct {
	ID string `json:"id"`
}

// Feed tracks at most one current order for one delivery partner. An
// assignment is adopted only when the payload names this partner; updates for
// any other order are ignored by comparing the order's identity, not its
// human-readable number.
type Feed struct {
	mu        sync.RWMutex
	partnerID string
	current   *Order
}

// NewFeed creates a feed for the given partner identity.
func NewFeed(partnerID string) *Feed {
	return &Feed{partnerID: partnerID}
}

// Current returns the order currently bound to the partner, if any.
func (f *Feed) Current() (Order, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.current == nil {
		return Order{}, false
	}
	return *f.current, true
}

// Apply folds one pushed event into the local state. Events the feed does not
// care about are ignored; a payload that fails to decode is an error.
func (f *Feed) Apply(event string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch event {
	case eventOrderAssigned:
		o, err := decodeOrder(event, data)
		if err != nil {
			return err
		}
		if o.PartnerID == nil || *o.PartnerID != f.partnerID {
			return nil
		}
		f.current = &o

	case eventOrderStatusUpdated, eventOrderUpdated:
		o, err := decodeOrder(event, data)
		if err != nil {
			return err
		}
		if f.current == nil || o.ID != f.current.ID {
			return nil
		}
		if o.Status == statusDelivered {
			f.current = nil
			return nil
		}
		f.current = &o

	case eventOrderDeleted:
		var ref orderRef
		if err := json.Unmarshal(data, &ref); err != nil {
			return fmt.Errorf("failed to decode %s payload: %w", event, err)
		}
		if f.current != nil && ref.ID == f.current.ID {
			f.current = nil
		}
	}

	return nil
}

func decodeOrder(event string, data []byte) (Order, error) {
	var o Order
	if err := json.Unmarshal(data, &o); err != nil {
		return Order{}, fmt.Errorf("failed to decode %s payload: %w", event, err)
	}
	return o, nil
}
