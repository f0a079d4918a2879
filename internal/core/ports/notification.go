package ports

import (
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
)

// Event names carried on the push channel. Payloads are the externalized
// representations built by the presenter package.
type Event string

const (
	EventOrderCreated              Event = "order-created"
	EventOrderStatusUpdated        Event = "order-status-updated"
	EventOrderAssigned             Event = "order-assigned"
	EventOrderUpdated              Event = "order-updated"
	EventOrderDeleted              Event = "order-deleted"
	EventPartnerCreated            Event = "partner-created"
	EventPartnerUpdated            Event = "partner-updated"
	EventPartnerDeleted            Event = "partner-deleted"
	EventPartnerAvailabilityChange Event = "partner-availability-changed"
)

// Room names for role-shared channels. Every connected client additionally
// joins a private room keyed by its user id.
const (
	RoomManagers         = "managers"
	RoomDeliveryPartners = "delivery_partners"
)

// UserRoom returns the private room key for a user.
func UserRoom(id kernel.UUID) string {
	return "user:" + id.String()
}

// RoleRoom returns the shared room key for a role.
func RoleRoom(role user.Role) string {
	if role == user.Manager {
		return RoomManagers
	}
	return RoomDeliveryPartners
}

// Audience selects the recipients of a published event: everything connected,
// specific rooms, or both (status updates deliberately fan out redundantly to
// the manager room, the bound partner's private room, and broadcast).
type Audience struct {
	Broadcast bool
	Rooms     []string
}

// Broadcast targets every connected client.
func Broadcast() Audience {
	return Audience{Broadcast: true}
}

// Rooms targets the given room keys only.
func Rooms(rooms ...string) Audience {
	return Audience{Rooms: rooms}
}

// BroadcastAndRooms targets every client plus the given rooms. Clients in the
// rooms receive the event once; the redundancy guards against missed room
// membership, not against duplicates.
func BroadcastAndRooms(rooms ...string) Audience {
	return Audience{Broadcast: true, Rooms: rooms}
}

// NotificationPort is the outbound push-channel contract. Publishing is
// fire-and-forget and best-effort: implementations never block the caller,
// never retry, and never surface delivery failures back to the originating
// request. A lost notification costs view freshness only; clients reconcile
// via a full reload.
type NotificationPort interface {
	Publish(event Event, audience Audience, payload any)
}
