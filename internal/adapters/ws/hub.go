// Package ws implements the real-time push channel over WebSocket. A single
// Hub fans events out to connected clients; every client sits in a private
// per-user room and in the shared room of its role. Delivery is best-effort:
// publishing never blocks a request, and clients that stop draining their
// send buffer are dropped.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
)

// envelope is the wire format of one pushed event.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// outbound is a serialized event together with its audience, queued for the
// hub loop.
type outbound struct {
	audience ports.Audience
	payload  []byte
}

// Hub owns the client set and the room index. All mutation happens on the
// Run goroutine; the channels are the only way in.
type Hub struct {
	clients map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}

	register   chan *Client
	unregister chan *Client
	outbound   chan outbound

	logger *slog.Logger
}

// NewHub creates a hub. Call Run before serving connections.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		rooms:      make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		outbound:   make(chan outbound, 256),
		logger:     logger.With("component", "ws-hub"),
	}
}

// Run processes registrations and fan-out until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return

		case client := <-h.register:
			h.clients[client] = struct{}{}
			for _, room := range client.rooms {
				if h.rooms[room] == nil {
					h.rooms[room] = make(map[*Client]struct{})
				}
				h.rooms[room][client] = struct{}{}
			}
			h.logger.Info("client connected", "userId", client.userID, "rooms", client.rooms)

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				h.drop(client)
				h.logger.Info("client disconnected", "userId", client.userID)
			}

		case msg := <-h.outbound:
			h.fanOut(msg)
		}
	}
}

// Publish implements ports.NotificationPort. The event is serialized once and
// queued for the hub loop; when the queue is full the event is dropped rather
// than blocking the caller.
func (h *Hub) Publish(event ports.Event, audience ports.Audience, payload any) {
	data, err := json.Marshal(envelope{Event: string(event), Data: payload})
	if err != nil {
		h.logger.Error("failed to serialize event", "event", event, "error", err)
		return
	}

	select {
	case h.outbound <- outbound{audience: audience, payload: data}:
	default:
		h.logger.Warn("outbound queue full, event dropped", "event", event)
	}
}

// fanOut delivers one event to its audience. Each client receives the event
// at most once even when broadcast and room targets overlap.
func (h *Hub) fanOut(msg outbound) {
	targets := make(map[*Client]struct{})
	if msg.audience.Broadcast {
		for client := range h.clients {
			targets[client] = struct{}{}
		}
	}
	for _, room := range msg.audience.Rooms {
		for client := range h.rooms[room] {
			targets[client] = struct{}{}
		}
	}

	for client := range targets {
		select {
		case client.send <- msg.payload:
		default:
			// Slow consumer: sever the connection instead of blocking the hub.
			h.drop(client)
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	for _, room := range client.rooms {
		if members, ok := h.rooms[room]; ok {
			delete(members, client)
			if len(members) == 0 {
				delete(h.rooms, room)
			}
		}
	}
	close(client.send)
}
