package partnerfeed

import (
	"context"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/adapters/ws"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/auth"
)

type hubFixture struct {
	hub      *ws.Hub
	endpoint string
	tokens   auth.TokenManager
}

func startHubFixture(t *testing.T) hubFixture {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	hub := ws.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	e := echo.New()
	e.GET("/ws", ws.NewHandler(hub, tokens).Serve)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return hubFixture{
		hub:      hub,
		endpoint: "ws" + strings.TrimPrefix(server.URL, "http") + "/ws",
		tokens:   tokens,
	}
}

func startClient(t *testing.T, fixture hubFixture, partnerID string) *Feed {
	t.Helper()

	token, err := fixture.tokens.Issue(partnerID, "delivery_partner")
	require.NoError(t, err)

	feed := NewFeed(partnerID)
	client, err := Dial(context.Background(), fixture.endpoint, token, feed, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go func() { _ = client.Run(ctx) }()

	// Registration races the first publish; give the hub loop a beat.
	time.Sleep(50 * time.Millisecond)
	return feed
}

func TestClient_AdoptsAssignedOrder(t *testing.T) {
	fixture := startHubFixture(t)
	feed := startClient(t, fixture, feedPartnerID)

	fixture.hub.Publish(ports.EventOrderAssigned, ports.Broadcast(), map[string]any{
		"id":                feedOrderID,
		"orderId":           "ORD-001",
		"status":            "PREPARING",
		"deliveryPartnerId": feedPartnerID,
	})

	require.Eventually(t, func() bool {
		_, ok := feed.Current()
		return ok
	}, time.Second, 10*time.Millisecond)

	current, _ := feed.Current()
	assert.Equal(t, feedOrderID, current.ID)
	assert.Equal(t, "PREPARING", current.Status)
}

func TestClient_ClearsOnDelivery(t *testing.T) {
	fixture := startHubFixture(t)
	feed := startClient(t, fixture, feedPartnerID)

	fixture.hub.Publish(ports.EventOrderAssigned, ports.Broadcast(), map[string]any{
		"id":                feedOrderID,
		"orderId":           "ORD-001",
		"status":            "PREPARING",
		"deliveryPartnerId": feedPartnerID,
	})
	require.Eventually(t, func() bool {
		_, ok := feed.Current()
		return ok
	}, time.Second, 10*time.Millisecond)

	fixture.hub.Publish(ports.EventOrderStatusUpdated, ports.Broadcast(), map[string]any{
		"id":                feedOrderID,
		"orderId":           "ORD-001",
		"status":            "DELIVERED",
		"deliveryPartnerId": feedPartnerID,
	})

	require.Eventually(t, func() bool {
		_, ok := feed.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestClient_IgnoresOtherPartnersOrders(t *testing.T) {
	fixture := startHubFixture(t)
	feed := startClient(t, fixture, feedPartnerID)

	fixture.hub.Publish(ports.EventOrderAssigned, ports.Broadcast(), map[string]any{
		"id":                otherOrderID,
		"orderId":           "ORD-002",
		"status":            "PREPARING",
		"deliveryPartnerId": otherPartnerID,
	})

	time.Sleep(100 * time.Millisecond)
	_, ok := feed.Current()
	assert.False(t, ok)
}

func TestDial_RejectsInvalidToken(t *testing.T) {
	fixture := startHubFixture(t)

	feed := NewFeed(feedPartnerID)
	_, err := Dial(context.Background(), fixture.endpoint, "not-a-token", feed, slog.New(slog.DiscardHandler))

	require.Error(t, err)
}
