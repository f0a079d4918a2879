package ws

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/auth"
)

func startHandshakeServer(t *testing.T) (string, auth.TokenManager) {
	t.Helper()

	hub := NewHub(slog.New(slog.DiscardHandler))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	tokens := auth.NewTokenManager("test-secret", time.Hour)

	e := echo.New()
	e.GET("/ws", NewHandler(hub, tokens).Serve)
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http") + "/ws", tokens
}

func TestHandler_Serve_TokenQueryParameter(t *testing.T) {
	endpoint, tokens := startHandshakeServer(t)
	token, err := tokens.Issue(kernel.NewUUID().String(), "manager")
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(endpoint+"?token="+token, nil)

	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
}

func TestHandler_Serve_AuthorizationHeader(t *testing.T) {
	endpoint, tokens := startHandshakeServer(t)
	token, err := tokens.Issue(kernel.NewUUID().String(), "delivery_partner")
	require.NoError(t, err)

	header := http.Header{}
	header.Set(echo.HeaderAuthorization, "Bearer "+token)
	conn, resp, err := websocket.DefaultDialer.Dial(endpoint, header)

	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
}

func TestHandler_Serve_InvalidToken(t *testing.T) {
	endpoint, _ := startHandshakeServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(endpoint+"?token=not-a-token", nil)

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
