package ws

import (
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/kernel"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/domain/model/user"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/core/ports"
	"github.com/harshitg927/Zomato-Ops-Pro/internal/pkg/auth"
)

// tokenVerifier validates a session token and returns its claims.
type tokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// Handler upgrades HTTP requests to WebSocket connections. The handshake
// authenticates before the upgrade: an invalid token never reaches the hub.
type Handler struct {
	hub      *Hub
	verifier tokenVerifier
	upgrader websocket.Upgrader
}

// NewHandler creates a connection handler bound to the hub.
func NewHandler(hub *Hub, verifier tokenVerifier) *Handler {
	return &Handler{
		hub:      hub,
		verifier: verifier,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser clients connect cross-origin from the SPA host.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve authenticates the handshake, upgrades the connection, and joins the
// client to its private room and its role's shared room. The token comes from
// the token query parameter or, when that is absent, the Authorization header.
func (h *Handler) Serve(c echo.Context) error {
	claims, err := h.verifier.Verify(handshakeToken(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	role, err := user.RoleFromString(claims.Role)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	rooms := []string{ports.UserRoom(userID), ports.RoleRoom(role)}
	newClient(h.hub, conn, claims.UserID, rooms)
	return nil
}

func handshakeToken(c echo.Context) string {
	if token := c.QueryParam("token"); token != "" {
		return token
	}
	return strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
}
