package partnerfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/gorilla/websocket"
)

// envelope mirrors the wire format of one pushed event.
type envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client is a live connection to the push endpoint feeding a Feed.
type Client struct {
	feed   *Feed
	conn   *websocket.Conn
	logger *slog.Logger
}

// Dial connects to the push endpoint, authenticating the handshake with the
// partner's session token, and returns a client bound to the feed. Call Run
// to start consuming events.
func Dial(ctx context.Context, endpoint, token string, feed *Feed, logger *slog.Logger) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse endpoint: %w", err)
	}

	query := u.Query()
	query.Set("token", token)
	u.RawQuery = query.Encode()

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", endpoint, err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	return &Client{
		feed:   feed,
		conn:   conn,
		logger: logger.With("component", "partner-feed"),
	}, nil
}

// Run consumes events until the context is cancelled or the connection
// fails. A payload the feed cannot decode is logged and skipped; the
// connection stays up.
func (c *Client) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = c.conn.Close()
	})
	defer stop()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("connection lost: %w", err)
		}

		var env envelope
		if err = json.Unmarshal(data, &env); err != nil {
			c.logger.Warn("malformed event skipped", "error", err)
			continue
		}

		if err = c.feed.Apply(env.Event, env.Data); err != nil {
			c.logger.Warn("event not applied", "event", env.Event, "error", err)
		}
	}
}

// Close severs the connection. A blocked Run returns with a read error.
func (c *Client) Close() error {
	return c.conn.Close()
}
