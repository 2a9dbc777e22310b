package spectate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// Client is a connected watcher.
type Client struct {
	conn *websocket.Conn
	boot Bootstrap
}

// Dial fetches the bootstrap document and opens the frame stream. target is
// a ws:// or http:// base URL, or a bare host:port.
func Dial(ctx context.Context, target string) (*Client, error) {
	httpURL, wsURL, err := endpoints(target)
	if err != nil {
		return nil, err
	}

	boot, err := fetchBootstrap(ctx, httpURL+"/bootstrap")
	if err != nil {
		return nil, err
	}
	if boot.ProtocolVersion != ProtocolVersion {
		return nil, fmt.Errorf("spectate: protocol version %d, want %d", boot.ProtocolVersion, ProtocolVersion)
	}

	dialer := websocket.Dialer{HandshakeTimeout: 5 * time.Second}
	conn, _, err := dialer.DialContext(ctx, wsURL+"/ws", nil)
	if err != nil {
		return nil, fmt.Errorf("spectate: dial %s: %w", wsURL, err)
	}
	return &Client{conn: conn, boot: boot}, nil
}

// Bootstrap returns the round description received on connect.
func (c *Client) Bootstrap() Bootstrap { return c.boot }

// Next blocks until the next frame arrives.
func (c *Client) Next() (FrameMsg, error) {
	for {
		_, b, err := c.conn.ReadMessage()
		if err != nil {
			return FrameMsg{}, fmt.Errorf("spectate: read: %w", err)
		}
		var msg FrameMsg
		if err := json.Unmarshal(b, &msg); err != nil {
			return FrameMsg{}, fmt.Errorf("spectate: decode frame: %w", err)
		}
		if msg.Type == MsgFrame {
			return msg, nil
		}
	}
}

// Close ends the connection.
func (c *Client) Close() error {
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(time.Second))
	return c.conn.Close()
}

func fetchBootstrap(ctx context.Context, u string) (Bootstrap, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Bootstrap{}, fmt.Errorf("spectate: bootstrap request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Bootstrap{}, fmt.Errorf("spectate: bootstrap: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Bootstrap{}, fmt.Errorf("spectate: bootstrap: %s", resp.Status)
	}
	var boot Bootstrap
	if err := json.NewDecoder(resp.Body).Decode(&boot); err != nil {
		return Bootstrap{}, fmt.Errorf("spectate: decode bootstrap: %w", err)
	}
	return boot, nil
}

// endpoints derives the HTTP and websocket base URLs from target.
func endpoints(target string) (httpURL, wsURL string, err error) {
	if !strings.Contains(target, "://") {
		target = "ws://" + target
	}
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("spectate: bad url %q: %w", target, err)
	}
	if u.Host == "" {
		return "", "", fmt.Errorf("spectate: bad url %q: missing host", target)
	}
	path := strings.TrimSuffix(strings.TrimSuffix(u.Path, "/"), "/ws")

	var httpScheme, wsScheme string
	switch u.Scheme {
	case "ws", "http":
		httpScheme, wsScheme = "http", "ws"
	case "wss", "https":
		httpScheme, wsScheme = "https", "wss"
	default:
		return "", "", fmt.Errorf("spectate: unsupported scheme %q", u.Scheme)
	}
	return httpScheme + "://" + u.Host + path, wsScheme + "://" + u.Host + path, nil
}
