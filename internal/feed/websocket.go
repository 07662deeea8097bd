package feed

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fcurrie/ledsign-golang/internal/types"
)

// Client streams sign text from a feed server over a WebSocket. Incoming
// text messages are buffered; Next drains whatever has arrived without
// blocking, so it satisfies the producer contract of the tick driver.
type Client struct {
	config   types.FeedConfig
	conn     *websocket.Conn
	chunks   chan string
	requests chan int
	done     chan struct{}
}

// NewClient creates a new feed client
func NewClient(config types.FeedConfig) *Client {
	return &Client{
		config:   config,
		chunks:   make(chan string, 64),
		requests: make(chan int, 1),
		done:     make(chan struct{}),
	}
}

// Connect connects to the configured feed server
func (c *Client) Connect(ctx context.Context) error {
	u := url.URL{
		Scheme: "ws",
		Host:   fmt.Sprintf("%s:%d", c.config.Host, c.config.Port),
		Path:   "/feed",
	}
	return c.ConnectURL(ctx, u.String())
}

// ConnectURL connects to a feed server at an explicit WebSocket URL
func (c *Client) ConnectURL(ctx context.Context, rawurl string) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawurl, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to feed: %w", err)
	}
	c.conn = conn

	go c.readPump(ctx)
	go c.writePump(ctx)

	return nil
}

// Close closes the client
func (c *Client) Close() {
	close(c.done)
	if c.conn != nil {
		c.conn.Close()
	}
}

// Next drains buffered feed text. When nothing has arrived it asks the
// server for more text after the given fed position and returns empty,
// which the driver treats as "no data this tick". Safe to call repeatedly
// while starved.
func (c *Client) Next(afterFed int) string {
	var b strings.Builder
	for {
		select {
		case chunk := <-c.chunks:
			b.WriteString(chunk)
		default:
			if b.Len() == 0 {
				select {
				case c.requests <- afterFed:
				default:
				}
			}
			return b.String()
		}
	}
}

// readPump pumps text messages from the WebSocket connection into the
// chunk buffer
func (c *Client) readPump(ctx context.Context) {
	defer c.conn.Close()

	c.conn.SetReadLimit(64 * 1024)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		default:
			_, message, err := c.conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("feed read error: %v", err)
				}
				return
			}
			select {
			case c.chunks <- string(message):
			default:
				log.Printf("Warning: feed buffer full, dropping %d bytes", len(message))
			}
		}
	}
}

// writePump sends keepalive pings and forwards text requests to the server
func (c *Client) writePump(ctx context.Context) {
	ticker := time.NewTicker(54 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case afterFed := <-c.requests:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			msg := fmt.Sprintf("next %d", afterFed)
			if err := c.conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return
			}
		}
	}
}
