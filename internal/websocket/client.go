package websocket

import (
	"encoding/json"
	"time"

	"namedeck/internal/dto"
	"namedeck/internal/service"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is a middleman between one websocket connection and the session
// bridge.
type Client struct {
	hub *Hub

	// The websocket connection.
	conn *websocket.Conn

	// Connection id, used as the bridge subscriber id.
	id uuid.UUID

	// Buffered channel of outbound frames.
	send chan []byte
}

var _ service.ISubscriber = (*Client)(nil)

func (c *Client) ID() uuid.UUID { return c.id }

// Notify queues a session event for delivery. It never blocks: the bridge
// calls it while holding its state lock, so a slow consumer is dropped
// rather than waited on.
func (c *Client) Notify(evt dto.SessionEvent) {
	data, err := json.Marshal(evt)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
		c.hub.logger.Warn("Hub", "Observer send buffer full, dropping connection", map[string]interface{}{"conn_id": c.id})
		go func() { c.hub.unregister <- c }()
	}
}

// readPump discards inbound messages and detects connection loss.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("Hub", "Unexpected close", map[string]interface{}{"conn_id": c.id, "error": err.Error()})
			}
			break
		}
	}
}

// writePump pumps frames from the bridge to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
