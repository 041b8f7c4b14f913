package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs attaches an upgraded connection to the hub and blocks until the
// connection drops.
func ServeWs(hub *Hub, conn *websocket.Conn) {
	client := &Client{hub: hub, conn: conn, id: uuid.New(), send: make(chan []byte, 256)}
	client.hub.register <- client

	go client.writePump()
	client.readPump() // Run readPump in current goroutine (handler)
}
