package websocket

import (
	"namedeck/internal/pkg/logger"
	"namedeck/internal/service"

	"github.com/google/uuid"
)

// Hub tracks websocket observers of the session bridge. Every connection
// is anonymous: there is exactly one WhatsApp session per process, so there
// is no user partitioning to do. Registration subscribes the connection to
// the bridge, which replays the current session state before any future
// broadcast.
type Hub struct {
	// Registered clients by connection id.
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	session service.ISessionService

	logger logger.ILogger
}

func NewHub(session service.ISessionService, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		session:    session,
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client.id] = client
			// Subscribe delivers the state snapshot synchronously into the
			// client's send buffer.
			h.session.Subscribe(client)
			h.logger.Info("Hub", "Observer registered", map[string]interface{}{"conn_id": client.id})

		case client := <-h.unregister:
			if _, ok := h.clients[client.id]; ok {
				h.session.Unsubscribe(client.id)
				delete(h.clients, client.id)
				close(client.send)
				h.logger.Info("Hub", "Observer unregistered", map[string]interface{}{"conn_id": client.id})
			}
		}
	}
}
