package handler

import (
	"namedeck/internal/pkg/logger"
	internalWS "namedeck/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// EventsHandler exposes the session push channel at GET /ws.
type EventsHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewEventsHandler(hub *internalWS.Hub, log logger.ILogger) *EventsHandler {
	return &EventsHandler{hub: hub, logger: log}
}

func (h *EventsHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/ws", h.ServeWs)
}

// ServeWs upgrades the request and hands the connection to the hub.
func (h *EventsHandler) ServeWs(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("EventsHandler", "Starting WebSocket session", nil)
			internalWS.ServeWs(h.hub, conn)
			h.logger.Info("EventsHandler", "WebSocket session ended", nil)
		})(c)
	}
	return fiber.ErrUpgradeRequired
}
