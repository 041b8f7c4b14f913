package bootstrap

import (
	"namedeck/internal/config"
	"namedeck/internal/controller"
	"namedeck/internal/handler"
	"namedeck/internal/pkg/logger"
	"namedeck/internal/service"
	"namedeck/internal/websocket"
	"namedeck/internal/whatsapp"
	"namedeck/internal/whatsapp/meow"
)

type Container struct {
	// Controllers
	SessionController   controller.ISessionController
	DirectoryController controller.IDirectoryController

	// WebSockets
	EventsHandler *handler.EventsHandler
	WebSocketHub  *websocket.Hub

	// Shared
	SessionService service.ISessionService
	Logger         logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	return NewContainerWithFactory(cfg, meow.NewFactory(cfg.WhatsApp.StoreDSN))
}

// NewContainerWithFactory wires the app around an arbitrary client factory.
// Tests inject fakes through this.
func NewContainerWithFactory(cfg *config.Config, factory whatsapp.Factory) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	sessionService := service.NewSessionService(factory, cfg.WhatsApp.QRSize, sysLogger)
	directoryService := service.NewDirectoryService(sessionService, sysLogger)

	hub := websocket.NewHub(sessionService, sysLogger)

	return &Container{
		SessionController:   controller.NewSessionController(sessionService),
		DirectoryController: controller.NewDirectoryController(directoryService),
		EventsHandler:       handler.NewEventsHandler(hub, sysLogger),
		WebSocketHub:        hub,
		SessionService:      sessionService,
		Logger:              sysLogger,
	}
}
