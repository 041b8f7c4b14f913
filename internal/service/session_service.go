package service

import (
	"context"
	"sync"

	"namedeck/internal/dto"
	"namedeck/internal/pkg/logger"
	"namedeck/internal/pkg/qrimage"
	"namedeck/internal/whatsapp"

	"github.com/google/uuid"
)

// ISubscriber observes session lifecycle events. Notify must not block:
// the bridge calls it while holding its state lock so that a snapshot
// delivered on Subscribe can never be older than the latest broadcast.
type ISubscriber interface {
	ID() uuid.UUID
	Notify(evt dto.SessionEvent)
}

type ISessionService interface {
	// Initialize constructs and starts the automation client. Idempotent:
	// repeat calls report the existing client instead of building another.
	// The client's lifetime is process-scoped, not bound to the caller's
	// ctx.
	Initialize(ctx context.Context) (*dto.InitializeResponse, error)
	Status() *dto.StatusResponse
	IsReady() bool
	// CurrentQR returns the pending pairing image, if any.
	CurrentQR() (string, bool)
	Subscribe(sub ISubscriber)
	Unsubscribe(id uuid.UUID)
	// Client returns the shared automation client handle, nil before the
	// first successful Initialize.
	Client() whatsapp.Client
	Shutdown()
}

type sessionService struct {
	mu          sync.Mutex
	factory     whatsapp.Factory
	client      whatsapp.Client
	qrDataURI   string
	ready       bool
	subscribers map[uuid.UUID]ISubscriber
	qrSize      int
	logger      logger.ILogger
}

func NewSessionService(factory whatsapp.Factory, qrSize int, log logger.ILogger) ISessionService {
	return &sessionService{
		factory:     factory,
		subscribers: make(map[uuid.UUID]ISubscriber),
		qrSize:      qrSize,
		logger:      log,
	}
}

func (s *sessionService) Initialize(_ context.Context) (*dto.InitializeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return &dto.InitializeResponse{Message: "Client already exists"}, nil
	}

	client, err := s.factory()
	if err != nil {
		s.logger.Error("SessionService", "Client construction failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	// The sink is registered exactly once, here. Lifecycle callbacks
	// arrive on the client's own goroutines, and pairing keeps running
	// long after the initialize request returns, so Start gets a
	// detached context instead of the request's. A fiber request ctx is
	// recycled once the handler returns and must not be retained.
	if err := client.Start(context.Background(), s); err != nil {
		s.logger.Error("SessionService", "Client start failed", map[string]interface{}{"error": err.Error()})
		return nil, err
	}
	s.client = client
	s.logger.Info("SessionService", "Client initializing", nil)
	return &dto.InitializeResponse{Message: "Client initializing"}, nil
}

func (s *sessionService) Status() *dto.StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &dto.StatusResponse{Ready: s.ready, HasQR: s.qrDataURI != ""}
}

func (s *sessionService) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

func (s *sessionService) CurrentQR() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qrDataURI, s.qrDataURI != ""
}

func (s *sessionService) Client() whatsapp.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client
}

// Subscribe registers the subscriber and synchronously replays the current
// state: a pending QR wins, then readiness. A subscriber joining before
// any event stays silent until the first broadcast.
func (s *sessionService) Subscribe(sub ISubscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers[sub.ID()] = sub

	if s.qrDataURI != "" {
		sub.Notify(dto.SessionEvent{Event: dto.EventQR, Payload: s.qrDataURI})
	} else if s.ready {
		sub.Notify(dto.SessionEvent{Event: dto.EventReady})
	}
}

func (s *sessionService) Unsubscribe(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers, id)
}

func (s *sessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		s.client.Disconnect()
	}
}

// broadcast delivers evt to every subscriber. Caller holds s.mu.
func (s *sessionService) broadcast(evt dto.SessionEvent) {
	for _, sub := range s.subscribers {
		sub.Notify(evt)
	}
}

// whatsapp.EventSink implementation. Each callback performs exactly one
// state transition and one broadcast.

func (s *sessionService) LoginCode(code string) {
	uri, err := qrimage.DataURI(code, s.qrSize)
	if err != nil {
		s.logger.Error("SessionService", "QR render failed", map[string]interface{}{"error": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrDataURI = uri // a fresh code overwrites the previous one
	s.logger.Info("SessionService", "QR Code received", nil)
	s.broadcast(dto.SessionEvent{Event: dto.EventQR, Payload: uri})
}

func (s *sessionService) Authenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.qrDataURI = ""
	s.logger.Info("SessionService", "Client authenticated", nil)
	s.broadcast(dto.SessionEvent{Event: dto.EventAuthenticated})
}

func (s *sessionService) Ready() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = true
	s.logger.Info("SessionService", "Client is ready", nil)
	s.broadcast(dto.SessionEvent{Event: dto.EventReady})
}

func (s *sessionService) Disconnected(reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
	s.logger.Warn("SessionService", "Client disconnected", map[string]interface{}{"reason": reason})
	s.broadcast(dto.SessionEvent{Event: dto.EventDisconnected, Payload: reason})
}

var _ whatsapp.EventSink = (*sessionService)(nil)
