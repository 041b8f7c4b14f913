package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"namedeck/internal/bootstrap"
	"namedeck/internal/config"
	"namedeck/internal/dto"
	"namedeck/internal/whatsapp"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// stubClient is just enough of a whatsapp.Client for HTTP-level tests.
type stubClient struct {
	chats    []whatsapp.Chat
	chatByID map[string]*whatsapp.Chat
}

func (s *stubClient) Start(context.Context, whatsapp.EventSink) error { return nil }

func (s *stubClient) Chats(context.Context) ([]whatsapp.Chat, error) { return s.chats, nil }

func (s *stubClient) ChatByID(_ context.Context, id string) (*whatsapp.Chat, error) {
	if chat, ok := s.chatByID[id]; ok {
		return chat, nil
	}
	return nil, fiber.ErrNotFound
}

func (s *stubClient) ContactByID(context.Context, string) (whatsapp.Contact, error) {
	return whatsapp.Contact{}, nil
}

func (s *stubClient) ProfilePhotoURL(context.Context, string) (string, error) { return "", nil }

func (s *stubClient) Disconnect() {}

func newTestServer(t *testing.T, stub *stubClient) (*fiber.App, *bootstrap.Container) {
	t.Helper()
	cfg := config.Load()
	cfg.App.LogFilePath = t.TempDir() + "/test.log"
	container := bootstrap.NewContainerWithFactory(cfg, func() (whatsapp.Client, error) {
		return stub, nil
	})
	srv := New(cfg, container)
	return srv.GetApp(), container
}

func TestStatusEndpoint(t *testing.T) {
	app, _ := newTestServer(t, &stubClient{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/status", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var status dto.StatusResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&status))
	assert.False(t, status.Ready)
	assert.False(t, status.HasQR)
}

func TestInitializeIsIdempotentOverHTTP(t *testing.T) {
	app, _ := newTestServer(t, &stubClient{})

	res, err := app.Test(httptest.NewRequest("POST", "/api/initialize", nil))
	assert.NoError(t, err)
	var ack dto.InitializeResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&ack))
	assert.Equal(t, "Client initializing", ack.Message)

	res, err = app.Test(httptest.NewRequest("POST", "/api/initialize", nil))
	assert.NoError(t, err)
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&ack))
	assert.Equal(t, "Client already exists", ack.Message)
}

func TestGroupsRejectedBeforeReady(t *testing.T) {
	app, _ := newTestServer(t, &stubClient{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/groups", nil))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "Client not ready")
}

func TestGroupsAfterReady(t *testing.T) {
	stub := &stubClient{
		chats: []whatsapp.Chat{
			{ID: "111@g.us", Name: "Climbing Crew", IsGroup: true, ParticipantIDs: []string{"1@s.whatsapp.net"}},
			{ID: "9@s.whatsapp.net", Name: "Alice", IsGroup: false},
		},
	}
	app, container := newTestServer(t, stub)

	_, err := app.Test(httptest.NewRequest("POST", "/api/initialize", nil))
	assert.NoError(t, err)
	container.SessionService.(whatsapp.EventSink).Ready()

	res, err := app.Test(httptest.NewRequest("GET", "/api/groups", nil))
	assert.NoError(t, err)
	assert.Equal(t, 200, res.StatusCode)

	var groups []dto.GroupSummary
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&groups))
	assert.Equal(t, []dto.GroupSummary{
		{Id: "111@g.us", Name: "Climbing Crew", ParticipantCount: 1},
	}, groups)
}

func TestParticipantsRejectsNonGroup(t *testing.T) {
	stub := &stubClient{
		chatByID: map[string]*whatsapp.Chat{
			"9@s.whatsapp.net": {ID: "9@s.whatsapp.net", IsGroup: false},
		},
	}
	app, container := newTestServer(t, stub)

	_, err := app.Test(httptest.NewRequest("POST", "/api/initialize", nil))
	assert.NoError(t, err)
	container.SessionService.(whatsapp.EventSink).Ready()

	res, err := app.Test(httptest.NewRequest("GET", "/api/group/9@s.whatsapp.net/participants", nil))
	assert.NoError(t, err)
	assert.Equal(t, 400, res.StatusCode)

	body, _ := io.ReadAll(res.Body)
	assert.Contains(t, string(body), "Not a group chat")
}

func TestQREndpointWithoutPendingCode(t *testing.T) {
	app, _ := newTestServer(t, &stubClient{})

	res, err := app.Test(httptest.NewRequest("GET", "/api/qr", nil))
	assert.NoError(t, err)
	assert.Equal(t, 404, res.StatusCode)
}
