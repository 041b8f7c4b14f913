package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"namedeck/internal/dto"
	"namedeck/internal/pkg/logger"
	"namedeck/internal/whatsapp"

	"github.com/stretchr/testify/assert"
)

func newTestSession(t *testing.T) (ISessionService, *fakeClient, *int) {
	t.Helper()
	client := newFakeClient()
	constructions := 0
	factory := func() (whatsapp.Client, error) {
		constructions++
		return client, nil
	}
	log := logger.NewZapLogger(t.TempDir()+"/test.log", false)
	return NewSessionService(factory, 64, log), client, &constructions
}

// sink exposes the bridge's lifecycle callbacks for tests.
func sink(svc ISessionService) whatsapp.EventSink {
	return svc.(whatsapp.EventSink)
}

func TestInitializeIsIdempotent(t *testing.T) {
	svc, _, constructions := newTestSession(t)

	res, err := svc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Client initializing", res.Message)

	res, err = svc.Initialize(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Client already exists", res.Message)

	assert.Equal(t, 1, *constructions)
}

func TestInitializeFactoryFailureLeavesBridgeUninitialized(t *testing.T) {
	factoryErr := errors.New("open device store: database is locked")
	factory := func() (whatsapp.Client, error) { return nil, factoryErr }
	log := logger.NewZapLogger(t.TempDir()+"/test.log", false)
	svc := NewSessionService(factory, 64, log)

	_, err := svc.Initialize(context.Background())
	assert.ErrorIs(t, err, factoryErr)
	assert.Nil(t, svc.Client())

	// A later call may try again.
	_, err = svc.Initialize(context.Background())
	assert.ErrorIs(t, err, factoryErr)
}

func TestInitializeDetachesClientFromRequestContext(t *testing.T) {
	svc, client, _ := newTestSession(t)

	reqCtx, cancel := context.WithCancel(context.Background())
	_, err := svc.Initialize(reqCtx)
	assert.NoError(t, err)

	// The request is over; pairing keeps running. The context handed to
	// the client must survive the request's cancellation.
	cancel()
	assert.NotNil(t, client.startCtx)
	assert.NoError(t, client.startCtx.Err())
}

func TestInitializeStartFailure(t *testing.T) {
	svc, client, _ := newTestSession(t)
	client.startErr = errors.New("socket refused")

	_, err := svc.Initialize(context.Background())
	assert.ErrorIs(t, err, client.startErr)
	assert.Nil(t, svc.Client())
}

func TestLifecycleBroadcastsReachAllSubscribers(t *testing.T) {
	svc, _, _ := newTestSession(t)
	_, _ = svc.Initialize(context.Background())

	a := newRecordingSubscriber()
	b := newRecordingSubscriber()
	svc.Subscribe(a)
	svc.Subscribe(b)

	sink(svc).LoginCode("2@pairing-one")
	sink(svc).Authenticated()
	sink(svc).Ready()
	sink(svc).Disconnected("connection lost")

	for _, sub := range []*recordingSubscriber{a, b} {
		assert.Len(t, sub.events, 4)
		assert.Equal(t, dto.EventQR, sub.events[0].Event)
		assert.True(t, strings.HasPrefix(sub.events[0].Payload, "data:image/png;base64,"))
		assert.Equal(t, dto.EventAuthenticated, sub.events[1].Event)
		assert.Equal(t, dto.EventReady, sub.events[2].Event)
		assert.Equal(t, dto.EventDisconnected, sub.events[3].Event)
		assert.Equal(t, "connection lost", sub.events[3].Payload)
	}
}

func TestFreshQROverwritesPending(t *testing.T) {
	svc, _, _ := newTestSession(t)

	sink(svc).LoginCode("2@first")
	first, ok := svc.CurrentQR()
	assert.True(t, ok)

	sink(svc).LoginCode("2@second")
	second, ok := svc.CurrentQR()
	assert.True(t, ok)
	assert.NotEqual(t, first, second)
}

func TestSnapshotFollowsLatestEvent(t *testing.T) {
	svc, _, _ := newTestSession(t)

	// Nothing happened yet: the new subscriber hears nothing.
	quiet := newRecordingSubscriber()
	svc.Subscribe(quiet)
	assert.Empty(t, quiet.events)

	// Pending QR: replayed immediately.
	sink(svc).LoginCode("2@code")
	late := newRecordingSubscriber()
	svc.Subscribe(late)
	assert.Len(t, late.events, 1)
	assert.Equal(t, dto.EventQR, late.events[0].Event)

	// Authenticated clears the QR; ready wins for the next joiner.
	sink(svc).Authenticated()
	sink(svc).Ready()
	afterReady := newRecordingSubscriber()
	svc.Subscribe(afterReady)
	assert.Equal(t, []dto.SessionEvent{{Event: dto.EventReady}}, afterReady.events)

	// Disconnected: back to silence for new joiners.
	sink(svc).Disconnected("connection lost")
	afterDrop := newRecordingSubscriber()
	svc.Subscribe(afterDrop)
	assert.Empty(t, afterDrop.events)
}

func TestStatusSnapshot(t *testing.T) {
	svc, _, _ := newTestSession(t)

	assert.Equal(t, &dto.StatusResponse{Ready: false, HasQR: false}, svc.Status())

	sink(svc).LoginCode("2@code")
	assert.Equal(t, &dto.StatusResponse{Ready: false, HasQR: true}, svc.Status())

	sink(svc).Authenticated()
	sink(svc).Ready()
	assert.Equal(t, &dto.StatusResponse{Ready: true, HasQR: false}, svc.Status())

	sink(svc).Disconnected("logged out (main device)")
	assert.Equal(t, &dto.StatusResponse{Ready: false, HasQR: false}, svc.Status())
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	svc, _, _ := newTestSession(t)

	sub := newRecordingSubscriber()
	svc.Subscribe(sub)
	svc.Unsubscribe(sub.ID())

	sink(svc).Ready()
	assert.Empty(t, sub.events)
}

func TestShutdownDisconnectsClient(t *testing.T) {
	svc, client, _ := newTestSession(t)
	_, _ = svc.Initialize(context.Background())

	svc.Shutdown()
	assert.True(t, client.disconnected)
}
