package service

import (
	"context"
	"errors"
	"sync"

	"namedeck/internal/dto"
	"namedeck/internal/whatsapp"

	"github.com/google/uuid"
)

// fakeClient is a scriptable whatsapp.Client.
type fakeClient struct {
	mu sync.Mutex

	chats      []whatsapp.Chat
	chatsErr   error
	chatByID   map[string]*whatsapp.Chat
	chatErr    error
	contacts   map[string]whatsapp.Contact
	contactErr map[string]error
	photos     map[string]string
	photoErr   map[string]error

	startErr     error
	startCtx     context.Context
	sink         whatsapp.EventSink
	contactCalls int
	photoCalls   int
	disconnected bool
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		chatByID:   make(map[string]*whatsapp.Chat),
		contacts:   make(map[string]whatsapp.Contact),
		contactErr: make(map[string]error),
		photos:     make(map[string]string),
		photoErr:   make(map[string]error),
	}
}

func (f *fakeClient) Start(ctx context.Context, sink whatsapp.EventSink) error {
	if f.startErr != nil {
		return f.startErr
	}
	f.startCtx = ctx
	f.sink = sink
	return nil
}

func (f *fakeClient) Chats(context.Context) ([]whatsapp.Chat, error) {
	return f.chats, f.chatsErr
}

func (f *fakeClient) ChatByID(_ context.Context, id string) (*whatsapp.Chat, error) {
	if f.chatErr != nil {
		return nil, f.chatErr
	}
	chat, ok := f.chatByID[id]
	if !ok {
		return nil, errors.New("chat not found")
	}
	return chat, nil
}

func (f *fakeClient) ContactByID(_ context.Context, id string) (whatsapp.Contact, error) {
	f.mu.Lock()
	f.contactCalls++
	f.mu.Unlock()
	if err := f.contactErr[id]; err != nil {
		return whatsapp.Contact{}, err
	}
	return f.contacts[id], nil
}

func (f *fakeClient) ProfilePhotoURL(_ context.Context, id string) (string, error) {
	f.mu.Lock()
	f.photoCalls++
	f.mu.Unlock()
	if err := f.photoErr[id]; err != nil {
		return "", err
	}
	return f.photos[id], nil
}

func (f *fakeClient) Disconnect() {
	f.disconnected = true
}

// recordingSubscriber collects every notification it receives.
type recordingSubscriber struct {
	id     uuid.UUID
	events []dto.SessionEvent
}

func newRecordingSubscriber() *recordingSubscriber {
	return &recordingSubscriber{id: uuid.New()}
}

func (r *recordingSubscriber) ID() uuid.UUID { return r.id }

func (r *recordingSubscriber) Notify(evt dto.SessionEvent) {
	r.events = append(r.events, evt)
}
