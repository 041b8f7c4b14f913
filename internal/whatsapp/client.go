// Package whatsapp defines the boundary to the external WhatsApp
// automation client. The rest of the application only sees this interface;
// the whatsmeow-backed implementation lives in the meow subpackage.
package whatsapp

import "context"

// Chat is a chat as reported by the automation client.
type Chat struct {
	ID      string
	Name    string
	IsGroup bool
	// ParticipantIDs are raw participant ids (phone-number JIDs) for group
	// chats; nil for non-groups or when the client reports none.
	ParticipantIDs []string
}

// Contact is the address-book information the automation client holds for
// a single participant id.
type Contact struct {
	Found     bool
	ShortName string
	FullName  string
}

// EventSink receives session lifecycle notifications. The session bridge
// registers exactly one sink when it constructs the client; each callback
// corresponds to one state transition.
type EventSink interface {
	LoginCode(code string)
	Authenticated()
	Ready()
	Disconnected(reason string)
}

// Client is the automation client handle. All methods are long-latency
// network operations and honor ctx cancellation; none of them mutate chat
// or contact state.
type Client interface {
	// Start connects the client and begins delivering lifecycle events to
	// the sink. It returns once the connection attempt is underway; pairing
	// progress arrives through the sink.
	Start(ctx context.Context, sink EventSink) error

	// Chats lists the chats the account participates in.
	Chats(ctx context.Context) ([]Chat, error)

	// ChatByID resolves a single chat by id.
	ChatByID(ctx context.Context, id string) (*Chat, error)

	// ContactByID looks up address-book info for a participant id.
	ContactByID(ctx context.Context, id string) (Contact, error)

	// ProfilePhotoURL returns the participant's profile photo URL, or ""
	// when the user has none. Absence is not an error.
	ProfilePhotoURL(ctx context.Context, id string) (string, error)

	// Disconnect closes the connection without logging out.
	Disconnect()
}

// Factory constructs a Client. The session bridge calls it at most once
// per process.
type Factory func() (Client, error)
