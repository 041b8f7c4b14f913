// Package meow implements the whatsapp.Client boundary on top of
// go.mau.fi/whatsmeow with a sqlite-backed device store.
package meow

import (
	"context"
	"errors"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"go.mau.fi/whatsmeow"
	"go.mau.fi/whatsmeow/store/sqlstore"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
	waLog "go.mau.fi/whatsmeow/util/log"

	"namedeck/internal/whatsapp"
)

type Client struct {
	cli *whatsmeow.Client
}

var _ whatsapp.Client = (*Client)(nil)

// New opens (or creates) the device store at dsn and builds an unconnected
// client around the first stored device.
func New(ctx context.Context, dsn string) (*Client, error) {
	container, err := sqlstore.New(ctx, "sqlite3", dsn, waLog.Stdout("Database", "WARN", true))
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}
	device, err := container.GetFirstDevice(ctx)
	if err != nil {
		return nil, fmt.Errorf("load device: %w", err)
	}
	cli := whatsmeow.NewClient(device, waLog.Stdout("Client", "INFO", true))
	return &Client{cli: cli}, nil
}

// NewFactory returns a whatsapp.Factory bound to the given store DSN.
func NewFactory(dsn string) whatsapp.Factory {
	return func() (whatsapp.Client, error) {
		return New(context.Background(), dsn)
	}
}

func (c *Client) Start(ctx context.Context, sink whatsapp.EventSink) error {
	c.cli.AddEventHandler(func(evt interface{}) {
		switch e := evt.(type) {
		case *events.PairSuccess:
			sink.Authenticated()
		case *events.Connected:
			sink.Ready()
		case *events.Disconnected:
			sink.Disconnected("connection lost")
		case *events.LoggedOut:
			sink.Disconnected(fmt.Sprintf("logged out (%v)", e.Reason))
		}
	})

	if c.cli.Store.ID == nil {
		// Unpaired device: the QR channel must be opened before Connect.
		qrChan, err := c.cli.GetQRChannel(ctx)
		if err != nil {
			return fmt.Errorf("open qr channel: %w", err)
		}
		go func() {
			for item := range qrChan {
				switch item.Event {
				case whatsmeow.QRChannelEventCode:
					sink.LoginCode(item.Code)
				case whatsmeow.QRChannelEventError:
					sink.Disconnected(fmt.Sprintf("pairing failed: %v", item.Error))
				case whatsmeow.QRChannelTimeout.Event:
					sink.Disconnected("pairing timed out")
				}
				// "success" needs no handling here: the PairSuccess event
				// fires through the main handler.
			}
		}()
	}

	if err := c.cli.Connect(); err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	return nil
}

func (c *Client) Chats(ctx context.Context) ([]whatsapp.Chat, error) {
	// Multidevice clients only enumerate joined groups; DMs have no
	// server-side chat list to fetch.
	groups, err := c.cli.GetJoinedGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("get joined groups: %w", err)
	}
	chats := make([]whatsapp.Chat, 0, len(groups))
	for _, g := range groups {
		chats = append(chats, groupToChat(g))
	}
	return chats, nil
}

func (c *Client) ChatByID(ctx context.Context, id string) (*whatsapp.Chat, error) {
	jid, err := types.ParseJID(id)
	if err != nil {
		return nil, fmt.Errorf("parse chat id %q: %w", id, err)
	}
	if jid.Server != types.GroupServer {
		return &whatsapp.Chat{ID: id, IsGroup: false}, nil
	}
	info, err := c.cli.GetGroupInfo(ctx, jid)
	if err != nil {
		return nil, fmt.Errorf("get group info: %w", err)
	}
	chat := groupToChat(info)
	return &chat, nil
}

func (c *Client) ContactByID(ctx context.Context, id string) (whatsapp.Contact, error) {
	jid, err := types.ParseJID(id)
	if err != nil {
		return whatsapp.Contact{}, fmt.Errorf("parse contact id %q: %w", id, err)
	}
	info, err := c.cli.Store.Contacts.GetContact(ctx, jid.ToNonAD())
	if err != nil {
		return whatsapp.Contact{}, fmt.Errorf("get contact: %w", err)
	}
	return whatsapp.Contact{
		Found:     info.Found,
		ShortName: info.FirstName,
		FullName:  info.FullName,
	}, nil
}

func (c *Client) ProfilePhotoURL(ctx context.Context, id string) (string, error) {
	jid, err := types.ParseJID(id)
	if err != nil {
		return "", fmt.Errorf("parse contact id %q: %w", id, err)
	}
	pic, err := c.cli.GetProfilePictureInfo(ctx, jid.ToNonAD(), &whatsmeow.GetProfilePictureParams{})
	if err != nil {
		if errors.Is(err, whatsmeow.ErrProfilePictureNotSet) || errors.Is(err, whatsmeow.ErrProfilePictureUnauthorized) {
			return "", nil
		}
		return "", fmt.Errorf("get profile picture: %w", err)
	}
	if pic == nil {
		return "", nil
	}
	return pic.URL, nil
}

func (c *Client) Disconnect() {
	c.cli.Disconnect()
}

func groupToChat(g *types.GroupInfo) whatsapp.Chat {
	ids := make([]string, 0, len(g.Participants))
	for _, p := range g.Participants {
		ids = append(ids, p.JID.ToNonAD().String())
	}
	return whatsapp.Chat{
		ID:             g.JID.String(),
		Name:           g.Name,
		IsGroup:        true,
		ParticipantIDs: ids,
	}
}
