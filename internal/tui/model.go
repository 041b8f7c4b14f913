// Package tui is the terminal presentation client: three screens
// (connect, groups, study) driven purely by local state plus backend
// events.
package tui

import (
	"namedeck/internal/deck"
	"namedeck/internal/dto"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenConnect screen = iota
	screenGroups
	screenStudy
)

// Model is the main Bubble Tea model for the study client.
type Model struct {
	api  *APIClient
	keys KeyMap
	spin spinner.Model

	screen screen
	width  int
	height int

	// session state mirrored from the push channel
	ready     bool
	hasQR     bool
	initSent  bool
	statusMsg string
	errMsg    string

	// groups screen
	groups  []dto.GroupSummary
	cursor  int
	loading bool

	// study screen
	deck      *deck.Deck
	groupName string
}

func NewModel(api *APIClient) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#25D366"))

	return Model{
		api:       api,
		keys:      DefaultKeyMap(),
		spin:      sp,
		screen:    screenConnect,
		statusMsg: "Connecting to WhatsApp...",
	}
}

func (m Model) Init() tea.Cmd {
	// The connect screen's job starts immediately: request session
	// initialization and listen for lifecycle events.
	return tea.Batch(m.spin.Tick, waitForEvent(m.api), initializeSession(m.api))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case sessionEventMsg:
		return m.handleSessionEvent(dto.SessionEvent(msg))

	case eventsClosedMsg:
		m.ready = false
		m.hasQR = false
		m.errMsg = "Lost connection to server, retrying..."
		return m.forceConnect(), reconnectEvents(m.api)

	case eventsReconnectedMsg:
		m.errMsg = ""
		m.statusMsg = "Reconnected, waiting for session state..."
		// The server replays its state snapshot on subscribe; resume
		// listening for it.
		return m, waitForEvent(m.api)

	case initializedMsg:
		m.initSent = true
		m.statusMsg = msg.ack.Message
		return m, nil

	case groupsMsg:
		m.loading = false
		m.errMsg = ""
		m.groups = msg.groups
		m.cursor = 0
		m.screen = screenGroups
		return m, nil

	case participantsMsg:
		m.loading = false
		m.errMsg = ""
		m.deck = deck.Build(msg.participants)
		m.groupName = msg.groupName
		m.screen = screenStudy
		return m, nil

	case apiErrorMsg:
		// Stay on the current screen; the user decides what to do next.
		m.loading = false
		m.errMsg = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSessionEvent(evt dto.SessionEvent) (tea.Model, tea.Cmd) {
	switch evt.Event {
	case dto.EventQR:
		m.hasQR = true
		m.statusMsg = "Scan the QR code with your phone (open /api/qr in a browser)"
	case dto.EventAuthenticated:
		m.hasQR = false
		m.statusMsg = "Authenticated, waiting for WhatsApp..."
	case dto.EventReady:
		m.ready = true
		m.hasQR = false
		m.statusMsg = "Connected"
	case dto.EventDisconnected:
		m.ready = false
		m.errMsg = "Disconnected: " + evt.Payload
		// Anywhere past the connect screen, a disconnect throws the user
		// back and discards stale directory data.
		return m.forceConnect(), waitForEvent(m.api)
	}
	return m, waitForEvent(m.api)
}

func (m Model) forceConnect() Model {
	m.screen = screenConnect
	m.groups = nil
	m.cursor = 0
	m.deck = nil
	m.groupName = ""
	m.loading = false
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.api.Close()
		return m, tea.Quit
	}

	switch m.screen {
	case screenConnect:
		return m.handleConnectKey(msg)
	case screenGroups:
		return m.handleGroupsKey(msg)
	case screenStudy:
		return m.handleStudyKey(msg)
	}
	return m, nil
}

func (m Model) handleConnectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Select) {
		switch {
		case m.ready && !m.loading:
			m.loading = true
			m.errMsg = ""
			return m, fetchGroups(m.api)
		case !m.initSent:
			return m, initializeSession(m.api)
		}
	}
	return m, nil
}

func (m Model) handleGroupsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.groups)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if !m.loading && len(m.groups) > 0 {
			m.loading = true
			m.errMsg = ""
			return m, fetchParticipants(m.api, m.groups[m.cursor])
		}
	case key.Matches(msg, m.keys.Back):
		m.groups = nil
		m.cursor = 0
		m.errMsg = ""
		m.screen = screenConnect
	}
	return m, nil
}

func (m Model) handleStudyKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Reveal):
		m.deck.Reveal()
	case key.Matches(msg, m.keys.Next):
		m.deck.Next()
	case key.Matches(msg, m.keys.Previous):
		m.deck.Previous()
	case key.Matches(msg, m.keys.Reset):
		m.deck.Reset()
	case key.Matches(msg, m.keys.Back):
		m.deck = nil
		m.groupName = ""
		m.errMsg = ""
		m.screen = screenGroups
	}
	return m, nil
}
