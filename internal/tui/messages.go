package tui

import (
	"time"

	"namedeck/internal/dto"

	tea "github.com/charmbracelet/bubbletea"
)

const reconnectDelay = 2 * time.Second

// Messages produced by backend interaction.

type sessionEventMsg dto.SessionEvent

// eventsClosedMsg means the push channel dropped.
type eventsClosedMsg struct{}

// eventsReconnectedMsg means a fresh push channel is open.
type eventsReconnectedMsg struct{}

type initializedMsg struct{ ack *dto.InitializeResponse }

type groupsMsg struct{ groups []dto.GroupSummary }

type participantsMsg struct {
	groupName    string
	participants []dto.Participant
}

type apiErrorMsg struct{ err error }

// Commands.

// waitForEvent yields the next session event. The Update loop re-issues it
// after every delivery, keeping a single reader on the channel.
func waitForEvent(api *APIClient) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-api.Events()
		if !ok {
			return eventsClosedMsg{}
		}
		return sessionEventMsg(evt)
	}
}

// reconnectEvents re-dials the push channel after a short pause. A failed
// attempt loops back through eventsClosedMsg, so the retry never gives up.
func reconnectEvents(api *APIClient) tea.Cmd {
	return func() tea.Msg {
		time.Sleep(reconnectDelay)
		if err := api.ConnectEvents(); err != nil {
			return eventsClosedMsg{}
		}
		return eventsReconnectedMsg{}
	}
}

func initializeSession(api *APIClient) tea.Cmd {
	return func() tea.Msg {
		ack, err := api.Initialize()
		if err != nil {
			return apiErrorMsg{err}
		}
		return initializedMsg{ack}
	}
}

func fetchGroups(api *APIClient) tea.Cmd {
	return func() tea.Msg {
		groups, err := api.Groups()
		if err != nil {
			return apiErrorMsg{err}
		}
		return groupsMsg{groups}
	}
}

func fetchParticipants(api *APIClient, group dto.GroupSummary) tea.Cmd {
	return func() tea.Msg {
		participants, err := api.Participants(group.Id)
		if err != nil {
			return apiErrorMsg{err}
		}
		return participantsMsg{groupName: group.Name, participants: participants}
	}
}
