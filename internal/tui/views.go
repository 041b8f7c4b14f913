package tui

import (
	"fmt"
	"strings"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("NameDeck"))
	b.WriteString("\n\n")

	switch m.screen {
	case screenConnect:
		b.WriteString(m.connectView())
	case screenGroups:
		b.WriteString(m.groupsView())
	case screenStudy:
		b.WriteString(m.studyView())
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.helpLine()))
	return b.String()
}

func (m Model) connectView() string {
	var b strings.Builder

	switch {
	case m.ready:
		b.WriteString("WhatsApp is connected.\n\n")
		b.WriteString("Press enter to browse your groups.")
	case m.hasQR:
		b.WriteString(m.spin.View())
		b.WriteString(" Waiting for you to pair...\n\n")
		b.WriteString(subtleStyle.Render(m.statusMsg))
	default:
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(m.statusMsg)
	}
	return b.String()
}

func (m Model) groupsView() string {
	var b strings.Builder
	b.WriteString("Select a group to study\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" Loading participants...")
		return b.String()
	}

	if len(m.groups) == 0 {
		b.WriteString(subtleStyle.Render("No group chats found."))
		return b.String()
	}

	for i, g := range m.groups {
		line := fmt.Sprintf("%s (%d members)", g.Name, g.ParticipantCount)
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) studyView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Studying: %s\n\n", m.groupName))

	if m.deck == nil || m.deck.Empty() {
		b.WriteString(subtleStyle.Render("No members with profile photos in this group."))
		return b.String()
	}

	card, _ := m.deck.Current()
	var face strings.Builder
	face.WriteString(fmt.Sprintf("Card %d of %d\n\n", m.deck.Index()+1, m.deck.Len()))
	face.WriteString("Photo: " + card.ProfilePicUrl + "\n\n")
	if m.deck.Revealed() {
		face.WriteString(answerStyle.Render(card.Name) + "\n")
		face.WriteString(subtleStyle.Render("+" + card.Number))
	} else {
		face.WriteString(subtleStyle.Render("Who is this?"))
	}

	b.WriteString(cardStyle.Render(face.String()))
	return b.String()
}

func (m Model) helpLine() string {
	switch m.screen {
	case screenConnect:
		return "enter: continue • q: quit"
	case screenGroups:
		return "↑/↓: move • enter: select • esc: back • q: quit"
	case screenStudy:
		return "space: reveal • →/n: next • ←/p: prev • 0: restart • esc: back • q: quit"
	}
	return ""
}
