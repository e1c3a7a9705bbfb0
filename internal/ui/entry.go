package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"stackdeck/schema"
)

func (m Model) updateEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.clearFeedback()
			name := strings.TrimSpace(m.nameInput.Value())
			if err := m.session.Start(name); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.nameInput.SetValue("")
			if m.session.Phase == schema.PhaseAdmin {
				m.adminLoading = true
				return m, m.fetchRankingsCmd()
			}
			if m.session.Phase == schema.PhasePrioritization {
				m.selector = m.session.NewSelector()
			}
			return m, nil

		case tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m Model) viewEntry() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Stackdeck"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render("Swipe through principles, keep what matters, rank your top picks."))
	b.WriteString("\n\n")
	b.WriteString("Who's deciding today?\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n")
	b.WriteString(m.footer("enter: start • esc: quit"))
	return b.String()
}
