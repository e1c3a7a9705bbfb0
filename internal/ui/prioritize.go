package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) updatePrioritize(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.selector == nil {
		m.selector = m.session.NewSelector()
	}
	kept := m.session.KeptPrinciples()

	switch key.String() {
	case "up", "k":
		if m.prioPos > 0 {
			m.prioPos--
		}
	case "down", "j":
		if m.prioPos < len(kept)-1 {
			m.prioPos++
		}
	case " ":
		m.clearFeedback()
		if len(kept) > 0 {
			m.selector.Toggle(kept[m.prioPos].ID)
		}
	case "K", "shift+up":
		if len(kept) > 0 {
			m.selector.MoveUp(kept[m.prioPos].ID)
		}
	case "J", "shift+down":
		if len(kept) > 0 {
			m.selector.MoveDown(kept[m.prioPos].ID)
		}
	case "enter":
		m.clearFeedback()
		ids, err := m.selector.Confirm()
		if err != nil {
			m.errText = err.Error()
			return m, nil
		}
		if err := m.session.ConfirmRanking(ids); err != nil {
			m.errText = err.Error()
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) viewPrioritize() string {
	if m.selector == nil {
		return ""
	}
	kept := m.session.KeptPrinciples()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Pick your top priorities"))
	b.WriteString("\n")
	b.WriteString(m.styles.Subtitle.Render(fmt.Sprintf(
		"Select %d of your %d kept principles, in order of importance.",
		m.selector.Required(), len(kept))))
	b.WriteString("\n\n")

	for i, p := range kept {
		pointer := "  "
		if i == m.prioPos {
			pointer = m.styles.Cursor.Render("> ")
		}
		slot := "[ ]"
		line := p.Text
		if pos := m.selector.Position(p.ID); pos > 0 {
			slot = fmt.Sprintf("[%d]", pos)
			line = m.styles.Selected.Render(line)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", pointer, slot, line))
	}

	b.WriteString(fmt.Sprintf("\n%d / %d selected\n", m.selector.Count(), m.selector.Required()))
	help := "↑/↓: move • space: select • K/J: reorder • q: quit"
	if m.selector.Full() {
		help = "enter: confirm ranking • " + help
	}
	b.WriteString(m.footer(help))
	return b.String()
}
