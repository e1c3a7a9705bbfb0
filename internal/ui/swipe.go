package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"stackdeck/schema"
)

func (m Model) updateSwipe(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		m.clearFeedback()
		if err := m.session.Decide(schema.SwipeLeft); err != nil {
			m.errText = err.Error()
		}
	case "right", "l":
		m.clearFeedback()
		if err := m.session.Decide(schema.SwipeRight); err != nil {
			m.errText = err.Error()
		}
	case "u":
		m.clearFeedback()
		if err := m.session.Undo(); err != nil {
			m.errText = err.Error()
		}
	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	// Swiping may have finished on this keypress
	if m.session.Phase == schema.PhasePrioritization {
		m.selector = m.session.NewSelector()
	}
	return m, nil
}

func (m Model) viewSwipe() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Swiping — %s", m.session.UserName)))
	b.WriteString("\n")

	p, ok := m.session.CurrentPrinciple()
	if !ok {
		return b.String()
	}

	card := m.styles.Category.Render(p.Category) + "\n\n" + p.Text
	b.WriteString(m.styles.Card.Render(card))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("%d / %d decided  (%s kept, %s discarded)\n",
		m.session.Cursor, m.session.CatalogSize(),
		m.styles.Kept.Render(fmt.Sprintf("%d", m.session.KeptCount())),
		m.styles.Discard.Render(fmt.Sprintf("%d", m.session.DiscardedCount()))))

	if next := m.session.UpcomingPrinciples(3); len(next) > 1 {
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("up next: %s", next[1].Text)))
		b.WriteString("\n")
	}

	b.WriteString(m.footer("←/h: discard • →/l: keep • u: undo • q: quit"))
	return b.String()
}
