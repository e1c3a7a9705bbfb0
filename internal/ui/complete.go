package ui

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackdeck/core"
	"stackdeck/schema"
)

// submitTimeout bounds a single remote submission attempt.
const submitTimeout = 15 * time.Second

func (m Model) updateComplete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "s":
		if m.submitting {
			return m, nil
		}
		if m.session.HasSubmitted {
			m.notice = "Already submitted this session"
			return m, nil
		}
		m.clearFeedback()
		m.submitting = true
		return m, m.submitCmd()

	case "e":
		m.clearFeedback()
		return m, m.exportCmd()

	case "r":
		m.clearFeedback()
		if err := m.session.Reset(); err != nil {
			m.errText = err.Error()
			return m, nil
		}
		m.selector = nil
		m.prioPos = 0
		m.nameInput.Focus()
		return m, nil

	case "q", "esc":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// submitCmd appends the completed session to the remote results store.
func (m Model) submitCmd() tea.Cmd {
	row, err := m.session.ResultRow()
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	dial := m.dial
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		store, err := dial(ctx)
		if err != nil {
			return errMsg{err}
		}
		defer func() { _ = store.Close() }()

		if err := store.Insert(ctx, row); err != nil {
			return errMsg{err}
		}
		return submittedMsg{}
	}
}

// exportCmd writes the session artifact next to the working directory,
// named after the user and date.
func (m Model) exportCmd() tea.Cmd {
	export, err := core.BuildExport(m.session)
	if err != nil {
		return func() tea.Msg { return errMsg{err} }
	}
	return func() tea.Msg {
		path := fmt.Sprintf("%s-principles-%s.json", export.User, export.Date.Format("2006-01-02"))
		data, err := json.MarshalIndent(export, "", "  ")
		if err != nil {
			return errMsg{err}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return errMsg{fmt.Errorf("failed to write export: %w", err)}
		}
		return exportedMsg{path}
	}
}

func (m Model) viewComplete() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("All done!"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s, you decided on %d principles: %s kept, %s discarded.\n\n",
		m.session.UserName,
		len(m.session.Decisions),
		m.styles.Kept.Render(fmt.Sprintf("%d", m.session.KeptCount())),
		m.styles.Discard.Render(fmt.Sprintf("%d", m.session.DiscardedCount()))))

	if len(m.session.Ranked) > 0 {
		b.WriteString("Your top priorities:\n")
		for i, id := range m.session.Ranked {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, schema.PrincipleText(id)))
		}
		b.WriteString("\n")
	}

	status := "s: submit results"
	if m.submitting {
		status = "submitting..."
	} else if m.session.HasSubmitted {
		status = "submitted ✓"
	}
	b.WriteString(m.footer(status + " • e: export • r: start over • q: quit"))
	return b.String()
}
