package ui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"stackdeck/core"
	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// ResultsDialer lazily connects to the remote results store. The TUI only
// dials when the user submits or opens the admin dashboard, so a missing
// remote configuration surfaces as an inline message instead of blocking
// startup.
type ResultsDialer func(ctx context.Context) (contract.ResultStore, error)

// Model is the root bubbletea model. It owns the session context object and
// dispatches every message to the handler for the session's current phase.
type Model struct {
	session *core.Session
	cfg     *contract.Config
	dial    ResultsDialer
	styles  Styles

	nameInput textinput.Model
	selector  *core.Selector
	prioPos   int

	adminView    viewport.Model
	adminReport  *schema.AggregateReport
	adminLoading bool

	width      int
	height     int
	errText    string
	notice     string
	submitting bool
	quitting   bool
}

// errMsg carries a failed operation's error into the update loop.
type errMsg struct{ err error }

// submittedMsg signals a successful remote submission.
type submittedMsg struct{}

// exportedMsg signals a finished export with its destination path.
type exportedMsg struct{ path string }

// rankingsMsg delivers the aggregate report for the admin dashboard.
type rankingsMsg struct{ report schema.AggregateReport }

// NewModel builds the root model. The session may already be mid-flow when
// the last-active pointer resolved during startup.
func NewModel(session *core.Session, cfg *contract.Config, dial ResultsDialer) Model {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 64
	ti.Focus()

	return Model{
		session:   session,
		cfg:       cfg,
		dial:      dial,
		styles:    DefaultStyles(),
		nameInput: ti,
		adminView: viewport.New(80, 20),
	}
}

// Run starts the interactive program.
func Run(session *core.Session, cfg *contract.Config, dial ResultsDialer) error {
	p := tea.NewProgram(NewModel(session, cfg, dial), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.session.Phase == schema.PhaseEntry {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.adminView.Width = msg.Width
		m.adminView.Height = msg.Height - 6 // header and footer rows
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case errMsg:
		m.submitting = false
		m.adminLoading = false
		m.errText = msg.err.Error()
		return m, nil

	case submittedMsg:
		m.submitting = false
		m.session.MarkSubmitted()
		m.notice = "Results submitted"
		return m, nil

	case exportedMsg:
		m.notice = fmt.Sprintf("Exported to %s", msg.path)
		return m, nil

	case rankingsMsg:
		m.adminLoading = false
		m.adminReport = &msg.report
		m.adminView.SetContent(m.renderAdminReport(msg.report))
		return m, nil
	}

	switch m.session.Phase {
	case schema.PhaseEntry:
		return m.updateEntry(msg)
	case schema.PhaseSwiping:
		return m.updateSwipe(msg)
	case schema.PhasePrioritization:
		return m.updatePrioritize(msg)
	case schema.PhaseComplete:
		return m.updateComplete(msg)
	case schema.PhaseAdmin:
		return m.updateAdmin(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.session.Phase {
	case schema.PhaseEntry:
		return m.viewEntry()
	case schema.PhaseSwiping:
		return m.viewSwipe()
	case schema.PhasePrioritization:
		return m.viewPrioritize()
	case schema.PhaseComplete:
		return m.viewComplete()
	case schema.PhaseAdmin:
		return m.viewAdmin()
	}
	return ""
}

// clearFeedback drops transient notices before handling the next action.
func (m *Model) clearFeedback() {
	m.errText = ""
	m.notice = ""
}

// footer renders the per-phase key help plus any error or notice line.
func (m Model) footer(help string) string {
	out := m.styles.Footer.Render(help)
	if m.errText != "" {
		out += "\n" + m.styles.Error.Render(m.errText)
	}
	if m.notice != "" {
		out += "\n" + m.styles.Success.Render(m.notice)
	}
	return out
}
