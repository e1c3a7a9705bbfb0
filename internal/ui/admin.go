package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"stackdeck/core"
	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// fetchTimeout bounds one dashboard refresh.
const fetchTimeout = 20 * time.Second

func (m Model) updateAdmin(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "r":
			if !m.adminLoading {
				m.clearFeedback()
				m.adminLoading = true
				return m, m.fetchRankingsCmd()
			}
			return m, nil
		case "q", "esc":
			m.clearFeedback()
			m.adminReport = nil
			if err := m.session.ExitAdmin(); err != nil {
				m.errText = err.Error()
				return m, nil
			}
			m.nameInput.Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.adminView, cmd = m.adminView.Update(msg)
	return m, cmd
}

// fetchRankingsCmd pulls all submitted rows and aggregates them off the
// update loop.
func (m Model) fetchRankingsCmd() tea.Cmd {
	dial := m.dial
	limit := m.cfg.ResultLimit
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		store, err := dial(ctx)
		if err != nil {
			return errMsg{err}
		}
		defer func() { _ = store.Close() }()

		rows, err := store.ListAll(ctx)
		if err != nil {
			return errMsg{err}
		}
		report := core.AggregateResults(rows)
		report.Rankings = core.TopRankings(report, limit)
		return rankingsMsg{report}
	}
}

// renderAdminReport builds the scrollable dashboard body.
func (m Model) renderAdminReport(report schema.AggregateReport) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%d sessions submitted\n\n", report.TotalSessions))

	if len(report.Rankings) == 0 {
		b.WriteString("No results yet. Ask the team to swipe and submit first.\n")
		return b.String()
	}

	for i, st := range report.Rankings {
		label := contract.GetPlainLabel(st.Score)
		b.WriteString(fmt.Sprintf("%3d. %-50s  %5.1f%%  %-9s  top5 %d (score %d)  votes %d\n",
			i+1, contract.TruncateText(st.Text, 50), st.Score, label,
			st.Top5Count, st.Top5Score, st.TotalVotes))
	}
	return b.String()
}

func (m Model) viewAdmin() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Admin dashboard"))
	b.WriteString("\n")

	switch {
	case m.adminLoading:
		b.WriteString(m.styles.Muted.Render("Fetching results..."))
		b.WriteString("\n")
	case m.adminReport == nil && m.errText == "":
		b.WriteString(m.styles.Muted.Render("Press r to load results."))
		b.WriteString("\n")
	default:
		b.WriteString(m.adminView.View())
		b.WriteString("\n")
	}

	b.WriteString(m.footer("r: refresh • ↑/↓: scroll • q: back to entry"))
	return b.String()
}
