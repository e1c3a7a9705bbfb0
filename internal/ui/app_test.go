package ui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/core"
	"stackdeck/internal/contract"
	"stackdeck/internal/sessionstore"
	"stackdeck/schema"
)

func testModel(t *testing.T) (Model, *sessionstore.MemoryStore) {
	t.Helper()
	store := sessionstore.NewMemoryStore()
	cfg := &contract.Config{
		AdminToken:  contract.DefaultAdminToken,
		ResultLimit: contract.DefaultResultLimit,
	}
	session := core.NewSession(store, cfg)
	dial := func(context.Context) (contract.ResultStore, error) {
		return nil, fmt.Errorf("no remote configured")
	}
	return NewModel(session, cfg, dial), store
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.Msg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeName(m Model, name string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)})
	m = next.(Model)
	return press(m, "enter")
}

func TestEntryToSwiping(t *testing.T) {
	m, _ := testModel(t)
	assert.Equal(t, schema.PhaseEntry, m.session.Phase)

	m = typeName(m, "alice")
	assert.Equal(t, schema.PhaseSwiping, m.session.Phase)
	assert.Equal(t, "alice", m.session.UserName)
	assert.Contains(t, m.View(), "Swiping")
}

func TestEntryRejectsEmptyName(t *testing.T) {
	m, _ := testModel(t)
	m = press(m, "enter")
	assert.Equal(t, schema.PhaseEntry, m.session.Phase)
	assert.Contains(t, m.View(), "cannot be empty")
}

func TestEntryAdminToken(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "admin")
	assert.Equal(t, schema.PhaseAdmin, m.session.Phase)
	assert.Contains(t, m.View(), "Admin dashboard")

	// q exits back to entry
	m = press(m, "q")
	assert.Equal(t, schema.PhaseEntry, m.session.Phase)
}

func TestSwipeKeysRecordDecisions(t *testing.T) {
	m, store := testModel(t)
	m = typeName(m, "alice")

	m = press(m, "right", "left", "l", "h")
	assert.Equal(t, 4, m.session.Cursor)

	rec, found, err := store.LoadRecord("alice")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, schema.DecisionKept, rec.Decisions["principle-1"])
	assert.Equal(t, schema.DecisionDiscarded, rec.Decisions["principle-2"])
	assert.Equal(t, schema.DecisionKept, rec.Decisions["principle-3"])
	assert.Equal(t, schema.DecisionDiscarded, rec.Decisions["principle-4"])
}

func TestSwipeUndo(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "alice")

	m = press(m, "right", "u")
	assert.Equal(t, 0, m.session.Cursor)

	// Undo with nothing decided shows an error instead of crashing
	m = press(m, "u")
	assert.Contains(t, m.View(), "nothing to undo")
}

func TestFullFlowThroughPrioritization(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "alice")

	// Keep the first three, discard the rest
	for i := 0; i < m.session.CatalogSize(); i++ {
		if i < 3 {
			m = press(m, "right")
		} else {
			m = press(m, "left")
		}
	}
	require.Equal(t, schema.PhasePrioritization, m.session.Phase)
	require.NotNil(t, m.selector)
	assert.Equal(t, 3, m.selector.Required())

	// Select all three in pointer order and confirm
	m = press(m, " ", "down", " ", "down", " ")
	assert.True(t, m.selector.Full())
	m = press(m, "enter")

	assert.Equal(t, schema.PhaseComplete, m.session.Phase)
	assert.Len(t, m.session.Ranked, 3)
	assert.Contains(t, m.View(), "All done!")
}

func TestPrioritizationToggleAndReorder(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "alice")
	for i := 0; i < m.session.CatalogSize(); i++ {
		if i < 2 {
			m = press(m, "right")
		} else {
			m = press(m, "left")
		}
	}
	require.Equal(t, schema.PhasePrioritization, m.session.Phase)

	kept := m.session.KeptPrinciples()
	m = press(m, " ", "down", " ")
	assert.Equal(t, []string{kept[0].ID, kept[1].ID}, m.selector.Selection())

	// Toggle off and back on flips the order
	m = press(m, " ", " ")
	assert.Equal(t, []string{kept[0].ID, kept[1].ID}, m.selector.Selection())

	// Move the second entry up
	m = press(m, "K")
	assert.Equal(t, []string{kept[1].ID, kept[0].ID}, m.selector.Selection())

	// Confirming early is rejected
	m = press(m, " ")
	m = press(m, "enter")
	assert.Equal(t, schema.PhasePrioritization, m.session.Phase)
	assert.Contains(t, m.View(), "required")
}

func TestAllDiscardedSkipsToComplete(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "alice")
	for i := 0; i < m.session.CatalogSize(); i++ {
		m = press(m, "left")
	}
	assert.Equal(t, schema.PhaseComplete, m.session.Phase)
	assert.NotContains(t, m.View(), "top priorities")
}

func TestCompleteSubmitFailureShowsError(t *testing.T) {
	m, _ := testModel(t)
	m = typeName(m, "alice")
	for i := 0; i < m.session.CatalogSize(); i++ {
		m = press(m, "left")
	}
	require.Equal(t, schema.PhaseComplete, m.session.Phase)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	m = next.(Model)
	assert.True(t, m.submitting)
	require.NotNil(t, cmd)

	// Run the async command inline; the dialer always fails in tests
	msg := cmd()
	next, _ = m.Update(msg)
	m = next.(Model)
	assert.False(t, m.submitting)
	assert.False(t, m.session.HasSubmitted)
	assert.Contains(t, m.View(), "no remote configured")
}

func TestCompleteResetReturnsToEntry(t *testing.T) {
	m, store := testModel(t)
	m = typeName(m, "alice")
	for i := 0; i < m.session.CatalogSize(); i++ {
		m = press(m, "left")
	}
	require.Equal(t, schema.PhaseComplete, m.session.Phase)

	m = press(m, "r")
	assert.Equal(t, schema.PhaseEntry, m.session.Phase)

	_, ok, err := store.LastActiveUser()
	require.NoError(t, err)
	assert.False(t, ok)

	// Record survives for later resume
	_, found, err := store.LoadRecord("alice")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m, _ := testModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = next.(Model)
	assert.True(t, m.quitting)
	assert.NotNil(t, cmd)
}
