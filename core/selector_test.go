package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorToggleOrder(t *testing.T) {
	sel := NewSelector(3)

	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")
	assert.Equal(t, []string{"a", "b", "c"}, sel.Selection())
	assert.True(t, sel.Full())

	// Slots are full; another selection is a no-op
	sel.Toggle("d")
	assert.Equal(t, []string{"a", "b", "c"}, sel.Selection())

	// Deselecting the middle entry closes the gap
	sel.Toggle("b")
	assert.Equal(t, []string{"a", "c"}, sel.Selection())
	assert.Equal(t, 2, sel.Position("c"))
	assert.Zero(t, sel.Position("b"))

	// Re-selecting appends at the end
	sel.Toggle("b")
	assert.Equal(t, []string{"a", "c", "b"}, sel.Selection())
}

func TestSelectorToggleTwiceRestoresState(t *testing.T) {
	sel := NewSelector(5)
	sel.Toggle("a")
	sel.Toggle("b")

	before := sel.Selection()
	sel.Toggle("c")
	sel.Toggle("c")
	assert.Equal(t, before, sel.Selection())

	// Same holds when the slots are full
	full := NewSelector(1)
	full.Toggle("x")
	full.Toggle("y")
	full.Toggle("y")
	assert.Equal(t, []string{"x"}, full.Selection())
}

func TestSelectorReorder(t *testing.T) {
	sel := NewSelector(3)
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")

	require.NoError(t, sel.Reorder([]string{"c", "a", "b"}))
	assert.Equal(t, []string{"c", "a", "b"}, sel.Selection())

	// Anything that is not a same-set permutation is rejected and leaves
	// the selection untouched
	assert.Error(t, sel.Reorder([]string{"c", "a"}))
	assert.Error(t, sel.Reorder([]string{"c", "a", "b", "d"}))
	assert.Error(t, sel.Reorder([]string{"c", "a", "d"}))
	assert.Error(t, sel.Reorder([]string{"c", "a", "a"}))
	assert.Equal(t, []string{"c", "a", "b"}, sel.Selection())
}

func TestSelectorMove(t *testing.T) {
	sel := NewSelector(3)
	sel.Toggle("a")
	sel.Toggle("b")
	sel.Toggle("c")

	sel.MoveUp("c")
	assert.Equal(t, []string{"a", "c", "b"}, sel.Selection())

	sel.MoveUp("a") // already first
	assert.Equal(t, []string{"a", "c", "b"}, sel.Selection())

	sel.MoveDown("a")
	assert.Equal(t, []string{"c", "a", "b"}, sel.Selection())

	sel.MoveDown("b") // already last
	assert.Equal(t, []string{"c", "a", "b"}, sel.Selection())

	sel.MoveUp("zzz") // unselected ids are ignored
	assert.Equal(t, []string{"c", "a", "b"}, sel.Selection())
}

func TestSelectorConfirm(t *testing.T) {
	sel := NewSelector(2)
	_, err := sel.Confirm()
	assert.Error(t, err)

	sel.Toggle("a")
	_, err = sel.Confirm()
	assert.Error(t, err)

	sel.Toggle("b")
	ids, err := sel.Confirm()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestSelectorZeroRequired(t *testing.T) {
	sel := NewSelector(0)
	sel.Toggle("a")
	assert.Zero(t, sel.Count())
	ids, err := sel.Confirm()
	require.NoError(t, err)
	assert.Empty(t, ids)
}
