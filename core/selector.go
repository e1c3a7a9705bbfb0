package core

import (
	"fmt"
	"slices"
)

// Selector tracks an ordered top-N selection during prioritization. Order is
// insertion order; toggling a selected principle removes it and closes the
// gap, so rank positions always stay contiguous.
type Selector struct {
	required int
	order    []string
}

// NewSelector returns an empty selector with the given number of slots.
func NewSelector(required int) *Selector {
	return &Selector{required: required}
}

// Required returns how many slots must be filled before Confirm succeeds.
func (sel *Selector) Required() int { return sel.required }

// Count returns the number of currently selected principles.
func (sel *Selector) Count() int { return len(sel.order) }

// Full reports whether every slot is filled.
func (sel *Selector) Full() bool { return len(sel.order) >= sel.required }

// Selection returns the current ordered selection.
func (sel *Selector) Selection() []string {
	return append([]string(nil), sel.order...)
}

// Position returns the 1-based rank of a principle, or 0 when unselected.
func (sel *Selector) Position(id string) int {
	for i, got := range sel.order {
		if got == id {
			return i + 1
		}
	}
	return 0
}

// Toggle selects an unselected principle (appended at the end) or deselects a
// selected one. Selecting silently does nothing when the slots are full, so
// two toggles of the same principle always restore the prior state.
func (sel *Selector) Toggle(id string) {
	if i := slices.Index(sel.order, id); i >= 0 {
		sel.order = slices.Delete(sel.order, i, i+1)
		return
	}
	if len(sel.order) >= sel.required {
		return
	}
	sel.order = append(sel.order, id)
}

// Reorder replaces the selection with a new sequence. The sequence must be a
// permutation of the current selection; anything else is rejected and the
// selection is left untouched.
func (sel *Selector) Reorder(ids []string) error {
	if len(ids) != len(sel.order) {
		return fmt.Errorf("reorder has %d principles, selection has %d", len(ids), len(sel.order))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Errorf("reorder repeats principle %s", id)
		}
		if !slices.Contains(sel.order, id) {
			return fmt.Errorf("principle %s is not in the selection", id)
		}
		seen[id] = true
	}
	sel.order = append([]string(nil), ids...)
	return nil
}

// MoveUp swaps a selected principle with its predecessor.
func (sel *Selector) MoveUp(id string) {
	if i := slices.Index(sel.order, id); i > 0 {
		sel.order[i-1], sel.order[i] = sel.order[i], sel.order[i-1]
	}
}

// MoveDown swaps a selected principle with its successor.
func (sel *Selector) MoveDown(id string) {
	if i := slices.Index(sel.order, id); i >= 0 && i < len(sel.order)-1 {
		sel.order[i], sel.order[i+1] = sel.order[i+1], sel.order[i]
	}
}

// Confirm returns the final ordered selection, failing unless every required
// slot is filled.
func (sel *Selector) Confirm() ([]string, error) {
	if len(sel.order) != sel.required {
		return nil, fmt.Errorf("selected %d of %d required principles", len(sel.order), sel.required)
	}
	return sel.Selection(), nil
}
