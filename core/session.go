// Package core implements the session flow: the phase state machine, the
// prioritization selector, the aggregation fold and the export artifact.
package core

import (
	"fmt"
	"strings"
	"time"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// Session is the explicit context object for one user's flow through the
// phases. All state lives here; every state-affecting operation persists the
// full session record before the in-memory transition is considered complete,
// so a crash loses at most the most recent action.
//
// The cursor always equals the number of recorded decisions: traversal is
// strictly sequential from index 0, and resume recomputes the cursor from the
// stored decision count.
type Session struct {
	store   contract.SessionStore
	cfg     *contract.Config
	catalog []schema.Principle

	UserName     string
	Phase        schema.Phase
	Cursor       int
	Decisions    map[string]schema.Decision
	Ranked       []string
	CompletedAt  *time.Time
	HasSubmitted bool
}

// NewSession returns a fresh session in the entry phase.
func NewSession(store contract.SessionStore, cfg *contract.Config) *Session {
	return &Session{
		store:     store,
		cfg:       cfg,
		catalog:   schema.Catalog(),
		Phase:     schema.PhaseEntry,
		Decisions: make(map[string]schema.Decision),
	}
}

// ResumeLast rebuilds a session for the last active user, replaying the same
// guards Start applies to fresh input. With no last-active pointer the
// session stays in the entry phase.
func ResumeLast(store contract.SessionStore, cfg *contract.Config) (*Session, error) {
	s := NewSession(store, cfg)
	name, ok, err := store.LastActiveUser()
	if err != nil {
		return nil, fmt.Errorf("load last active user: %w", err)
	}
	if !ok {
		return s, nil
	}
	if err := s.Start(name); err != nil {
		return nil, err
	}
	return s, nil
}

// Start enters the flow for the given user name. The admin token branches to
// the admin phase; otherwise the stored record (if any) decides whether the
// session lands in swiping, prioritization or complete.
func (s *Session) Start(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("user name cannot be empty")
	}

	if s.cfg.IsAdminName(name) {
		s.UserName = name
		s.Phase = schema.PhaseAdmin
		return nil
	}

	s.UserName = name
	if err := s.store.SetLastActiveUser(name); err != nil {
		return fmt.Errorf("save last active user: %w", err)
	}

	// A malformed record reports ok=false and falls through to a fresh
	// swiping session at cursor 0.
	rec, ok, err := s.store.LoadRecord(name)
	if err != nil {
		return fmt.Errorf("load session record: %w", err)
	}
	if !ok {
		s.Decisions = make(map[string]schema.Decision)
		s.Cursor = 0
		s.Ranked = nil
		s.CompletedAt = nil
		s.Phase = schema.PhaseSwiping
		return nil
	}

	s.Decisions = rec.Decisions
	if s.Decisions == nil {
		s.Decisions = make(map[string]schema.Decision)
	}
	s.Ranked = rec.RankedPrinciples
	s.CompletedAt = rec.CompletedAt
	s.Cursor = len(s.Decisions)

	if s.Cursor < len(s.catalog) {
		s.Phase = schema.PhaseSwiping
		return nil
	}
	if rec.KeptCount() > 0 && len(s.Ranked) == 0 {
		s.Phase = schema.PhasePrioritization
		return nil
	}
	s.Phase = schema.PhaseComplete
	return nil
}

// CatalogSize returns the number of principles in the traversal.
func (s *Session) CatalogSize() int { return len(s.catalog) }

// CurrentPrinciple returns the principle at the cursor, or ok=false once the
// traversal is exhausted.
func (s *Session) CurrentPrinciple() (schema.Principle, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.catalog) {
		return schema.Principle{}, false
	}
	return s.catalog[s.Cursor], true
}

// UpcomingPrinciples returns up to n principles starting at the cursor, for
// stacked card rendering.
func (s *Session) UpcomingPrinciples(n int) []schema.Principle {
	if s.Cursor >= len(s.catalog) {
		return nil
	}
	end := min(s.Cursor+n, len(s.catalog))
	return s.catalog[s.Cursor:end]
}

// Decide records the decision for the principle at the cursor, persists the
// full record, and advances. Reaching the end of the catalog transitions to
// prioritization when anything was kept, straight to complete otherwise.
func (s *Session) Decide(dir schema.SwipeDirection) error {
	if s.Phase != schema.PhaseSwiping {
		return fmt.Errorf("decide is only valid while swiping (phase %s)", s.Phase)
	}
	p, ok := s.CurrentPrinciple()
	if !ok {
		return fmt.Errorf("no principle left to decide (cursor %d)", s.Cursor)
	}

	s.Decisions[p.ID] = schema.DecisionForDirection(dir)
	s.Cursor++

	if s.Cursor >= len(s.catalog) {
		now := time.Now().UTC()
		s.CompletedAt = &now
	}
	if err := s.persist(); err != nil {
		// Roll the in-memory step back so a failed write cannot desync
		// the cursor from the stored record.
		delete(s.Decisions, p.ID)
		s.Cursor--
		s.CompletedAt = nil
		return err
	}

	if s.Cursor >= len(s.catalog) {
		if s.KeptCount() > 0 {
			s.Phase = schema.PhasePrioritization
		} else {
			s.Phase = schema.PhaseComplete
		}
	}
	return nil
}

// Undo removes the decision for the immediately preceding principle and steps
// the cursor back. Single-level only in effect: each call peels off exactly
// one decision, and there is no redo.
func (s *Session) Undo() error {
	if s.Phase != schema.PhaseSwiping {
		return fmt.Errorf("undo is only valid while swiping (phase %s)", s.Phase)
	}
	if s.Cursor <= 0 {
		return fmt.Errorf("nothing to undo")
	}

	prev := s.catalog[s.Cursor-1]
	undone, had := s.Decisions[prev.ID]
	delete(s.Decisions, prev.ID)
	s.Cursor--
	if err := s.persist(); err != nil {
		if had {
			s.Decisions[prev.ID] = undone
		}
		s.Cursor++
		return err
	}
	return nil
}

// KeptCount returns the number of kept decisions so far.
func (s *Session) KeptCount() int {
	n := 0
	for _, d := range s.Decisions {
		if d == schema.DecisionKept {
			n++
		}
	}
	return n
}

// DiscardedCount returns the number of discarded decisions so far.
func (s *Session) DiscardedCount() int {
	n := 0
	for _, d := range s.Decisions {
		if d == schema.DecisionDiscarded {
			n++
		}
	}
	return n
}

// KeptPrinciples returns the kept principles in catalog order.
func (s *Session) KeptPrinciples() []schema.Principle {
	var kept []schema.Principle
	for _, p := range s.catalog {
		if s.Decisions[p.ID] == schema.DecisionKept {
			kept = append(kept, p)
		}
	}
	return kept
}

// RequiredSlots returns how many prioritization slots this session must fill.
func (s *Session) RequiredSlots() int {
	return schema.RequiredSlots(s.KeptCount())
}

// NewSelector returns a prioritization selector over this session's kept
// principles, pre-loaded with any previously saved ranking.
func (s *Session) NewSelector() *Selector {
	sel := NewSelector(s.RequiredSlots())
	for _, id := range s.Ranked {
		sel.Toggle(id)
	}
	return sel
}

// ConfirmRanking merges a full ranked selection into the persisted record and
// transitions to complete. The selection must fill every required slot and
// contain only kept principle ids, without duplicates.
func (s *Session) ConfirmRanking(ids []string) error {
	if s.Phase != schema.PhasePrioritization {
		return fmt.Errorf("confirm is only valid during prioritization (phase %s)", s.Phase)
	}
	required := s.RequiredSlots()
	if len(ids) != required {
		return fmt.Errorf("ranking needs exactly %d principles (received %d)", required, len(ids))
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if s.Decisions[id] != schema.DecisionKept {
			return fmt.Errorf("principle %s was not kept", id)
		}
		if seen[id] {
			return fmt.Errorf("principle %s appears twice in the ranking", id)
		}
		seen[id] = true
	}

	prior := s.Ranked
	s.Ranked = append([]string(nil), ids...)
	if err := s.persist(); err != nil {
		s.Ranked = prior
		return err
	}
	s.Phase = schema.PhaseComplete
	return nil
}

// ResultRow builds the remote submission row for a completed session.
func (s *Session) ResultRow() (schema.ResultRow, error) {
	if s.Phase != schema.PhaseComplete {
		return schema.ResultRow{}, fmt.Errorf("session for %s is not complete", s.UserName)
	}
	return ResultRowFromRecord(s.Record())
}

// MarkSubmitted sets the one-way submitted flag. The remote row store is
// append-only, so submitting again later adds a new row; this flag only
// de-duplicates within the live session.
func (s *Session) MarkSubmitted() { s.HasSubmitted = true }

// ExitAdmin leaves the admin branch back to entry.
func (s *Session) ExitAdmin() error {
	if s.Phase != schema.PhaseAdmin {
		return fmt.Errorf("not in admin phase (phase %s)", s.Phase)
	}
	s.reset()
	return nil
}

// Reset explicitly ends the session: the last-active-user pointer is removed
// but the stored record survives, so the same name can resume later.
func (s *Session) Reset() error {
	if err := s.store.ClearLastActiveUser(); err != nil {
		return fmt.Errorf("clear last active user: %w", err)
	}
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.UserName = ""
	s.Phase = schema.PhaseEntry
	s.Cursor = 0
	s.Decisions = make(map[string]schema.Decision)
	s.Ranked = nil
	s.CompletedAt = nil
	s.HasSubmitted = false
}

// Record returns the full session record as persisted.
func (s *Session) Record() schema.SessionRecord {
	return schema.SessionRecord{
		UserName:         s.UserName,
		Decisions:        s.Decisions,
		RankedPrinciples: s.Ranked,
		LastUpdated:      time.Now().UTC(),
		CompletedAt:      s.CompletedAt,
	}
}

// persist overwrites the whole stored record.
func (s *Session) persist() error {
	if err := s.store.SaveRecord(s.Record()); err != nil {
		return fmt.Errorf("save session record: %w", err)
	}
	return nil
}
