// Package schema holds the shared data model for stackdeck.
package schema

import "time"

// Principle is a single statement the user classifies. Principles are
// generated once at startup and never mutated.
type Principle struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// SessionRecord is the persisted per-user document of decisions and rankings.
// It is created on the first decision for a user and overwritten whole on
// every state-affecting operation (last-write-wins, no partial patches).
type SessionRecord struct {
	UserName         string              `json:"userName"`
	Decisions        map[string]Decision `json:"decisions"`
	RankedPrinciples []string            `json:"rankedPrinciples,omitempty"`
	LastUpdated      time.Time           `json:"lastUpdated"`
	CompletedAt      *time.Time          `json:"completedAt,omitempty"`
}

// KeptCount returns the number of decisions with value DecisionKept.
func (r SessionRecord) KeptCount() int {
	n := 0
	for _, d := range r.Decisions {
		if d == DecisionKept {
			n++
		}
	}
	return n
}

// ResultRow is one submitted session in the remote results table. Rows are
// append-only: resubmission from the same user adds a new row rather than
// replacing the prior one.
type ResultRow struct {
	UserName         string              `json:"user_name"`
	Decisions        map[string]Decision `json:"decisions"`
	RankedPrinciples []string            `json:"ranked_principles"`
	CompletedAt      time.Time           `json:"completed_at"`
}

// PrincipleStat is the derived cross-session summary for one principle.
// Top5Score sums (5 - rank index) over every row that ranked the principle,
// so rank position 0 contributes 5 points and position 4 contributes 1.
// Rank positions past index 4 contribute zero or negative points and are
// passed through unclamped.
type PrincipleStat struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	KeepCount  int     `json:"keepCount"`
	TotalVotes int     `json:"totalVotes"`
	Score      float64 `json:"score"` // percentage kept, 0-100
	Top5Count  int     `json:"top5Count"`
	Top5Score  int     `json:"top5Score"`
}

// AggregateReport bundles the ranked stats with the session count they were
// folded from.
type AggregateReport struct {
	TotalSessions int             `json:"totalSessions"`
	Rankings      []PrincipleStat `json:"rankings"`
}

// ExportSummary holds the headline totals of a session export.
type ExportSummary struct {
	Total     int `json:"total"`
	Kept      int `json:"kept"`
	Discarded int `json:"discarded"`
}

// SessionExport is the downloadable artifact summarizing one user's session.
// Kept holds the kept principles that were not ranked into the top-N.
type SessionExport struct {
	User      string        `json:"user"`
	Date      time.Time     `json:"date"`
	Summary   ExportSummary `json:"summary"`
	Ranked    []string      `json:"ranked,omitempty"`
	Kept      []string      `json:"kept"`
	Discarded []string      `json:"discarded"`
}

// StoreStatus reports the health of the local session store.
type StoreStatus struct {
	Backend        string    `json:"backend"`
	Connected      bool      `json:"connected"`
	TotalSessions  int       `json:"totalSessions"`
	LastActiveUser string    `json:"lastActiveUser,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated,omitzero"`
}

// ResultsStatus reports the health of the remote results store.
type ResultsStatus struct {
	Connected bool      `json:"connected"`
	TotalRows int       `json:"totalRows"`
	LastRow   time.Time `json:"lastRow,omitzero"`
}
