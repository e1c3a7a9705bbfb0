package core

import (
	"sort"

	"stackdeck/schema"
)

// AggregateResults folds submitted result rows into ranked principle
// statistics. Every row is counted as-is: the row store is append-only, so a
// user who submitted twice contributes two rows by design. Decision ids that
// are not in the current catalog are skipped, and principles nobody voted on
// are left out of the rankings.
func AggregateResults(rows []schema.ResultRow) schema.AggregateReport {
	stats := make(map[string]*schema.PrincipleStat)
	for _, p := range schema.Catalog() {
		stats[p.ID] = &schema.PrincipleStat{ID: p.ID, Text: p.Text}
	}

	for _, row := range rows {
		for id, decision := range row.Decisions {
			st, ok := stats[id]
			if !ok {
				continue
			}
			st.TotalVotes++
			if decision == schema.DecisionKept {
				st.KeepCount++
			}
		}
		for idx, id := range row.RankedPrinciples {
			st, ok := stats[id]
			if !ok {
				continue
			}
			st.Top5Count++
			st.Top5Score += schema.MaxRankSlots - idx
		}
	}

	rankings := make([]schema.PrincipleStat, 0, len(stats))
	for _, st := range stats {
		if st.TotalVotes == 0 {
			continue
		}
		st.Score = float64(st.KeepCount) / float64(st.TotalVotes) * 100
		rankings = append(rankings, *st)
	}

	sort.SliceStable(rankings, func(i, j int) bool {
		a, b := rankings[i], rankings[j]
		if a.Top5Score != b.Top5Score {
			return a.Top5Score > b.Top5Score
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.KeepCount > b.KeepCount
	})

	return schema.AggregateReport{
		TotalSessions: len(rows),
		Rankings:      rankings,
	}
}

// TopRankings returns at most limit entries from the report, preserving
// order. A non-positive limit returns everything.
func TopRankings(report schema.AggregateReport, limit int) []schema.PrincipleStat {
	if limit <= 0 || limit >= len(report.Rankings) {
		return report.Rankings
	}
	return report.Rankings[:limit]
}
