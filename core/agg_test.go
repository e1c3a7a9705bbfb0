package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/schema"
)

func resultRow(name string, kept []string, discarded []string, ranked []string) schema.ResultRow {
	decisions := make(map[string]schema.Decision)
	for _, id := range kept {
		decisions[id] = schema.DecisionKept
	}
	for _, id := range discarded {
		decisions[id] = schema.DecisionDiscarded
	}
	return schema.ResultRow{
		UserName:         name,
		Decisions:        decisions,
		RankedPrinciples: ranked,
		CompletedAt:      time.Now().UTC(),
	}
}

func findStat(t *testing.T, stats []schema.PrincipleStat, id string) schema.PrincipleStat {
	t.Helper()
	for _, st := range stats {
		if st.ID == id {
			return st
		}
	}
	t.Fatalf("principle %s not in rankings", id)
	return schema.PrincipleStat{}
}

func TestAggregateEmpty(t *testing.T) {
	report := AggregateResults(nil)
	assert.Zero(t, report.TotalSessions)
	assert.Empty(t, report.Rankings)
}

func TestAggregateCountsAndScore(t *testing.T) {
	rows := []schema.ResultRow{
		resultRow("alice", []string{"principle-1", "principle-2"}, []string{"principle-3"}, []string{"principle-1"}),
		resultRow("bob", []string{"principle-1"}, []string{"principle-2", "principle-3"}, []string{"principle-1"}),
	}
	report := AggregateResults(rows)
	assert.Equal(t, 2, report.TotalSessions)

	p1 := findStat(t, report.Rankings, "principle-1")
	assert.Equal(t, 2, p1.KeepCount)
	assert.Equal(t, 2, p1.TotalVotes)
	assert.InDelta(t, 100.0, p1.Score, 0.001)
	assert.Equal(t, 2, p1.Top5Count)
	assert.Equal(t, 10, p1.Top5Score) // first place twice

	p2 := findStat(t, report.Rankings, "principle-2")
	assert.Equal(t, 1, p2.KeepCount)
	assert.Equal(t, 2, p2.TotalVotes)
	assert.InDelta(t, 50.0, p2.Score, 0.001)
	assert.Zero(t, p2.Top5Score)

	p3 := findStat(t, report.Rankings, "principle-3")
	assert.Zero(t, p3.KeepCount)
	assert.InDelta(t, 0.0, p3.Score, 0.001)
}

func TestAggregateRankPositionWeights(t *testing.T) {
	ranked := []string{"principle-1", "principle-2", "principle-3", "principle-4", "principle-5"}
	rows := []schema.ResultRow{resultRow("alice", ranked, nil, ranked)}
	report := AggregateResults(rows)

	for i, id := range ranked {
		st := findStat(t, report.Rankings, id)
		assert.Equal(t, 5-i, st.Top5Score, "position %d", i)
		assert.Equal(t, 1, st.Top5Count)
	}
	// Sorted by descending rank weight
	assert.Equal(t, "principle-1", report.Rankings[0].ID)
	assert.Equal(t, "principle-5", report.Rankings[4].ID)
}

func TestAggregateExcludesZeroVotePrinciples(t *testing.T) {
	rows := []schema.ResultRow{
		resultRow("alice", []string{"principle-1"}, nil, nil),
	}
	report := AggregateResults(rows)
	require.Len(t, report.Rankings, 1)
	assert.Equal(t, "principle-1", report.Rankings[0].ID)
}

func TestAggregateIgnoresUnknownIDs(t *testing.T) {
	rows := []schema.ResultRow{
		resultRow("alice", []string{"principle-1", "principle-999"}, nil, []string{"principle-999", "principle-1"}),
	}
	report := AggregateResults(rows)
	require.Len(t, report.Rankings, 1)

	p1 := report.Rankings[0]
	assert.Equal(t, "principle-1", p1.ID)
	// principle-1 keeps its position-1 weight even though the row ranked an
	// unknown id first
	assert.Equal(t, 4, p1.Top5Score)
}

func TestAggregateDuplicateUserRowsSummed(t *testing.T) {
	// The results table is append-only, so a resubmitting user contributes
	// each row independently.
	rows := []schema.ResultRow{
		resultRow("alice", []string{"principle-1"}, nil, []string{"principle-1"}),
		resultRow("alice", []string{"principle-1"}, nil, []string{"principle-1"}),
	}
	report := AggregateResults(rows)
	assert.Equal(t, 2, report.TotalSessions)

	p1 := findStat(t, report.Rankings, "principle-1")
	assert.Equal(t, 2, p1.KeepCount)
	assert.Equal(t, 2, p1.TotalVotes)
	assert.Equal(t, 10, p1.Top5Score)
}

func TestAggregateSortTieBreakers(t *testing.T) {
	// principle-1 and principle-2 tie on rank weight; keep percentage breaks
	// the tie, then raw keep count.
	rows := []schema.ResultRow{
		resultRow("alice", []string{"principle-1", "principle-2"}, nil, []string{"principle-1", "principle-2"}),
		resultRow("bob", []string{"principle-2", "principle-1"}, nil, []string{"principle-2", "principle-1"}),
		resultRow("carol", []string{"principle-1"}, []string{"principle-2"}, []string{"principle-1"}),
		resultRow("dave", []string{"principle-2"}, []string{"principle-1"}, []string{"principle-2"}),
		resultRow("erin", nil, []string{"principle-2"}, nil),
	}
	report := AggregateResults(rows)

	p1 := findStat(t, report.Rankings, "principle-1")
	p2 := findStat(t, report.Rankings, "principle-2")
	require.Equal(t, p1.Top5Score, p2.Top5Score)
	assert.Greater(t, p1.Score, p2.Score)
	assert.Equal(t, "principle-1", report.Rankings[0].ID)
	assert.Equal(t, "principle-2", report.Rankings[1].ID)
}

func TestTopRankings(t *testing.T) {
	report := schema.AggregateReport{
		Rankings: []schema.PrincipleStat{{ID: "a"}, {ID: "b"}, {ID: "c"}},
	}
	assert.Len(t, TopRankings(report, 2), 2)
	assert.Len(t, TopRankings(report, 0), 3)
	assert.Len(t, TopRankings(report, 10), 3)
}
