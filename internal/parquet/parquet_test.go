package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	pq "github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stackdeck/schema"
)

func TestConvertRankings(t *testing.T) {
	stats := []schema.PrincipleStat{
		{ID: "principle-1", Text: "Principle #1", KeepCount: 3, TotalVotes: 4, Score: 75, Top5Count: 2, Top5Score: 9},
		{ID: "principle-2", Text: "Principle #2", KeepCount: 1, TotalVotes: 4, Score: 25},
	}
	records := ConvertRankings(stats)
	require.Len(t, records, 2)
	assert.Equal(t, int32(1), records[0].Rank)
	assert.Equal(t, "principle-1", records[0].PrincipleID)
	assert.Equal(t, int32(9), records[0].Top5Score)
	assert.Equal(t, int32(2), records[1].Rank)
	assert.InDelta(t, 25.0, records[1].KeepPct, 0.001)
}

func TestConvertResults(t *testing.T) {
	rows := []schema.ResultRow{
		{
			UserName:         "alice",
			Decisions:        map[string]schema.Decision{"principle-1": schema.DecisionKept},
			RankedPrinciples: []string{"principle-1"},
			CompletedAt:      time.Now().UTC(),
		},
	}
	records, err := ConvertResults(rows)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "alice", records[0].UserName)
	assert.JSONEq(t, `{"principle-1":"kept"}`, records[0].Decisions)
	assert.JSONEq(t, `["principle-1"]`, records[0].RankedPrinciples)
}

func TestWriteRankingsParquetRoundTrip(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "rankings.parquet")
	records := ConvertRankings([]schema.PrincipleStat{
		{ID: "principle-1", Text: "Principle #1", KeepCount: 2, TotalVotes: 2, Score: 100, Top5Count: 1, Top5Score: 5},
		{ID: "principle-2", Text: "Principle #2", KeepCount: 1, TotalVotes: 2, Score: 50},
	})
	require.NoError(t, WriteRankingsParquet(records, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := pq.NewGenericReader[RankingRecord](file)
	defer reader.Close()

	readData := make([]RankingRecord, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(records), n, "Should read all records")
	assert.Equal(t, records, readData)
}
