// Package parquet provides data structures and functions for exporting
// aggregated principle data to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"

	"stackdeck/schema"
)

// RankingRecord represents one principle's aggregated standing across all
// submitted sessions.
type RankingRecord struct {
	// Rank is the 1-based position in the sorted rankings
	Rank int32 `parquet:"rank,snappy"`

	// PrincipleID is the catalog identifier
	PrincipleID string `parquet:"principle_id,snappy"`

	// Text is the principle's display text
	Text string `parquet:"text,snappy"`

	// KeepCount is the number of sessions that kept the principle
	KeepCount int32 `parquet:"keep_count,snappy"`

	// TotalVotes is the number of sessions that decided on the principle
	TotalVotes int32 `parquet:"total_votes,snappy"`

	// KeepPct is the keep percentage (0-100)
	KeepPct float64 `parquet:"keep_pct,snappy"`

	// Top5Count is the number of sessions that ranked the principle
	Top5Count int32 `parquet:"top5_count,snappy"`

	// Top5Score is the position-weighted ranking score
	Top5Score int32 `parquet:"top5_score,snappy"`
}

// ResultRecord represents one submitted session row for archival export.
type ResultRecord struct {
	// UserName identifies the submitting user
	UserName string `parquet:"user_name,snappy"`

	// Decisions is the JSON-encoded per-principle decision map
	Decisions string `parquet:"decisions,snappy"`

	// RankedPrinciples is the JSON-encoded ordered top selection
	RankedPrinciples string `parquet:"ranked_principles,snappy"`

	// CompletedAt is when the session finished swiping
	CompletedAt time.Time `parquet:"completed_at,snappy"`
}

// ConvertRankings maps sorted principle stats to parquet records.
func ConvertRankings(stats []schema.PrincipleStat) []RankingRecord {
	records := make([]RankingRecord, 0, len(stats))
	for i, st := range stats {
		records = append(records, RankingRecord{
			Rank:        int32(i + 1),
			PrincipleID: st.ID,
			Text:        st.Text,
			KeepCount:   int32(st.KeepCount),
			TotalVotes:  int32(st.TotalVotes),
			KeepPct:     st.Score,
			Top5Count:   int32(st.Top5Count),
			Top5Score:   int32(st.Top5Score),
		})
	}
	return records
}

// ConvertResults maps submitted rows to parquet records.
func ConvertResults(rows []schema.ResultRow) ([]ResultRecord, error) {
	records := make([]ResultRecord, 0, len(rows))
	for _, row := range rows {
		decisions, err := json.Marshal(row.Decisions)
		if err != nil {
			return nil, fmt.Errorf("failed to encode decisions for %s: %w", row.UserName, err)
		}
		ranked, err := json.Marshal(row.RankedPrinciples)
		if err != nil {
			return nil, fmt.Errorf("failed to encode ranking for %s: %w", row.UserName, err)
		}
		records = append(records, ResultRecord{
			UserName:         row.UserName,
			Decisions:        string(decisions),
			RankedPrinciples: string(ranked),
			CompletedAt:      row.CompletedAt,
		})
	}
	return records, nil
}

// WriteRankingsParquet writes ranking records to a Parquet file.
func WriteRankingsParquet(data []RankingRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// WriteResultsParquet writes result records to a Parquet file.
func WriteResultsParquet(data []ResultRecord, outputPath string) error {
	return writeParquet(data, outputPath)
}

// writeParquet writes any record slice using struct schema inference.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the record struct tags
	writer := parquet.NewGenericWriter[T](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
