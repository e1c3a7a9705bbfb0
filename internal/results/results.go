package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// resultsTable holds one row per submitted session. Rows are only ever
// inserted: resubmission appends rather than updating in place.
const resultsTable = "principle_results"

// ResultStoreImpl implements the ResultStore interface over PostgreSQL.
type ResultStoreImpl struct {
	db *sql.DB
}

var _ contract.ResultStore = &ResultStoreImpl{} // Compile-time check

// NewResultStore connects to the remote results database. The endpoint and
// access key must both be configured; there are no fallback credentials.
func NewResultStore(ctx context.Context, endpoint, accessKey string) (contract.ResultStore, error) {
	dsn, err := BuildDSN(endpoint, accessKey)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open results database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to results database at %s: %w. Check the endpoint and access key", endpoint, err)
	}
	return &ResultStoreImpl{db: db}, nil
}

// Insert appends one submitted session. The same user submitting again adds
// a new row; nothing is deduplicated here.
func (rs *ResultStoreImpl) Insert(ctx context.Context, row schema.ResultRow) error {
	decisions, err := json.Marshal(row.Decisions)
	if err != nil {
		return fmt.Errorf("failed to encode decisions for %s: %w", row.UserName, err)
	}
	ranked := row.RankedPrinciples
	if ranked == nil {
		ranked = []string{}
	}
	rankedJSON, err := json.Marshal(ranked)
	if err != nil {
		return fmt.Errorf("failed to encode ranking for %s: %w", row.UserName, err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (user_name, decisions, ranked_principles, completed_at)
		VALUES ($1, $2, $3, $4)`, resultsTable)
	if _, err := rs.db.ExecContext(ctx, query, row.UserName, decisions, rankedJSON, row.CompletedAt); err != nil {
		return fmt.Errorf("failed to insert result for %s: %w", row.UserName, err)
	}
	return nil
}

// ListAll returns every submitted row in insertion order.
func (rs *ResultStoreImpl) ListAll(ctx context.Context) ([]schema.ResultRow, error) {
	query := fmt.Sprintf(`SELECT user_name, decisions, ranked_principles, completed_at
		FROM %s ORDER BY id`, resultsTable)
	rows, err := rs.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.ResultRow
	for rows.Next() {
		var row schema.ResultRow
		var decisions, ranked []byte
		if err := rows.Scan(&row.UserName, &decisions, &ranked, &row.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		if err := json.Unmarshal(decisions, &row.Decisions); err != nil {
			return nil, fmt.Errorf("failed to decode decisions for %s: %w", row.UserName, err)
		}
		if err := json.Unmarshal(ranked, &row.RankedPrinciples); err != nil {
			return nil, fmt.Errorf("failed to decode ranking for %s: %w", row.UserName, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while listing results: %w", err)
	}
	return out, nil
}

// Status returns status information about the results store.
func (rs *ResultStoreImpl) Status(ctx context.Context) (schema.ResultsStatus, error) {
	status := schema.ResultsStatus{Connected: rs.db != nil}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s", resultsTable)
	if err := rs.db.QueryRowContext(ctx, countQuery).Scan(&status.TotalRows); err != nil {
		return status, fmt.Errorf("failed to count results: %w", err)
	}
	if status.TotalRows == 0 {
		return status, nil
	}

	lastQuery := fmt.Sprintf("SELECT MAX(created_at) FROM %s", resultsTable)
	var last time.Time
	if err := rs.db.QueryRowContext(ctx, lastQuery).Scan(&last); err != nil {
		return status, fmt.Errorf("failed to get last submission time: %w", err)
	}
	status.LastRow = last
	return status, nil
}

// Close closes the underlying DB connection.
func (rs *ResultStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}
