// Package sessionstore is the durable local store for session records.
package sessionstore

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// sessionTable is the name of the key/value table for session records.
const sessionTable = "stackdeck_sessions"

// Store keys. Each user's record lives under its own key; the last-active
// pointer is a single well-known key beside them.
const (
	lastActiveKey    = "last_active_user"
	sessionKeyPrefix = "session_"
)

// SessionStoreImpl handles durable session storage using various database
// backends. Records are stored whole as JSON under per-user keys, overwritten
// on every save (last-write-wins).
type SessionStoreImpl struct {
	db      *sql.DB
	backend schema.StoreBackend
}

var _ contract.SessionStore = &SessionStoreImpl{} // Compile-time check

// NewSessionStore initializes and returns a new SessionStore based on the
// backend type.
func NewSessionStore(backend schema.StoreBackend, connStr string) (contract.SessionStore, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetSessionDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite store at %q: %w. Check that the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.MemoryBackend:
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unsupported store backend: %s. Must be sqlite, mysql, postgresql, or memory", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s store. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if _, err := db.Exec(getCreateTableQuery(backend)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create table %s: %w", sessionTable, err)
	}

	return &SessionStoreImpl{db: db, backend: backend}, nil
}

// getCreateTableQuery returns the CREATE TABLE query for the given backend.
func getCreateTableQuery(backend schema.StoreBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				store_key VARCHAR(255) PRIMARY KEY,
				store_value BLOB NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, sessionTable)

	default: // SQLite and PostgreSQL
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				store_key TEXT PRIMARY KEY,
				store_value TEXT NOT NULL,
				updated_at BIGINT NOT NULL
			);
		`, sessionTable)
	}
}

// getPlaceholder returns the parameter placeholder for the backend.
func (ss *SessionStoreImpl) getPlaceholder(n int) string {
	if ss.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// getUpsertQuery returns the UPSERT query for the backend.
func (ss *SessionStoreImpl) getUpsertQuery() string {
	switch ss.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (store_key, store_value, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE store_value = new.store_value, updated_at = new.updated_at`, sessionTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (store_key, store_value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (store_key) DO UPDATE SET store_value = EXCLUDED.store_value, updated_at = EXCLUDED.updated_at`, sessionTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (store_key, store_value, updated_at) VALUES (?, ?, ?)`, sessionTable)
	}
}

// get retrieves a raw value by key.
func (ss *SessionStoreImpl) get(key string) ([]byte, bool, error) {
	query := fmt.Sprintf(`SELECT store_value FROM %s WHERE store_key = %s`, sessionTable, ss.getPlaceholder(1))
	var value []byte
	if err := ss.db.QueryRow(query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// set inserts or replaces a key/value pair.
func (ss *SessionStoreImpl) set(key string, value []byte) error {
	_, err := ss.db.Exec(ss.getUpsertQuery(), key, value, time.Now().Unix())
	return err
}

// delete removes a key, succeeding whether or not it existed.
func (ss *SessionStoreImpl) delete(key string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE store_key = %s`, sessionTable, ss.getPlaceholder(1))
	_, err := ss.db.Exec(query, key)
	return err
}

// LoadRecord retrieves the session record for a user. A missing or malformed
// record reports ok=false with a nil error, so callers fall back to a fresh
// session instead of failing hard.
func (ss *SessionStoreImpl) LoadRecord(userName string) (schema.SessionRecord, bool, error) {
	value, found, err := ss.get(sessionKeyPrefix + userName)
	if err != nil {
		return schema.SessionRecord{}, false, fmt.Errorf("failed to load session for %s: %w", userName, err)
	}
	if !found {
		return schema.SessionRecord{}, false, nil
	}

	var rec schema.SessionRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		contract.LogWarn(fmt.Sprintf("discarding malformed session record for %s", userName), err)
		return schema.SessionRecord{}, false, nil
	}
	return rec, true, nil
}

// SaveRecord overwrites the stored record for the record's user.
func (ss *SessionStoreImpl) SaveRecord(rec schema.SessionRecord) error {
	if strings.TrimSpace(rec.UserName) == "" {
		return fmt.Errorf("session record has no user name")
	}
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode session for %s: %w", rec.UserName, err)
	}
	if err := ss.set(sessionKeyPrefix+rec.UserName, value); err != nil {
		return fmt.Errorf("failed to save session for %s: %w", rec.UserName, err)
	}
	return nil
}

// LastActiveUser returns the resume pointer, ok=false when unset.
func (ss *SessionStoreImpl) LastActiveUser() (string, bool, error) {
	value, found, err := ss.get(lastActiveKey)
	if err != nil {
		return "", false, fmt.Errorf("failed to load last active user: %w", err)
	}
	if !found || len(value) == 0 {
		return "", false, nil
	}
	return string(value), true, nil
}

// SetLastActiveUser stores the resume pointer.
func (ss *SessionStoreImpl) SetLastActiveUser(userName string) error {
	if err := ss.set(lastActiveKey, []byte(userName)); err != nil {
		return fmt.Errorf("failed to save last active user: %w", err)
	}
	return nil
}

// ClearLastActiveUser removes the resume pointer. Session records stay put.
func (ss *SessionStoreImpl) ClearLastActiveUser() error {
	if err := ss.delete(lastActiveKey); err != nil {
		return fmt.Errorf("failed to clear last active user: %w", err)
	}
	return nil
}

// Status returns status information about the session store.
func (ss *SessionStoreImpl) Status() (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ss.backend),
		Connected: ss.db != nil,
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE store_key LIKE %s`, sessionTable, ss.getPlaceholder(1))
	if err := ss.db.QueryRow(countQuery, sessionKeyPrefix+"%").Scan(&status.TotalSessions); err != nil {
		return status, fmt.Errorf("failed to count sessions: %w", err)
	}

	if name, ok, err := ss.LastActiveUser(); err != nil {
		return status, err
	} else if ok {
		status.LastActiveUser = name
	}

	if status.TotalSessions == 0 {
		return status, nil
	}

	lastQuery := fmt.Sprintf("SELECT MAX(updated_at) FROM %s", sessionTable)
	var lastTs int64
	if err := ss.db.QueryRow(lastQuery).Scan(&lastTs); err != nil {
		return status, fmt.Errorf("failed to get last update time: %w", err)
	}
	status.LastUpdated = time.Unix(lastTs, 0)

	return status, nil
}

// Close closes the underlying DB connection.
func (ss *SessionStoreImpl) Close() error {
	if ss.db != nil {
		return ss.db.Close()
	}
	return nil
}
