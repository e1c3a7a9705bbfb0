package sessionstore

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// StoreManager guards access to the process-wide session store.
type StoreManager struct {
	sync.RWMutex
	store contract.SessionStore
}

// Store returns the initialized session store, or nil before InitStore.
func (m *StoreManager) Store() contract.SessionStore {
	m.RLock()
	defer m.RUnlock()
	return m.store
}

// InitStore initializes the global session store manager.
func InitStore(backend schema.StoreBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		store, err := NewSessionStore(backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize session store: %w", err)
			return
		}
		Manager.Lock()
		Manager.store = store
		Manager.Unlock()
	})

	return initErr
}

// CloseStore should be called on application shutdown.
func CloseStore() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearLocal removes all locally stored sessions for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
func ClearLocal(backend schema.StoreBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return dropSessionTable("mysql", connStr)

	case schema.PostgreSQLBackend:
		return dropSessionTable("pgx", connStr)

	case schema.MemoryBackend:
		return nil

	default:
		return fmt.Errorf("unsupported store backend for clearing: %s", backend)
	}
}

// dropSessionTable connects and drops the session table if it exists.
func dropSessionTable(driverName, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect for clearing: %w", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", sessionTable)); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", sessionTable, err)
	}
	return nil
}
