package sessionstore

import (
	"encoding/json"
	"sync"
	"time"

	"stackdeck/internal/contract"
	"stackdeck/schema"
)

// MemoryStore is an in-process SessionStore for tests and throwaway runs.
// It round-trips records through JSON so malformed-value handling matches the
// SQL-backed store.
type MemoryStore struct {
	mu         sync.RWMutex
	records    map[string][]byte
	lastActive string
	lastSaved  time.Time
}

var _ contract.SessionStore = &MemoryStore{} // Compile-time check

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

// SeedRaw plants a raw value under a user's key, bypassing encoding. Tests
// use it to simulate corrupted records.
func (ms *MemoryStore) SeedRaw(userName string, value []byte) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records[userName] = value
}

// LoadRecord retrieves the session record for a user; malformed values report
// ok=false with a nil error.
func (ms *MemoryStore) LoadRecord(userName string) (schema.SessionRecord, bool, error) {
	ms.mu.RLock()
	value, found := ms.records[userName]
	ms.mu.RUnlock()
	if !found {
		return schema.SessionRecord{}, false, nil
	}
	var rec schema.SessionRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return schema.SessionRecord{}, false, nil
	}
	return rec, true, nil
}

// SaveRecord overwrites the stored record for the record's user.
func (ms *MemoryStore) SaveRecord(rec schema.SessionRecord) error {
	value, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.records[rec.UserName] = value
	ms.lastSaved = time.Now()
	return nil
}

// LastActiveUser returns the resume pointer, ok=false when unset.
func (ms *MemoryStore) LastActiveUser() (string, bool, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if ms.lastActive == "" {
		return "", false, nil
	}
	return ms.lastActive, true, nil
}

// SetLastActiveUser stores the resume pointer.
func (ms *MemoryStore) SetLastActiveUser(userName string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lastActive = userName
	return nil
}

// ClearLastActiveUser removes the resume pointer.
func (ms *MemoryStore) ClearLastActiveUser() error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.lastActive = ""
	return nil
}

// Status returns status information about the store.
func (ms *MemoryStore) Status() (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return schema.StoreStatus{
		Backend:        string(schema.MemoryBackend),
		Connected:      true,
		TotalSessions:  len(ms.records),
		LastActiveUser: ms.lastActive,
		LastUpdated:    ms.lastSaved,
	}, nil
}

// Close is a no-op for the in-memory store.
func (ms *MemoryStore) Close() error { return nil }
