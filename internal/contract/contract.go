// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"stackdeck/schema"
)

// SessionStore defines the local persistence for session records and the
// last-active-user pointer. This allows the session logic to be tested
// against an in-memory store.
//
// LoadRecord reports ok=false both when no record exists and when the stored
// document is malformed: a broken record degrades silently to a fresh session
// rather than failing the flow.
type SessionStore interface {
	LoadRecord(userName string) (schema.SessionRecord, bool, error)
	SaveRecord(rec schema.SessionRecord) error
	LastActiveUser() (string, bool, error)
	SetLastActiveUser(userName string) error
	ClearLastActiveUser() error
	Status() (schema.StoreStatus, error)
	Close() error
}

// ResultStore defines the remote results table. The table is append-only:
// Insert adds an independent row per submission and no update or delete is
// ever issued.
type ResultStore interface {
	Insert(ctx context.Context, row schema.ResultRow) error
	ListAll(ctx context.Context) ([]schema.ResultRow, error)
	Status(ctx context.Context) (schema.ResultsStatus, error)
	Close() error
}
