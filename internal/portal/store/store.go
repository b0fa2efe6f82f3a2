package store

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, memory)
// implement it. The portal persists everything as string values under flat
// keys, the same shape a browser's local storage has, so the gate logic can be
// exercised against any driver.
type Store interface {
	Values() Values

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. Read-modify-write
	// of the shared JSON arrays must go through here.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the backing storage is still reachable.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Values is the key-value port.
type Values interface {
	// Get returns ErrNotFound when key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces key and bumps its updated_at.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists keys starting with prefix in lexical order.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// PurgeStale deletes keys under prefix last written before the cutoff and
	// returns how many were removed.
	PurgeStale(ctx context.Context, prefix string, before time.Time) (int64, error)
}
