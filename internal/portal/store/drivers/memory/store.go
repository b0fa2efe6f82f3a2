// Package memory is the ephemeral store driver. Nothing survives a restart,
// which is what PORTAL_STORAGE_MODE=ephemeral and the unit tests want.
package memory

import (
	"context"
	"database/sql"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/store"
)

type entry struct {
	value     string
	updatedAt time.Time
}

type Store struct {
	// writeMu serialises writers. A transaction holds it until it finishes.
	writeMu sync.Mutex

	mu   sync.RWMutex
	data map[string]entry

	// Now stamps updated_at; overridable in tests.
	Now func() time.Time
}

func NewStore() *Store {
	return &Store{data: make(map[string]entry), Now: time.Now}
}

func (s *Store) ApplyMigrations() error         { return nil }
func (s *Store) Close() error                   { return nil }
func (s *Store) Ping(ctx context.Context) error { return nil }
func (s *Store) Values() store.Values           { return &values{s: s} }

// Tx snapshots the committed data and blocks other writers until Commit or
// Rollback. Plain reads keep seeing the committed data meanwhile.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.writeMu.Lock()

	s.mu.RLock()
	snapshot := maps.Clone(s.data)
	s.mu.RUnlock()

	return &txStore{parent: s, data: snapshot}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *Store) set(key, value string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.data[key] = entry{value: value, updatedAt: s.Now()}
	s.mu.Unlock()
}

func (s *Store) remove(key string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
}

func (s *Store) purge(prefix string, before time.Time) int64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return purgeStale(s.data, prefix, before)
}

type values struct {
	s *Store
}

func (v *values) Get(ctx context.Context, key string) (string, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return get(v.s.data, key)
}

func (v *values) Set(ctx context.Context, key, value string) error {
	v.s.set(key, value)
	return nil
}

func (v *values) Remove(ctx context.Context, key string) error {
	v.s.remove(key)
	return nil
}

func (v *values) Keys(ctx context.Context, prefix string) ([]string, error) {
	v.s.mu.RLock()
	defer v.s.mu.RUnlock()
	return keys(v.s.data, prefix), nil
}

func (v *values) PurgeStale(ctx context.Context, prefix string, before time.Time) (int64, error) {
	return v.s.purge(prefix, before), nil
}

type txStore struct {
	parent *Store
	data   map[string]entry
	done   bool
}

func (t *txStore) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true

	t.parent.mu.Lock()
	t.parent.data = t.data
	t.parent.mu.Unlock()

	t.parent.writeMu.Unlock()
	return nil
}

func (t *txStore) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true
	t.parent.writeMu.Unlock()
	return nil
}

func (t *txStore) ApplyMigrations() error         { return nil }
func (t *txStore) Close() error                   { return nil }
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Values() store.Values { return &txValues{t: t} }

// txValues works on the transaction's private snapshot, so it needs no locking.
type txValues struct {
	t *txStore
}

func (v *txValues) Get(ctx context.Context, key string) (string, error) {
	if v.t.done {
		return "", sql.ErrTxDone
	}
	return get(v.t.data, key)
}

func (v *txValues) Set(ctx context.Context, key, value string) error {
	if v.t.done {
		return sql.ErrTxDone
	}
	v.t.data[key] = entry{value: value, updatedAt: v.t.parent.Now()}
	return nil
}

func (v *txValues) Remove(ctx context.Context, key string) error {
	if v.t.done {
		return sql.ErrTxDone
	}
	delete(v.t.data, key)
	return nil
}

func (v *txValues) Keys(ctx context.Context, prefix string) ([]string, error) {
	if v.t.done {
		return nil, sql.ErrTxDone
	}
	return keys(v.t.data, prefix), nil
}

func (v *txValues) PurgeStale(ctx context.Context, prefix string, before time.Time) (int64, error) {
	if v.t.done {
		return 0, sql.ErrTxDone
	}
	return purgeStale(v.t.data, prefix, before), nil
}

func get(data map[string]entry, key string) (string, error) {
	e, ok := data[key]
	if !ok {
		return "", store.ErrNotFound
	}
	return e.value, nil
}

func keys(data map[string]entry, prefix string) []string {
	var out []string
	for k := range data {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

func purgeStale(data map[string]entry, prefix string, before time.Time) int64 {
	var n int64
	for k, e := range data {
		if strings.HasPrefix(k, prefix) && e.updatedAt.Before(before) {
			delete(data, k)
			n++
		}
	}
	return n
}
