package sqlite

import (
	"context"
	"time"
)

const (
	getValue = `SELECT value FROM kv WHERE key = ?`

	upsertValue = `
INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	deleteValue = `DELETE FROM kv WHERE key = ?`

	listKeys = `SELECT key FROM kv WHERE substr(key, 1, length(?)) = ? ORDER BY key`

	purgeStale = `DELETE FROM kv WHERE substr(key, 1, length(?)) = ? AND updated_at < ?`
)

type valuesRepo struct {
	db  DBTX
	now func() time.Time
}

func (r *valuesRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	if err := r.db.QueryRowContext(ctx, getValue, key).Scan(&value); err != nil {
		return "", mapNotFound(err)
	}
	return value, nil
}

func (r *valuesRepo) Set(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, upsertValue, key, value, r.now().UTC().UnixMilli())
	return err
}

func (r *valuesRepo) Remove(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, deleteValue, key)
	return err
}

func (r *valuesRepo) Keys(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, listKeys, prefix, prefix)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (r *valuesRepo) PurgeStale(ctx context.Context, prefix string, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeStale, prefix, prefix, before.UTC().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
