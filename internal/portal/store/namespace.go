package store

import (
	"context"
	"strings"
	"time"
)

// SessionPrefix is the root under which every browser session's keys live.
const SessionPrefix = "session/"

// SessionNamespace returns the key prefix owned by one browser session.
func SessionNamespace(sid string) string {
	return SessionPrefix + sid + "/"
}

// Namespace scopes v so that every key is transparently prefixed. It gives
// each browser its own copy of the session flags while the invitation codes
// and accounts stay shared at the root.
func Namespace(v Values, prefix string) Values {
	return &namespaced{inner: v, prefix: prefix}
}

type namespaced struct {
	inner  Values
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.prefix+key)
}

func (n *namespaced) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := n.inner.Keys(ctx, n.prefix+prefix)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		keys[i] = strings.TrimPrefix(k, n.prefix)
	}
	return keys, nil
}

func (n *namespaced) PurgeStale(ctx context.Context, prefix string, before time.Time) (int64, error) {
	return n.inner.PurgeStale(ctx, n.prefix+prefix, before)
}
