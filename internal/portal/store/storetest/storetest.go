// Package storetest holds behaviour every store driver must share.
package storetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/stretchr/testify/require"
)

// Run exercises a driver. newStore must return an empty, migrated store.
func Run(t *testing.T, newStore func(t *testing.T) store.Store) {
	t.Run("get missing key", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Values().Get(context.Background(), "nope")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("set overwrites", func(t *testing.T) {
		ctx := context.Background()
		v := newStore(t).Values()

		require.NoError(t, v.Set(ctx, "k", "one"))
		require.NoError(t, v.Set(ctx, "k", "two"))

		got, err := v.Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "two", got)
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		ctx := context.Background()
		v := newStore(t).Values()

		require.NoError(t, v.Set(ctx, "k", "v"))
		require.NoError(t, v.Remove(ctx, "k"))
		require.NoError(t, v.Remove(ctx, "k"))

		_, err := v.Get(ctx, "k")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("keys filters by prefix in order", func(t *testing.T) {
		ctx := context.Background()
		v := newStore(t).Values()

		for _, k := range []string{"session/b/x", "session/a/x", "clientAccounts", "sessionless"} {
			require.NoError(t, v.Set(ctx, k, "1"))
		}

		keys, err := v.Keys(ctx, "session/")
		require.NoError(t, err)
		require.Equal(t, []string{"session/a/x", "session/b/x"}, keys)
	})

	t.Run("commit publishes writes", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		err := s.WithTx(ctx, func(tx store.Tx) error {
			return tx.Values().Set(ctx, "k", "v")
		})
		require.NoError(t, err)

		got, err := s.Values().Get(ctx, "k")
		require.NoError(t, err)
		require.Equal(t, "v", got)
	})

	t.Run("error rolls back", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		boom := errors.New("boom")

		err := s.WithTx(ctx, func(tx store.Tx) error {
			require.NoError(t, tx.Values().Set(ctx, "k", "v"))
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = s.Values().Get(ctx, "k")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("nested tx rejected", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)

		err := s.WithTx(ctx, func(tx store.Tx) error {
			_, err := tx.Tx(ctx)
			return err
		})
		require.Error(t, err)
	})

	t.Run("purge stale respects prefix and cutoff", func(t *testing.T) {
		ctx := context.Background()
		v := newStore(t).Values()

		require.NoError(t, v.Set(ctx, "session/a/isLoggedIn", "true"))
		require.NoError(t, v.Set(ctx, "invitationCodes", "[]"))

		n, err := v.PurgeStale(ctx, "session/", time.Now().Add(-time.Hour))
		require.NoError(t, err)
		require.Zero(t, n)

		n, err = v.PurgeStale(ctx, "session/", time.Now().Add(time.Hour))
		require.NoError(t, err)
		require.EqualValues(t, 1, n)

		_, err = v.Get(ctx, "invitationCodes")
		require.NoError(t, err)
	})
}
