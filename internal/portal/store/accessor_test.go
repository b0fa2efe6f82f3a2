package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/internal/portal/domain"
	"github.com/clarityimpactfinance/portal/internal/portal/store"
	"github.com/clarityimpactfinance/portal/internal/portal/store/drivers/memory"
	"github.com/stretchr/testify/require"
)

func TestAccessorArrays(t *testing.T) {
	ctx := context.Background()
	a := store.NewAccessor(memory.NewStore().Values())

	t.Run("missing arrays read as empty", func(t *testing.T) {
		codes, err := a.InvitationCodes(ctx)
		require.NoError(t, err)
		require.NotNil(t, codes)
		require.Empty(t, codes)

		used, err := a.UsedInvitationCodes(ctx)
		require.NoError(t, err)
		require.Empty(t, used)

		accounts, err := a.ClientAccounts(ctx)
		require.NoError(t, err)
		require.Empty(t, accounts)
	})

	t.Run("round trip codes", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		in := []domain.InvitationCode{{Code: "CIF-ABC123", CreatedAt: now, ExpiresAt: now.Add(domain.DefaultInvitationTTL)}}
		require.NoError(t, a.SaveInvitationCodes(ctx, in))

		out, err := a.InvitationCodes(ctx)
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "CIF-ABC123", out[0].Code)
		require.True(t, out[0].ExpiresAt.Equal(in[0].ExpiresAt))
	})
}

func TestAccessorCorruptValue(t *testing.T) {
	ctx := context.Background()
	v := memory.NewStore().Values()
	require.NoError(t, v.Set(ctx, store.KeyClientAccounts, "{not json"))

	_, err := store.NewAccessor(v).ClientAccounts(ctx)
	require.ErrorIs(t, err, store.ErrCorrupt)
}

func TestAccessorSession(t *testing.T) {
	ctx := context.Background()

	t.Run("logged in requires flag and username", func(t *testing.T) {
		v := memory.NewStore().Values()
		a := store.NewAccessor(v)

		require.NoError(t, v.Set(ctx, store.KeyIsLoggedIn, "true"))
		sess, err := a.Session(ctx)
		require.NoError(t, err)
		require.False(t, sess.LoggedIn)

		require.NoError(t, v.Set(ctx, store.KeyUsername, "jane"))
		sess, err = a.Session(ctx)
		require.NoError(t, err)
		require.True(t, sess.LoggedIn)
		require.Equal(t, "jane", sess.Username)
	})

	t.Run("save then clear", func(t *testing.T) {
		a := store.NewAccessor(memory.NewStore().Values())

		data := domain.UserData{FullName: "Jane Doe", Organization: "Acme CDFI"}
		require.NoError(t, a.SaveSession(ctx, "jane", data))

		sess, err := a.Session(ctx)
		require.NoError(t, err)
		require.True(t, sess.LoggedIn)
		require.Equal(t, data, sess.UserData)

		require.NoError(t, a.ClearSession(ctx))
		sess, err = a.Session(ctx)
		require.NoError(t, err)
		require.False(t, sess.LoggedIn)
	})

	t.Run("unreadable user data is ignored", func(t *testing.T) {
		v := memory.NewStore().Values()
		a := store.NewAccessor(v)

		require.NoError(t, v.Set(ctx, store.KeyIsLoggedIn, "true"))
		require.NoError(t, v.Set(ctx, store.KeyUsername, "jane"))
		require.NoError(t, v.Set(ctx, store.KeyUserData, "garbage"))

		sess, err := a.Session(ctx)
		require.NoError(t, err)
		require.True(t, sess.LoggedIn)
		require.Empty(t, sess.UserData.FullName)
	})
}

func TestNamespaceIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	root := memory.NewStore().Values()

	alice := store.Namespace(root, store.SessionNamespace("alice"))
	bob := store.Namespace(root, store.SessionNamespace("bob"))

	require.NoError(t, store.NewAccessor(alice).SaveSession(ctx, "alice", domain.UserData{}))

	sess, err := store.NewAccessor(bob).Session(ctx)
	require.NoError(t, err)
	require.False(t, sess.LoggedIn)

	keys, err := alice.Keys(ctx, "")
	require.NoError(t, err)
	require.Equal(t, []string{store.KeyIsLoggedIn, store.KeyUserData, store.KeyUsername}, keys)

	_, err = root.Get(ctx, "session/alice/username")
	require.NoError(t, err)
}
