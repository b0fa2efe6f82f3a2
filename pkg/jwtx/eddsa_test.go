package jwtx_test

import (
	"testing"
	"time"

	"github.com/clarityimpactfinance/portal/pkg/cryptox"
	"github.com/clarityimpactfinance/portal/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "clarity-portal"

func newSigner(t *testing.T, kid string) *jwtx.EdDSASigner {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, signer.Validate())
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	signer := newSigner(t, "session-key")
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "session-key", signer.KID())

	claims := jwtx.NewClaims("sid-1", "sid-1", nil, time.Hour, testIssuer, []string{"portal-session"}, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	verifier := jwtx.NewVerifierEdDSA(testIssuer, []string{"portal-session"}, signer)
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "sid-1", got.SID)
	require.Equal(t, claims.ID, got.ID)
}

func TestEdDSAVerifyRejects(t *testing.T) {
	signer := newSigner(t, "session-key")
	now := time.Now().UTC()

	t.Run("wrong audience", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewClaims("a", "a", []string{"admin"}, time.Hour, testIssuer, []string{"portal-admin"}, now))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(testIssuer, []string{"portal-session"}, signer).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrAudience)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := signer.Sign(jwtx.NewClaims("a", "a", nil, time.Minute, testIssuer, nil, now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(testIssuer, nil, signer).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unknown signer", func(t *testing.T) {
		other := newSigner(t, "other-key")
		token, err := other.Sign(jwtx.NewClaims("a", "a", nil, time.Hour, testIssuer, nil, now))
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(testIssuer, nil, signer).Verify(token)
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(testIssuer, nil, signer).Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}
