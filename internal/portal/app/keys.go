package app

import (
	"fmt"
	"log/slog"

	httpapi "github.com/clarityimpactfinance/portal/internal/portal/http"
	"github.com/clarityimpactfinance/portal/pkg/cryptox"
	"github.com/clarityimpactfinance/portal/pkg/httpx"
	"github.com/clarityimpactfinance/portal/pkg/jwtx"
)

const (
	sessionCookieName = "portal_session"
	adminCookieName   = "portal_admin"

	sessionAudience = "portal-session"
	adminAudience   = "portal-admin"
)

// cookieKeys holds the signing key shared by the session and admin cookies.
type cookieKeys struct {
	Signer  *jwtx.EdDSASigner
	Session *httpx.CookieIssuer
	Admin   *httpx.CookieIssuer
}

// initCookieKeys loads the Ed25519 key from SessionKeyFile, creating it when
// missing. Without a file the key lives in memory and every restart logs all
// browsers out; the kid is then random so stale cookies fail with an unknown
// kid rather than a bad signature.
func initCookieKeys(cfg Config, logger *slog.Logger) (*cookieKeys, error) {
	var secret []byte
	if cfg.MasterKey != "" {
		secret = []byte(cfg.MasterKey)
	}

	pemKey, err := cryptox.LoadOrCreateEd25519Key(cfg.SessionKeyFile, secret)
	if err != nil {
		return nil, fmt.Errorf("failed to load session key: %w", err)
	}

	kid := "session"
	if cfg.SessionKeyFile == "" {
		if kid, err = cryptox.GenerateToken(cryptox.TokenSize128); err != nil {
			return nil, err
		}
		logger.Warn("session key is ephemeral; set PORTAL_SESSION_KEY_FILE to keep sessions across restarts")
	} else {
		logger.Info("session key loaded", "path", cfg.SessionKeyFile, "sealed", secret != nil)
	}

	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie signer: %w", err)
	}

	return &cookieKeys{
		Signer: signer,
		Session: &httpx.CookieIssuer{
			Name:     sessionCookieName,
			Audience: sessionAudience,
			Issuer:   cfg.Issuer,
			TTL:      cfg.SessionTTL,
			Secure:   cfg.SecureCookies,
			Signer:   signer,
			Verifier: jwtx.NewVerifierEdDSA(cfg.Issuer, []string{sessionAudience}, signer),
		},
		Admin: &httpx.CookieIssuer{
			Name:     adminCookieName,
			Audience: adminAudience,
			Issuer:   cfg.Issuer,
			Scopes:   []string{httpapi.AdminScope},
			TTL:      jwtx.DefaultAdminTTL,
			Secure:   cfg.SecureCookies,
			Signer:   signer,
			Verifier: jwtx.NewVerifierEdDSA(cfg.Issuer, []string{adminAudience}, signer),
		},
	}, nil
}
