package httpx

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/clarityimpactfinance/portal/pkg/idx"
	"github.com/clarityimpactfinance/portal/pkg/jwtx"
	"github.com/clarityimpactfinance/portal/pkg/slogx"
)

// ErrNoCookie is returned by CookieIssuer.Read when the cookie is absent.
var ErrNoCookie = errors.New("httpx: cookie not present")

// CookieIssuer mints and reads one kind of signed cookie. The cookie value is
// a JWT so tampering with the session id is detectable without server state.
type CookieIssuer struct {
	Name     string
	Audience string
	Issuer   string
	Scopes   []string
	TTL      time.Duration
	Secure   bool

	Signer   jwtx.Signer
	Verifier jwtx.Verifier

	// Now defaults to time.Now.
	Now func() time.Time
}

func (c *CookieIssuer) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

// Issue signs a fresh cookie for sid and writes it to w.
func (c *CookieIssuer) Issue(w http.ResponseWriter, sid string) error {
	now := c.now()
	claims := jwtx.NewClaims(sid, sid, c.Scopes, c.TTL, c.Issuer, []string{c.Audience}, now)

	token, err := c.Signer.Sign(claims)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(c.TTL),
		MaxAge:   int(c.TTL.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Read verifies the cookie on r and returns its claims.
func (c *CookieIssuer) Read(r *http.Request) (jwtx.Claims, error) {
	cookie, err := r.Cookie(c.Name)
	if err != nil {
		return jwtx.Claims{}, ErrNoCookie
	}
	return c.Verifier.Verify(cookie.Value)
}

// Clear expires the cookie in the browser.
func (c *CookieIssuer) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SessionMiddleware guarantees every request carries a browser session id.
// A missing, expired or forged cookie is replaced with a new session.
func SessionMiddleware(c *CookieIssuer) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			claims, err := c.Read(r)
			sid := claims.SID
			if err != nil || sid == "" {
				if err != nil && !errors.Is(err, ErrNoCookie) {
					log.Warn("discarding invalid session cookie", "err", err)
				}

				sid = idx.New().String()
				if err := c.Issue(w, sid); err != nil {
					log.Error("failed to issue session cookie", "err", err)
					WriteError(w, http.StatusInternalServerError, "server_error", "Failed to establish a session")
					return
				}
			}

			ctx = context.WithValue(ctx, CtxKeySessionID, sid)
			ctx = slogx.With(ctx, "sid", sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireScope rejects requests without a valid cookie granting scope.
func RequireScope(c *CookieIssuer, scope string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := c.Read(r)
			if err != nil {
				if !errors.Is(err, ErrNoCookie) {
					slogx.FromContext(r.Context()).Warn("admin cookie rejected", "err", err)
				}
				WriteError(w, http.StatusUnauthorized, "unauthorized", "Admin login required")
				return
			}
			if !claims.HasScope(scope) {
				WriteError(w, http.StatusForbidden, "insufficient_scope", "Missing required scope: "+scope)
				return
			}

			ctx := context.WithValue(r.Context(), CtxKeyAdmin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
