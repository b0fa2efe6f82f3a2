package httpx

import (
	"context"

	"github.com/clarityimpactfinance/portal/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeySessionID ctxKey = "session_id"
	CtxKeyAdmin     ctxKey = "admin_claims"
)

// SessionID returns the browser session id attached by SessionMiddleware.
func SessionID(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(CtxKeySessionID).(string)
	return sid, ok && sid != ""
}

// WithSessionID attaches a session id, mostly useful in handler tests.
func WithSessionID(ctx context.Context, sid string) context.Context {
	return context.WithValue(ctx, CtxKeySessionID, sid)
}

// AdminClaims returns the verified admin cookie claims, if any.
func AdminClaims(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyAdmin).(jwtx.Claims)
	return c, ok
}
