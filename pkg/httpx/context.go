package httpx

import (
	"context"

	"github.com/aussiebroadwan/authkit/pkg/jwtx"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// ContextWithIdentity attaches the authenticated caller to ctx.
func ContextWithIdentity(ctx context.Context, id jwtx.Payload) context.Context {
	return context.WithValue(ctx, ctxKeyIdentity, id)
}

// IdentityFromContext returns the caller attached by AuthnMiddleware.
// ok is false on routes that are not guarded.
func IdentityFromContext(ctx context.Context) (jwtx.Payload, bool) {
	id, ok := ctx.Value(ctxKeyIdentity).(jwtx.Payload)
	return id, ok
}
