package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/authkit/pkg/jwtx"
	"github.com/aussiebroadwan/authkit/pkg/slogx"
)

const bearerPrefix = "Bearer "

// Messages returned in the 401 body. Verification failures share one message
// so callers can't tell an expired token from a forged one.
const (
	MsgMissingCredentials   = "missing credentials"
	MsgMalformedCredentials = "malformed credentials"
	MsgInvalidToken         = "invalid or expired token"
)

// AuthnMiddleware rejects requests without a valid bearer token and attaches
// the verified payload to the request context otherwise.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" {
				writeBearerError(w, MsgMissingCredentials)
				return
			}
			if !strings.HasPrefix(authz, bearerPrefix) {
				writeBearerError(w, MsgMalformedCredentials)
				return
			}
			raw := authz[len(bearerPrefix):]
			if raw == "" {
				writeBearerError(w, MsgMalformedCredentials)
				return
			}

			id, err := v.Verify(raw)
			if err != nil {
				log.Debug("bearer token rejected", "err", err)
				writeBearerError(w, MsgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithIdentity(ctx, id)))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, desc)
}
