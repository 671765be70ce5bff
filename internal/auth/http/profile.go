package http

import (
	"net/http"

	"github.com/aussiebroadwan/authkit/pkg/authsdk"
	"github.com/aussiebroadwan/authkit/pkg/httpx"
)

// ProfileHandler godoc
//
//	@Summary		Current identity
//	@Description	Returns the identity carried by the bearer token. No database lookup is made.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	authsdk.UserResponse	"id, name, email"
//	@Failure		401	{object}	httpx.ErrorResponse		"missing, malformed, invalid or expired token"
//	@Router			/auth/profile [get].
func ProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := httpx.IdentityFromContext(r.Context())
		if !ok {
			// Only reachable if the route was wired without the guard.
			httpx.WriteError(w, http.StatusUnauthorized, httpx.MsgMissingCredentials)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, authsdk.UserResponse{
			ID:    id.ID,
			Name:  id.Name,
			Email: id.Email,
		})
	}
}
