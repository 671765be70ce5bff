package http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/authkit/pkg/authsdk"
	"github.com/aussiebroadwan/authkit/pkg/httpx"
	"github.com/aussiebroadwan/authkit/pkg/slogx"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler godoc
//
//	@Summary		Database health
//	@Description	Pings the credential store.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	authsdk.HealthResponse	"status ok"
//	@Failure		503	{object}	authsdk.HealthResponse	"status error with details"
//	@Router			/health [get].
func HealthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := slogx.FromContext(r.Context())

		if err := db.Ping(r.Context()); err != nil {
			log.Error("health check: database ping failed", slog.Any("err", err))
			httpx.WriteJSON(w, http.StatusServiceUnavailable, authsdk.HealthResponse{
				Status:  "error",
				Message: "Database connection failed",
				Details: err.Error(),
			})
			return
		}

		httpx.WriteJSON(w, http.StatusOK, authsdk.HealthResponse{
			Status:  "ok",
			Message: "Database connection is healthy",
		})
	}
}
