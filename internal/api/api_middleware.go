package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/racefuel/racefuel-api/internal/auth"
	"github.com/racefuel/racefuel-api/internal/database"
)

// ================= MIDDLEWARE ================= //

type ctxKey string

// middlewareVerifyIdentity validates the identity provider's token and
// stores its subject in the request context. It does not require a local
// user to exist yet.
func (cfg *APIConfig) middlewareVerifyIdentity(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := cfg.verifyBearer(w, r)
		if !ok {
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey("auth0_sub"), subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// middlewareAuthenticate validates the token and resolves its subject to a
// local user before passing off requests to another handler.
func (cfg *APIConfig) middlewareAuthenticate(next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := cfg.verifyBearer(w, r)
		if !ok {
			return
		}
		dbUser, err := cfg.db.GetUserByAuth0Sub(r.Context(), subject)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				respondWithError(w, http.StatusNotFound, "user not found; sync the user first", nil)
				return
			}
			respondWithError(w, http.StatusInternalServerError, "could not resolve user", err)
			return
		}
		ctx := context.WithValue(r.Context(), ctxKey("auth0_sub"), subject)
		ctx = context.WithValue(ctx, ctxKey("user_id"), dbUser.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (cfg *APIConfig) verifyBearer(w http.ResponseWriter, r *http.Request) (string, bool) {
	tokenString, err := auth.GetBearerToken(r.Header)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "no token found", err)
		return "", false
	}
	subject, err := auth.ValidateJWT(tokenString, cfg.idp)
	if err != nil {
		respondWithError(w, http.StatusUnauthorized, "invalid token provided", err)
		return "", false
	}
	return subject, true
}

// middlewareCheckEventAccess loads the event named by the path and checks
// that the caller may act on it. OWNER requires ownership; VIEWER also admits
// anyone when the event is not private.
func (cfg *APIConfig) middlewareCheckEventAccess(required EventAccess, next http.HandlerFunc) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

		pathEventID, err := parseUUIDFromPath("event_id", r)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid event id", err)
			return
		}

		dbEvent, err := cfg.db.GetEventByID(r.Context(), pathEventID)
		if err != nil {
			respondWithDBError(w, "could not get event", err)
			return
		}

		callerAccess := accessFor(dbEvent, validatedUserID)
		if callerAccess > required {
			respondWithError(w, http.StatusForbidden, "user does not have access to this event", nil)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey("event"), dbEvent)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ============== HELPERS =================

func getContextKeyValueAsUUID(ctx context.Context, key string) uuid.UUID {
	contextKeyValue, ok := ctx.Value(ctxKey(key)).(uuid.UUID)
	if !ok {
		slog.Warn("failed to retrieve key from context", slog.String("key", key))
		return uuid.Nil
	}
	return contextKeyValue
}

func getContextKeyValueAsString(ctx context.Context, key string) string {
	contextKeyValue, ok := ctx.Value(ctxKey(key)).(string)
	if !ok {
		slog.Warn("failed to retrieve key from context", slog.String("key", key))
		return ""
	}
	return contextKeyValue
}

func getContextEvent(ctx context.Context) database.Event {
	contextKeyValue, ok := ctx.Value(ctxKey("event")).(database.Event)
	if !ok {
		slog.Warn("failed to retrieve key from context", slog.String("key", "event"))
	}
	return contextKeyValue
}
