// Package api handles routes and their associated handlers
package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
)

func SetupMux(cfg *APIConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// middleware
	mdIdentity := cfg.middlewareVerifyIdentity
	mdAuth := cfg.middlewareAuthenticate
	mdEvent := cfg.middlewareCheckEventAccess

	// REGISTER API HANDLERS
	// ======================

	// Admin & State
	mux.HandleFunc("GET /api/healthz", cfg.handleReadiness)
	mux.HandleFunc("POST /admin/reset", cfg.handleDeleteAllUsers)
	mux.HandleFunc("GET /admin/users/count", cfg.handleGetTotalUserCount)
	// Users
	mux.HandleFunc("POST /api/users/sync", mdIdentity(cfg.handleSyncUser))
	mux.HandleFunc("GET /api/users/me", mdAuth(cfg.handleGetCurrentUser))
	mux.HandleFunc("PUT /api/users/me", mdAuth(cfg.handleUpdateCurrentUser))
	mux.HandleFunc("DELETE /api/users/me", mdAuth(cfg.handleDeleteCurrentUser))
	mux.HandleFunc("GET /api/users", mdAuth(cfg.handleFindUsersByEmail))
	// Nutrients & Food Items
	mux.HandleFunc("GET /api/nutrients", mdAuth(cfg.handleGetNutrients))
	mux.HandleFunc("GET /api/food-items", mdAuth(cfg.handleGetFoodItems))
	mux.HandleFunc("POST /api/food-items", mdAuth(cfg.handleCreateFoodItem))
	mux.HandleFunc("GET /api/food-items/{food_item_id}", mdAuth(cfg.handleGetFoodItem))
	mux.HandleFunc("PUT /api/food-items/{food_item_id}", mdAuth(cfg.handleUpdateFoodItem))
	mux.HandleFunc("DELETE /api/food-items/{food_item_id}", mdAuth(cfg.handleDeleteFoodItem))
	mux.HandleFunc("GET /api/favorite-food-items", mdAuth(cfg.handleGetFavorites))
	mux.HandleFunc("POST /api/favorite-food-items", mdAuth(cfg.handleAddFavorite))
	mux.HandleFunc("DELETE /api/favorite-food-items/{food_item_id}", mdAuth(cfg.handleRemoveFavorite))
	// Events
	mux.HandleFunc("GET /api/events", mdAuth(cfg.handleGetEvents))
	mux.HandleFunc("POST /api/events", mdAuth(cfg.handleCreateEvent))
	mux.HandleFunc("GET /api/events/{event_id}", mdAuth(mdEvent(VIEWER, cfg.handleGetEvent)))
	mux.HandleFunc("PUT /api/events/{event_id}", mdAuth(mdEvent(OWNER, cfg.handleUpdateEvent)))
	mux.HandleFunc("DELETE /api/events/{event_id}", mdAuth(mdEvent(OWNER, cfg.handleDeleteEvent)))
	// Food Instances
	mux.HandleFunc("GET /api/events/{event_id}/food-instances", mdAuth(mdEvent(VIEWER, cfg.handleGetFoodInstances)))
	mux.HandleFunc("POST /api/events/{event_id}/food-instances", mdAuth(mdEvent(OWNER, cfg.handleCreateFoodInstance)))
	mux.HandleFunc("PUT /api/events/{event_id}/food-instances/{food_instance_id}", mdAuth(mdEvent(OWNER, cfg.handleUpdateFoodInstance)))
	mux.HandleFunc("DELETE /api/events/{event_id}/food-instances/{food_instance_id}", mdAuth(mdEvent(OWNER, cfg.handleDeleteFoodInstance)))
	// Goals & Summary
	mux.HandleFunc("GET /api/events/{event_id}/goals", mdAuth(mdEvent(VIEWER, cfg.handleGetGoals)))
	mux.HandleFunc("PUT /api/events/{event_id}/goals", mdAuth(mdEvent(OWNER, cfg.handleReplaceGoals)))
	mux.HandleFunc("DELETE /api/events/{event_id}/goals", mdAuth(mdEvent(OWNER, cfg.handleClearGoals)))
	mux.HandleFunc("GET /api/events/{event_id}/summary", mdAuth(mdEvent(VIEWER, cfg.handleGetSummary)))
	// Connections & Sharing
	mux.HandleFunc("GET /api/connections", mdAuth(cfg.handleGetConnections))
	mux.HandleFunc("POST /api/connections", mdAuth(cfg.handleRequestConnection))
	mux.HandleFunc("PUT /api/connections/{connection_id}", mdAuth(cfg.handleRespondToConnection))
	mux.HandleFunc("DELETE /api/connections/{connection_id}", mdAuth(cfg.handleDeleteConnection))
	mux.HandleFunc("GET /api/shared-events", mdAuth(cfg.handleGetSharedEvents))
	mux.HandleFunc("POST /api/shared-events", mdAuth(cfg.handleShareEvent))
	mux.HandleFunc("PUT /api/shared-events/{shared_event_id}", mdAuth(cfg.handleRespondToSharedEvent))
	mux.HandleFunc("DELETE /api/shared-events/{shared_event_id}", mdAuth(cfg.handleDeleteSharedEvent))
	// Preferences
	mux.HandleFunc("GET /api/preferences", mdAuth(cfg.handleGetPreferences))
	mux.HandleFunc("PUT /api/preferences", mdAuth(cfg.handleUpdatePreferences))
	mux.HandleFunc("GET /api/preferences/colors", mdAuth(cfg.handleGetUserColors))
	mux.HandleFunc("PUT /api/preferences/colors/{target_user_id}", mdAuth(cfg.handleSetUserColor))
	mux.HandleFunc("DELETE /api/preferences/colors/{target_user_id}", mdAuth(cfg.handleDeleteUserColor))
	return mux
}

// Handler wraps the route table with CORS, compression, request logging and
// panic recovery.
func (cfg *APIConfig) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})

	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(recoveryLogger{}),
		handlers.PrintRecoveryStack(true),
	)

	return c.Handler(
		handlers.CompressHandler(
			handlers.CustomLoggingHandler(io.Discard, recovery(SetupMux(cfg)), logRequest),
		),
	)
}

// logRequest is a gorilla/handlers LogFormatter that writes through slog.
func logRequest(_ io.Writer, params handlers.LogFormatterParams) {
	level := slog.LevelInfo
	if params.StatusCode >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	slog.Log(params.Request.Context(), level, "request",
		slog.String("method", params.Request.Method),
		slog.String("path", params.URL.Path),
		slog.Int("status", params.StatusCode),
		slog.Int("size", params.Size),
		slog.Duration("duration", time.Since(params.TimeStamp)),
	)
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...any) {
	slog.Error("recovered from panic", slog.Any("panic", v))
}
