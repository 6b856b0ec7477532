package api

import (
	"net/http"
)

func (cfg *APIConfig) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if cfg.Pool != nil {
		if err := cfg.Pool.Ping(r.Context()); err != nil {
			respondWithError(w, http.StatusServiceUnavailable, "database unavailable", err)
			return
		}
	}
	respondWithText(w, http.StatusOK, "OK")
}
