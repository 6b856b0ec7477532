package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type preferencesResponse struct {
	Preferences Preferences `json:"preferences"`
}

// handleGetPreferences returns the stored preferences, or the defaults when
// the user never saved any.
func (cfg *APIConfig) handleGetPreferences(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	prefs, err := cfg.currentPreferences(r, validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get preferences", err)
		return
	}

	respondWithJSON(w, http.StatusOK, preferencesResponse{Preferences: prefs})
}

func (cfg *APIConfig) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Theme            *string `json:"theme"`
		TimeDisplay      *string `json:"time_display"`
		DefaultEventType *string `json:"default_event_type"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.Preferences)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	prefs, err := cfg.currentPreferences(r, validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get preferences", err)
		return
	}
	if rqPayload.Theme != nil {
		prefs.Theme = *rqPayload.Theme
	}
	if rqPayload.TimeDisplay != nil {
		prefs.TimeDisplay = *rqPayload.TimeDisplay
	}
	if rqPayload.DefaultEventType != nil {
		prefs.DefaultEventType = *rqPayload.DefaultEventType
	}

	dbPrefs, err := cfg.db.UpsertUserPreferences(r.Context(), database.UpsertUserPreferencesParams{
		UserID:           validatedUserID,
		Theme:            prefs.Theme,
		TimeDisplay:      prefs.TimeDisplay,
		DefaultEventType: prefs.DefaultEventType,
	})
	if err != nil {
		respondWithDBError(w, "could not save preferences", err)
		return
	}

	respondWithJSON(w, http.StatusOK, preferencesResponse{Preferences: preferencesFromDB(dbPrefs)})
}

func (cfg *APIConfig) handleGetUserColors(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbColors, err := cfg.db.GetUserColors(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get colors", err)
		return
	}

	type rspSchema struct {
		Colors []UserColor `json:"colors"`
		Count  int         `json:"count"`
	}

	colors := make([]UserColor, 0, len(dbColors))
	for _, c := range dbColors {
		colors = append(colors, UserColor{TargetUserID: c.TargetUserID, Color: c.Color})
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Colors: colors, Count: len(colors)})
}

func (cfg *APIConfig) handleSetUserColor(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Color string `json:"color"`
	}

	pathTargetID, err := parseUUIDFromPath("target_user_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid target user id", err)
		return
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.Color)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	if pathTargetID == validatedUserID {
		respondWithError(w, http.StatusBadRequest, "cannot set a color for yourself", nil)
		return
	}

	dbColor, err := cfg.db.UpsertUserColor(r.Context(), database.UpsertUserColorParams{
		UserID:       validatedUserID,
		TargetUserID: pathTargetID,
		Color:        strings.ToUpper(rqPayload.Color),
	})
	if err != nil {
		respondWithDBError(w, "could not save color", err)
		return
	}

	type rspSchema struct {
		Color UserColor `json:"color"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Color: UserColor{TargetUserID: dbColor.TargetUserID, Color: dbColor.Color}})
}

func (cfg *APIConfig) handleDeleteUserColor(w http.ResponseWriter, r *http.Request) {
	pathTargetID, err := parseUUIDFromPath("target_user_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid target user id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	removed, err := cfg.db.DeleteUserColor(r.Context(), database.DeleteUserColorParams{
		UserID:       validatedUserID,
		TargetUserID: pathTargetID,
	})
	if err != nil {
		respondWithDBError(w, "could not delete color", err)
		return
	}
	if removed == 0 {
		respondWithError(w, http.StatusNotFound, "no color set for this user", nil)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

func (cfg *APIConfig) currentPreferences(r *http.Request, userID uuid.UUID) (Preferences, error) {
	dbPrefs, err := cfg.db.GetUserPreferences(r.Context(), userID)
	if errors.Is(err, pgx.ErrNoRows) {
		return defaultPreferences, nil
	}
	if err != nil {
		return Preferences{}, err
	}
	return preferencesFromDB(dbPrefs), nil
}
