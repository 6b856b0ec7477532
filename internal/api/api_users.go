package api

import (
	"net/http"
	"strings"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type userResponse struct {
	User User `json:"user"`
}

// handleSyncUser creates or refreshes the local user behind the verified
// token. The identity reference always comes from the token.
func (cfg *APIConfig) handleSyncUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.UserSync)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	subject := getContextKeyValueAsString(r.Context(), "auth0_sub")

	dbUser, err := cfg.db.UpsertUser(r.Context(), database.UpsertUserParams{
		Auth0Sub: subject,
		Name:     strings.TrimSpace(rqPayload.Name),
		Email:    strings.TrimSpace(rqPayload.Email),
	})
	if err != nil {
		respondWithDBError(w, "could not sync user", err)
		return
	}

	code := http.StatusOK
	if dbUser.Inserted {
		code = http.StatusCreated
	}
	respondWithJSON(w, code, userResponse{User: User{
		ID:        dbUser.ID,
		CreatedAt: dbUser.CreatedAt,
		UpdatedAt: dbUser.UpdatedAt,
		Auth0Sub:  dbUser.Auth0Sub,
		Name:      dbUser.Name,
		Email:     dbUser.Email,
	}})
}

func (cfg *APIConfig) handleGetCurrentUser(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbUser, err := cfg.db.GetUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get user", err)
		return
	}

	respondWithJSON(w, http.StatusOK, userResponse{User: userFromDB(dbUser)})
}

func (cfg *APIConfig) handleUpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.UserUpdate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbUser, err := cfg.db.GetUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get user", err)
		return
	}

	params := database.UpdateUserParams{
		ID:    dbUser.ID,
		Name:  dbUser.Name,
		Email: dbUser.Email,
	}
	if rqPayload.Name != nil {
		params.Name = strings.TrimSpace(*rqPayload.Name)
	}
	if rqPayload.Email != nil {
		params.Email = strings.TrimSpace(*rqPayload.Email)
	}

	updated, err := cfg.db.UpdateUser(r.Context(), params)
	if err != nil {
		respondWithDBError(w, "could not update user", err)
		return
	}

	respondWithJSON(w, http.StatusOK, userResponse{User: userFromDB(updated)})
}

func (cfg *APIConfig) handleDeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	err := cfg.db.DeleteUserByID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not delete user", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

// handleFindUsersByEmail lets a caller find someone to connect with. Only
// public fields are returned.
func (cfg *APIConfig) handleFindUsersByEmail(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		respondWithError(w, http.StatusBadRequest, "query parameter 'email' is required", nil)
		return
	}

	dbUsers, err := cfg.db.GetUsersByEmail(r.Context(), email)
	if err != nil {
		respondWithDBError(w, "could not look up users", err)
		return
	}

	type rspSchema struct {
		Users []User `json:"users"`
		Count int    `json:"count"`
	}

	users := make([]User, 0, len(dbUsers))
	for _, u := range dbUsers {
		public := userFromDB(u)
		public.Auth0Sub = ""
		users = append(users, public)
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Users: users, Count: len(users)})
}
