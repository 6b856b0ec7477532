package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type connectionResponse struct {
	Connection Connection `json:"connection"`
	Message    string     `json:"message,omitempty"`
}

func (cfg *APIConfig) handleGetConnections(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilter(r.URL.Query().Get("status"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid status filter", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbConnections, err := cfg.db.GetUserConnections(r.Context(), database.GetUserConnectionsParams{
		UserID: validatedUserID,
		Status: status,
	})
	if err != nil {
		respondWithDBError(w, "could not get connections", err)
		return
	}

	type rspSchema struct {
		Connections []Connection `json:"connections"`
		Count       int          `json:"count"`
	}

	connections := make([]Connection, 0, len(dbConnections))
	for _, row := range dbConnections {
		connection := connectionFromDB(database.UserConnection{
			ID:          row.ID,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
			RequesterID: row.RequesterID,
			ReceiverID:  row.ReceiverID,
			Status:      row.Status,
		})
		other := &User{ID: row.ReceiverID, Name: row.ReceiverName, Email: row.ReceiverEmail}
		if row.ReceiverID == validatedUserID {
			other = &User{ID: row.RequesterID, Name: row.RequesterName, Email: row.RequesterEmail}
		}
		connection.OtherUser = other
		connections = append(connections, connection)
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Connections: connections, Count: len(connections)})
}

func (cfg *APIConfig) handleRequestConnection(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		ReceiverID uuid.UUID `json:"receiver_id"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.ConnectionCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	if rqPayload.ReceiverID == validatedUserID {
		respondWithError(w, http.StatusBadRequest, "cannot connect with yourself", nil)
		return
	}

	if _, err := cfg.db.GetUserByID(r.Context(), rqPayload.ReceiverID); err != nil {
		respondWithDBError(w, "could not get receiver", err)
		return
	}

	existing, err := cfg.db.GetConnectionBetween(r.Context(), database.GetConnectionBetweenParams{
		UserA: validatedUserID,
		UserB: rqPayload.ReceiverID,
	})
	switch {
	case err == nil:
		respondWithError(w, http.StatusBadRequest, "a connection between these users already exists",
			fmt.Errorf("connection %s is %s", existing.ID, existing.Status))
		return
	case !errors.Is(err, pgx.ErrNoRows):
		respondWithDBError(w, "could not check existing connections", err)
		return
	}

	dbConnection, err := cfg.db.CreateConnection(r.Context(), database.CreateConnectionParams{
		RequesterID: validatedUserID,
		ReceiverID:  rqPayload.ReceiverID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			respondWithError(w, http.StatusBadRequest, "a connection between these users already exists", nil)
			return
		}
		respondWithDBError(w, "could not create connection", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, connectionResponse{
		Connection: connectionFromDB(dbConnection),
		Message:    "connection requested",
	})
}

// handleRespondToConnection lets the receiver accept or deny a pending request.
func (cfg *APIConfig) handleRespondToConnection(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Status string `json:"status"`
	}

	pathConnectionID, err := parseUUIDFromPath("connection_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid connection id", err)
		return
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.StatusUpdate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}
	newStatus, err := RSFromString(rqPayload.Status)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid status", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbConnection, err := cfg.db.GetConnectionByID(r.Context(), pathConnectionID)
	if err != nil {
		respondWithDBError(w, "could not get connection", err)
		return
	}
	if dbConnection.ReceiverID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "only the receiver may respond to a connection request", nil)
		return
	}

	updated, err := cfg.db.UpdateConnectionStatus(r.Context(), database.UpdateConnectionStatusParams{
		ID:     dbConnection.ID,
		Status: newStatus.String(),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			respondWithError(w, http.StatusBadRequest, "connection request was already answered",
				fmt.Errorf("current status is %s", dbConnection.Status))
			return
		}
		respondWithDBError(w, "could not update connection", err)
		return
	}

	respondWithJSON(w, http.StatusOK, connectionResponse{
		Connection: connectionFromDB(updated),
		Message:    "connection " + newStatus.String(),
	})
}

func (cfg *APIConfig) handleDeleteConnection(w http.ResponseWriter, r *http.Request) {
	pathConnectionID, err := parseUUIDFromPath("connection_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid connection id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbConnection, err := cfg.db.GetConnectionByID(r.Context(), pathConnectionID)
	if err != nil {
		respondWithDBError(w, "could not get connection", err)
		return
	}
	if dbConnection.RequesterID != validatedUserID && dbConnection.ReceiverID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "user is not part of this connection", nil)
		return
	}

	if err := cfg.db.DeleteConnection(r.Context(), dbConnection.ID); err != nil {
		respondWithDBError(w, "could not delete connection", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
