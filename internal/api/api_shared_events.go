package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type sharedEventResponse struct {
	SharedEvent SharedEvent `json:"shared_event"`
	Event       *Event      `json:"event,omitempty"`
	Message     string      `json:"message,omitempty"`
}

func (cfg *APIConfig) handleGetSharedEvents(w http.ResponseWriter, r *http.Request) {
	status, err := statusFilter(r.URL.Query().Get("status"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid status filter", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	var sharedEvents []SharedEvent
	switch direction := r.URL.Query().Get("direction"); direction {
	case "", "received":
		rows, err := cfg.db.GetSharedEventsReceived(r.Context(), database.GetSharedEventsReceivedParams{
			UserID: validatedUserID,
			Status: status,
		})
		if err != nil {
			respondWithDBError(w, "could not get received shares", err)
			return
		}
		sharedEvents = make([]SharedEvent, 0, len(rows))
		for _, row := range rows {
			se := sharedEventFromDB(database.SharedEvent{
				ID:            row.ID,
				CreatedAt:     row.CreatedAt,
				UpdatedAt:     row.UpdatedAt,
				EventID:       row.EventID,
				SenderID:      row.SenderID,
				ReceiverID:    row.ReceiverID,
				Status:        row.Status,
				CopiedEventID: row.CopiedEventID,
			})
			se.EventName = row.EventName
			se.OtherUserName = row.OtherUserName
			sharedEvents = append(sharedEvents, se)
		}
	case "sent":
		rows, err := cfg.db.GetSharedEventsSent(r.Context(), database.GetSharedEventsSentParams{
			UserID: validatedUserID,
			Status: status,
		})
		if err != nil {
			respondWithDBError(w, "could not get sent shares", err)
			return
		}
		sharedEvents = make([]SharedEvent, 0, len(rows))
		for _, row := range rows {
			se := sharedEventFromDB(database.SharedEvent{
				ID:            row.ID,
				CreatedAt:     row.CreatedAt,
				UpdatedAt:     row.UpdatedAt,
				EventID:       row.EventID,
				SenderID:      row.SenderID,
				ReceiverID:    row.ReceiverID,
				Status:        row.Status,
				CopiedEventID: row.CopiedEventID,
			})
			se.EventName = row.EventName
			se.OtherUserName = row.OtherUserName
			sharedEvents = append(sharedEvents, se)
		}
	default:
		respondWithError(w, http.StatusBadRequest, "invalid direction",
			fmt.Errorf("direction must be 'received' or 'sent', got '%s'", direction))
		return
	}

	type rspSchema struct {
		SharedEvents []SharedEvent `json:"shared_events"`
		Count        int           `json:"count"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{SharedEvents: sharedEvents, Count: len(sharedEvents)})
}

// handleShareEvent offers one of the caller's events to an accepted connection.
func (cfg *APIConfig) handleShareEvent(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		EventID    uuid.UUID `json:"event_id"`
		ReceiverID uuid.UUID `json:"receiver_id"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.SharedEventCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	if rqPayload.ReceiverID == validatedUserID {
		respondWithError(w, http.StatusBadRequest, "cannot share an event with yourself", nil)
		return
	}

	dbEvent, err := cfg.db.GetEventByID(r.Context(), rqPayload.EventID)
	if err != nil {
		respondWithDBError(w, "could not get event", err)
		return
	}
	if accessFor(dbEvent, validatedUserID) != OWNER {
		respondWithError(w, http.StatusForbidden, "only the owner may share an event", nil)
		return
	}

	if _, err := cfg.db.GetUserByID(r.Context(), rqPayload.ReceiverID); err != nil {
		respondWithDBError(w, "could not get receiver", err)
		return
	}

	connected, err := cfg.db.HasAcceptedConnection(r.Context(), database.HasAcceptedConnectionParams{
		UserA: validatedUserID,
		UserB: rqPayload.ReceiverID,
	})
	if err != nil {
		respondWithDBError(w, "could not check connection", err)
		return
	}
	if !connected {
		respondWithError(w, http.StatusForbidden, "events can only be shared with accepted connections", nil)
		return
	}

	dbShare, err := cfg.db.CreateSharedEvent(r.Context(), database.CreateSharedEventParams{
		EventID:    dbEvent.ID,
		SenderID:   validatedUserID,
		ReceiverID: rqPayload.ReceiverID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			respondWithError(w, http.StatusBadRequest, "this event is already pending for the receiver", nil)
			return
		}
		respondWithDBError(w, "could not share event", err)
		return
	}

	share := sharedEventFromDB(dbShare)
	share.EventName = dbEvent.Name
	respondWithJSON(w, http.StatusCreated, sharedEventResponse{
		SharedEvent: share,
		Message:     "event shared",
	})
}

// handleRespondToSharedEvent lets the receiver accept or deny a share.
// Accepting copies the event into the receiver's account.
func (cfg *APIConfig) handleRespondToSharedEvent(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Status string `json:"status"`
	}

	pathShareID, err := parseUUIDFromPath("shared_event_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid shared event id", err)
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

	dbShare, err := cfg.db.GetSharedEventByID(r.Context(), pathShareID)
	if err != nil {
		respondWithDBError(w, "could not get shared event", err)
		return
	}
	if dbShare.ReceiverID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "only the receiver may respond to a shared event", nil)
		return
	}
	if dbShare.Status != PENDING.String() {
		respondWithError(w, http.StatusBadRequest, "shared event was already answered",
			fmt.Errorf("current status is %s", dbShare.Status))
		return
	}

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	var (
		updated database.SharedEvent
		copied  *Event
	)
	if newStatus == ACCEPTED {
		var dbCopy database.Event
		updated, dbCopy, err = acceptShare(r.Context(), q, dbShare)
		if err == nil {
			e := eventFromDB(dbCopy)
			copied = &e
		}
	} else {
		updated, err = transitionShare(r.Context(), q, dbShare, newStatus)
	}
	if err != nil {
		if errors.Is(err, errShareNotPending) {
			respondWithError(w, http.StatusBadRequest, "shared event was already answered", err)
			return
		}
		if errors.Is(err, errNotConnected) {
			respondWithError(w, http.StatusForbidden, "events can only be shared with accepted connections", err)
			return
		}
		respondWithDBError(w, "could not respond to shared event", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithJSON(w, http.StatusOK, sharedEventResponse{
		SharedEvent: sharedEventFromDB(updated),
		Event:       copied,
		Message:     "shared event " + newStatus.String(),
	})
}

func (cfg *APIConfig) handleDeleteSharedEvent(w http.ResponseWriter, r *http.Request) {
	pathShareID, err := parseUUIDFromPath("shared_event_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid shared event id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbShare, err := cfg.db.GetSharedEventByID(r.Context(), pathShareID)
	if err != nil {
		respondWithDBError(w, "could not get shared event", err)
		return
	}
	if dbShare.SenderID != validatedUserID && dbShare.ReceiverID != validatedUserID {
		respondWithError(w, http.StatusForbidden, "user is not part of this share", nil)
		return
	}

	if err := cfg.db.DeleteSharedEvent(r.Context(), dbShare.ID); err != nil {
		respondWithDBError(w, "could not delete shared event", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
