package api

import (
	"net/http"
	"strings"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type eventResponse struct {
	Event   Event  `json:"event"`
	Message string `json:"message,omitempty"`
}

func (cfg *APIConfig) handleGetEvents(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbEvents, err := cfg.db.GetEventsByUserID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get events", err)
		return
	}

	type rspSchema struct {
		Events []Event `json:"events"`
		Count  int     `json:"count"`
	}

	events := make([]Event, 0, len(dbEvents))
	for _, e := range dbEvents {
		events = append(events, eventFromDB(e))
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Events: events, Count: len(events)})
}

func (cfg *APIConfig) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name             string `json:"name"`
		EventType        string `json:"event_type"`
		ExpectedDuration int32  `json:"expected_duration"`
		Private          *bool  `json:"private"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.EventCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	// events are private unless stated otherwise
	private := true
	if rqPayload.Private != nil {
		private = *rqPayload.Private
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbEvent, err := cfg.db.CreateEvent(r.Context(), database.CreateEventParams{
		UserID:           validatedUserID,
		Name:             strings.TrimSpace(rqPayload.Name),
		EventType:        rqPayload.EventType,
		ExpectedDuration: rqPayload.ExpectedDuration,
		Private:          private,
	})
	if err != nil {
		respondWithDBError(w, "could not create event", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, eventResponse{
		Event:   eventFromDB(dbEvent),
		Message: "event created",
	})
}

func (cfg *APIConfig) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())
	respondWithJSON(w, http.StatusOK, eventResponse{Event: eventFromDB(dbEvent)})
}

// handleUpdateEvent applies a partial update. The duration may not shrink
// below a planned food instance or an hourly goal.
func (cfg *APIConfig) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name             *string `json:"name"`
		EventType        *string `json:"event_type"`
		ExpectedDuration *int32  `json:"expected_duration"`
		Private          *bool   `json:"private"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.EventUpdate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	dbEvent := getContextEvent(r.Context())

	params := database.UpdateEventParams{
		ID:               dbEvent.ID,
		Name:             dbEvent.Name,
		EventType:        dbEvent.EventType,
		ExpectedDuration: dbEvent.ExpectedDuration,
		Private:          dbEvent.Private,
	}
	if rqPayload.Name != nil {
		params.Name = strings.TrimSpace(*rqPayload.Name)
	}
	if rqPayload.EventType != nil {
		params.EventType = *rqPayload.EventType
	}
	if rqPayload.ExpectedDuration != nil {
		params.ExpectedDuration = *rqPayload.ExpectedDuration
	}
	if rqPayload.Private != nil {
		params.Private = *rqPayload.Private
	}

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	if params.ExpectedDuration < dbEvent.ExpectedDuration {
		latest, err := q.GetLatestFoodInstanceTime(r.Context(), dbEvent.ID)
		if err != nil {
			respondWithDBError(w, "could not check food instances", err)
			return
		}
		if latest > params.ExpectedDuration {
			respondWithError(w, http.StatusBadRequest, "expected_duration is shorter than the event's food instances",
				&plan.BoundError{Field: "expected_duration", Relation: ">=", Bound: "latest time_elapsed_at_consumption", Limit: latest})
			return
		}

		maxHour, err := q.GetMaxGoalHour(r.Context(), database.GetMaxGoalHourParams{
			UserID:  dbEvent.UserID,
			EventID: dbEvent.ID,
		})
		if err != nil {
			respondWithDBError(w, "could not check hourly goals", err)
			return
		}
		if maxHour >= plan.HourCount(params.ExpectedDuration) {
			respondWithError(w, http.StatusBadRequest, "expected_duration is shorter than the event's hourly goals",
				&plan.BoundError{Field: "expected_duration", Relation: ">", Bound: "seconds before the last hourly goal", Limit: maxHour * plan.SecondsPerHour})
			return
		}
	}

	updated, err := q.UpdateEvent(r.Context(), params)
	if err != nil {
		respondWithDBError(w, "could not update event", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithJSON(w, http.StatusOK, eventResponse{
		Event:   eventFromDB(updated),
		Message: "event updated",
	})
}

func (cfg *APIConfig) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())

	if err := cfg.db.DeleteEvent(r.Context(), dbEvent.ID); err != nil {
		respondWithDBError(w, "could not delete event", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
