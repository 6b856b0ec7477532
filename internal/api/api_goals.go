package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type goalsResponse struct {
	Goals   Goals  `json:"goals"`
	Message string `json:"message,omitempty"`
}

type hourlyGoalInput struct {
	NutrientID uuid.UUID `json:"nutrient_id"`
	Hour       int32     `json:"hour"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
}

func (cfg *APIConfig) handleGetGoals(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())

	goals, err := loadGoals(r.Context(), cfg.db, dbEvent)
	if err != nil {
		respondWithDBError(w, "could not get goals", err)
		return
	}

	respondWithJSON(w, http.StatusOK, goalsResponse{Goals: goals})
}

// handleReplaceGoals makes the payload the event's complete goal set. Goals
// are upserted by their natural key and any goal left out is removed.
func (cfg *APIConfig) handleReplaceGoals(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Base   []NutrientInput   `json:"base"`
		Hourly []hourlyGoalInput `json:"hourly"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.GoalsReplace)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	dbEvent := getContextEvent(r.Context())

	if details := checkGoalSet(rqPayload.Base, rqPayload.Hourly, dbEvent.ExpectedDuration); len(details) > 0 {
		respondWithErrorDetails(w, http.StatusBadRequest, "invalid goal set", details, nil)
		return
	}

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	keepBase := make([]uuid.UUID, 0, len(rqPayload.Base))
	for _, g := range rqPayload.Base {
		row, err := q.UpsertBaseGoal(r.Context(), database.UpsertBaseGoalParams{
			UserID:     validatedUserID,
			EventID:    dbEvent.ID,
			NutrientID: g.NutrientID,
			Quantity:   g.Quantity,
			Unit:       strings.TrimSpace(g.Unit),
		})
		if err != nil {
			respondWithDBError(w, "could not save base goal", err)
			return
		}
		keepBase = append(keepBase, row.ID)
	}

	keepHourly := make([]uuid.UUID, 0, len(rqPayload.Hourly))
	for _, g := range rqPayload.Hourly {
		row, err := q.UpsertHourlyGoal(r.Context(), database.UpsertHourlyGoalParams{
			UserID:     validatedUserID,
			EventID:    dbEvent.ID,
			NutrientID: g.NutrientID,
			Hour:       g.Hour,
			Quantity:   g.Quantity,
			Unit:       strings.TrimSpace(g.Unit),
		})
		if err != nil {
			respondWithDBError(w, "could not save hourly goal", err)
			return
		}
		keepHourly = append(keepHourly, row.ID)
	}

	err = q.DeleteBaseGoalsExcept(r.Context(), database.DeleteBaseGoalsExceptParams{
		UserID:  validatedUserID,
		EventID: dbEvent.ID,
		KeepIds: keepBase,
	})
	if err != nil {
		respondWithDBError(w, "could not remove stale base goals", err)
		return
	}
	err = q.DeleteHourlyGoalsExcept(r.Context(), database.DeleteHourlyGoalsExceptParams{
		UserID:  validatedUserID,
		EventID: dbEvent.ID,
		KeepIds: keepHourly,
	})
	if err != nil {
		respondWithDBError(w, "could not remove stale hourly goals", err)
		return
	}

	goals, err := loadGoals(r.Context(), q, dbEvent)
	if err != nil {
		respondWithDBError(w, "could not get goals", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithJSON(w, http.StatusOK, goalsResponse{Goals: goals, Message: "goals replaced"})
}

func (cfg *APIConfig) handleClearGoals(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	if err := q.DeleteBaseGoals(r.Context(), database.DeleteBaseGoalsParams{
		UserID:  dbEvent.UserID,
		EventID: dbEvent.ID,
	}); err != nil {
		respondWithDBError(w, "could not clear base goals", err)
		return
	}
	if err := q.DeleteHourlyGoals(r.Context(), database.DeleteHourlyGoalsParams{
		UserID:  dbEvent.UserID,
		EventID: dbEvent.ID,
	}); err != nil {
		respondWithDBError(w, "could not clear hourly goals", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

// ============== HELPERS =================

// checkGoalSet reports every duplicate key and every hour outside the event.
func checkGoalSet(base []NutrientInput, hourly []hourlyGoalInput, duration int32) []string {
	var details []string

	if err := checkDistinctNutrients(base); err != nil {
		details = append(details, strings.Replace(err.Error(), "nutrients.", "base.", 1))
	}

	type hourKey struct {
		nutrient uuid.UUID
		hour     int32
	}
	seen := make(map[hourKey]bool, len(hourly))
	for i, g := range hourly {
		if err := plan.CheckGoalHour(g.Hour, duration); err != nil {
			details = append(details, fmt.Sprintf("hourly.%d.hour: %s", i, err))
		}
		key := hourKey{nutrient: g.NutrientID, hour: g.Hour}
		if seen[key] {
			details = append(details, fmt.Sprintf("hourly.%d: nutrient %s is listed more than once for hour %d", i, g.NutrientID, g.Hour))
		}
		seen[key] = true
	}
	return details
}

// loadGoals reads the goals the event owner set for the event.
func loadGoals(ctx context.Context, q *database.Queries, event database.Event) (Goals, error) {
	key := database.GetBaseGoalsParams{UserID: event.UserID, EventID: event.ID}
	dbBase, err := q.GetBaseGoals(ctx, key)
	if err != nil {
		return Goals{}, err
	}
	dbHourly, err := q.GetHourlyGoals(ctx, database.GetHourlyGoalsParams(key))
	if err != nil {
		return Goals{}, err
	}

	goals := Goals{
		Base:   make([]Goal, 0, len(dbBase)),
		Hourly: make([]Goal, 0, len(dbHourly)),
	}
	for _, g := range dbBase {
		goals.Base = append(goals.Base, Goal{
			ID:         g.ID,
			NutrientID: g.NutrientID,
			Quantity:   g.Quantity,
			Unit:       g.Unit,
		})
	}
	for _, g := range dbHourly {
		hour := g.Hour
		goals.Hourly = append(goals.Hourly, Goal{
			ID:         g.ID,
			NutrientID: g.NutrientID,
			Hour:       &hour,
			Quantity:   g.Quantity,
			Unit:       g.Unit,
		})
	}
	return goals, nil
}
