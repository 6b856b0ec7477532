package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type foodInstanceResponse struct {
	FoodInstance FoodInstance `json:"food_instance"`
	Message      string       `json:"message,omitempty"`
}

// handleGetFoodInstances lists the event's instances with what each
// contributes once scaled by servings.
func (cfg *APIConfig) handleGetFoodInstances(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())

	dbInstances, err := cfg.db.GetFoodInstancesByEventID(r.Context(), dbEvent.ID)
	if err != nil {
		respondWithDBError(w, "could not get food instances", err)
		return
	}
	dbNutrients, err := cfg.db.GetFoodItemNutrientsByEventID(r.Context(), dbEvent.ID)
	if err != nil {
		respondWithDBError(w, "could not get food item nutrients", err)
		return
	}
	nutrientsByItem := groupNutrients(dbNutrients)

	type rspSchema struct {
		FoodInstances []FoodInstance `json:"food_instances"`
		Count         int            `json:"count"`
	}

	instances := make([]FoodInstance, 0, len(dbInstances))
	for _, row := range dbInstances {
		instances = append(instances, FoodInstance{
			ID:                       row.ID,
			CreatedAt:                row.CreatedAt,
			UpdatedAt:                row.UpdatedAt,
			EventID:                  row.EventID,
			FoodItemID:               row.FoodItemID,
			FoodName:                 row.FoodName,
			FoodBrand:                row.FoodBrand,
			TimeElapsedAtConsumption: row.TimeElapsedAtConsumption,
			Servings:                 row.Servings,
			Hour:                     plan.HourOf(row.TimeElapsedAtConsumption, dbEvent.ExpectedDuration),
			Contribution:             scaleContribution(nutrientsByItem[row.FoodItemID], row.Servings),
		})
	}

	respondWithJSON(w, http.StatusOK, rspSchema{FoodInstances: instances, Count: len(instances)})
}

func (cfg *APIConfig) handleCreateFoodInstance(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		FoodItemID               uuid.UUID `json:"food_item_id"`
		TimeElapsedAtConsumption int32     `json:"time_elapsed_at_consumption"`
		Servings                 float64   `json:"servings"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.FoodInstanceCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	dbEvent := getContextEvent(r.Context())

	if err := plan.CheckConsumptionTime(rqPayload.TimeElapsedAtConsumption, dbEvent.ExpectedDuration); err != nil {
		respondWithError(w, http.StatusBadRequest, "consumption time is outside the event", err)
		return
	}

	if _, err := ownedFoodItem(r.Context(), cfg.db, rqPayload.FoodItemID, validatedUserID); err != nil {
		respondWithAccessError(w, "could not get food item", err)
		return
	}

	dbInstance, err := cfg.db.CreateFoodInstance(r.Context(), database.CreateFoodInstanceParams{
		EventID:                  dbEvent.ID,
		FoodItemID:               rqPayload.FoodItemID,
		TimeElapsedAtConsumption: rqPayload.TimeElapsedAtConsumption,
		Servings:                 rqPayload.Servings,
	})
	if err != nil {
		respondWithDBError(w, "could not create food instance", err)
		return
	}

	instance, err := describeFoodInstance(r.Context(), cfg.db, dbInstance, dbEvent.ExpectedDuration)
	if err != nil {
		respondWithDBError(w, "could not load food instance", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, foodInstanceResponse{
		FoodInstance: instance,
		Message:      "food instance created",
	})
}

// handleUpdateFoodInstance moves an instance or changes its servings or
// food item.
func (cfg *APIConfig) handleUpdateFoodInstance(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		FoodItemID               *uuid.UUID `json:"food_item_id"`
		TimeElapsedAtConsumption *int32     `json:"time_elapsed_at_consumption"`
		Servings                 *float64   `json:"servings"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.FoodInstanceUpdate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")
	dbEvent := getContextEvent(r.Context())

	dbInstance, err := cfg.eventFoodInstance(r, dbEvent.ID)
	if err != nil {
		respondWithFoodInstanceError(w, err)
		return
	}

	params := database.UpdateFoodInstanceParams{
		ID:                       dbInstance.ID,
		FoodItemID:               dbInstance.FoodItemID,
		TimeElapsedAtConsumption: dbInstance.TimeElapsedAtConsumption,
		Servings:                 dbInstance.Servings,
	}
	if rqPayload.FoodItemID != nil && *rqPayload.FoodItemID != dbInstance.FoodItemID {
		if _, err := ownedFoodItem(r.Context(), cfg.db, *rqPayload.FoodItemID, validatedUserID); err != nil {
			respondWithAccessError(w, "could not get food item", err)
			return
		}
		params.FoodItemID = *rqPayload.FoodItemID
	}
	if rqPayload.TimeElapsedAtConsumption != nil {
		params.TimeElapsedAtConsumption = *rqPayload.TimeElapsedAtConsumption
	}
	if rqPayload.Servings != nil {
		params.Servings = *rqPayload.Servings
	}

	if err := plan.CheckConsumptionTime(params.TimeElapsedAtConsumption, dbEvent.ExpectedDuration); err != nil {
		respondWithError(w, http.StatusBadRequest, "consumption time is outside the event", err)
		return
	}

	updated, err := cfg.db.UpdateFoodInstance(r.Context(), params)
	if err != nil {
		respondWithDBError(w, "could not update food instance", err)
		return
	}

	instance, err := describeFoodInstance(r.Context(), cfg.db, updated, dbEvent.ExpectedDuration)
	if err != nil {
		respondWithDBError(w, "could not load food instance", err)
		return
	}

	respondWithJSON(w, http.StatusOK, foodInstanceResponse{
		FoodInstance: instance,
		Message:      "food instance updated",
	})
}

func (cfg *APIConfig) handleDeleteFoodInstance(w http.ResponseWriter, r *http.Request) {
	dbEvent := getContextEvent(r.Context())

	dbInstance, err := cfg.eventFoodInstance(r, dbEvent.ID)
	if err != nil {
		respondWithFoodInstanceError(w, err)
		return
	}

	if err := cfg.db.DeleteFoodInstance(r.Context(), dbInstance.ID); err != nil {
		respondWithDBError(w, "could not delete food instance", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

// ============== HELPERS =================

var errBadInstanceID = errors.New("invalid food instance id")

// eventFoodInstance loads the instance named in the path, treating one that
// belongs to another event as missing.
func (cfg *APIConfig) eventFoodInstance(r *http.Request, eventID uuid.UUID) (database.FoodInstance, error) {
	pathInstanceID, err := parseUUIDFromPath("food_instance_id", r)
	if err != nil {
		return database.FoodInstance{}, errors.Join(errBadInstanceID, err)
	}
	dbInstance, err := cfg.db.GetFoodInstanceByID(r.Context(), pathInstanceID)
	if err != nil {
		return database.FoodInstance{}, err
	}
	if dbInstance.EventID != eventID {
		return database.FoodInstance{}, pgx.ErrNoRows
	}
	return dbInstance, nil
}

func respondWithFoodInstanceError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadInstanceID) {
		respondWithError(w, http.StatusBadRequest, "invalid food instance id", err)
		return
	}
	respondWithDBError(w, "could not get food instance", err)
}

// describeFoodInstance decorates a stored instance with its food item and
// scaled contribution. The food item may belong to another user when the
// event was copied from a share.
func describeFoodInstance(ctx context.Context, q *database.Queries, inst database.FoodInstance, duration int32) (FoodInstance, error) {
	dbFoodItem, err := q.GetFoodItemByID(ctx, inst.FoodItemID)
	if err != nil {
		return FoodInstance{}, err
	}
	nutrients, err := loadFoodItemNutrients(ctx, q, inst.FoodItemID)
	if err != nil {
		return FoodInstance{}, err
	}
	return FoodInstance{
		ID:                       inst.ID,
		CreatedAt:                inst.CreatedAt,
		UpdatedAt:                inst.UpdatedAt,
		EventID:                  inst.EventID,
		FoodItemID:               inst.FoodItemID,
		FoodName:                 dbFoodItem.Name,
		FoodBrand:                dbFoodItem.Brand,
		TimeElapsedAtConsumption: inst.TimeElapsedAtConsumption,
		Servings:                 inst.Servings,
		Hour:                     plan.HourOf(inst.TimeElapsedAtConsumption, duration),
		Contribution:             scaleContribution(nutrients, inst.Servings),
	}, nil
}
