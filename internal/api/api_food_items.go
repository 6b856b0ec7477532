package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

type foodItemResponse struct {
	FoodItem FoodItem `json:"food_item"`
	Message  string   `json:"message,omitempty"`
}

func (cfg *APIConfig) handleGetFoodItems(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbFoodItems, err := cfg.db.GetFoodItemsByUserID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get food items", err)
		return
	}
	dbNutrients, err := cfg.db.GetFoodItemNutrientsByUserID(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get food item nutrients", err)
		return
	}
	nutrientsByItem := groupNutrients(dbNutrients)

	type rspSchema struct {
		FoodItems []FoodItem `json:"food_items"`
		Count     int        `json:"count"`
	}

	foodItems := make([]FoodItem, 0, len(dbFoodItems))
	for _, f := range dbFoodItems {
		foodItems = append(foodItems, foodItemFromDB(f, nutrientsByItem[f.ID]))
	}

	respondWithJSON(w, http.StatusOK, rspSchema{FoodItems: foodItems, Count: len(foodItems)})
}

func (cfg *APIConfig) handleCreateFoodItem(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name      string          `json:"name"`
		Brand     *string         `json:"brand"`
		Category  *string         `json:"category"`
		CostCents *int32          `json:"cost_cents"`
		Nutrients []NutrientInput `json:"nutrients"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.FoodItemCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}
	if err := checkDistinctNutrients(rqPayload.Nutrients); err != nil {
		respondWithErrorDetails(w, http.StatusBadRequest, "duplicate nutrient", []string{err.Error()}, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	dbFoodItem, err := q.CreateFoodItem(r.Context(), database.CreateFoodItemParams{
		UserID:    validatedUserID,
		Name:      strings.TrimSpace(rqPayload.Name),
		Brand:     rqPayload.Brand,
		Category:  rqPayload.Category,
		CostCents: rqPayload.CostCents,
	})
	if err != nil {
		respondWithDBError(w, "could not create food item", err)
		return
	}

	nutrients, err := writeFoodItemNutrients(r.Context(), q, dbFoodItem.ID, rqPayload.Nutrients)
	if err != nil {
		respondWithDBError(w, "could not save food item nutrients", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, foodItemResponse{
		FoodItem: foodItemFromDB(dbFoodItem, nutrients),
		Message:  "food item created",
	})
}

func (cfg *APIConfig) handleGetFoodItem(w http.ResponseWriter, r *http.Request) {
	pathFoodItemID, err := parseUUIDFromPath("food_item_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid food item id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbFoodItem, err := ownedFoodItem(r.Context(), cfg.db, pathFoodItemID, validatedUserID)
	if err != nil {
		respondWithAccessError(w, "could not get food item", err)
		return
	}

	nutrients, err := loadFoodItemNutrients(r.Context(), cfg.db, dbFoodItem.ID)
	if err != nil {
		respondWithDBError(w, "could not get food item nutrients", err)
		return
	}

	respondWithJSON(w, http.StatusOK, foodItemResponse{FoodItem: foodItemFromDB(dbFoodItem, nutrients)})
}

// handleUpdateFoodItem replaces the fields that were sent. When nutrients are
// sent they become the complete nutrient set of the item.
func (cfg *APIConfig) handleUpdateFoodItem(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		Name      *string          `json:"name"`
		Brand     Optional[string] `json:"brand"`
		Category  Optional[string] `json:"category"`
		CostCents Optional[int32]  `json:"cost_cents"`
		Nutrients *[]NutrientInput `json:"nutrients"`
	}

	pathFoodItemID, err := parseUUIDFromPath("food_item_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid food item id", err)
		return
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.FoodItemUpdate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}
	if rqPayload.Nutrients != nil {
		if err := checkDistinctNutrients(*rqPayload.Nutrients); err != nil {
			respondWithErrorDetails(w, http.StatusBadRequest, "duplicate nutrient", []string{err.Error()}, err)
			return
		}
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	tx, err := cfg.Pool.Begin(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not begin transaction", err)
		return
	}
	defer tx.Rollback(r.Context())
	q := cfg.db.WithTx(tx)

	dbFoodItem, err := ownedFoodItem(r.Context(), q, pathFoodItemID, validatedUserID)
	if err != nil {
		respondWithAccessError(w, "could not get food item", err)
		return
	}

	params := database.UpdateFoodItemParams{
		ID:        dbFoodItem.ID,
		Name:      dbFoodItem.Name,
		Brand:     rqPayload.Brand.Or(dbFoodItem.Brand),
		Category:  rqPayload.Category.Or(dbFoodItem.Category),
		CostCents: rqPayload.CostCents.Or(dbFoodItem.CostCents),
	}
	if rqPayload.Name != nil {
		params.Name = strings.TrimSpace(*rqPayload.Name)
	}

	updated, err := q.UpdateFoodItem(r.Context(), params)
	if err != nil {
		respondWithDBError(w, "could not update food item", err)
		return
	}

	var nutrients []NutrientAmount
	if rqPayload.Nutrients != nil {
		nutrients, err = writeFoodItemNutrients(r.Context(), q, updated.ID, *rqPayload.Nutrients)
	} else {
		nutrients, err = loadFoodItemNutrients(r.Context(), q, updated.ID)
	}
	if err != nil {
		respondWithDBError(w, "could not save food item nutrients", err)
		return
	}

	if err := tx.Commit(r.Context()); err != nil {
		respondWithError(w, http.StatusInternalServerError, "could not commit transaction", err)
		return
	}

	respondWithJSON(w, http.StatusOK, foodItemResponse{
		FoodItem: foodItemFromDB(updated, nutrients),
		Message:  "food item updated",
	})
}

func (cfg *APIConfig) handleDeleteFoodItem(w http.ResponseWriter, r *http.Request) {
	pathFoodItemID, err := parseUUIDFromPath("food_item_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid food item id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	if _, err := ownedFoodItem(r.Context(), cfg.db, pathFoodItemID, validatedUserID); err != nil {
		respondWithAccessError(w, "could not get food item", err)
		return
	}

	if err := cfg.db.DeleteFoodItem(r.Context(), pathFoodItemID); err != nil {
		respondWithDBError(w, "could not delete food item", err)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}

// ============== HELPERS =================

func checkDistinctNutrients(inputs []NutrientInput) error {
	ids := make([]uuid.UUID, 0, len(inputs))
	for _, n := range inputs {
		ids = append(ids, n.NutrientID)
	}
	return distinctNutrients("nutrients", ids)
}

// writeFoodItemNutrients makes inputs the complete nutrient set of the food
// item: rows are upserted by nutrient and rows not named are removed.
func writeFoodItemNutrients(ctx context.Context, q *database.Queries, foodItemID uuid.UUID, inputs []NutrientInput) ([]NutrientAmount, error) {
	keep := make([]uuid.UUID, 0, len(inputs))
	for _, n := range inputs {
		row, err := q.UpsertFoodItemNutrient(ctx, database.UpsertFoodItemNutrientParams{
			FoodItemID: foodItemID,
			NutrientID: n.NutrientID,
			Quantity:   n.Quantity,
			Unit:       strings.TrimSpace(n.Unit),
		})
		if err != nil {
			return nil, err
		}
		keep = append(keep, row.ID)
	}

	err := q.DeleteFoodItemNutrientsExcept(ctx, database.DeleteFoodItemNutrientsExceptParams{
		FoodItemID: foodItemID,
		KeepIds:    keep,
	})
	if err != nil {
		return nil, err
	}

	return loadFoodItemNutrients(ctx, q, foodItemID)
}

func loadFoodItemNutrients(ctx context.Context, q *database.Queries, foodItemID uuid.UUID) ([]NutrientAmount, error) {
	rows, err := q.GetFoodItemNutrients(ctx, foodItemID)
	if err != nil {
		return nil, err
	}
	return groupNutrients(rows)[foodItemID], nil
}
