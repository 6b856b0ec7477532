package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/schema"
)

func (cfg *APIConfig) handleGetFavorites(w http.ResponseWriter, r *http.Request) {
	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbFoodItems, err := cfg.db.GetFavoriteFoodItems(r.Context(), validatedUserID)
	if err != nil {
		respondWithDBError(w, "could not get favorite food items", err)
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

func (cfg *APIConfig) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	type rqSchema struct {
		FoodItemID uuid.UUID `json:"food_item_id"`
	}

	rqPayload, err := decodePayload[rqSchema](cfg, r, schema.FavoriteCreate)
	if err != nil {
		respondWithPayloadError(w, err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	dbFoodItem, err := ownedFoodItem(r.Context(), cfg.db, rqPayload.FoodItemID, validatedUserID)
	if err != nil {
		respondWithAccessError(w, "could not get food item", err)
		return
	}

	_, err = cfg.db.AddFavoriteFoodItem(r.Context(), database.AddFavoriteFoodItemParams{
		UserID:     validatedUserID,
		FoodItemID: dbFoodItem.ID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			respondWithError(w, http.StatusBadRequest, "food item is already a favorite", nil)
			return
		}
		respondWithDBError(w, "could not add favorite", err)
		return
	}

	nutrients, err := loadFoodItemNutrients(r.Context(), cfg.db, dbFoodItem.ID)
	if err != nil {
		respondWithDBError(w, "could not get food item nutrients", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, foodItemResponse{
		FoodItem: foodItemFromDB(dbFoodItem, nutrients),
		Message:  "added to favorites",
	})
}

func (cfg *APIConfig) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	pathFoodItemID, err := parseUUIDFromPath("food_item_id", r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid food item id", err)
		return
	}

	validatedUserID := getContextKeyValueAsUUID(r.Context(), "user_id")

	removed, err := cfg.db.DeleteFavoriteFoodItem(r.Context(), database.DeleteFavoriteFoodItemParams{
		UserID:     validatedUserID,
		FoodItemID: pathFoodItemID,
	})
	if err != nil {
		respondWithDBError(w, "could not remove favorite", err)
		return
	}
	if removed == 0 {
		respondWithError(w, http.StatusNotFound, "food item is not a favorite", nil)
		return
	}

	respondWithCode(w, http.StatusNoContent)
}
