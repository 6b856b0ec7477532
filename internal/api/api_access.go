package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
)

var errNotOwner = errors.New("resource belongs to another user")

// ownedFoodItem loads a food item and checks it belongs to userID.
func ownedFoodItem(ctx context.Context, q *database.Queries, foodItemID, userID uuid.UUID) (database.FoodItem, error) {
	dbFoodItem, err := q.GetFoodItemByID(ctx, foodItemID)
	if err != nil {
		return database.FoodItem{}, err
	}
	if dbFoodItem.UserID != userID {
		return database.FoodItem{}, errNotOwner
	}
	return dbFoodItem, nil
}

// respondWithAccessError is respondWithDBError plus 403 for errNotOwner.
func respondWithAccessError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, errNotOwner) {
		respondWithError(w, http.StatusForbidden, msg, err)
		return
	}
	respondWithDBError(w, msg, err)
}
