package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
)

func (cfg *APIConfig) handleGetNutrients(w http.ResponseWriter, r *http.Request) {
	dbNutrients, err := cfg.db.GetNutrients(r.Context())
	if err != nil {
		respondWithDBError(w, "could not get nutrients", err)
		return
	}

	type rspSchema struct {
		Nutrients []Nutrient `json:"nutrients"`
		Count     int        `json:"count"`
	}

	nutrients := make([]Nutrient, 0, len(dbNutrients))
	for _, n := range dbNutrients {
		nutrients = append(nutrients, Nutrient{
			ID:           n.ID,
			Name:         n.Name,
			Abbreviation: n.Abbreviation,
		})
	}

	respondWithJSON(w, http.StatusOK, rspSchema{Nutrients: nutrients, Count: len(nutrients)})
}

// The three nutrient listings share one row shape; the others convert into
// this one.
func nutrientAmountFromRow(row database.GetFoodItemNutrientsRow) NutrientAmount {
	return NutrientAmount{
		NutrientID:   row.NutrientID,
		Name:         row.Name,
		Abbreviation: row.Abbreviation,
		Quantity:     row.Quantity,
		Unit:         row.Unit,
	}
}

// groupNutrients indexes nutrient rows by food item.
func groupNutrients[R database.GetFoodItemNutrientsRow | database.GetFoodItemNutrientsByUserIDRow | database.GetFoodItemNutrientsByEventIDRow](rows []R) map[uuid.UUID][]NutrientAmount {
	grouped := make(map[uuid.UUID][]NutrientAmount)
	for _, row := range rows {
		converted := database.GetFoodItemNutrientsRow(row)
		grouped[converted.FoodItemID] = append(grouped[converted.FoodItemID], nutrientAmountFromRow(converted))
	}
	return grouped
}

func toPlanAmounts(nutrients []NutrientAmount) []plan.Amount {
	amounts := make([]plan.Amount, 0, len(nutrients))
	for _, n := range nutrients {
		amounts = append(amounts, plan.Amount{
			NutrientID: n.NutrientID,
			Name:       n.Name,
			Quantity:   n.Quantity,
			Unit:       n.Unit,
		})
	}
	return amounts
}

// scaleContribution multiplies a food item's nutrients by servings.
func scaleContribution(nutrients []NutrientAmount, servings float64) []NutrientAmount {
	scaled := plan.ScaleNutrients(toPlanAmounts(nutrients), servings)
	contribution := make([]NutrientAmount, len(nutrients))
	for i, n := range nutrients {
		n.Quantity = scaled[i].Quantity
		contribution[i] = n
	}
	return contribution
}
