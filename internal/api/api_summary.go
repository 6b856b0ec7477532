package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
)

// handleGetSummary totals the event's planned intake per nutrient and hour
// against the effective goal of each hour.
func (cfg *APIConfig) handleGetSummary(w http.ResponseWriter, r *http.Request) {
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
	dbBase, err := cfg.db.GetBaseGoals(r.Context(), database.GetBaseGoalsParams{
		UserID:  dbEvent.UserID,
		EventID: dbEvent.ID,
	})
	if err != nil {
		respondWithDBError(w, "could not get base goals", err)
		return
	}
	dbHourly, err := cfg.db.GetHourlyGoals(r.Context(), database.GetHourlyGoalsParams{
		UserID:  dbEvent.UserID,
		EventID: dbEvent.ID,
	})
	if err != nil {
		respondWithDBError(w, "could not get hourly goals", err)
		return
	}
	dbReference, err := cfg.db.GetNutrients(r.Context())
	if err != nil {
		respondWithDBError(w, "could not get nutrients", err)
		return
	}

	names := make(map[uuid.UUID]string, len(dbReference))
	for _, n := range dbReference {
		names[n.ID] = n.Name
	}

	nutrientsByItem := groupNutrients(dbNutrients)
	instances := make([]plan.Instance, 0, len(dbInstances))
	for _, row := range dbInstances {
		instances = append(instances, plan.Instance{
			TimeElapsed: row.TimeElapsedAtConsumption,
			Servings:    row.Servings,
			Nutrients:   toPlanAmounts(nutrientsByItem[row.FoodItemID]),
		})
	}

	base := make([]plan.Amount, 0, len(dbBase))
	for _, g := range dbBase {
		base = append(base, plan.Amount{
			NutrientID: g.NutrientID,
			Name:       names[g.NutrientID],
			Quantity:   g.Quantity,
			Unit:       g.Unit,
		})
	}
	hourly := make([]plan.HourlyAmount, 0, len(dbHourly))
	for _, g := range dbHourly {
		hourly = append(hourly, plan.HourlyAmount{
			Amount: plan.Amount{
				NutrientID: g.NutrientID,
				Name:       names[g.NutrientID],
				Quantity:   g.Quantity,
				Unit:       g.Unit,
			},
			Hour: g.Hour,
		})
	}

	type rspSchema struct {
		Summary Summary `json:"summary"`
	}

	respondWithJSON(w, http.StatusOK, rspSchema{
		Summary: plan.Summarize(dbEvent.ExpectedDuration, instances, base, hourly),
	})
}
