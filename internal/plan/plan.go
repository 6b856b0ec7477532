// Package plan holds the arithmetic behind a race fuelling plan: scaling a
// food item's nutrients by servings, bucketing consumption into event hours
// and comparing it with base and hourly goals.
package plan

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

const SecondsPerHour = 3600

// Amount is a quantity of one nutrient.
type Amount struct {
	NutrientID uuid.UUID `json:"nutrient_id"`
	Name       string    `json:"name,omitempty"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
}

// HourlyAmount overrides the base goal of a nutrient for one hour index.
type HourlyAmount struct {
	Amount
	Hour int32 `json:"hour"`
}

// Instance is one consumption of a food item during an event.
type Instance struct {
	TimeElapsed int32
	Servings    float64
	Nutrients   []Amount
}

// BoundError reports a value outside the range allowed by the event.
type BoundError struct {
	Field    string
	Relation string
	Bound    string
	Limit    int32
}

func (e *BoundError) Error() string {
	if e.Bound == "" {
		return fmt.Sprintf("%s must be %s %d", e.Field, e.Relation, e.Limit)
	}
	return fmt.Sprintf("%s must be %s %s (%d)", e.Field, e.Relation, e.Bound, e.Limit)
}

// HourCount is the number of hour buckets an event of the given duration spans.
func HourCount(duration int32) int32 {
	if duration <= 0 {
		return 0
	}
	return (duration + SecondsPerHour - 1) / SecondsPerHour
}

// HourOf maps an elapsed time to its hour index. The instant the event ends
// belongs to the last hour.
func HourOf(t, duration int32) int32 {
	h := t / SecondsPerHour
	if last := HourCount(duration) - 1; h > last {
		return last
	}
	return h
}

// CheckConsumptionTime enforces 0 <= t <= duration.
func CheckConsumptionTime(t, duration int32) error {
	if t < 0 {
		return &BoundError{Field: "time_elapsed_at_consumption", Relation: ">=", Limit: 0}
	}
	if t > duration {
		return &BoundError{Field: "time_elapsed_at_consumption", Relation: "<=", Bound: "expected_duration", Limit: duration}
	}
	return nil
}

// CheckGoalHour enforces 0 <= hour < HourCount(duration).
func CheckGoalHour(hour, duration int32) error {
	if hour < 0 {
		return &BoundError{Field: "hour", Relation: ">=", Limit: 0}
	}
	if n := HourCount(duration); hour >= n {
		return &BoundError{Field: "hour", Relation: "<", Bound: "hours in expected_duration", Limit: n}
	}
	return nil
}

// ScaleNutrients multiplies every quantity by servings.
func ScaleNutrients(nutrients []Amount, servings float64) []Amount {
	scaled := make([]Amount, len(nutrients))
	for i, n := range nutrients {
		n.Quantity = n.Quantity * servings
		scaled[i] = n
	}
	return scaled
}

type HourBucket struct {
	Hour     int32    `json:"hour"`
	Consumed float64  `json:"consumed"`
	Goal     *float64 `json:"goal"`
}

type NutrientSummary struct {
	NutrientID uuid.UUID    `json:"nutrient_id"`
	Name       string       `json:"name,omitempty"`
	Unit       string       `json:"unit"`
	Total      float64      `json:"total"`
	GoalTotal  float64      `json:"goal_total"`
	Hours      []HourBucket `json:"hours"`
	// Skipped counts contributions whose unit could not be converted to Unit.
	Skipped int `json:"skipped,omitempty"`
}

type Summary struct {
	ExpectedDuration int32             `json:"expected_duration"`
	HourCount        int32             `json:"hour_count"`
	Nutrients        []NutrientSummary `json:"nutrients"`
}

// Summarize totals consumption per nutrient and hour and lines it up with
// the effective goal for each hour (the hourly override if present, else the
// base goal). Each nutrient is reported in its base goal unit when one
// exists, otherwise in the first unit seen.
func Summarize(duration int32, instances []Instance, base []Amount, hourly []HourlyAmount) Summary {
	hours := HourCount(duration)
	byID := map[uuid.UUID]*NutrientSummary{}
	baseGoal := map[uuid.UUID]float64{}
	override := map[uuid.UUID]map[int32]float64{}

	entry := func(a Amount) *NutrientSummary {
		ns, ok := byID[a.NutrientID]
		if !ok {
			ns = &NutrientSummary{
				NutrientID: a.NutrientID,
				Name:       a.Name,
				Unit:       a.Unit,
				Hours:      make([]HourBucket, hours),
			}
			for h := range ns.Hours {
				ns.Hours[h].Hour = int32(h)
			}
			byID[a.NutrientID] = ns
		}
		if ns.Name == "" {
			ns.Name = a.Name
		}
		return ns
	}

	for _, g := range base {
		ns := entry(g)
		ns.Unit = g.Unit
		baseGoal[g.NutrientID] = g.Quantity
	}
	for _, g := range hourly {
		if g.Hour < 0 || g.Hour >= hours {
			continue
		}
		ns := entry(g.Amount)
		q, err := Convert(g.Quantity, g.Unit, ns.Unit)
		if err != nil {
			ns.Skipped++
			continue
		}
		if override[g.NutrientID] == nil {
			override[g.NutrientID] = map[int32]float64{}
		}
		override[g.NutrientID][g.Hour] = q
	}

	for _, inst := range instances {
		h := HourOf(inst.TimeElapsed, duration)
		for _, n := range ScaleNutrients(inst.Nutrients, inst.Servings) {
			ns := entry(n)
			q, err := Convert(n.Quantity, n.Unit, ns.Unit)
			if err != nil {
				ns.Skipped++
				continue
			}
			ns.Total += q
			if h >= 0 && h < hours {
				ns.Hours[h].Consumed += q
			}
		}
	}

	summary := Summary{ExpectedDuration: duration, HourCount: hours}
	for id, ns := range byID {
		b, hasBase := baseGoal[id]
		for h := range ns.Hours {
			if q, ok := override[id][int32(h)]; ok {
				ns.Hours[h].Goal = &q
			} else if hasBase {
				q := b
				ns.Hours[h].Goal = &q
			}
			if ns.Hours[h].Goal != nil {
				ns.GoalTotal += *ns.Hours[h].Goal
			}
		}
		summary.Nutrients = append(summary.Nutrients, *ns)
	}
	sort.Slice(summary.Nutrients, func(i, j int) bool {
		a, b := summary.Nutrients[i], summary.Nutrients[j]
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.NutrientID.String() < b.NutrientID.String()
	})
	return summary
}
