package plan

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourCount(t *testing.T) {
	cases := map[int32]int32{0: 0, 1: 1, 3599: 1, 3600: 1, 3601: 2, 36000: 10}
	for d, want := range cases {
		assert.Equal(t, want, HourCount(d), "duration %d", d)
	}
}

func TestHourOf(t *testing.T) {
	tests := []struct {
		t, duration, want int32
	}{
		{0, 3600, 0},
		{3599, 7200, 0},
		{3600, 7200, 1},
		{7200, 7200, 1},
		{1800, 36000, 0},
		{5400, 5400, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HourOf(tt.t, tt.duration), "t=%d duration=%d", tt.t, tt.duration)
	}
}

func TestCheckConsumptionTime(t *testing.T) {
	assert.NoError(t, CheckConsumptionTime(0, 3600))
	assert.NoError(t, CheckConsumptionTime(3600, 3600))

	err := CheckConsumptionTime(3601, 3600)
	require.Error(t, err)
	assert.Equal(t, "time_elapsed_at_consumption must be <= expected_duration (3600)", err.Error())

	err = CheckConsumptionTime(-5, 3600)
	require.Error(t, err)
	assert.Equal(t, "time_elapsed_at_consumption must be >= 0", err.Error())
}

func TestCheckGoalHour(t *testing.T) {
	assert.NoError(t, CheckGoalHour(0, 3600))
	assert.NoError(t, CheckGoalHour(1, 3601))
	assert.Error(t, CheckGoalHour(1, 3600))
	assert.Error(t, CheckGoalHour(-1, 3600))
}

func TestScaleNutrients(t *testing.T) {
	carb := uuid.New()
	in := []Amount{{NutrientID: carb, Name: "Carbohydrates", Quantity: 23, Unit: "g"}}

	out := ScaleNutrients(in, 2)
	require.Len(t, out, 1)
	assert.Equal(t, 46.0, out[0].Quantity)
	assert.Equal(t, 23.0, in[0].Quantity, "input must not be mutated")

	half := ScaleNutrients(in, 0.5)
	assert.Equal(t, 11.5, half[0].Quantity)
}

func TestSummarize(t *testing.T) {
	carb := uuid.New()
	sodium := uuid.New()
	gel := []Amount{
		{NutrientID: carb, Name: "Carbohydrates", Quantity: 23, Unit: "g"},
		{NutrientID: sodium, Name: "Sodium", Quantity: 50, Unit: "mg"},
	}

	instances := []Instance{
		{TimeElapsed: 1800, Servings: 2, Nutrients: gel},
		{TimeElapsed: 5400, Servings: 1, Nutrients: gel},
		{TimeElapsed: 7200, Servings: 1, Nutrients: gel}, // end of event, last hour
	}
	base := []Amount{{NutrientID: carb, Name: "Carbohydrates", Quantity: 60, Unit: "g"}}
	hourly := []HourlyAmount{{Amount: Amount{NutrientID: carb, Quantity: 90000, Unit: "mg"}, Hour: 1}}

	s := Summarize(7200, instances, base, hourly)
	assert.Equal(t, int32(2), s.HourCount)
	require.Len(t, s.Nutrients, 2)

	c := s.Nutrients[0]
	assert.Equal(t, "Carbohydrates", c.Name)
	assert.Equal(t, "g", c.Unit)
	assert.InDelta(t, 92.0, c.Total, 1e-9)
	assert.InDelta(t, 46.0, c.Hours[0].Consumed, 1e-9)
	assert.InDelta(t, 46.0, c.Hours[1].Consumed, 1e-9)
	require.NotNil(t, c.Hours[0].Goal)
	require.NotNil(t, c.Hours[1].Goal)
	assert.InDelta(t, 60.0, *c.Hours[0].Goal, 1e-9)
	assert.InDelta(t, 90.0, *c.Hours[1].Goal, 1e-9)
	assert.InDelta(t, 150.0, c.GoalTotal, 1e-9)

	na := s.Nutrients[1]
	assert.Equal(t, "Sodium", na.Name)
	assert.InDelta(t, 200.0, na.Total, 1e-9)
	assert.Nil(t, na.Hours[0].Goal)
	assert.Zero(t, na.GoalTotal)
}

func TestSummarizeSkipsIncompatibleUnits(t *testing.T) {
	fluid := uuid.New()
	base := []Amount{{NutrientID: fluid, Name: "Fluid", Quantity: 500, Unit: "ml"}}
	instances := []Instance{
		{TimeElapsed: 0, Servings: 1, Nutrients: []Amount{{NutrientID: fluid, Quantity: 0.25, Unit: "l"}}},
		{TimeElapsed: 0, Servings: 1, Nutrients: []Amount{{NutrientID: fluid, Quantity: 3, Unit: "g"}}},
	}

	s := Summarize(3600, instances, base, nil)
	require.Len(t, s.Nutrients, 1)
	assert.InDelta(t, 250.0, s.Nutrients[0].Total, 1e-9)
	assert.Equal(t, 1, s.Nutrients[0].Skipped)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		q        float64
		from, to string
		want     float64
		wantErr  bool
	}{
		{q: 1, from: "g", to: "g", want: 1},
		{q: 500, from: "mg", to: "g", want: 0.5},
		{q: 2, from: "kg", to: "g", want: 2000},
		{q: 1000, from: "mcg", to: "mg", want: 1},
		{q: 1.5, from: "L", to: "ml", want: 1500},
		{q: 3, from: "kcal", to: "kcal", want: 3},
		{q: 1, from: "g", to: "ml", wantErr: true},
		{q: 1, from: "kcal", to: "g", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Convert(tt.q, tt.from, tt.to)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrIncompatibleUnits)
			continue
		}
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%v %s -> %s", tt.q, tt.from, tt.to)
	}
}
