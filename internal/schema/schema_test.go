package schema_test

import (
	"errors"
	"testing"

	"github.com/racefuel/racefuel-api/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ref1 = `{ "type" : "string" ,
		      "$id" : "http://some_host.com/string.json"}`
	ref2 = `{ "$id" : "http://some_host.com/maxlength.json",
	 		  "maxLength" : 5 }`

	topLevel = `
	{ "$id" : "http://some_host.com/top1.json",
	  "allOf" : [
		{ "$ref" : "http://some_host.com/string.json" },
		{ "$ref" : "http://some_host.com/maxlength.json" }
		]
	}`
)

func TestNewValidatorWithRefs(t *testing.T) {
	v, err := schema.NewValidator([]string{topLevel}, []string{ref1, ref2})
	require.NoError(t, err)

	assert.ErrorIs(t, v.ValidateBytes([]byte(`"short"`), "http://some_host.com/unknown.json"), schema.ErrUnknownSchema)

	assert.NoError(t, v.ValidateBytes([]byte(`"short"`), "http://some_host.com/top1.json"))
	assert.Error(t, v.ValidateBytes([]byte(`"a very long string"`), "http://some_host.com/top1.json"))
}

func TestNewValidatorRequiresID(t *testing.T) {
	_, err := schema.NewValidator([]string{`{"type": "object"}`}, nil)
	assert.Error(t, err)
}

func TestDefaultValidatorLoadsEveryContract(t *testing.T) {
	v, err := schema.NewDefaultValidator()
	require.NoError(t, err)

	for _, id := range []string{
		schema.UserSync, schema.UserUpdate, schema.FoodItemCreate, schema.FoodItemUpdate,
		schema.FavoriteCreate, schema.EventCreate, schema.EventUpdate,
		schema.FoodInstanceCreate, schema.FoodInstanceUpdate, schema.GoalsReplace,
		schema.ConnectionCreate, schema.StatusUpdate, schema.SharedEventCreate,
		schema.Preferences, schema.Color,
	} {
		err := v.ValidateBytes([]byte(`{}`), id)
		assert.NotErrorIs(t, err, schema.ErrUnknownSchema, id)
	}
}

func TestValidateBytes(t *testing.T) {
	v, err := schema.NewDefaultValidator()
	require.NoError(t, err)

	tests := []struct {
		name       string
		schemaID   string
		body       string
		wantFields []string
		malformed  bool
	}{
		{
			name:     "event create ok",
			schemaID: schema.EventCreate,
			body:     `{"name": "10K Tune-up", "event_type": "RUN", "expected_duration": 3600}`,
		},
		{
			name:       "event missing name",
			schemaID:   schema.EventCreate,
			body:       `{"event_type": "RUN", "expected_duration": 3600}`,
			wantFields: []string{"name"},
		},
		{
			name:       "event bad type and duration",
			schemaID:   schema.EventCreate,
			body:       `{"name": "x", "event_type": "SWIM", "expected_duration": 0}`,
			wantFields: []string{"event_type", "expected_duration"},
		},
		{
			name:       "identity fields are not accepted in bodies",
			schemaID:   schema.EventCreate,
			body:       `{"name": "x", "event_type": "RUN", "expected_duration": 60, "user_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11"}`,
			wantFields: []string{"user_id"},
		},
		{
			name:       "negative consumption time",
			schemaID:   schema.FoodInstanceCreate,
			body:       `{"food_item_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "time_elapsed_at_consumption": -1, "servings": 1}`,
			wantFields: []string{"time_elapsed_at_consumption"},
		},
		{
			name:       "zero servings",
			schemaID:   schema.FoodInstanceCreate,
			body:       `{"food_item_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "time_elapsed_at_consumption": 10, "servings": 0}`,
			wantFields: []string{"servings"},
		},
		{
			name:       "nested nutrient quantity",
			schemaID:   schema.FoodItemCreate,
			body:       `{"name": "Gel", "nutrients": [{"nutrient_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "quantity": -2, "unit": "g"}]}`,
			wantFields: []string{"nutrients.0.quantity"},
		},
		{
			name:       "bad uuid",
			schemaID:   schema.ConnectionCreate,
			body:       `{"receiver_id": "not-a-uuid"}`,
			wantFields: []string{"receiver_id"},
		},
		{
			name:       "pending is not a response",
			schemaID:   schema.StatusUpdate,
			body:       `{"status": "PENDING"}`,
			wantFields: []string{"status"},
		},
		{
			name:       "color format",
			schemaID:   schema.Color,
			body:       `{"color": "red"}`,
			wantFields: []string{"color"},
		},
		{
			name:     "goals replace ok",
			schemaID: schema.GoalsReplace,
			body: `{"base": [{"nutrient_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "quantity": 60, "unit": "g"}],
			        "hourly": [{"nutrient_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "hour": 1, "quantity": 90, "unit": "g"}]}`,
		},
		{
			name:     "goal hour beyond int32",
			schemaID: schema.GoalsReplace,
			body: `{"base": [],
			        "hourly": [{"nutrient_id": "6c1d7a02-64a8-4d43-9f50-0f0f8e5d3a11", "hour": 2147483648, "quantity": 90, "unit": "g"}]}`,
			wantFields: []string{"hourly.0.hour"},
		},
		{
			name:       "cost beyond int32",
			schemaID:   schema.FoodItemCreate,
			body:       `{"name": "Gel", "cost_cents": 99999999999, "nutrients": []}`,
			wantFields: []string{"cost_cents"},
		},
		{
			name:      "malformed",
			schemaID:  schema.EventCreate,
			body:      `{"name": `,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.body), tt.schemaID)
			if tt.malformed {
				assert.ErrorIs(t, err, schema.ErrMalformed)
				return
			}
			if len(tt.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			var vErr *schema.ValidationError
			require.True(t, errors.As(err, &vErr), "expected ValidationError, got %v", err)
			assert.ElementsMatch(t, tt.wantFields, vErr.Fields())
		})
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	v, err := schema.NewDefaultValidator()
	require.NoError(t, err)

	err = v.ValidateBytes([]byte(`{}`), "https://racefuel.app/schemas/nope.json")
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnknownSchema)
	var vErr *schema.ValidationError
	assert.False(t, errors.As(err, &vErr))
}
