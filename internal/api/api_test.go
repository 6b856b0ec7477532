package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racefuel/racefuel-api/internal/database"
	rt "github.com/racefuel/racefuel-api/internal/racefueltest"
	"github.com/racefuel/racefuel-api/internal/schema"
)

// newUnitConfig builds a config with no database behind it. Only routes that
// answer before touching the database can be exercised with it.
func newUnitConfig(t *testing.T) *APIConfig {
	t.Helper()
	validator, err := schema.NewDefaultValidator()
	require.NoError(t, err)
	return &APIConfig{
		validator: validator,
		idp:       testIDP,
		platform:  "production",
		env:       envConfig{CORSOrigins: "*"},
	}
}

func Call(mux http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func Test_RoutesWithoutDatabase(t *testing.T) {
	cfg := newUnitConfig(t)
	handler := cfg.Handler()
	token := rt.MakeToken(t, testIDP, "auth0|unit")
	foreignToken := rt.MakeToken(t, testIDP, "")

	tests := []struct {
		name     string
		req      *http.Request
		expected int
		field    string
		message  string
	}{
		{name: "readiness", req: rt.MakeRequest(http.MethodGet, "/api/healthz", "", nil), expected: http.StatusOK},
		{name: "missing token", req: rt.GetEvents(""), expected: http.StatusUnauthorized},
		{name: "wrong scheme", req: func() *http.Request {
			req := rt.GetEvents("")
			req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
			return req
		}(), expected: http.StatusUnauthorized},
		{name: "token without subject", req: rt.SyncUser(foreignToken, "A", "a@example.com"), expected: http.StatusUnauthorized},
		{name: "sync with empty name", req: rt.SyncUser(token, "", "a@example.com"), expected: http.StatusBadRequest, field: "name"},
		{name: "sync with bad email", req: rt.SyncUser(token, "A", "not-an-email"), expected: http.StatusBadRequest, field: "email"},
		{name: "sync carrying an identity", req: rt.MakeRequest(http.MethodPost, "/api/users/sync", token, map[string]any{
			"name": "A", "email": "a@example.com", "auth0_sub": "auth0|someone-else",
		}), expected: http.StatusBadRequest, field: "auth0_sub"},
		{name: "sync with malformed body", req: func() *http.Request {
			req := httptest.NewRequest(http.MethodPost, "/api/users/sync", nil)
			req.Body = http.NoBody
			req.Header.Set("Authorization", "Bearer "+token)
			return req
		}(), expected: http.StatusBadRequest},
		{name: "admin outside dev", req: rt.GetUserCount(), expected: http.StatusForbidden, message: adminOutsideDev},
		{name: "reset outside dev", req: rt.DeleteAllUsers(), expected: http.StatusForbidden, message: adminOutsideDev},
		{name: "unknown route", req: rt.MakeRequest(http.MethodGet, "/api/budgets", token, nil), expected: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Call(handler, tt.req)
			assert.Equal(t, tt.expected, w.Code, w.Body.String())
			if tt.message != "" {
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
				var body errorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body.Error)
			}
			if tt.field != "" {
				var body errorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				require.NotEmpty(t, body.Details)
				assert.Contains(t, body.Details[0], tt.field)
			}
		})
	}
}

func TestAccessFor(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		private bool
		caller  uuid.UUID
		want    EventAccess
	}{
		{name: "owner of private event", private: true, caller: owner, want: OWNER},
		{name: "owner of public event", private: false, caller: owner, want: OWNER},
		{name: "other on public event", private: false, caller: other, want: VIEWER},
		{name: "other on private event", private: true, caller: other, want: NONE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := database.Event{UserID: owner, Private: tt.private}
			assert.Equal(t, tt.want, accessFor(event, tt.caller))
		})
	}
}

func TestStatusFilter(t *testing.T) {
	got, err := statusFilter("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = statusFilter("accepted")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ACCEPTED", *got)

	_, err = statusFilter("maybe")
	assert.Error(t, err)
}

func TestOptional(t *testing.T) {
	type payload struct {
		Brand     Optional[string] `json:"brand"`
		CostCents Optional[int32]  `json:"cost_cents"`
	}
	current := "Old Brand"
	cents := int32(150)

	tests := []struct {
		name      string
		body      string
		wantBrand *string
		wantCents *int32
	}{
		{name: "absent keeps current", body: `{}`, wantBrand: &current, wantCents: &cents},
		{name: "null clears", body: `{"brand":null,"cost_cents":null}`, wantBrand: nil, wantCents: nil},
		{name: "value replaces", body: `{"brand":"New Brand"}`, wantBrand: ptr("New Brand"), wantCents: &cents},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.wantBrand, p.Brand.Or(&current))
			assert.Equal(t, tt.wantCents, p.CostCents.Or(&cents))
		})
	}
}

func TestCheckGoalSet(t *testing.T) {
	carb := uuid.New()
	sodium := uuid.New()

	tests := []struct {
		name     string
		base     []NutrientInput
		hourly   []hourlyGoalInput
		duration int32
		want     []string
	}{
		{
			name:     "valid set",
			base:     []NutrientInput{{NutrientID: carb}, {NutrientID: sodium}},
			hourly:   []hourlyGoalInput{{NutrientID: carb, Hour: 0}, {NutrientID: carb, Hour: 1}},
			duration: 5400,
		},
		{
			name:     "duplicate base nutrient",
			base:     []NutrientInput{{NutrientID: carb}, {NutrientID: carb}},
			duration: 3600,
			want:     []string{"base.1.nutrient_id"},
		},
		{
			name:     "hour past the event",
			hourly:   []hourlyGoalInput{{NutrientID: carb, Hour: 2}},
			duration: 7200,
			want:     []string{"hourly.0.hour"},
		},
		{
			name:     "duplicate hourly key",
			hourly:   []hourlyGoalInput{{NutrientID: carb, Hour: 0}, {NutrientID: carb, Hour: 0}},
			duration: 3600,
			want:     []string{"hourly.1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := checkGoalSet(tt.base, tt.hourly, tt.duration)
			require.Len(t, details, len(tt.want))
			for i, prefix := range tt.want {
				assert.Contains(t, details[i], prefix)
			}
		})
	}
}

func TestScaleContribution(t *testing.T) {
	carb := uuid.New()
	nutrients := []NutrientAmount{{NutrientID: carb, Name: "Carbohydrates", Abbreviation: "carb", Quantity: 23, Unit: "g"}}

	got := scaleContribution(nutrients, 2)
	require.Len(t, got, 1)
	assert.Equal(t, 46.0, got[0].Quantity)
	assert.Equal(t, "carb", got[0].Abbreviation)
	assert.Equal(t, 23.0, nutrients[0].Quantity, "input is left untouched")

	assert.NotNil(t, scaleContribution(nil, 2))
}

func TestGroupNutrients(t *testing.T) {
	gel := uuid.New()
	bar := uuid.New()
	rows := []database.GetFoodItemNutrientsByEventIDRow{
		{FoodItemID: gel, NutrientID: uuid.New(), Name: "Carbohydrates", Quantity: 23, Unit: "g"},
		{FoodItemID: gel, NutrientID: uuid.New(), Name: "Sodium", Quantity: 50, Unit: "mg"},
		{FoodItemID: bar, NutrientID: uuid.New(), Name: "Protein", Quantity: 10, Unit: "g"},
	}

	grouped := groupNutrients(rows)
	assert.Len(t, grouped[gel], 2)
	assert.Len(t, grouped[bar], 1)
	assert.Equal(t, "Protein", grouped[bar][0].Name)
}

func ptr[T any](v T) *T {
	return &v
}
