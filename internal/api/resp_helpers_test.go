package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/racefuel/racefuel-api/internal/schema"
)

func TestRespondWithDBError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{name: "Missing row", err: pgx.ErrNoRows, wantCode: http.StatusNotFound, wantMessage: "could not get thing: not found"},
		{name: "Wrapped missing row", err: fmt.Errorf("lookup: %w", pgx.ErrNoRows), wantCode: http.StatusNotFound, wantMessage: "could not get thing: not found"},
		{name: "Unique violation", err: &pgconn.PgError{Code: pgUniqueViolation}, wantCode: http.StatusBadRequest, wantMessage: "could not get thing: already exists"},
		{name: "Foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation}, wantCode: http.StatusBadRequest, wantMessage: "could not get thing: references a resource that does not exist"},
		{name: "Check violation", err: &pgconn.PgError{Code: pgCheckViolation}, wantCode: http.StatusBadRequest, wantMessage: "could not get thing: value out of range"},
		{name: "Other postgres error", err: &pgconn.PgError{Code: "57014", Message: "canceling statement"}, wantCode: http.StatusInternalServerError, wantMessage: "could not get thing"},
		{name: "Connection failure", err: errors.New("dial tcp: connection refused"), wantCode: http.StatusInternalServerError, wantMessage: "could not get thing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondWithDBError(w, "could not get thing", tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Error)
			if tt.wantCode >= http.StatusInternalServerError {
				assert.Empty(t, body.Details, "server errors do not leak internals")
				assert.NotContains(t, w.Body.String(), "connection refused")
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgUniqueViolation})))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.False(t, isUniqueViolation(pgx.ErrNoRows))
}

func TestRespondWithPayloadError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantDetails []string
	}{
		{
			name:        "Validation failure lists every field",
			err:         &schema.ValidationError{Details: []string{"name: String length must be greater than or equal to 1", "email: Does not match format 'email'"}},
			wantCode:    http.StatusBadRequest,
			wantDetails: []string{"name: String length must be greater than or equal to 1", "email: Does not match format 'email'"},
		},
		{
			name:     "Malformed body",
			err:      fmt.Errorf("%w: unexpected end of JSON input", schema.ErrMalformed),
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "Read failure",
			err:      errors.New("failure reading request payload"),
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondWithPayloadError(w, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			var body errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.wantDetails != nil {
				assert.Equal(t, tt.wantDetails, body.Details)
			}
		})
	}
}

func TestRespondWithCode(t *testing.T) {
	w := httptest.NewRecorder()
	respondWithCode(w, http.StatusNoContent)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	respondWithCode(w, http.StatusForbidden)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "403 Forbidden", w.Body.String())
}

func TestParseUUIDFromPath(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		value   string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "Valid id", value: id.String(), want: id},
		{name: "Missing", value: "", wantErr: true},
		{name: "Not a uuid", value: "12345", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/events/x", nil)
			r.SetPathValue("event_id", tt.value)

			got, err := parseUUIDFromPath("event_id", r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDistinctNutrients(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.NoError(t, distinctNutrients("nutrients", []uuid.UUID{a, b}))
	assert.NoError(t, distinctNutrients("nutrients", nil))

	err := distinctNutrients("nutrients", []uuid.UUID{a, b, a})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nutrients.2.nutrient_id")
}
