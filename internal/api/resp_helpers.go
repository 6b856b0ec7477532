package api

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/racefuel/racefuel-api/internal/schema"
)

// Postgres SQLSTATE codes mapped to client errors.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

const maxPayloadBytes = 1 << 20

// decodePayload validates the request body against schemaID and decodes it into T.
func decodePayload[T any](cfg *APIConfig, r *http.Request, schemaID string) (T, error) {
	var v T
	defer r.Body.Close()
	data, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		return v, fmt.Errorf("failure reading request payload: %w", err)
	}
	if err := cfg.validator.ValidateBytes(data, schemaID); err != nil {
		return v, err
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return v, fmt.Errorf("%w: %v", schema.ErrMalformed, err)
	}
	return v, nil
}

// respondWithPayloadError answers a decodePayload failure.
func respondWithPayloadError(w http.ResponseWriter, err error) {
	var vErr *schema.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondWithErrorDetails(w, http.StatusBadRequest, "request body failed validation", vErr.Details, err)
	case errors.Is(err, schema.ErrMalformed):
		respondWithError(w, http.StatusBadRequest, "malformed request body", err)
	default:
		respondWithError(w, http.StatusInternalServerError, "could not read request body", err)
	}
}

func makeStatusCodeMsg(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

// respondWithError logs err and responds with {error}. For client errors the
// technical error text is passed along as details; server errors only carry msg.
func respondWithError(w http.ResponseWriter, code int, msg string, err error) {
	var details []string
	if err != nil && code < http.StatusInternalServerError {
		details = []string{err.Error()}
	}
	respondWithErrorDetails(w, code, msg, details, err)
}

func respondWithErrorDetails(w http.ResponseWriter, code int, msg string, details []string, err error) {
	// prefix the message with a status code message
	errorMessage := makeStatusCodeMsg(code)
	// add the optional info message, if it exists
	if msg != "" {
		errorMessage += fmt.Sprintf("; %s", msg)
	}
	// add the technical error message, if it exists
	if err != nil {
		errorMessage += fmt.Sprintf(": %s", err.Error())
	}

	// log the error on the server
	if code >= http.StatusInternalServerError {
		slog.Error(errorMessage, slog.Int("HTTP Status Code", code))
	} else {
		slog.Warn(errorMessage, slog.Int("HTTP Status Code", code))
	}

	if msg == "" {
		msg = http.StatusText(code)
	}
	if code >= http.StatusInternalServerError {
		details = nil
	}
	respondWithJSON(w, code, errorResponse{
		Error:   msg,
		Details: details,
	})
}

// respondWithDBError maps persistence errors: missing rows are 404,
// constraint violations are 400 and anything else is 500.
func respondWithDBError(w http.ResponseWriter, msg string, err error) {
	if errors.Is(err, pgx.ErrNoRows) {
		respondWithError(w, http.StatusNotFound, msg+": not found", nil)
		return
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			respondWithError(w, http.StatusBadRequest, msg+": already exists", nil)
			return
		case pgForeignKeyViolation:
			respondWithError(w, http.StatusBadRequest, msg+": references a resource that does not exist", nil)
			return
		case pgCheckViolation:
			respondWithError(w, http.StatusBadRequest, msg+": value out of range", nil)
			return
		}
	}
	respondWithError(w, http.StatusInternalServerError, msg, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("could not marshal JSON for response: " + err.Error())
		w.WriteHeader(500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(data)
	if err != nil {
		slog.Error("could not write to header from JSON payload: " + err.Error())
	}
}

// respondWithCode responds with a text body including only a status code message
func respondWithCode(w http.ResponseWriter, code int) {
	switch code {
	case http.StatusNoContent:
		w.WriteHeader(code)
	default:
		respondWithText(w, code, "")
	}
}

func respondWithText(w http.ResponseWriter, code int, msg string) {
	// if message is empty, set it to AT LEAST the status code message
	if msg == "" {
		msg = makeStatusCodeMsg(code)
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		slog.Error(err.Error())
	}
}

// parseUUIDFromPath parses the named path parameter as a UUID.
func parseUUIDFromPath(pathParam string, r *http.Request) (uuid.UUID, error) {
	uuidString := r.PathValue(pathParam)
	if uuidString == "" {
		return uuid.Nil, fmt.Errorf("path parameter '%s' is missing", pathParam)
	}
	parsedID, err := uuid.Parse(uuidString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("value '%s' for path parameter '%s' could not be parsed as UUID: %w", uuidString, pathParam, err)
	}
	return parsedID, nil
}

// distinctNutrients rejects a payload naming the same nutrient twice.
func distinctNutrients(field string, ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			return fmt.Errorf("%s.%d.nutrient_id: nutrient %s is listed more than once", field, i, id)
		}
		seen[id] = true
	}
	return nil
}
