// Package racefueltest builds requests against the RaceFuel API for tests.
package racefueltest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/goccy/go-json"
)

// ========== MIDDLEWARE ==========

func headerJSON(req *http.Request) *http.Request {
	req.Header.Set("Content-Type", "application/json")
	return req
}

func requireToken(req *http.Request, token string) *http.Request {
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", token))
	}
	return req
}

// MakeRequest encodes body (if any) as JSON and attaches token (if any).
func MakeRequest(method, path, token string, body any) *http.Request {
	var buffer io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		buffer = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buffer)
	return headerJSON(requireToken(req, token))
}

// Nutrient is a food item or goal nutrient line.
type Nutrient struct {
	NutrientID string  `json:"nutrient_id"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// HourlyGoal overrides a nutrient goal for one hour.
type HourlyGoal struct {
	NutrientID string  `json:"nutrient_id"`
	Hour       int     `json:"hour"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// ADMIN

func DeleteAllUsers() *http.Request {
	return MakeRequest(http.MethodPost, "/admin/reset", "", nil)
}

func GetUserCount() *http.Request {
	return MakeRequest(http.MethodGet, "/admin/users/count", "", nil)
}

// USERS

func SyncUser(token, name, email string) *http.Request {
	return MakeRequest(http.MethodPost, "/api/users/sync", token, map[string]any{
		"name":  name,
		"email": email,
	})
}

func GetCurrentUser(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/users/me", token, nil)
}

func UpdateCurrentUser(token string, fields map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/api/users/me", token, fields)
}

func DeleteCurrentUser(token string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/users/me", token, nil)
}

func FindUsersByEmail(token, email string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/users?email="+url.QueryEscape(email), token, nil)
}

// NUTRIENTS & FOOD ITEMS

func GetNutrients(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/nutrients", token, nil)
}

func CreateFoodItem(token, name string, nutrients []Nutrient) *http.Request {
	if nutrients == nil {
		nutrients = []Nutrient{}
	}
	return MakeRequest(http.MethodPost, "/api/food-items", token, map[string]any{
		"name":      name,
		"nutrients": nutrients,
	})
}

func GetFoodItems(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/food-items", token, nil)
}

func GetFoodItem(token, foodItemID string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/food-items/"+foodItemID, token, nil)
}

func UpdateFoodItem(token, foodItemID string, fields map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/api/food-items/"+foodItemID, token, fields)
}

func DeleteFoodItem(token, foodItemID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/food-items/"+foodItemID, token, nil)
}

// FAVORITES

func AddFavorite(token, foodItemID string) *http.Request {
	return MakeRequest(http.MethodPost, "/api/favorite-food-items", token, map[string]any{
		"food_item_id": foodItemID,
	})
}

func GetFavorites(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/favorite-food-items", token, nil)
}

func RemoveFavorite(token, foodItemID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/favorite-food-items/"+foodItemID, token, nil)
}

// EVENTS

func CreateEvent(token, name, eventType string, expectedDuration int, private bool) *http.Request {
	return MakeRequest(http.MethodPost, "/api/events", token, map[string]any{
		"name":              name,
		"event_type":        eventType,
		"expected_duration": expectedDuration,
		"private":           private,
	})
}

func GetEvents(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/events", token, nil)
}

func GetEvent(token, eventID string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/events/"+eventID, token, nil)
}

func UpdateEvent(token, eventID string, fields map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/api/events/"+eventID, token, fields)
}

func DeleteEvent(token, eventID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/events/"+eventID, token, nil)
}

// EVENT -> FOOD INSTANCES

func CreateFoodInstance(token, eventID, foodItemID string, timeElapsed int, servings float64) *http.Request {
	return MakeRequest(http.MethodPost, "/api/events/"+eventID+"/food-instances", token, map[string]any{
		"food_item_id":                foodItemID,
		"time_elapsed_at_consumption": timeElapsed,
		"servings":                    servings,
	})
}

func GetFoodInstances(token, eventID string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/events/"+eventID+"/food-instances", token, nil)
}

func UpdateFoodInstance(token, eventID, instanceID string, fields map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/api/events/"+eventID+"/food-instances/"+instanceID, token, fields)
}

func DeleteFoodInstance(token, eventID, instanceID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/events/"+eventID+"/food-instances/"+instanceID, token, nil)
}

// EVENT -> GOALS

func ReplaceGoals(token, eventID string, base []Nutrient, hourly []HourlyGoal) *http.Request {
	if base == nil {
		base = []Nutrient{}
	}
	if hourly == nil {
		hourly = []HourlyGoal{}
	}
	return MakeRequest(http.MethodPut, "/api/events/"+eventID+"/goals", token, map[string]any{
		"base":   base,
		"hourly": hourly,
	})
}

func GetGoals(token, eventID string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/events/"+eventID+"/goals", token, nil)
}

func ClearGoals(token, eventID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/events/"+eventID+"/goals", token, nil)
}

func GetSummary(token, eventID string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/events/"+eventID+"/summary", token, nil)
}

// CONNECTIONS

func RequestConnection(token, receiverID string) *http.Request {
	return MakeRequest(http.MethodPost, "/api/connections", token, map[string]any{
		"receiver_id": receiverID,
	})
}

func GetConnections(token, status string) *http.Request {
	path := "/api/connections"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	return MakeRequest(http.MethodGet, path, token, nil)
}

func RespondToConnection(token, connectionID, status string) *http.Request {
	return MakeRequest(http.MethodPut, "/api/connections/"+connectionID, token, map[string]any{
		"status": status,
	})
}

func DeleteConnection(token, connectionID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/connections/"+connectionID, token, nil)
}

// SHARED EVENTS

func ShareEvent(token, eventID, receiverID string) *http.Request {
	return MakeRequest(http.MethodPost, "/api/shared-events", token, map[string]any{
		"event_id":    eventID,
		"receiver_id": receiverID,
	})
}

func GetSharedEvents(token, direction, status string) *http.Request {
	query := url.Values{}
	if direction != "" {
		query.Set("direction", direction)
	}
	if status != "" {
		query.Set("status", status)
	}
	path := "/api/shared-events"
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return MakeRequest(http.MethodGet, path, token, nil)
}

func RespondToSharedEvent(token, sharedEventID, status string) *http.Request {
	return MakeRequest(http.MethodPut, "/api/shared-events/"+sharedEventID, token, map[string]any{
		"status": status,
	})
}

func DeleteSharedEvent(token, sharedEventID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/shared-events/"+sharedEventID, token, nil)
}

// PREFERENCES

func GetPreferences(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/preferences", token, nil)
}

func UpdatePreferences(token string, fields map[string]any) *http.Request {
	return MakeRequest(http.MethodPut, "/api/preferences", token, fields)
}

func GetUserColors(token string) *http.Request {
	return MakeRequest(http.MethodGet, "/api/preferences/colors", token, nil)
}

func SetUserColor(token, targetUserID, color string) *http.Request {
	return MakeRequest(http.MethodPut, "/api/preferences/colors/"+targetUserID, token, map[string]any{
		"color": color,
	})
}

func DeleteUserColor(token, targetUserID string) *http.Request {
	return MakeRequest(http.MethodDelete, "/api/preferences/colors/"+targetUserID, token, nil)
}
