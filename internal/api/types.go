package api

import (
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/racefuel/racefuel-api/internal/database"
	"github.com/racefuel/racefuel-api/internal/plan"
)

// EventAccess orders what a caller may do with an event; lower is more.
type EventAccess int

const (
	OWNER EventAccess = iota
	VIEWER
	NONE
)

var eaToString = map[EventAccess]string{
	OWNER:  "OWNER",
	VIEWER: "VIEWER",
	NONE:   "NONE",
}

func (ea EventAccess) String() string {
	return eaToString[ea]
}

func accessFor(event database.Event, userID uuid.UUID) EventAccess {
	switch {
	case event.UserID == userID:
		return OWNER
	case !event.Private:
		return VIEWER
	default:
		return NONE
	}
}

// RequestStatus is the lifecycle of a connection request or a shared event.
type RequestStatus int

const (
	PENDING RequestStatus = iota
	ACCEPTED
	DENIED
)

var rsToString = map[RequestStatus]string{
	PENDING:  "PENDING",
	ACCEPTED: "ACCEPTED",
	DENIED:   "DENIED",
}

var rsFromString = map[string]RequestStatus{
	"PENDING":  PENDING,
	"ACCEPTED": ACCEPTED,
	"DENIED":   DENIED,
}

func (rs RequestStatus) String() string {
	return rsToString[rs]
}

func RSFromString(s string) (RequestStatus, error) {
	s = strings.ToUpper(s)
	if val, ok := rsFromString[s]; ok {
		return val, nil
	}
	return -1, fmt.Errorf("invalid status: %s", s)
}

// statusFilter parses an optional ?status= query value.
func statusFilter(raw string) (*string, error) {
	if raw == "" {
		return nil, nil
	}
	rs, err := RSFromString(raw)
	if err != nil {
		return nil, err
	}
	s := rs.String()
	return &s, nil
}

// Optional distinguishes an absent JSON field from an explicit null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// Or returns the new value when the field was sent, else current.
func (o Optional[T]) Or(current *T) *T {
	if o.Set {
		return o.Value
	}
	return current
}

// ============ RESOURCES ============

type User struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Auth0Sub  string    `json:"auth0_sub,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

type Nutrient struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
}

type NutrientAmount struct {
	NutrientID   uuid.UUID `json:"nutrient_id"`
	Name         string    `json:"name"`
	Abbreviation string    `json:"abbreviation"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
}

type NutrientInput struct {
	NutrientID uuid.UUID `json:"nutrient_id"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
}

type FoodItem struct {
	ID        uuid.UUID        `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	UserID    uuid.UUID        `json:"user_id"`
	Name      string           `json:"name"`
	Brand     *string          `json:"brand"`
	Category  *string          `json:"category"`
	CostCents *int32           `json:"cost_cents"`
	Nutrients []NutrientAmount `json:"nutrients"`
}

type Event struct {
	ID               uuid.UUID `json:"id"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	UserID           uuid.UUID `json:"user_id"`
	Name             string    `json:"name"`
	EventType        string    `json:"event_type"`
	ExpectedDuration int32     `json:"expected_duration"`
	Private          bool      `json:"private"`
}

type FoodInstance struct {
	ID                       uuid.UUID        `json:"id"`
	CreatedAt                time.Time        `json:"created_at"`
	UpdatedAt                time.Time        `json:"updated_at"`
	EventID                  uuid.UUID        `json:"event_id"`
	FoodItemID               uuid.UUID        `json:"food_item_id"`
	FoodName                 string           `json:"food_name,omitempty"`
	FoodBrand                *string          `json:"food_brand,omitempty"`
	TimeElapsedAtConsumption int32            `json:"time_elapsed_at_consumption"`
	Servings                 float64          `json:"servings"`
	Hour                     int32            `json:"hour"`
	Contribution             []NutrientAmount `json:"contribution"`
}

type Goal struct {
	ID         uuid.UUID `json:"id"`
	NutrientID uuid.UUID `json:"nutrient_id"`
	Hour       *int32    `json:"hour,omitempty"`
	Quantity   float64   `json:"quantity"`
	Unit       string    `json:"unit"`
}

type Goals struct {
	Base   []Goal `json:"base"`
	Hourly []Goal `json:"hourly"`
}

type Connection struct {
	ID          uuid.UUID `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	RequesterID uuid.UUID `json:"requester_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	Status      string    `json:"status"`
	// The other party, from the caller's point of view.
	OtherUser *User `json:"other_user,omitempty"`
}

type SharedEvent struct {
	ID            uuid.UUID  `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	EventID       uuid.UUID  `json:"event_id"`
	EventName     string     `json:"event_name,omitempty"`
	SenderID      uuid.UUID  `json:"sender_id"`
	ReceiverID    uuid.UUID  `json:"receiver_id"`
	OtherUserName string     `json:"other_user_name,omitempty"`
	Status        string     `json:"status"`
	CopiedEventID *uuid.UUID `json:"copied_event_id"`
}

type Preferences struct {
	Theme            string `json:"theme"`
	TimeDisplay      string `json:"time_display"`
	DefaultEventType string `json:"default_event_type"`
}

var defaultPreferences = Preferences{
	Theme:            "SYSTEM",
	TimeDisplay:      "ELAPSED",
	DefaultEventType: "RUN",
}

type UserColor struct {
	TargetUserID uuid.UUID `json:"target_user_id"`
	Color        string    `json:"color"`
}

type Summary = plan.Summary

// ============ CONVERSIONS ============

func userFromDB(u database.User) User {
	return User{
		ID:        u.ID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		Auth0Sub:  u.Auth0Sub,
		Name:      u.Name,
		Email:     u.Email,
	}
}

func eventFromDB(e database.Event) Event {
	return Event{
		ID:               e.ID,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
		UserID:           e.UserID,
		Name:             e.Name,
		EventType:        e.EventType,
		ExpectedDuration: e.ExpectedDuration,
		Private:          e.Private,
	}
}

func foodItemFromDB(f database.FoodItem, nutrients []NutrientAmount) FoodItem {
	if nutrients == nil {
		nutrients = []NutrientAmount{}
	}
	return FoodItem{
		ID:        f.ID,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
		UserID:    f.UserID,
		Name:      f.Name,
		Brand:     f.Brand,
		Category:  f.Category,
		CostCents: f.CostCents,
		Nutrients: nutrients,
	}
}

func connectionFromDB(c database.UserConnection) Connection {
	return Connection{
		ID:          c.ID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
		RequesterID: c.RequesterID,
		ReceiverID:  c.ReceiverID,
		Status:      c.Status,
	}
}

func sharedEventFromDB(s database.SharedEvent) SharedEvent {
	return SharedEvent{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
		EventID:       s.EventID,
		SenderID:      s.SenderID,
		ReceiverID:    s.ReceiverID,
		Status:        s.Status,
		CopiedEventID: s.CopiedEventID,
	}
}

func preferencesFromDB(p database.UserPreference) Preferences {
	return Preferences{
		Theme:            p.Theme,
		TimeDisplay:      p.TimeDisplay,
		DefaultEventType: p.DefaultEventType,
	}
}
