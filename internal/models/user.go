package models

import "time"

// User represents the authenticated user's profile as returned by the API.
// Body measurements are optional until the user completes profile setup.
type User struct {
	UserID    string     `json:"user_id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Picture   string     `json:"picture,omitempty"`
	Age       *int       `json:"age,omitempty"`
	Weight    *float64   `json:"weight,omitempty"` // kg
	Height    *float64   `json:"height,omitempty"` // cm
	Waist     *float64   `json:"waist,omitempty"`  // cm
	Hip       *float64   `json:"hip,omitempty"`    // cm
	Chest     *float64   `json:"chest,omitempty"`  // cm
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ProfileUpdate carries a partial profile update. Nil fields are omitted
// from the request body and left untouched by the server.
type ProfileUpdate struct {
	Age    *int     `json:"age,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Waist  *float64 `json:"waist,omitempty"`
	Hip    *float64 `json:"hip,omitempty"`
	Chest  *float64 `json:"chest,omitempty"`
}

// SessionData is the response of the session exchange: the authenticated
// user plus the durable session token.
type SessionData struct {
	User         User   `json:"user"`
	SessionToken string `json:"session_token"`
}
