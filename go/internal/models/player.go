package models

import "time"

// Player represents a footballer. CountryID is the player's nationality.
type Player struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CountryID int64      `json:"country_id"`
	Position  *string    `json:"position,omitempty"` // free text, e.g. "Goalkeeper"
	TeamID    *int64     `json:"team_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
