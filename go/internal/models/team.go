package models

import "time"

// Team represents a football club
type Team struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Nickname     *string    `json:"nickname,omitempty"`
	City         *string    `json:"city,omitempty"`
	CountryID    int64      `json:"country_id"`
	FoundingDate *time.Time `json:"founding_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}
