package models

import "time"

// Championship represents a competition, optionally tied to a country
type Championship struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	CountryID *int64     `json:"country_id,omitempty"`
	Type      *string    `json:"type,omitempty"`
	Season    *string    `json:"season,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ChampionshipParticipation records a team taking part in a championship season
type ChampionshipParticipation struct {
	ID             int64     `json:"id"`
	ChampionshipID int64     `json:"championship_id"`
	TeamID         int64     `json:"team_id"`
	Season         *string   `json:"season,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}
