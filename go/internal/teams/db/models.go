package db

import (
	"database/sql"
	"time"
)

type Team struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Nickname     sql.NullString `json:"nickname"`
	City         sql.NullString `json:"city"`
	CountryID    int64          `json:"country_id"`
	FoundingDate sql.NullTime   `json:"founding_date"`
	CreatedAt    time.Time      `json:"created_at"`
}

type ChampionshipParticipation struct {
	ID             int64          `json:"id"`
	ChampionshipID int64          `json:"championship_id"`
	TeamID         int64          `json:"team_id"`
	Season         sql.NullString `json:"season"`
	CreatedAt      time.Time      `json:"created_at"`
}
