package db

import (
	"database/sql"
	"time"
)

type Player struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	BirthDate sql.NullTime   `json:"birth_date"`
	CountryID int64          `json:"country_id"`
	Position  sql.NullString `json:"position"`
	TeamID    sql.NullInt64  `json:"team_id"`
	CreatedAt time.Time      `json:"created_at"`
}
