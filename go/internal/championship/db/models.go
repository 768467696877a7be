package db

import (
	"database/sql"
	"time"
)

type Championship struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	CountryID sql.NullInt64  `json:"country_id"`
	Type      sql.NullString `json:"type"`
	Season    sql.NullString `json:"season"`
	StartDate sql.NullTime   `json:"start_date"`
	EndDate   sql.NullTime   `json:"end_date"`
	CreatedAt time.Time      `json:"created_at"`
}
