package db

import (
	"database/sql"
	"time"
)

type Stadium struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	City      sql.NullString `json:"city"`
	CountryID int64          `json:"country_id"`
	Capacity  sql.NullInt32  `json:"capacity"`
	CreatedAt time.Time      `json:"created_at"`
}
