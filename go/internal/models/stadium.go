package models

import "time"

type Stadium struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	City      *string   `json:"city,omitempty"`
	CountryID int64     `json:"country_id"`
	Capacity  *int32    `json:"capacity,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
