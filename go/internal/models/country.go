package models

import "time"

// Country is the root reference entity; teams, players, stadiums and championships point at it
type Country struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
