package player

import (
	"time"

	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// CreatePlayerRequest represents the data needed to create a new player
type CreatePlayerRequest struct {
	Name      string     `json:"name" validate:"required,min=3,max=100"`
	BirthDate *time.Time `json:"birth_date,omitempty" validate:"omitnil,notfuture"`
	CountryID int64      `json:"country_id" validate:"gt=0"`
	Position  *string    `json:"position,omitempty" validate:"omitnil,max=50"`
	TeamID    *int64     `json:"team_id,omitempty" validate:"omitnil,gt=0"`
}

// UpdatePlayerRequest represents the data that can be updated for a player
type UpdatePlayerRequest struct {
	Name      *string                   `json:"name,omitempty" validate:"omitnil,min=3,max=100"`
	BirthDate nullable.Field[time.Time] `json:"birth_date,omitzero" validate:"omitempty,notfuture"`
	CountryID *int64                    `json:"country_id,omitempty" validate:"omitnil,gt=0"`
	Position  nullable.Field[string]    `json:"position,omitzero" validate:"omitempty,max=50"`
	TeamID    nullable.Field[int64]     `json:"team_id,omitzero" validate:"omitempty,gt=0"`
}
