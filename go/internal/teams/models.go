package teams

import (
	"time"

	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// CreateTeamRequest represents the data needed to create a new team
type CreateTeamRequest struct {
	Name         string     `json:"name" validate:"required,min=3,max=100"`
	Nickname     *string    `json:"nickname,omitempty" validate:"omitnil,min=2,max=50"`
	City         *string    `json:"city,omitempty" validate:"omitnil,min=2,max=100"`
	CountryID    int64      `json:"country_id" validate:"gt=0"`
	FoundingDate *time.Time `json:"founding_date,omitempty" validate:"omitnil,notfuture"`
}

// UpdateTeamRequest represents the data that can be updated for a team
type UpdateTeamRequest struct {
	Name         *string                   `json:"name,omitempty" validate:"omitnil,min=3,max=100"`
	Nickname     nullable.Field[string]    `json:"nickname,omitzero" validate:"omitempty,min=2,max=50"`
	City         nullable.Field[string]    `json:"city,omitzero" validate:"omitempty,min=2,max=100"`
	CountryID    *int64                    `json:"country_id,omitempty" validate:"omitnil,gt=0"`
	FoundingDate nullable.Field[time.Time] `json:"founding_date,omitzero" validate:"omitempty,notfuture"`
}

// CreateParticipationRequest registers a team in a championship, optionally for one season
type CreateParticipationRequest struct {
	ChampionshipID int64   `json:"championship_id" validate:"gt=0"`
	TeamID         int64   `json:"team_id" validate:"gt=0"`
	Season         *string `json:"season,omitempty" validate:"omitnil,max=20"`
}

// UpdateParticipationRequest moves a participation to another season
type UpdateParticipationRequest struct {
	Season nullable.Field[string] `json:"season,omitzero" validate:"omitempty,max=20"`
}
