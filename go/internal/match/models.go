package match

import (
	"time"

	"github.com/mcdev12/footballdb/go/internal/nullable"
)

// CreateMatchRequest represents the data needed to schedule a match
type CreateMatchRequest struct {
	HomeTeamID     int64     `json:"home_team_id" validate:"gt=0"`
	AwayTeamID     int64     `json:"away_team_id" validate:"gt=0"`
	ChampionshipID int64     `json:"championship_id" validate:"gt=0"`
	StadiumID      int64     `json:"stadium_id" validate:"gt=0"`
	Date           time.Time `json:"date" validate:"required,notpast"`
	HomeScore      *int32    `json:"home_score,omitempty" validate:"omitnil,gte=0"`
	AwayScore      *int32    `json:"away_score,omitempty" validate:"omitnil,gte=0"`
}

// UpdateMatchRequest represents the data that can be updated for a match
type UpdateMatchRequest struct {
	HomeTeamID     *int64                `json:"home_team_id,omitempty" validate:"omitnil,gt=0"`
	AwayTeamID     *int64                `json:"away_team_id,omitempty" validate:"omitnil,gt=0"`
	ChampionshipID *int64                `json:"championship_id,omitempty" validate:"omitnil,gt=0"`
	StadiumID      *int64                `json:"stadium_id,omitempty" validate:"omitnil,gt=0"`
	Date           *time.Time            `json:"date,omitempty" validate:"omitnil,notpast"`
	HomeScore      nullable.Field[int32] `json:"home_score,omitzero" validate:"omitempty,gte=0"`
	AwayScore      nullable.Field[int32] `json:"away_score,omitzero" validate:"omitempty,gte=0"`
}

// CreateLineupRequest places a player in a team's lineup for a match
type CreateLineupRequest struct {
	MatchID  int64   `json:"match_id" validate:"gt=0"`
	TeamID   int64   `json:"team_id" validate:"gt=0"`
	PlayerID int64   `json:"player_id" validate:"gt=0"`
	Position *string `json:"position,omitempty" validate:"omitnil,max=50"`
}

// UpdateLineupRequest changes the position a player lines up in
type UpdateLineupRequest struct {
	Position nullable.Field[string] `json:"position,omitzero" validate:"omitempty,max=50"`
}

// CreateSubstitutionRequest records a player change during a match
type CreateSubstitutionRequest struct {
	MatchID     int64 `json:"match_id" validate:"gt=0"`
	PlayerOutID int64 `json:"player_out_id" validate:"gt=0"`
	PlayerInID  int64 `json:"player_in_id" validate:"gt=0"`
	Minute      int32 `json:"minute" validate:"gte=0,lte=130"`
}

// UpdateSubstitutionRequest corrects the minute of a substitution
type UpdateSubstitutionRequest struct {
	Minute *int32 `json:"minute,omitempty" validate:"omitnil,gte=0,lte=130"`
}
