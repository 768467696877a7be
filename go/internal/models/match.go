package models

import "time"

// Match is a fixture between two different teams
type Match struct {
	ID             int64     `json:"id"`
	HomeTeamID     int64     `json:"home_team_id"`
	AwayTeamID     int64     `json:"away_team_id"`
	ChampionshipID int64     `json:"championship_id"`
	StadiumID      int64     `json:"stadium_id"`
	Date           time.Time `json:"date"`
	HomeScore      *int32    `json:"home_score,omitempty"`
	AwayScore      *int32    `json:"away_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// InvolvesTeam reports whether teamID plays in the match
func (m *Match) InvolvesTeam(teamID int64) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Lineup places a player in a team's starting list for a match
type Lineup struct {
	ID        int64     `json:"id"`
	MatchID   int64     `json:"match_id"`
	TeamID    int64     `json:"team_id"`
	PlayerID  int64     `json:"player_id"`
	Position  *string   `json:"position,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Substitution swaps PlayerOutID for PlayerInID at Minute
type Substitution struct {
	ID          int64     `json:"id"`
	MatchID     int64     `json:"match_id"`
	PlayerOutID int64     `json:"player_out_id"`
	PlayerInID  int64     `json:"player_in_id"`
	Minute      int32     `json:"minute"`
	CreatedAt   time.Time `json:"created_at"`
}
