package db

import (
	"database/sql"
	"time"
)

type Lineup struct {
	ID        int64          `json:"id"`
	MatchID   int64          `json:"match_id"`
	TeamID    int64          `json:"team_id"`
	PlayerID  int64          `json:"player_id"`
	Position  sql.NullString `json:"position"`
	CreatedAt time.Time      `json:"created_at"`
}

type Match struct {
	ID             int64         `json:"id"`
	HomeTeamID     int64         `json:"home_team_id"`
	AwayTeamID     int64         `json:"away_team_id"`
	ChampionshipID int64         `json:"championship_id"`
	StadiumID      int64         `json:"stadium_id"`
	Date           time.Time     `json:"date"`
	HomeScore      sql.NullInt32 `json:"home_score"`
	AwayScore      sql.NullInt32 `json:"away_score"`
	CreatedAt      time.Time     `json:"created_at"`
}

type Substitution struct {
	ID          int64     `json:"id"`
	MatchID     int64     `json:"match_id"`
	PlayerOutID int64     `json:"player_out_id"`
	PlayerInID  int64     `json:"player_in_id"`
	Minute      int32     `json:"minute"`
	CreatedAt   time.Time `json:"created_at"`
}
