package db

import (
	"context"
	"database/sql"
	"time"
)

const createMatch = `-- name: CreateMatch :one
INSERT INTO matches (home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at
`

type CreateMatchParams struct {
	HomeTeamID     int64         `json:"home_team_id"`
	AwayTeamID     int64         `json:"away_team_id"`
	ChampionshipID int64         `json:"championship_id"`
	StadiumID      int64         `json:"stadium_id"`
	Date           time.Time     `json:"date"`
	HomeScore      sql.NullInt32 `json:"home_score"`
	AwayScore      sql.NullInt32 `json:"away_score"`
	CreatedAt      time.Time     `json:"created_at"`
}

func (q *Queries) CreateMatch(ctx context.Context, arg CreateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, createMatch,
		arg.HomeTeamID,
		arg.AwayTeamID,
		arg.ChampionshipID,
		arg.StadiumID,
		arg.Date,
		arg.HomeScore,
		arg.AwayScore,
		arg.CreatedAt,
	)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.HomeTeamID,
		&i.AwayTeamID,
		&i.ChampionshipID,
		&i.StadiumID,
		&i.Date,
		&i.HomeScore,
		&i.AwayScore,
		&i.CreatedAt,
	)
	return i, err
}

const deleteMatch = `-- name: DeleteMatch :execrows
DELETE FROM matches
WHERE id = $1
`

func (q *Queries) DeleteMatch(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteMatch, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findConflictingMatch = `-- name: FindConflictingMatch :one
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE (home_team_id IN ($1, $2) OR away_team_id IN ($1, $2))
  AND date BETWEEN $3 AND $4
  AND id <> $5
ORDER BY date, id
LIMIT 1
`

type FindConflictingMatchParams struct {
	TeamA     int64     `json:"team_a"`
	TeamB     int64     `json:"team_b"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	ExcludeID int64     `json:"exclude_id"`
}

func (q *Queries) FindConflictingMatch(ctx context.Context, arg FindConflictingMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, findConflictingMatch,
		arg.TeamA,
		arg.TeamB,
		arg.From,
		arg.To,
		arg.ExcludeID,
	)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.HomeTeamID,
		&i.AwayTeamID,
		&i.ChampionshipID,
		&i.StadiumID,
		&i.Date,
		&i.HomeScore,
		&i.AwayScore,
		&i.CreatedAt,
	)
	return i, err
}

const findMatchesByTeams = `-- name: FindMatchesByTeams :many
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE home_team_id = $1 AND away_team_id = $2
ORDER BY date, id
`

type FindMatchesByTeamsParams struct {
	HomeTeamID int64 `json:"home_team_id"`
	AwayTeamID int64 `json:"away_team_id"`
}

func (q *Queries) FindMatchesByTeams(ctx context.Context, arg FindMatchesByTeamsParams) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, findMatchesByTeams,
		arg.HomeTeamID,
		arg.AwayTeamID,
	)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const getMatch = `-- name: GetMatch :one
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE id = $1
`

func (q *Queries) GetMatch(ctx context.Context, id int64) (Match, error) {
	row := q.db.QueryRowContext(ctx, getMatch, id)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.HomeTeamID,
		&i.AwayTeamID,
		&i.ChampionshipID,
		&i.StadiumID,
		&i.Date,
		&i.HomeScore,
		&i.AwayScore,
		&i.CreatedAt,
	)
	return i, err
}

const listMatches = `-- name: ListMatches :many
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
ORDER BY id
`

func (q *Queries) ListMatches(ctx context.Context) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatches)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const listMatchesByChampionship = `-- name: ListMatchesByChampionship :many
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE championship_id = $1
ORDER BY date, id
`

func (q *Queries) ListMatchesByChampionship(ctx context.Context, championshipID int64) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatchesByChampionship, championshipID)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const listMatchesByStadium = `-- name: ListMatchesByStadium :many
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE stadium_id = $1
ORDER BY date, id
`

func (q *Queries) ListMatchesByStadium(ctx context.Context, stadiumID int64) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatchesByStadium, stadiumID)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const listMatchesByTeam = `-- name: ListMatchesByTeam :many
SELECT id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at FROM matches
WHERE home_team_id = $1 OR away_team_id = $1
ORDER BY date, id
`

func (q *Queries) ListMatchesByTeam(ctx context.Context, teamID int64) ([]Match, error) {
	rows, err := q.db.QueryContext(ctx, listMatchesByTeam, teamID)
	if err != nil {
		return nil, err
	}
	return scanMatches(rows)
}

const updateMatch = `-- name: UpdateMatch :one
UPDATE matches
SET home_team_id = $2, away_team_id = $3, championship_id = $4, stadium_id = $5, date = $6, home_score = $7, away_score = $8
WHERE id = $1
RETURNING id, home_team_id, away_team_id, championship_id, stadium_id, date, home_score, away_score, created_at
`

type UpdateMatchParams struct {
	ID             int64         `json:"id"`
	HomeTeamID     int64         `json:"home_team_id"`
	AwayTeamID     int64         `json:"away_team_id"`
	ChampionshipID int64         `json:"championship_id"`
	StadiumID      int64         `json:"stadium_id"`
	Date           time.Time     `json:"date"`
	HomeScore      sql.NullInt32 `json:"home_score"`
	AwayScore      sql.NullInt32 `json:"away_score"`
}

func (q *Queries) UpdateMatch(ctx context.Context, arg UpdateMatchParams) (Match, error) {
	row := q.db.QueryRowContext(ctx, updateMatch,
		arg.ID,
		arg.HomeTeamID,
		arg.AwayTeamID,
		arg.ChampionshipID,
		arg.StadiumID,
		arg.Date,
		arg.HomeScore,
		arg.AwayScore,
	)
	var i Match
	err := row.Scan(
		&i.ID,
		&i.HomeTeamID,
		&i.AwayTeamID,
		&i.ChampionshipID,
		&i.StadiumID,
		&i.Date,
		&i.HomeScore,
		&i.AwayScore,
		&i.CreatedAt,
	)
	return i, err
}

func scanMatches(rows *sql.Rows) ([]Match, error) {
	defer rows.Close()
	var items []Match
	for rows.Next() {
		var i Match
		if err := rows.Scan(
			&i.ID,
			&i.HomeTeamID,
			&i.AwayTeamID,
			&i.ChampionshipID,
			&i.StadiumID,
			&i.Date,
			&i.HomeScore,
			&i.AwayScore,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
