package db

import (
	"context"
	"database/sql"
	"time"
)

const createParticipation = `-- name: CreateParticipation :one
INSERT INTO championship_participations (championship_id, team_id, season, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, championship_id, team_id, season, created_at
`

type CreateParticipationParams struct {
	ChampionshipID int64          `json:"championship_id"`
	TeamID         int64          `json:"team_id"`
	Season         sql.NullString `json:"season"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (q *Queries) CreateParticipation(ctx context.Context, arg CreateParticipationParams) (ChampionshipParticipation, error) {
	row := q.db.QueryRowContext(ctx, createParticipation,
		arg.ChampionshipID,
		arg.TeamID,
		arg.Season,
		arg.CreatedAt,
	)
	var i ChampionshipParticipation
	err := row.Scan(
		&i.ID,
		&i.ChampionshipID,
		&i.TeamID,
		&i.Season,
		&i.CreatedAt,
	)
	return i, err
}

const deleteParticipation = `-- name: DeleteParticipation :execrows
DELETE FROM championship_participations
WHERE id = $1
`

func (q *Queries) DeleteParticipation(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteParticipation, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findParticipation = `-- name: FindParticipation :one
SELECT id, championship_id, team_id, season, created_at FROM championship_participations
WHERE championship_id = $1 AND team_id = $2 AND COALESCE(season, '') = COALESCE($3, '')
`

type FindParticipationParams struct {
	ChampionshipID int64          `json:"championship_id"`
	TeamID         int64          `json:"team_id"`
	Season         sql.NullString `json:"season"`
}

func (q *Queries) FindParticipation(ctx context.Context, arg FindParticipationParams) (ChampionshipParticipation, error) {
	row := q.db.QueryRowContext(ctx, findParticipation, arg.ChampionshipID, arg.TeamID, arg.Season)
	var i ChampionshipParticipation
	err := row.Scan(
		&i.ID,
		&i.ChampionshipID,
		&i.TeamID,
		&i.Season,
		&i.CreatedAt,
	)
	return i, err
}

const getParticipation = `-- name: GetParticipation :one
SELECT id, championship_id, team_id, season, created_at FROM championship_participations
WHERE id = $1
`

func (q *Queries) GetParticipation(ctx context.Context, id int64) (ChampionshipParticipation, error) {
	row := q.db.QueryRowContext(ctx, getParticipation, id)
	var i ChampionshipParticipation
	err := row.Scan(
		&i.ID,
		&i.ChampionshipID,
		&i.TeamID,
		&i.Season,
		&i.CreatedAt,
	)
	return i, err
}

const listParticipations = `-- name: ListParticipations :many
SELECT id, championship_id, team_id, season, created_at FROM championship_participations
ORDER BY id
`

func (q *Queries) ListParticipations(ctx context.Context) ([]ChampionshipParticipation, error) {
	rows, err := q.db.QueryContext(ctx, listParticipations)
	if err != nil {
		return nil, err
	}
	return scanParticipations(rows)
}

const listParticipationsByChampionship = `-- name: ListParticipationsByChampionship :many
SELECT id, championship_id, team_id, season, created_at FROM championship_participations
WHERE championship_id = $1
ORDER BY id
`

func (q *Queries) ListParticipationsByChampionship(ctx context.Context, championshipID int64) ([]ChampionshipParticipation, error) {
	rows, err := q.db.QueryContext(ctx, listParticipationsByChampionship, championshipID)
	if err != nil {
		return nil, err
	}
	return scanParticipations(rows)
}

const listParticipationsByTeam = `-- name: ListParticipationsByTeam :many
SELECT id, championship_id, team_id, season, created_at FROM championship_participations
WHERE team_id = $1
ORDER BY id
`

func (q *Queries) ListParticipationsByTeam(ctx context.Context, teamID int64) ([]ChampionshipParticipation, error) {
	rows, err := q.db.QueryContext(ctx, listParticipationsByTeam, teamID)
	if err != nil {
		return nil, err
	}
	return scanParticipations(rows)
}

const updateParticipationSeason = `-- name: UpdateParticipationSeason :one
UPDATE championship_participations
SET season = $2
WHERE id = $1
RETURNING id, championship_id, team_id, season, created_at
`

type UpdateParticipationSeasonParams struct {
	ID     int64          `json:"id"`
	Season sql.NullString `json:"season"`
}

func (q *Queries) UpdateParticipationSeason(ctx context.Context, arg UpdateParticipationSeasonParams) (ChampionshipParticipation, error) {
	row := q.db.QueryRowContext(ctx, updateParticipationSeason, arg.ID, arg.Season)
	var i ChampionshipParticipation
	err := row.Scan(
		&i.ID,
		&i.ChampionshipID,
		&i.TeamID,
		&i.Season,
		&i.CreatedAt,
	)
	return i, err
}

func scanParticipations(rows *sql.Rows) ([]ChampionshipParticipation, error) {
	defer rows.Close()
	var items []ChampionshipParticipation
	for rows.Next() {
		var i ChampionshipParticipation
		if err := rows.Scan(
			&i.ID,
			&i.ChampionshipID,
			&i.TeamID,
			&i.Season,
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
