package db

import (
	"context"
	"database/sql"
	"time"
)

const createPlayer = `-- name: CreatePlayer :one
INSERT INTO players (name, birth_date, country_id, position, team_id, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, birth_date, country_id, position, team_id, created_at
`

type CreatePlayerParams struct {
	Name      string         `json:"name"`
	BirthDate sql.NullTime   `json:"birth_date"`
	CountryID int64          `json:"country_id"`
	Position  sql.NullString `json:"position"`
	TeamID    sql.NullInt64  `json:"team_id"`
	CreatedAt time.Time      `json:"created_at"`
}

func (q *Queries) CreatePlayer(ctx context.Context, arg CreatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, createPlayer,
		arg.Name,
		arg.BirthDate,
		arg.CountryID,
		arg.Position,
		arg.TeamID,
		arg.CreatedAt,
	)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BirthDate,
		&i.CountryID,
		&i.Position,
		&i.TeamID,
		&i.CreatedAt,
	)
	return i, err
}

const deletePlayer = `-- name: DeletePlayer :execrows
DELETE FROM players
WHERE id = $1
`

func (q *Queries) DeletePlayer(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deletePlayer, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getPlayer = `-- name: GetPlayer :one
SELECT id, name, birth_date, country_id, position, team_id, created_at FROM players
WHERE id = $1
`

func (q *Queries) GetPlayer(ctx context.Context, id int64) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayer, id)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BirthDate,
		&i.CountryID,
		&i.Position,
		&i.TeamID,
		&i.CreatedAt,
	)
	return i, err
}

const getPlayerByName = `-- name: GetPlayerByName :one
SELECT id, name, birth_date, country_id, position, team_id, created_at FROM players
WHERE name = $1
ORDER BY id
LIMIT 1
`

func (q *Queries) GetPlayerByName(ctx context.Context, name string) (Player, error) {
	row := q.db.QueryRowContext(ctx, getPlayerByName, name)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BirthDate,
		&i.CountryID,
		&i.Position,
		&i.TeamID,
		&i.CreatedAt,
	)
	return i, err
}

const listPlayers = `-- name: ListPlayers :many
SELECT id, name, birth_date, country_id, position, team_id, created_at FROM players
ORDER BY id
`

func (q *Queries) ListPlayers(ctx context.Context) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayers)
	if err != nil {
		return nil, err
	}
	return scanPlayers(rows)
}

const listPlayersByCountry = `-- name: ListPlayersByCountry :many
SELECT id, name, birth_date, country_id, position, team_id, created_at FROM players
WHERE country_id = $1
ORDER BY id
`

func (q *Queries) ListPlayersByCountry(ctx context.Context, countryID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByCountry, countryID)
	if err != nil {
		return nil, err
	}
	return scanPlayers(rows)
}

const listPlayersByTeam = `-- name: ListPlayersByTeam :many
SELECT id, name, birth_date, country_id, position, team_id, created_at FROM players
WHERE team_id = $1
ORDER BY id
`

func (q *Queries) ListPlayersByTeam(ctx context.Context, teamID int64) ([]Player, error) {
	rows, err := q.db.QueryContext(ctx, listPlayersByTeam, teamID)
	if err != nil {
		return nil, err
	}
	return scanPlayers(rows)
}

const updatePlayer = `-- name: UpdatePlayer :one
UPDATE players
SET name = $2, birth_date = $3, country_id = $4, position = $5, team_id = $6
WHERE id = $1
RETURNING id, name, birth_date, country_id, position, team_id, created_at
`

type UpdatePlayerParams struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	BirthDate sql.NullTime   `json:"birth_date"`
	CountryID int64          `json:"country_id"`
	Position  sql.NullString `json:"position"`
	TeamID    sql.NullInt64  `json:"team_id"`
}

func (q *Queries) UpdatePlayer(ctx context.Context, arg UpdatePlayerParams) (Player, error) {
	row := q.db.QueryRowContext(ctx, updatePlayer,
		arg.ID,
		arg.Name,
		arg.BirthDate,
		arg.CountryID,
		arg.Position,
		arg.TeamID,
	)
	var i Player
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.BirthDate,
		&i.CountryID,
		&i.Position,
		&i.TeamID,
		&i.CreatedAt,
	)
	return i, err
}

func scanPlayers(rows *sql.Rows) ([]Player, error) {
	defer rows.Close()
	var items []Player
	for rows.Next() {
		var i Player
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.BirthDate,
			&i.CountryID,
			&i.Position,
			&i.TeamID,
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
