package db

import (
	"context"
	"database/sql"
	"time"
)

const createTeam = `-- name: CreateTeam :one
INSERT INTO teams (name, nickname, city, country_id, founding_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, nickname, city, country_id, founding_date, created_at
`

type CreateTeamParams struct {
	Name         string         `json:"name"`
	Nickname     sql.NullString `json:"nickname"`
	City         sql.NullString `json:"city"`
	CountryID    int64          `json:"country_id"`
	FoundingDate sql.NullTime   `json:"founding_date"`
	CreatedAt    time.Time      `json:"created_at"`
}

func (q *Queries) CreateTeam(ctx context.Context, arg CreateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, createTeam,
		arg.Name,
		arg.Nickname,
		arg.City,
		arg.CountryID,
		arg.FoundingDate,
		arg.CreatedAt,
	)
	var i Team
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Nickname,
		&i.City,
		&i.CountryID,
		&i.FoundingDate,
		&i.CreatedAt,
	)
	return i, err
}

const deleteTeam = `-- name: DeleteTeam :execrows
DELETE FROM teams
WHERE id = $1
`

func (q *Queries) DeleteTeam(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteTeam, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getTeam = `-- name: GetTeam :one
SELECT id, name, nickname, city, country_id, founding_date, created_at FROM teams
WHERE id = $1
`

func (q *Queries) GetTeam(ctx context.Context, id int64) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeam, id)
	var i Team
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Nickname,
		&i.City,
		&i.CountryID,
		&i.FoundingDate,
		&i.CreatedAt,
	)
	return i, err
}

const getTeamByName = `-- name: GetTeamByName :one
SELECT id, name, nickname, city, country_id, founding_date, created_at FROM teams
WHERE name = $1
`

func (q *Queries) GetTeamByName(ctx context.Context, name string) (Team, error) {
	row := q.db.QueryRowContext(ctx, getTeamByName, name)
	var i Team
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Nickname,
		&i.City,
		&i.CountryID,
		&i.FoundingDate,
		&i.CreatedAt,
	)
	return i, err
}

const listAllTeams = `-- name: ListAllTeams :many
SELECT id, name, nickname, city, country_id, founding_date, created_at FROM teams
ORDER BY id
`

func (q *Queries) ListAllTeams(ctx context.Context) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listAllTeams)
	if err != nil {
		return nil, err
	}
	return scanTeams(rows)
}

const listTeamsByCountry = `-- name: ListTeamsByCountry :many
SELECT id, name, nickname, city, country_id, founding_date, created_at FROM teams
WHERE country_id = $1
ORDER BY id
`

func (q *Queries) ListTeamsByCountry(ctx context.Context, countryID int64) ([]Team, error) {
	rows, err := q.db.QueryContext(ctx, listTeamsByCountry, countryID)
	if err != nil {
		return nil, err
	}
	return scanTeams(rows)
}

const updateTeam = `-- name: UpdateTeam :one
UPDATE teams
SET name = $2, nickname = $3, city = $4, country_id = $5, founding_date = $6
WHERE id = $1
RETURNING id, name, nickname, city, country_id, founding_date, created_at
`

type UpdateTeamParams struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	Nickname     sql.NullString `json:"nickname"`
	City         sql.NullString `json:"city"`
	CountryID    int64          `json:"country_id"`
	FoundingDate sql.NullTime   `json:"founding_date"`
}

func (q *Queries) UpdateTeam(ctx context.Context, arg UpdateTeamParams) (Team, error) {
	row := q.db.QueryRowContext(ctx, updateTeam,
		arg.ID,
		arg.Name,
		arg.Nickname,
		arg.City,
		arg.CountryID,
		arg.FoundingDate,
	)
	var i Team
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Nickname,
		&i.City,
		&i.CountryID,
		&i.FoundingDate,
		&i.CreatedAt,
	)
	return i, err
}

func scanTeams(rows *sql.Rows) ([]Team, error) {
	defer rows.Close()
	var items []Team
	for rows.Next() {
		var i Team
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.Nickname,
			&i.City,
			&i.CountryID,
			&i.FoundingDate,
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
