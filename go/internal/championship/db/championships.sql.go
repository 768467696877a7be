package db

import (
	"context"
	"database/sql"
	"time"
)

const createChampionship = `-- name: CreateChampionship :one
INSERT INTO championships (name, country_id, type, season, start_date, end_date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, name, country_id, type, season, start_date, end_date, created_at
`

type CreateChampionshipParams struct {
	Name      string         `json:"name"`
	CountryID sql.NullInt64  `json:"country_id"`
	Type      sql.NullString `json:"type"`
	Season    sql.NullString `json:"season"`
	StartDate sql.NullTime   `json:"start_date"`
	EndDate   sql.NullTime   `json:"end_date"`
	CreatedAt time.Time      `json:"created_at"`
}

func (q *Queries) CreateChampionship(ctx context.Context, arg CreateChampionshipParams) (Championship, error) {
	row := q.db.QueryRowContext(ctx, createChampionship,
		arg.Name,
		arg.CountryID,
		arg.Type,
		arg.Season,
		arg.StartDate,
		arg.EndDate,
		arg.CreatedAt,
	)
	var i Championship
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CountryID,
		&i.Type,
		&i.Season,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
	)
	return i, err
}

const deleteChampionship = `-- name: DeleteChampionship :execrows
DELETE FROM championships
WHERE id = $1
`

func (q *Queries) DeleteChampionship(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteChampionship, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getChampionship = `-- name: GetChampionship :one
SELECT id, name, country_id, type, season, start_date, end_date, created_at FROM championships
WHERE id = $1
`

func (q *Queries) GetChampionship(ctx context.Context, id int64) (Championship, error) {
	row := q.db.QueryRowContext(ctx, getChampionship, id)
	var i Championship
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CountryID,
		&i.Type,
		&i.Season,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
	)
	return i, err
}

const getChampionshipByName = `-- name: GetChampionshipByName :one
SELECT id, name, country_id, type, season, start_date, end_date, created_at FROM championships
WHERE name = $1
`

func (q *Queries) GetChampionshipByName(ctx context.Context, name string) (Championship, error) {
	row := q.db.QueryRowContext(ctx, getChampionshipByName, name)
	var i Championship
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CountryID,
		&i.Type,
		&i.Season,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
	)
	return i, err
}

const listChampionships = `-- name: ListChampionships :many
SELECT id, name, country_id, type, season, start_date, end_date, created_at FROM championships
ORDER BY id
`

func (q *Queries) ListChampionships(ctx context.Context) ([]Championship, error) {
	rows, err := q.db.QueryContext(ctx, listChampionships)
	if err != nil {
		return nil, err
	}
	return scanChampionships(rows)
}

const listChampionshipsByCountry = `-- name: ListChampionshipsByCountry :many
SELECT id, name, country_id, type, season, start_date, end_date, created_at FROM championships
WHERE country_id = $1
ORDER BY id
`

func (q *Queries) ListChampionshipsByCountry(ctx context.Context, countryID int64) ([]Championship, error) {
	rows, err := q.db.QueryContext(ctx, listChampionshipsByCountry, countryID)
	if err != nil {
		return nil, err
	}
	return scanChampionships(rows)
}

const updateChampionship = `-- name: UpdateChampionship :one
UPDATE championships
SET name = $2, country_id = $3, type = $4, season = $5, start_date = $6, end_date = $7
WHERE id = $1
RETURNING id, name, country_id, type, season, start_date, end_date, created_at
`

type UpdateChampionshipParams struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	CountryID sql.NullInt64  `json:"country_id"`
	Type      sql.NullString `json:"type"`
	Season    sql.NullString `json:"season"`
	StartDate sql.NullTime   `json:"start_date"`
	EndDate   sql.NullTime   `json:"end_date"`
}

func (q *Queries) UpdateChampionship(ctx context.Context, arg UpdateChampionshipParams) (Championship, error) {
	row := q.db.QueryRowContext(ctx, updateChampionship,
		arg.ID,
		arg.Name,
		arg.CountryID,
		arg.Type,
		arg.Season,
		arg.StartDate,
		arg.EndDate,
	)
	var i Championship
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.CountryID,
		&i.Type,
		&i.Season,
		&i.StartDate,
		&i.EndDate,
		&i.CreatedAt,
	)
	return i, err
}

func scanChampionships(rows *sql.Rows) ([]Championship, error) {
	defer rows.Close()
	var items []Championship
	for rows.Next() {
		var i Championship
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.CountryID,
			&i.Type,
			&i.Season,
			&i.StartDate,
			&i.EndDate,
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
