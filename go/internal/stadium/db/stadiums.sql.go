package db

import (
	"context"
	"database/sql"
	"time"
)

const createStadium = `-- name: CreateStadium :one
INSERT INTO stadiums (name, city, country_id, capacity, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, city, country_id, capacity, created_at
`

type CreateStadiumParams struct {
	Name      string         `json:"name"`
	City      sql.NullString `json:"city"`
	CountryID int64          `json:"country_id"`
	Capacity  sql.NullInt32  `json:"capacity"`
	CreatedAt time.Time      `json:"created_at"`
}

func (q *Queries) CreateStadium(ctx context.Context, arg CreateStadiumParams) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, createStadium,
		arg.Name,
		arg.City,
		arg.CountryID,
		arg.Capacity,
		arg.CreatedAt,
	)
	var i Stadium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.CountryID,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

const deleteStadium = `-- name: DeleteStadium :execrows
DELETE FROM stadiums
WHERE id = $1
`

func (q *Queries) DeleteStadium(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteStadium, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getStadium = `-- name: GetStadium :one
SELECT id, name, city, country_id, capacity, created_at FROM stadiums
WHERE id = $1
`

func (q *Queries) GetStadium(ctx context.Context, id int64) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, getStadium, id)
	var i Stadium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.CountryID,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

const getStadiumByName = `-- name: GetStadiumByName :one
SELECT id, name, city, country_id, capacity, created_at FROM stadiums
WHERE name = $1
`

func (q *Queries) GetStadiumByName(ctx context.Context, name string) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, getStadiumByName, name)
	var i Stadium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.CountryID,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

const listStadiums = `-- name: ListStadiums :many
SELECT id, name, city, country_id, capacity, created_at FROM stadiums
ORDER BY id
`

func (q *Queries) ListStadiums(ctx context.Context) ([]Stadium, error) {
	rows, err := q.db.QueryContext(ctx, listStadiums)
	if err != nil {
		return nil, err
	}
	return scanStadiums(rows)
}

const listStadiumsByCountry = `-- name: ListStadiumsByCountry :many
SELECT id, name, city, country_id, capacity, created_at FROM stadiums
WHERE country_id = $1
ORDER BY id
`

func (q *Queries) ListStadiumsByCountry(ctx context.Context, countryID int64) ([]Stadium, error) {
	rows, err := q.db.QueryContext(ctx, listStadiumsByCountry, countryID)
	if err != nil {
		return nil, err
	}
	return scanStadiums(rows)
}

const updateStadium = `-- name: UpdateStadium :one
UPDATE stadiums
SET name = $2, city = $3, country_id = $4, capacity = $5
WHERE id = $1
RETURNING id, name, city, country_id, capacity, created_at
`

type UpdateStadiumParams struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	City      sql.NullString `json:"city"`
	CountryID int64          `json:"country_id"`
	Capacity  sql.NullInt32  `json:"capacity"`
}

func (q *Queries) UpdateStadium(ctx context.Context, arg UpdateStadiumParams) (Stadium, error) {
	row := q.db.QueryRowContext(ctx, updateStadium,
		arg.ID,
		arg.Name,
		arg.City,
		arg.CountryID,
		arg.Capacity,
	)
	var i Stadium
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.City,
		&i.CountryID,
		&i.Capacity,
		&i.CreatedAt,
	)
	return i, err
}

func scanStadiums(rows *sql.Rows) ([]Stadium, error) {
	defer rows.Close()
	var items []Stadium
	for rows.Next() {
		var i Stadium
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.City,
			&i.CountryID,
			&i.Capacity,
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
