package db

import (
	"context"
	"time"
)

const createCountry = `-- name: CreateCountry :one
INSERT INTO countries (name, created_at)
VALUES ($1, $2)
RETURNING id, name, created_at
`

type CreateCountryParams struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (q *Queries) CreateCountry(ctx context.Context, arg CreateCountryParams) (Country, error) {
	row := q.db.QueryRowContext(ctx, createCountry, arg.Name, arg.CreatedAt)
	var i Country
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const deleteCountry = `-- name: DeleteCountry :execrows
DELETE FROM countries
WHERE id = $1
`

func (q *Queries) DeleteCountry(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteCountry, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getCountry = `-- name: GetCountry :one
SELECT id, name, created_at FROM countries
WHERE id = $1
`

func (q *Queries) GetCountry(ctx context.Context, id int64) (Country, error) {
	row := q.db.QueryRowContext(ctx, getCountry, id)
	var i Country
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const getCountryByName = `-- name: GetCountryByName :one
SELECT id, name, created_at FROM countries
WHERE name = $1
`

func (q *Queries) GetCountryByName(ctx context.Context, name string) (Country, error) {
	row := q.db.QueryRowContext(ctx, getCountryByName, name)
	var i Country
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}

const listCountries = `-- name: ListCountries :many
SELECT id, name, created_at FROM countries
ORDER BY id
`

func (q *Queries) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx, listCountries)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Country
	for rows.Next() {
		var i Country
		if err := rows.Scan(&i.ID, &i.Name, &i.CreatedAt); err != nil {
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

const updateCountry = `-- name: UpdateCountry :one
UPDATE countries
SET name = $2
WHERE id = $1
RETURNING id, name, created_at
`

type UpdateCountryParams struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (q *Queries) UpdateCountry(ctx context.Context, arg UpdateCountryParams) (Country, error) {
	row := q.db.QueryRowContext(ctx, updateCountry, arg.ID, arg.Name)
	var i Country
	err := row.Scan(&i.ID, &i.Name, &i.CreatedAt)
	return i, err
}
