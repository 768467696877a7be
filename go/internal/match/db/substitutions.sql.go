package db

import (
	"context"
	"database/sql"
	"time"
)

const createSubstitution = `-- name: CreateSubstitution :one
INSERT INTO substitutions (match_id, player_out_id, player_in_id, minute, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, match_id, player_out_id, player_in_id, minute, created_at
`

type CreateSubstitutionParams struct {
	MatchID     int64     `json:"match_id"`
	PlayerOutID int64     `json:"player_out_id"`
	PlayerInID  int64     `json:"player_in_id"`
	Minute      int32     `json:"minute"`
	CreatedAt   time.Time `json:"created_at"`
}

func (q *Queries) CreateSubstitution(ctx context.Context, arg CreateSubstitutionParams) (Substitution, error) {
	row := q.db.QueryRowContext(ctx, createSubstitution,
		arg.MatchID,
		arg.PlayerOutID,
		arg.PlayerInID,
		arg.Minute,
		arg.CreatedAt,
	)
	var i Substitution
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.PlayerOutID,
		&i.PlayerInID,
		&i.Minute,
		&i.CreatedAt,
	)
	return i, err
}

const deleteSubstitution = `-- name: DeleteSubstitution :execrows
DELETE FROM substitutions
WHERE id = $1
`

func (q *Queries) DeleteSubstitution(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteSubstitution, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const getSubstitution = `-- name: GetSubstitution :one
SELECT id, match_id, player_out_id, player_in_id, minute, created_at FROM substitutions
WHERE id = $1
`

func (q *Queries) GetSubstitution(ctx context.Context, id int64) (Substitution, error) {
	row := q.db.QueryRowContext(ctx, getSubstitution, id)
	var i Substitution
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.PlayerOutID,
		&i.PlayerInID,
		&i.Minute,
		&i.CreatedAt,
	)
	return i, err
}

const listSubstitutions = `-- name: ListSubstitutions :many
SELECT id, match_id, player_out_id, player_in_id, minute, created_at FROM substitutions
ORDER BY id
`

func (q *Queries) ListSubstitutions(ctx context.Context) ([]Substitution, error) {
	rows, err := q.db.QueryContext(ctx, listSubstitutions)
	if err != nil {
		return nil, err
	}
	return scanSubstitutions(rows)
}

const listSubstitutionsByMatch = `-- name: ListSubstitutionsByMatch :many
SELECT id, match_id, player_out_id, player_in_id, minute, created_at FROM substitutions
WHERE match_id = $1
ORDER BY minute, id
`

func (q *Queries) ListSubstitutionsByMatch(ctx context.Context, matchID int64) ([]Substitution, error) {
	rows, err := q.db.QueryContext(ctx, listSubstitutionsByMatch, matchID)
	if err != nil {
		return nil, err
	}
	return scanSubstitutions(rows)
}

const updateSubstitutionMinute = `-- name: UpdateSubstitutionMinute :one
UPDATE substitutions
SET minute = $2
WHERE id = $1
RETURNING id, match_id, player_out_id, player_in_id, minute, created_at
`

type UpdateSubstitutionMinuteParams struct {
	ID     int64 `json:"id"`
	Minute int32 `json:"minute"`
}

func (q *Queries) UpdateSubstitutionMinute(ctx context.Context, arg UpdateSubstitutionMinuteParams) (Substitution, error) {
	row := q.db.QueryRowContext(ctx, updateSubstitutionMinute,
		arg.ID,
		arg.Minute,
	)
	var i Substitution
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.PlayerOutID,
		&i.PlayerInID,
		&i.Minute,
		&i.CreatedAt,
	)
	return i, err
}

func scanSubstitutions(rows *sql.Rows) ([]Substitution, error) {
	defer rows.Close()
	var items []Substitution
	for rows.Next() {
		var i Substitution
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.PlayerOutID,
			&i.PlayerInID,
			&i.Minute,
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
