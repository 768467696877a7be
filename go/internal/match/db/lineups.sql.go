package db

import (
	"context"
	"database/sql"
	"time"
)

const createLineup = `-- name: CreateLineup :one
INSERT INTO lineups (match_id, team_id, player_id, position, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, match_id, team_id, player_id, position, created_at
`

type CreateLineupParams struct {
	MatchID   int64          `json:"match_id"`
	TeamID    int64          `json:"team_id"`
	PlayerID  int64          `json:"player_id"`
	Position  sql.NullString `json:"position"`
	CreatedAt time.Time      `json:"created_at"`
}

func (q *Queries) CreateLineup(ctx context.Context, arg CreateLineupParams) (Lineup, error) {
	row := q.db.QueryRowContext(ctx, createLineup,
		arg.MatchID,
		arg.TeamID,
		arg.PlayerID,
		arg.Position,
		arg.CreatedAt,
	)
	var i Lineup
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.TeamID,
		&i.PlayerID,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const deleteLineup = `-- name: DeleteLineup :execrows
DELETE FROM lineups
WHERE id = $1
`

func (q *Queries) DeleteLineup(ctx context.Context, id int64) (int64, error) {
	result, err := q.db.ExecContext(ctx, deleteLineup, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const findLineup = `-- name: FindLineup :one
SELECT id, match_id, team_id, player_id, position, created_at FROM lineups
WHERE match_id = $1 AND team_id = $2 AND player_id = $3
`

type FindLineupParams struct {
	MatchID  int64 `json:"match_id"`
	TeamID   int64 `json:"team_id"`
	PlayerID int64 `json:"player_id"`
}

func (q *Queries) FindLineup(ctx context.Context, arg FindLineupParams) (Lineup, error) {
	row := q.db.QueryRowContext(ctx, findLineup,
		arg.MatchID,
		arg.TeamID,
		arg.PlayerID,
	)
	var i Lineup
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.TeamID,
		&i.PlayerID,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const getLineup = `-- name: GetLineup :one
SELECT id, match_id, team_id, player_id, position, created_at FROM lineups
WHERE id = $1
`

func (q *Queries) GetLineup(ctx context.Context, id int64) (Lineup, error) {
	row := q.db.QueryRowContext(ctx, getLineup, id)
	var i Lineup
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.TeamID,
		&i.PlayerID,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

const listLineups = `-- name: ListLineups :many
SELECT id, match_id, team_id, player_id, position, created_at FROM lineups
ORDER BY id
`

func (q *Queries) ListLineups(ctx context.Context) ([]Lineup, error) {
	rows, err := q.db.QueryContext(ctx, listLineups)
	if err != nil {
		return nil, err
	}
	return scanLineups(rows)
}

const listLineupsByMatch = `-- name: ListLineupsByMatch :many
SELECT id, match_id, team_id, player_id, position, created_at FROM lineups
WHERE match_id = $1
ORDER BY team_id, id
`

func (q *Queries) ListLineupsByMatch(ctx context.Context, matchID int64) ([]Lineup, error) {
	rows, err := q.db.QueryContext(ctx, listLineupsByMatch, matchID)
	if err != nil {
		return nil, err
	}
	return scanLineups(rows)
}

const updateLineupPosition = `-- name: UpdateLineupPosition :one
UPDATE lineups
SET position = $2
WHERE id = $1
RETURNING id, match_id, team_id, player_id, position, created_at
`

type UpdateLineupPositionParams struct {
	ID       int64          `json:"id"`
	Position sql.NullString `json:"position"`
}

func (q *Queries) UpdateLineupPosition(ctx context.Context, arg UpdateLineupPositionParams) (Lineup, error) {
	row := q.db.QueryRowContext(ctx, updateLineupPosition,
		arg.ID,
		arg.Position,
	)
	var i Lineup
	err := row.Scan(
		&i.ID,
		&i.MatchID,
		&i.TeamID,
		&i.PlayerID,
		&i.Position,
		&i.CreatedAt,
	)
	return i, err
}

func scanLineups(rows *sql.Rows) ([]Lineup, error) {
	defer rows.Close()
	var items []Lineup
	for rows.Next() {
		var i Lineup
		if err := rows.Scan(
			&i.ID,
			&i.MatchID,
			&i.TeamID,
			&i.PlayerID,
			&i.Position,
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
