package sqlutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Postgres(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Violation
	}{
		{
			name: "lib/pq unique",
			err:  &pq.Error{Code: "23505", Constraint: "uq_team_name"},
			want: Violation{Kind: UniqueViolation, Constraint: "uq_team_name"},
		},
		{
			name: "lib/pq foreign key wrapped",
			err:  fmt.Errorf("failed to create team: %w", &pq.Error{Code: "23503", Constraint: "teams_country_id_fkey"}),
			want: Violation{Kind: ForeignKeyViolation, Constraint: "teams_country_id_fkey"},
		},
		{
			name: "pgx unique",
			err:  &pgconn.PgError{Code: "23505", ConstraintName: "uq_country_name"},
			want: Violation{Kind: UniqueViolation, Constraint: "uq_country_name"},
		},
		{
			name: "pgx check",
			err:  &pgconn.PgError{Code: "23514", ConstraintName: "ck_match_teams_differ"},
			want: Violation{Kind: CheckViolation, Constraint: "ck_match_teams_differ"},
		},
		{
			name: "pgx other class",
			err:  &pgconn.PgError{Code: "08006"},
			want: Violation{},
		},
		{name: "plain", err: errors.New("boom"), want: Violation{}},
		{name: "nil", err: nil, want: Violation{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE parents (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE);
		CREATE TABLE children (id INTEGER PRIMARY KEY, parent_id INTEGER NOT NULL REFERENCES parents(id));
		INSERT INTO parents (id, name) VALUES (1, 'Brazil');
	`)
	require.NoError(t, err)
	return db
}

func TestClassify_SQLite(t *testing.T) {
	db := openSQLite(t)
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `INSERT INTO parents (name) VALUES ('Brazil')`)
	require.Error(t, err)
	v := Classify(err)
	assert.Equal(t, UniqueViolation, v.Kind)
	assert.Equal(t, "parents.name", v.Constraint)
	assert.True(t, IsUniqueViolation(err))

	_, err = db.ExecContext(ctx, `INSERT INTO children (parent_id) VALUES (99)`)
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.Empty(t, Classify(err).Constraint)

	_, err = db.ExecContext(ctx, `INSERT INTO parents (name) VALUES (NULL)`)
	require.Error(t, err)
	assert.Equal(t, NotNullViolation, Classify(err).Kind)
}
