package sqlutil

import (
	"context"
	"database/sql"
)

// Run executes fn inside a *sql.Tx.
// If fn returns an error (or panics) the tx rolls back, else it commits.
func Run[T any](
	ctx context.Context,
	db *sql.DB,
	newQueries func(*sql.Tx) *T,
	fn func(q *T) error,
) error {
	tx, err := db.BeginTx(ctx, nil) // BEGIN
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	q := newQueries(tx) // bind Queries to this tx
	if err := fn(q); err != nil {
		_ = tx.Rollback() // ROLLBACK
		return err
	}
	return tx.Commit() // COMMIT
}
