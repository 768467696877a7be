// Package dbtest provides a migrated in-memory SQLite database for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mcdev12/footballdb/go/internal/database"
	"github.com/mcdev12/footballdb/go/internal/dbconfig"
)

// New returns a fresh, migrated in-memory database closed at the end of the test.
func New(t testing.TB) *sql.DB {
	t.Helper()

	ctx := context.Background()
	cfg := dbconfig.Config{Driver: dbconfig.DriverSQLite, Path: ":memory:"}

	db, err := database.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(ctx, db, cfg.Driver); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return db
}
