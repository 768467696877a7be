package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mcdev12/footballdb/go/internal/database"
	"github.com/mcdev12/footballdb/go/internal/dbconfig"
)

// setupDatabase opens the configured store and, when migrate is set, applies the schema
func setupDatabase(ctx context.Context, migrate bool) (*sql.DB, error) {
	dbConfig := dbconfig.NewConfigFromEnv()

	db, err := database.Open(ctx, dbConfig)
	if err != nil {
		return nil, err
	}

	if migrate {
		if err := database.Migrate(ctx, db, dbConfig.Driver); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}
	return db, nil
}
