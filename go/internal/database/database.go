// Package database opens the configured store and applies the embedded schema.
package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/mcdev12/footballdb/go/internal/dbconfig"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Open connects to the database described by cfg and verifies the connection.
func Open(ctx context.Context, cfg dbconfig.Config) (*sql.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create database connection: %w", err)
	}

	if cfg.IsSQLite() {
		// one writer; an in-memory database also lives only as long as its single connection
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns / 2)
		db.SetConnMaxIdleTime(10 * time.Minute)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.IsSQLite() {
		log.Info().Str("driver", cfg.Driver).Str("path", cfg.Path).Msg("Connected to database")
	} else {
		log.Info().
			Str("driver", cfg.Driver).
			Str("user", cfg.User).
			Str("host", cfg.Host).
			Int("port", cfg.Port).
			Str("database", cfg.Database).
			Msg("Connected to database")
	}
	return db, nil
}

// Migrate creates any missing tables and indexes. It is idempotent.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	stmts, err := schemaStatements(driver)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %q: %w", firstLine(stmt), err)
		}
	}

	log.Info().Str("driver", driver).Int("statements", len(stmts)).Msg("Schema applied")
	return nil
}

func schemaStatements(driver string) ([]string, error) {
	file := "schema/postgres.sql"
	if driver == dbconfig.DriverSQLite {
		file = "schema/sqlite.sql"
	}

	raw, err := schemaFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	var stmts []string
	for _, part := range strings.Split(string(raw), ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts, nil
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
