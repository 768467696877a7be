// Command seed_reference loads countries, teams and stadiums from a JSON
// snapshot into Postgres. Rows whose name already exists are left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcdev12/footballdb/go/internal/dbconfig"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	_ = godotenv.Load()

	var path string
	root := &cobra.Command{
		Use:           "seed_reference",
		Short:         "Seed reference countries, teams and stadiums",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), path)
		},
	}
	root.Flags().StringVar(&path, "file", "go/internal/assets/reference.json", "Path to the JSON snapshot")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("Seed failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, path string) error {
	snapshot, err := loadSnapshot(path)
	if err != nil {
		return err
	}

	cfg := dbconfig.NewConfigFromEnv()
	if cfg.IsSQLite() {
		return fmt.Errorf("seed_reference needs a Postgres database, DB_DRIVER is %q", cfg.Driver)
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer pool.Close()

	for _, result := range seedAll(ctx, pool, snapshot, time.Now()) {
		fmt.Println(result)
	}
	return nil
}
