package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mcdev12/footballdb/go/internal/api"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "footballdb",
		Short:         "Football reference data service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", getEnv("CONFIG_PATH", "config.yaml"), "Path to the YAML config file")

	root.AddCommand(serveCmd(&configPath))
	root.AddCommand(migrateCmd(&configPath))
	return root
}

func serveCmd(configPath *string) *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the connect API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			setupLogger(os.Stderr, config)

			err = runServer(cmd.Context(), config, migrate)
			if err != nil {
				log.Error().Err(err).Msg("Server failed")
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", getEnvAsBool("AUTO_MIGRATE", false), "Apply the schema before serving")
	return cmd
}

func migrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			setupLogger(os.Stderr, config)

			db, err := setupDatabase(cmd.Context(), true)
			if err != nil {
				log.Error().Err(err).Msg("Migration failed")
				return err
			}
			return db.Close()
		},
	}
}

// setupLogger configures the global zerolog logger from config
func setupLogger(out io.Writer, config *Config) {
	level, err := zerolog.ParseLevel(config.Log.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.Log.Format == "json" {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out})
}

// setupChangeFeed connects to NATS when configured and adds the websocket
// hub when the stream is enabled. With neither, changes are dropped.
func setupChangeFeed(config *Config) (changefeed.Publisher, *changefeed.Hub, func(), error) {
	var (
		feed    changefeed.Fanout
		hub     *changefeed.Hub
		closeFn = func() {}
	)

	if config.ChangeFeed.NATSURL != "" {
		natsConfig := changefeed.DefaultNATSConfig()
		natsConfig.URL = config.ChangeFeed.NATSURL
		natsConfig.SubjectPrefix = config.ChangeFeed.SubjectPrefix

		publisher, err := changefeed.NewNATSPublisher(natsConfig)
		if err != nil {
			return nil, nil, nil, err
		}
		feed = append(feed, publisher)
		closeFn = func() {
			if err := publisher.Close(); err != nil {
				log.Warn().Err(err).Msg("Failed to close change feed")
			}
		}
	}

	if config.ChangeFeed.Stream {
		hub = changefeed.NewHub(changefeed.DefaultHubConfig())
		feed = append(feed, hub)
	}

	if len(feed) == 0 {
		log.Info().Msg("Change feed disabled (no NATS_URL, stream off)")
		return changefeed.NoopPublisher{}, nil, closeFn, nil
	}
	return feed, hub, closeFn, nil
}

func runServer(ctx context.Context, config *Config, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := setupDatabase(ctx, migrate)
	if err != nil {
		return err
	}
	defer db.Close()

	feed, hub, closeFeed, err := setupChangeFeed(config)
	if err != nil {
		return fmt.Errorf("failed to set up change feed: %w", err)
	}
	defer closeFeed()

	services := setupServices(db, clockwork.NewRealClock(), feed, config)
	router := api.NewRouter(api.Config{
		AllowedOrigins:    config.Server.AllowedOrigins,
		RateLimitEnabled:  config.Server.RateLimit.Enabled,
		RateLimitRequests: config.Server.RateLimit.Requests,
		RateLimitWindow:   config.Server.RateLimit.Window,
	}, db, services.All()...)
	if hub != nil {
		go hub.Run(ctx)
		router.Handle("/changes", hub)
	}

	return serve(ctx, setupServer(config, router), config.Server.ShutdownTimeout)
}
