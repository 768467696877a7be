//go:build integration

package database_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/championship"
	"github.com/mcdev12/footballdb/go/internal/country"
	"github.com/mcdev12/footballdb/go/internal/database"
	"github.com/mcdev12/footballdb/go/internal/dbconfig"
	"github.com/mcdev12/footballdb/go/internal/match"
	"github.com/mcdev12/footballdb/go/internal/sqlutil"
	"github.com/mcdev12/footballdb/go/internal/stadium"
	"github.com/mcdev12/footballdb/go/internal/teams"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

const (
	postgresImage         = "postgres:16-alpine"
	postgresPort          = "5432/tcp"
	containerStartTimeout = 90 * time.Second
)

// startPostgres runs a throwaway Postgres and returns a config pointing at it
func startPostgres(t *testing.T) dbconfig.Config {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "footballdb",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(containerStartTimeout),
		},
		Started: true,
	})
	require.NoError(t, err, "Failed to start Postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate Postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, postgresPort)
	require.NoError(t, err)
	port, err := strconv.Atoi(mapped.Port())
	require.NoError(t, err)

	return dbconfig.Config{
		Host:         host,
		Port:         port,
		User:         "postgres",
		Password:     "postgres",
		Database:     "footballdb",
		SSLMode:      "disable",
		MaxOpenConns: 4,
	}
}

func TestPostgres(t *testing.T) {
	base := startPostgres(t)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	for _, driver := range []string{dbconfig.DriverPostgres, dbconfig.DriverPgx} {
		t.Run(driver, func(t *testing.T) {
			ctx := context.Background()
			cfg := base
			cfg.Driver = driver

			db, err := database.Open(ctx, cfg)
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })

			require.NoError(t, database.Migrate(ctx, db, driver))
			require.NoError(t, database.Migrate(ctx, db, driver))

			clock := clockwork.NewFakeClockAt(now)
			v := validation.New(clock)
			countryRepo := country.NewRepository(db, clock)
			countries := country.NewApp(countryRepo, v, nil)
			teamsApp := teams.NewApp(teams.NewRepository(db, clock), countries, v, nil)
			championships := championship.NewApp(championship.NewRepository(db, clock), countries, v, nil)
			stadiums := stadium.NewApp(stadium.NewRepository(db, clock), countries, v, nil)
			matches := match.NewApp(match.NewRepository(db, clock), match.References{
				Teams:         teamsApp,
				Championships: championships,
				Stadiums:      stadiums,
			}, v, nil, 0)

			name := "Brazil " + driver
			brazil, err := countries.CreateCountry(ctx, country.CreateCountryRequest{Name: name})
			require.NoError(t, err)
			assert.Equal(t, now, brazil.CreatedAt)

			t.Run("unique violation is classified", func(t *testing.T) {
				_, err := countryRepo.Create(ctx, country.CreateCountryRequest{Name: name})
				require.Error(t, err)
				assert.True(t, sqlutil.IsUniqueViolation(err), "%v", err)
			})

			home, err := teamsApp.CreateTeam(ctx, teams.CreateTeamRequest{Name: "Home " + driver, CountryID: brazil.ID})
			require.NoError(t, err)
			away, err := teamsApp.CreateTeam(ctx, teams.CreateTeamRequest{Name: "Away " + driver, CountryID: brazil.ID})
			require.NoError(t, err)
			league, err := championships.CreateChampionship(ctx, championship.CreateChampionshipRequest{Name: "League " + driver})
			require.NoError(t, err)
			ground, err := stadiums.CreateStadium(ctx, stadium.CreateStadiumRequest{Name: "Ground " + driver, CountryID: brazil.ID})
			require.NoError(t, err)

			kickoff := now.AddDate(0, 0, 7)
			req := match.CreateMatchRequest{
				HomeTeamID:     home.ID,
				AwayTeamID:     away.ID,
				ChampionshipID: league.ID,
				StadiumID:      ground.ID,
				Date:           kickoff,
			}
			first, err := matches.CreateMatch(ctx, req)
			require.NoError(t, err)
			assert.True(t, kickoff.Equal(first.Date))

			req.Date = kickoff.Add(23 * time.Hour)
			_, err = matches.CreateMatch(ctx, req)
			require.Error(t, err)
			assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

			t.Run("delete of a referenced row is a validation error", func(t *testing.T) {
				_, err := countries.DeleteCountry(ctx, brazil.ID)
				require.Error(t, err)
				assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
				assert.Contains(t, err.Error(), "still referenced")
			})

			t.Run("cascades and set null", func(t *testing.T) {
				deleted, err := matches.DeleteMatch(ctx, first.ID)
				require.NoError(t, err)
				assert.True(t, deleted)

				deleted, err = teamsApp.DeleteTeam(ctx, home.ID)
				require.NoError(t, err)
				assert.True(t, deleted)
			})
		})
	}
}
