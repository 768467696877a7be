package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/footballdb/go/internal/api"
	"github.com/mcdev12/footballdb/go/internal/championship"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/country"
	"github.com/mcdev12/footballdb/go/internal/match"
	"github.com/mcdev12/footballdb/go/internal/player"
	"github.com/mcdev12/footballdb/go/internal/stadium"
	"github.com/mcdev12/footballdb/go/internal/teams"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

type Services struct {
	Countries     *country.Service
	Championships *championship.Service
	Teams         *teams.Service
	Players       *player.Service
	Stadiums      *stadium.Service
	Matches       *match.Service
}

// All returns every service for mounting
func (s *Services) All() []api.Service {
	return []api.Service{s.Countries, s.Championships, s.Teams, s.Players, s.Stadiums, s.Matches}
}

func setupServices(database *sql.DB, clock clockwork.Clock, feed changefeed.Publisher, config *Config) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Service layer
	v := validation.New(clock)

	// Countries
	countryRepo := country.NewRepository(database, clock)
	countryApp := country.NewApp(countryRepo, v, feed)

	// Championships
	championshipRepo := championship.NewRepository(database, clock)
	championshipApp := championship.NewApp(championshipRepo, countryApp, v, feed)

	// Teams and participations
	teamsRepo := teams.NewRepository(database, clock)
	teamsApp := teams.NewApp(teamsRepo, countryApp, v, feed)
	participationRepo := teams.NewParticipationRepository(database, clock)
	participationApp := teams.NewParticipationApp(participationRepo, teamsApp, championshipApp, v, feed)

	// Stadiums
	stadiumRepo := stadium.NewRepository(database, clock)
	stadiumApp := stadium.NewApp(stadiumRepo, countryApp, v, feed)

	// Players
	playerRepo := player.NewRepository(database, clock)
	playerApp := player.NewApp(playerRepo, countryApp, teamsApp, v, feed)

	// Matches, lineups and substitutions
	matchRepo := match.NewRepository(database, clock)
	matchApp := match.NewApp(matchRepo, match.References{
		Teams:         teamsApp,
		Championships: championshipApp,
		Stadiums:      stadiumApp,
	}, v, feed, config.Match.ConflictWindow)
	lineupApp := match.NewLineupApp(match.NewLineupRepository(database, clock), matchApp, playerApp, v, feed)
	substitutionApp := match.NewSubstitutionApp(match.NewSubstitutionRepository(database, clock), matchApp, playerApp, v, feed)

	return &Services{
		Countries: country.NewService(countryApp, country.Relations{
			Teams:         teamsApp,
			Players:       playerApp,
			Stadiums:      stadiumApp,
			Championships: championshipApp,
		}),
		Championships: championship.NewService(championshipApp, championship.Relations{
			Participations: participationApp,
			Matches:        matchApp,
		}),
		Teams: teams.NewService(teamsApp, participationApp, teams.Relations{
			Players: playerApp,
			Matches: matchApp,
		}),
		Players:  player.NewService(playerApp),
		Stadiums: stadium.NewService(stadiumApp, matchApp),
		Matches:  match.NewService(matchApp, lineupApp, substitutionApp),
	}
}
