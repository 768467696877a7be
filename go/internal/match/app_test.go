package match

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/championship"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/country"
	"github.com/mcdev12/footballdb/go/internal/database/dbtest"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/nullable"
	"github.com/mcdev12/footballdb/go/internal/player"
	"github.com/mcdev12/footballdb/go/internal/stadium"
	"github.com/mcdev12/footballdb/go/internal/teams"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	matches       *App
	lineups       *LineupApp
	substitutions *SubstitutionApp
	feed          *changefeed.Recorder
	clock         *clockwork.FakeClock

	teams   *teams.App
	players *player.App

	brazil   *models.Country
	flamengo *models.Team
	vasco    *models.Team
	santos   *models.Team
	league   *models.Championship
	maracana *models.Stadium
}

func newFixture(t *testing.T, window time.Duration) fixture {
	t.Helper()
	ctx := context.Background()
	database := dbtest.New(t)
	clock := clockwork.NewFakeClockAt(testNow)
	v := validation.New(clock)
	feed := &changefeed.Recorder{}

	countries := country.NewApp(country.NewRepository(database, clock), v, nil)
	teamsApp := teams.NewApp(teams.NewRepository(database, clock), countries, v, nil)
	championships := championship.NewApp(championship.NewRepository(database, clock), countries, v, nil)
	stadiums := stadium.NewApp(stadium.NewRepository(database, clock), countries, v, nil)
	players := player.NewApp(player.NewRepository(database, clock), countries, teamsApp, v, nil)

	brazil, err := countries.CreateCountry(ctx, country.CreateCountryRequest{Name: "Brazil"})
	require.NoError(t, err)

	newTeam := func(name string) *models.Team {
		team, err := teamsApp.CreateTeam(ctx, teams.CreateTeamRequest{Name: name, CountryID: brazil.ID})
		require.NoError(t, err)
		return team
	}
	flamengo, vasco, santos := newTeam("Flamengo"), newTeam("Vasco da Gama"), newTeam("Santos")

	league, err := championships.CreateChampionship(ctx, championship.CreateChampionshipRequest{Name: "Brasileirão", CountryID: &brazil.ID})
	require.NoError(t, err)
	maracana, err := stadiums.CreateStadium(ctx, stadium.CreateStadiumRequest{Name: "Maracanã", CountryID: brazil.ID})
	require.NoError(t, err)

	matchesApp := NewApp(NewRepository(database, clock), References{
		Teams:         teamsApp,
		Championships: championships,
		Stadiums:      stadiums,
	}, v, feed, window)

	return fixture{
		matches:       matchesApp,
		lineups:       NewLineupApp(NewLineupRepository(database, clock), matchesApp, players, v, feed),
		substitutions: NewSubstitutionApp(NewSubstitutionRepository(database, clock), matchesApp, players, v, feed),
		feed:          feed,
		clock:         clock,
		teams:         teamsApp,
		players:       players,
		brazil:        brazil,
		flamengo:      flamengo,
		vasco:         vasco,
		santos:        santos,
		league:        league,
		maracana:      maracana,
	}
}

func (f fixture) schedule(home, away *models.Team, date time.Time) CreateMatchRequest {
	return CreateMatchRequest{
		HomeTeamID:     home.ID,
		AwayTeamID:     away.ID,
		ChampionshipID: f.league.ID,
		StadiumID:      f.maracana.ID,
		Date:           date,
	}
}

func ptr[T any](v T) *T { return &v }

func requireKind(t *testing.T, err error, kind apperr.Kind) *apperr.Error {
	t.Helper()
	require.Error(t, err)
	var e *apperr.Error
	require.True(t, errors.As(err, &e), "expected *apperr.Error, got %T: %v", err, err)
	require.Equal(t, kind, e.Kind, e.Message)
	return e
}

func TestCreateMatch_RoundTrip(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	kickoff := testNow.AddDate(0, 0, 7).Add(500 * time.Millisecond)
	created, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)
	assert.Equal(t, kickoff.Truncate(time.Second), created.Date)
	assert.Nil(t, created.HomeScore)
	assert.Equal(t, testNow, created.CreatedAt)

	got, err := f.matches.GetMatch(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	changes := f.feed.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, changefeed.Change{Entity: Entity, Op: changefeed.OpCreated, ID: created.ID, At: testNow}, changes[0])
}

func TestMatchDate_LaterThisSecondIsNotPast(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.clock.Advance(600 * time.Millisecond)

	kickoff := f.clock.Now().Add(200 * time.Millisecond)
	created, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)
	assert.Equal(t, testNow, created.Date)

	later := f.clock.Now().AddDate(0, 0, 3).Add(300 * time.Millisecond)
	moved, err := f.matches.UpdateMatch(ctx, created.ID, UpdateMatchRequest{Date: &later})
	require.NoError(t, err)
	assert.Equal(t, later.Truncate(time.Second), moved.Date)

	soon := f.clock.Now().Add(100 * time.Millisecond)
	moved, err = f.matches.UpdateMatch(ctx, created.ID, UpdateMatchRequest{Date: &soon})
	require.NoError(t, err)
	assert.Equal(t, testNow, moved.Date)

	_, err = f.matches.CreateMatch(ctx, f.schedule(f.santos, f.flamengo, f.clock.Now().Add(-time.Millisecond)))
	e := requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, "date", e.Field)
}

func TestCreateMatch_Validation(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	next := testNow.AddDate(0, 0, 7)

	tests := []struct {
		name      string
		mutate    func(req *CreateMatchRequest)
		wantField string
		wantMsg   string
	}{
		{name: "same teams", mutate: func(req *CreateMatchRequest) { req.AwayTeamID = req.HomeTeamID }, wantField: "away_team_id", wantMsg: SameTeamsMessage},
		{name: "date in the past", mutate: func(req *CreateMatchRequest) { req.Date = testNow.Add(-time.Hour) }, wantField: "date", wantMsg: "Match date cannot be in the past."},
		{name: "missing date", mutate: func(req *CreateMatchRequest) { req.Date = time.Time{} }, wantField: "date", wantMsg: "Match date cannot be empty."},
		{name: "negative score", mutate: func(req *CreateMatchRequest) { req.HomeScore = ptr(int32(-1)) }, wantField: "home_score", wantMsg: "Match home score cannot be negative."},
		{name: "missing stadium", mutate: func(req *CreateMatchRequest) { req.StadiumID = 0 }, wantField: "stadium_id", wantMsg: "Match stadium id must be a positive integer."},
		{name: "unknown home team", mutate: func(req *CreateMatchRequest) { req.HomeTeamID = 404 }, wantField: "home_team_id", wantMsg: "Team with ID 404 does not exist."},
		{name: "unknown championship", mutate: func(req *CreateMatchRequest) { req.ChampionshipID = 404 }, wantField: "championship_id", wantMsg: "Championship with ID 404 does not exist."},
		{name: "unknown stadium", mutate: func(req *CreateMatchRequest) { req.StadiumID = 404 }, wantField: "stadium_id", wantMsg: "Stadium with ID 404 does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.schedule(f.flamengo, f.vasco, next)
			tt.mutate(&req)

			_, err := f.matches.CreateMatch(ctx, req)
			e := requireKind(t, err, apperr.KindValidation)
			assert.Equal(t, tt.wantField, e.Field)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}

	all, err := f.matches.ListMatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.feed.Changes())
}

func TestCreateMatch_SchedulingConflict(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	kickoff := testNow.AddDate(0, 0, 7)

	first, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)
	second, err := f.matches.CreateMatch(ctx, f.schedule(f.santos, f.vasco, kickoff.Add(48*time.Hour)))
	require.NoError(t, err)

	t.Run("away team busy the same evening", func(t *testing.T) {
		_, err := f.matches.CreateMatch(ctx, f.schedule(f.santos, f.flamengo, kickoff.Add(6*time.Hour)))
		e := requireKind(t, err, apperr.KindConflict)
		assert.Equal(t, first.ID, e.ID)
		assert.Equal(t, fmt.Sprintf("Scheduling conflict: a team already plays match %d on %s.", first.ID, kickoff.Format(time.RFC3339)), e.Message)
	})

	t.Run("earliest overlapping match is named", func(t *testing.T) {
		_, err := f.matches.CreateMatch(ctx, f.schedule(f.vasco, f.santos, kickoff.Add(24*time.Hour)))
		e := requireKind(t, err, apperr.KindConflict)
		assert.Equal(t, first.ID, e.ID)
	})

	t.Run("window boundary is inclusive", func(t *testing.T) {
		_, err := f.matches.CreateMatch(ctx, f.schedule(f.santos, f.flamengo, kickoff.Add(-24*time.Hour)))
		e := requireKind(t, err, apperr.KindConflict)
		assert.Equal(t, first.ID, e.ID)
	})

	t.Run("outside the window", func(t *testing.T) {
		_, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.santos, kickoff.Add(96*time.Hour)))
		require.NoError(t, err)
	})

	t.Run("either team busy", func(t *testing.T) {
		_, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.santos, second.Date.Add(-12*time.Hour)))
		e := requireKind(t, err, apperr.KindConflict)
		assert.Equal(t, second.ID, e.ID)
	})
}

func TestCreateMatch_CustomWindow(t *testing.T) {
	f := newFixture(t, 2*time.Hour)
	ctx := context.Background()
	kickoff := testNow.AddDate(0, 0, 7)

	_, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)

	_, err = f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.santos, kickoff.Add(3*time.Hour)))
	require.NoError(t, err)

	_, err = f.matches.CreateMatch(ctx, f.schedule(f.vasco, f.santos, kickoff.Add(time.Hour)))
	requireKind(t, err, apperr.KindConflict)
}

func TestUpdateMatch(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	kickoff := testNow.AddDate(0, 0, 7)

	m, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)
	other, err := f.matches.CreateMatch(ctx, f.schedule(f.santos, f.vasco, kickoff.Add(72*time.Hour)))
	require.NoError(t, err)

	t.Run("moving within its own window does not conflict with itself", func(t *testing.T) {
		updated, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{Date: ptr(kickoff.Add(2 * time.Hour))})
		require.NoError(t, err)
		assert.Equal(t, kickoff.Add(2*time.Hour), updated.Date)
	})

	t.Run("moving next to another match of the same team", func(t *testing.T) {
		_, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{Date: ptr(other.Date.Add(-time.Hour))})
		e := requireKind(t, err, apperr.KindConflict)
		assert.Equal(t, other.ID, e.ID)
	})

	t.Run("scores only", func(t *testing.T) {
		updated, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{
			HomeScore: nullable.Value(int32(2)),
			AwayScore: nullable.Value(int32(1)),
		})
		require.NoError(t, err)
		assert.Equal(t, int32(2), *updated.HomeScore)
		assert.Equal(t, int32(1), *updated.AwayScore)
		assert.Equal(t, kickoff.Add(2*time.Hour), updated.Date)
	})

	t.Run("null clears a score", func(t *testing.T) {
		updated, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{AwayScore: nullable.Null[int32]()})
		require.NoError(t, err)
		assert.Nil(t, updated.AwayScore)
		assert.Equal(t, int32(2), *updated.HomeScore)
	})

	t.Run("home team equal to current away team", func(t *testing.T) {
		_, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{HomeTeamID: &f.vasco.ID})
		e := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, SameTeamsMessage, e.Message)
	})

	t.Run("swapping sides", func(t *testing.T) {
		updated, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{HomeTeamID: &f.vasco.ID, AwayTeamID: &f.flamengo.ID})
		require.NoError(t, err)
		assert.Equal(t, f.vasco.ID, updated.HomeTeamID)
		assert.Equal(t, f.flamengo.ID, updated.AwayTeamID)
	})

	t.Run("unknown stadium", func(t *testing.T) {
		_, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{StadiumID: ptr(int64(404))})
		e := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, "stadium_id", e.Field)
	})

	t.Run("past date", func(t *testing.T) {
		_, err := f.matches.UpdateMatch(ctx, m.ID, UpdateMatchRequest{Date: ptr(testNow.AddDate(0, 0, -1))})
		e := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, "date", e.Field)
	})

	t.Run("missing match wins over bad fields", func(t *testing.T) {
		_, err := f.matches.UpdateMatch(ctx, 999, UpdateMatchRequest{HomeScore: nullable.Value(int32(-3))})
		requireKind(t, err, apperr.KindNotFound)
	})
}

func TestMatchRelations(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	kickoff := testNow.AddDate(0, 0, 7)

	home, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff))
	require.NoError(t, err)
	away, err := f.matches.CreateMatch(ctx, f.schedule(f.vasco, f.flamengo, kickoff.AddDate(0, 0, 7)))
	require.NoError(t, err)
	again, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, kickoff.AddDate(0, 0, 14)))
	require.NoError(t, err)

	byTeam, err := f.matches.ListMatchesByTeam(ctx, f.flamengo.ID)
	require.NoError(t, err)
	require.Len(t, byTeam, 3)
	assert.Equal(t, []int64{home.ID, away.ID, again.ID}, []int64{byTeam[0].ID, byTeam[1].ID, byTeam[2].ID})

	idle, err := f.matches.ListMatchesByTeam(ctx, f.santos.ID)
	require.NoError(t, err)
	assert.NotNil(t, idle)
	assert.Empty(t, idle)

	derbies, err := f.matches.FindMatchesByTeams(ctx, f.flamengo.ID, f.vasco.ID)
	require.NoError(t, err)
	assert.Len(t, derbies, 2)

	reversed, err := f.matches.FindMatchesByTeams(ctx, f.vasco.ID, f.flamengo.ID)
	require.NoError(t, err)
	require.Len(t, reversed, 1)
	assert.Equal(t, away.ID, reversed[0].ID)

	_, err = f.matches.FindMatchesByTeams(ctx, f.flamengo.ID, 404)
	requireKind(t, err, apperr.KindNotFound)

	fixtures, err := f.matches.ListMatchesByChampionship(ctx, f.league.ID)
	require.NoError(t, err)
	assert.Len(t, fixtures, 3)

	hosted, err := f.matches.ListMatchesByStadium(ctx, f.maracana.ID)
	require.NoError(t, err)
	assert.Len(t, hosted, 3)

	_, err = f.matches.ListMatchesByStadium(ctx, 404)
	requireKind(t, err, apperr.KindNotFound)
	_, err = f.matches.ListMatchesByChampionship(ctx, 404)
	requireKind(t, err, apperr.KindNotFound)
}

func TestDeleteTeam_ReferencedByMatch(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, testNow.AddDate(0, 0, 7)))
	require.NoError(t, err)

	_, err = f.teams.DeleteTeam(ctx, f.vasco.ID)
	e := requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, fmt.Sprintf("Team with ID %d is still referenced by other records.", f.vasco.ID), e.Message)

	_, err = f.teams.GetTeam(ctx, f.vasco.ID)
	require.NoError(t, err)
}

func TestDeleteMatch(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	m, err := f.matches.CreateMatch(ctx, f.schedule(f.flamengo, f.vasco, testNow.AddDate(0, 0, 7)))
	require.NoError(t, err)

	deleted, err := f.matches.DeleteMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = f.matches.DeleteMatch(ctx, m.ID)
	requireKind(t, err, apperr.KindNotFound)

	_, err = f.matches.GetMatch(ctx, 0)
	e := requireKind(t, err, apperr.KindValidation)
	assert.Equal(t, "Match ID must be a positive integer.", e.Message)
}
