package player

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/country"
	"github.com/mcdev12/footballdb/go/internal/database/dbtest"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/nullable"
	"github.com/mcdev12/footballdb/go/internal/teams"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	players *App
	repo    *Repository
	feed    *changefeed.Recorder
	teams   *teams.App
	brazil  *models.Country
	santos  *models.Team
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	database := dbtest.New(t)
	clock := clockwork.NewFakeClockAt(testNow)
	v := validation.New(clock)
	feed := &changefeed.Recorder{}

	countries := country.NewApp(country.NewRepository(database, clock), v, nil)
	teamsApp := teams.NewApp(teams.NewRepository(database, clock), countries, v, nil)
	repo := NewRepository(database, clock)

	brazil, err := countries.CreateCountry(ctx, country.CreateCountryRequest{Name: "Brazil"})
	require.NoError(t, err)
	santos, err := teamsApp.CreateTeam(ctx, teams.CreateTeamRequest{Name: "Santos", CountryID: brazil.ID})
	require.NoError(t, err)

	return fixture{
		players: NewApp(repo, countries, teamsApp, v, feed),
		repo:    repo,
		feed:    feed,
		teams:   teamsApp,
		brazil:  brazil,
		santos:  santos,
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

func TestCreatePlayer_RoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	born := time.Date(1940, 10, 23, 0, 0, 0, 0, time.UTC)
	created, err := f.players.CreatePlayer(ctx, CreatePlayerRequest{
		Name:      " Pelé ",
		BirthDate: &born,
		CountryID: f.brazil.ID,
		Position:  ptr(" Forward "),
		TeamID:    &f.santos.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Pelé", created.Name)
	assert.Equal(t, "Forward", *created.Position)
	assert.Equal(t, testNow, created.CreatedAt)

	got, err := f.players.GetPlayer(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.True(t, born.Equal(*got.BirthDate))
}

func TestCreatePlayer_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		req       CreatePlayerRequest
		wantField string
		wantMsg   string
	}{
		{name: "short name", req: CreatePlayerRequest{Name: "Zé", CountryID: f.brazil.ID}, wantField: "name", wantMsg: "Player name must be at least 3 characters."},
		{name: "long name", req: CreatePlayerRequest{Name: strings.Repeat("x", 101), CountryID: f.brazil.ID}, wantField: "name", wantMsg: "Player name cannot exceed 100 characters."},
		{name: "born tomorrow", req: CreatePlayerRequest{Name: "Ronaldo", BirthDate: ptr(testNow.AddDate(0, 0, 1)), CountryID: f.brazil.ID}, wantField: "birth_date", wantMsg: "Player birth date cannot be in the future."},
		{name: "missing country", req: CreatePlayerRequest{Name: "Ronaldo"}, wantField: "country_id", wantMsg: "Player country id must be a positive integer."},
		{name: "unknown country", req: CreatePlayerRequest{Name: "Ronaldo", CountryID: 77}, wantField: "country_id", wantMsg: "Country with ID 77 does not exist."},
		{name: "long position", req: CreatePlayerRequest{Name: "Ronaldo", CountryID: f.brazil.ID, Position: ptr(strings.Repeat("p", 51))}, wantField: "position", wantMsg: "Player position cannot exceed 50 characters."},
		{name: "zero team", req: CreatePlayerRequest{Name: "Ronaldo", CountryID: f.brazil.ID, TeamID: ptr(int64(0))}, wantField: "team_id", wantMsg: "Player team id must be a positive integer."},
		{name: "unknown team", req: CreatePlayerRequest{Name: "Ronaldo", CountryID: f.brazil.ID, TeamID: ptr(int64(88))}, wantField: "team_id", wantMsg: "Team with ID 88 does not exist."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.players.CreatePlayer(ctx, tt.req)
			e := requireKind(t, err, apperr.KindValidation)
			assert.Equal(t, tt.wantField, e.Field)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}

	all, err := f.players.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Empty(t, f.feed.Changes())
}

func TestGetPlayerByName_ReturnsLowestID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first, err := f.players.CreatePlayer(ctx, CreatePlayerRequest{Name: "Ronaldinho", CountryID: f.brazil.ID})
	require.NoError(t, err)
	_, err = f.players.CreatePlayer(ctx, CreatePlayerRequest{Name: "Ronaldinho", CountryID: f.brazil.ID})
	require.NoError(t, err)

	got, err := f.players.GetPlayerByName(ctx, "Ronaldinho")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = f.players.GetPlayerByName(ctx, "Kaká")
	requireKind(t, err, apperr.KindNotFound)

	_, err = f.players.GetPlayerByName(ctx, "   ")
	requireKind(t, err, apperr.KindValidation)
}

func TestCreatePlayers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("all or nothing on validation", func(t *testing.T) {
		_, err := f.players.CreatePlayers(ctx, []CreatePlayerRequest{
			{Name: "Cafu", CountryID: f.brazil.ID},
			{Name: "RC", CountryID: f.brazil.ID},
		})
		e := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, "name", e.Field)
		assert.Equal(t, "item 1: Player name must be at least 3 characters.", e.Message)

		all, err := f.players.ListPlayers(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("empty batch", func(t *testing.T) {
		_, err := f.players.CreatePlayers(ctx, nil)
		requireKind(t, err, apperr.KindValidation)
	})

	t.Run("stores every item", func(t *testing.T) {
		created, err := f.players.CreatePlayers(ctx, []CreatePlayerRequest{
			{Name: "Cafu", CountryID: f.brazil.ID},
			{Name: "Roberto Carlos", CountryID: f.brazil.ID, TeamID: &f.santos.ID},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Less(t, created[0].ID, created[1].ID)
		assert.Len(t, f.feed.Changes(), 2)
	})
}

func TestRepository_CreateManyRollsBack(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, failed, err := f.repo.CreateMany(ctx, []CreatePlayerRequest{
		{Name: "Romário", CountryID: f.brazil.ID},
		{Name: "Bebeto", CountryID: f.brazil.ID + 40},
	})
	require.Error(t, err)
	assert.Equal(t, 1, failed)

	all, err := f.repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPlayerRelations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	signed, err := f.players.CreatePlayer(ctx, CreatePlayerRequest{Name: "Neymar", CountryID: f.brazil.ID, TeamID: &f.santos.ID})
	require.NoError(t, err)
	free, err := f.players.CreatePlayer(ctx, CreatePlayerRequest{Name: "Hulk", CountryID: f.brazil.ID})
	require.NoError(t, err)

	squad, err := f.players.ListPlayersByTeam(ctx, f.santos.ID)
	require.NoError(t, err)
	require.Len(t, squad, 1)
	assert.Equal(t, signed.ID, squad[0].ID)

	nationals, err := f.players.ListPlayersByCountry(ctx, f.brazil.ID)
	require.NoError(t, err)
	assert.Len(t, nationals, 2)

	_, err = f.players.ListPlayersByTeam(ctx, 500)
	requireKind(t, err, apperr.KindNotFound)
	_, err = f.players.ListPlayersByCountry(ctx, 500)
	requireKind(t, err, apperr.KindNotFound)

	nationality, err := f.players.GetPlayerCountry(ctx, signed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brazil", nationality.Name)

	club, err := f.players.GetPlayerTeam(ctx, signed.ID)
	require.NoError(t, err)
	assert.Equal(t, "Santos", club.Name)

	club, err = f.players.GetPlayerTeam(ctx, free.ID)
	require.NoError(t, err)
	assert.Nil(t, club)

	_, err = f.players.GetPlayerTeam(ctx, 404)
	requireKind(t, err, apperr.KindNotFound)

	// the squad survives the club as free agents
	_, err = f.teams.DeleteTeam(ctx, f.santos.ID)
	require.NoError(t, err)
	after, err := f.players.GetPlayer(ctx, signed.ID)
	require.NoError(t, err)
	assert.Nil(t, after.TeamID)
}

func TestUpdatePlayer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.players.CreatePlayer(ctx, CreatePlayerRequest{
		Name:      "Rivaldo",
		CountryID: f.brazil.ID,
		Position:  ptr("Midfielder"),
		TeamID:    &f.santos.ID,
	})
	require.NoError(t, err)

	t.Run("position only", func(t *testing.T) {
		updated, err := f.players.UpdatePlayer(ctx, created.ID, UpdatePlayerRequest{Position: nullable.Value("Forward")})
		require.NoError(t, err)
		assert.Equal(t, "Forward", *updated.Position)
		assert.Equal(t, created.TeamID, updated.TeamID)
		assert.Equal(t, created.Name, updated.Name)
	})

	t.Run("release from club", func(t *testing.T) {
		updated, err := f.players.UpdatePlayer(ctx, created.ID, UpdatePlayerRequest{TeamID: nullable.Null[int64]()})
		require.NoError(t, err)
		assert.Nil(t, updated.TeamID)
		assert.NotNil(t, updated.Position)
	})

	t.Run("unknown team", func(t *testing.T) {
		_, err := f.players.UpdatePlayer(ctx, created.ID, UpdatePlayerRequest{TeamID: nullable.Value(int64(999))})
		e := requireKind(t, err, apperr.KindValidation)
		assert.Equal(t, "team_id", e.Field)
	})

	t.Run("missing player comes first", func(t *testing.T) {
		_, err := f.players.UpdatePlayer(ctx, created.ID+10, UpdatePlayerRequest{Name: ptr("")})
		requireKind(t, err, apperr.KindNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := f.players.DeletePlayer(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = f.players.DeletePlayer(ctx, created.ID)
		requireKind(t, err, apperr.KindNotFound)
	})
}
