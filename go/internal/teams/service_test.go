package teams

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/championship"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/nullable"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

type noPlayers struct{}

func (noPlayers) ListPlayersByTeam(context.Context, int64) ([]models.Player, error) {
	return []models.Player{}, nil
}

type stubMatches struct{ app *App }

func (s stubMatches) ListMatchesByTeam(ctx context.Context, teamID int64) ([]models.Match, error) {
	if err := s.app.Exists(ctx, teamID); err != nil {
		return nil, err
	}
	return []models.Match{{ID: 7, HomeTeamID: teamID, AwayTeamID: teamID + 1}}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, fixture) {
	t.Helper()
	f := newFixture(t)
	svc := NewService(f.teams, f.participations, Relations{
		Players: noPlayers{},
		Matches: stubMatches{app: f.teams},
	})

	mux := http.NewServeMux()
	path, handler := svc.Handler()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, f
}

func TestService_TeamLifecycle(t *testing.T) {
	srv, f := newTestServer(t)
	ctx := context.Background()

	create := rpc.NewClient[CreateTeamRequest, TeamResponse](srv.Client(), srv.URL, ServiceName, "CreateTeam")
	byName := rpc.NewClient[rpc.NameRequest, TeamResponse](srv.Client(), srv.URL, ServiceName, "GetTeamByName")
	list := rpc.NewClient[rpc.ListRequest, ListTeamsResponse](srv.Client(), srv.URL, ServiceName, "ListAllTeams")
	matches := rpc.NewClient[rpc.IDRequest, ListMatchesResponse](srv.Client(), srv.URL, ServiceName, "ListTeamMatches")
	players := rpc.NewClient[rpc.IDRequest, ListPlayersResponse](srv.Client(), srv.URL, ServiceName, "ListTeamPlayers")
	del := rpc.NewClient[rpc.IDRequest, rpc.DeleteResponse](srv.Client(), srv.URL, ServiceName, "DeleteTeam")

	created, err := create.CallUnary(ctx, connect.NewRequest(&CreateTeamRequest{Name: "Grêmio", CountryID: f.brazil.ID}))
	require.NoError(t, err)
	id := created.Msg.Team.ID

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateTeamRequest{Name: "Grêmio", CountryID: f.brazil.ID}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateTeamRequest{Name: "GR", CountryID: f.brazil.ID}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	named, err := byName.CallUnary(ctx, connect.NewRequest(&rpc.NameRequest{Name: "Grêmio"}))
	require.NoError(t, err)
	assert.Equal(t, id, named.Msg.Team.ID)

	_, err = byName.CallUnary(ctx, connect.NewRequest(&rpc.NameRequest{Name: "Internacional"}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

	all, err := list.CallUnary(ctx, connect.NewRequest(&rpc.ListRequest{}))
	require.NoError(t, err)
	assert.Len(t, all.Msg.Teams, 1)

	fixtures, err := matches.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.Len(t, fixtures.Msg.Matches, 1)

	squad, err := players.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.NotNil(t, squad.Msg.Players)

	removed, err := del.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.True(t, removed.Msg.Success)

	_, err = matches.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestService_UpdateTeamNullClearsField(t *testing.T) {
	srv, f := newTestServer(t)
	ctx := context.Background()

	created, err := f.teams.CreateTeam(ctx, CreateTeamRequest{Name: "Cruzeiro", City: ptr("Belo Horizonte"), Nickname: ptr("Raposa"), CountryID: f.brazil.ID})
	require.NoError(t, err)

	body := `{"id":` + itoa(created.ID) + `,"city":null}`
	res, err := srv.Client().Post(srv.URL+rpc.Procedure(ServiceName, "UpdateTeam"), "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	got, err := f.teams.GetTeam(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.City)
	require.NotNil(t, got.Nickname)
	assert.Equal(t, "Raposa", *got.Nickname)
}

func TestService_Participations(t *testing.T) {
	srv, f := newTestServer(t)
	ctx := context.Background()

	team, err := f.teams.CreateTeam(ctx, CreateTeamRequest{Name: "Bahia", CountryID: f.brazil.ID})
	require.NoError(t, err)
	cup, err := f.championships.CreateChampionship(ctx, championship.CreateChampionshipRequest{Name: "Copa do Brasil"})
	require.NoError(t, err)

	create := rpc.NewClient[CreateParticipationRequest, ParticipationResponse](srv.Client(), srv.URL, ServiceName, "CreateParticipation")
	update := rpc.NewClient[UpdateParticipationMessage, ParticipationResponse](srv.Client(), srv.URL, ServiceName, "UpdateParticipation")
	byTeam := rpc.NewClient[rpc.IDRequest, ListParticipationsResponse](srv.Client(), srv.URL, ServiceName, "ListTeamParticipations")

	created, err := create.CallUnary(ctx, connect.NewRequest(&CreateParticipationRequest{ChampionshipID: cup.ID, TeamID: team.ID}))
	require.NoError(t, err)
	assert.Nil(t, created.Msg.Participation.Season)

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateParticipationRequest{ChampionshipID: cup.ID, TeamID: team.ID}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateParticipationRequest{ChampionshipID: cup.ID + 50, TeamID: team.ID}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	season := "2023"
	moved, err := update.CallUnary(ctx, connect.NewRequest(&UpdateParticipationMessage{
		ID:                         created.Msg.Participation.ID,
		UpdateParticipationRequest: UpdateParticipationRequest{Season: nullable.Value(season)},
	}))
	require.NoError(t, err)
	require.NotNil(t, moved.Msg.Participation.Season)
	assert.Equal(t, season, *moved.Msg.Participation.Season)

	listed, err := byTeam.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: team.ID}))
	require.NoError(t, err)
	assert.Len(t, listed.Msg.Participations, 1)
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
