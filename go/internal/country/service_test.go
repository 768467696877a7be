package country

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

type stubTeams struct{ app *App }

func (s stubTeams) ListTeamsByCountry(ctx context.Context, countryID int64) ([]models.Team, error) {
	if err := s.app.Exists(ctx, countryID); err != nil {
		return nil, err
	}
	return []models.Team{{ID: 1, Name: "Flamengo", CountryID: countryID}}, nil
}

type emptyLister struct{}

func (emptyLister) ListPlayersByCountry(context.Context, int64) ([]models.Player, error) {
	return []models.Player{}, nil
}

func (emptyLister) ListStadiumsByCountry(context.Context, int64) ([]models.Stadium, error) {
	return []models.Stadium{}, nil
}

func (emptyLister) ListChampionshipsByCountry(context.Context, int64) ([]models.Championship, error) {
	return []models.Championship{}, nil
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	app, _ := newTestApp(t)
	svc := NewService(app, Relations{
		Teams:         stubTeams{app: app},
		Players:       emptyLister{},
		Stadiums:      emptyLister{},
		Championships: emptyLister{},
	})

	mux := http.NewServeMux()
	path, handler := svc.Handler()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func connectCode(t *testing.T, err error) connect.Code {
	t.Helper()
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr), "expected connect error, got %v", err)
	return connectErr.Code()
}

func TestService_CountryLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	create := rpc.NewClient[CreateCountryRequest, CountryResponse](srv.Client(), srv.URL, ServiceName, "CreateCountry")
	get := rpc.NewClient[rpc.IDRequest, CountryResponse](srv.Client(), srv.URL, ServiceName, "GetCountry")
	byName := rpc.NewClient[rpc.NameRequest, CountryResponse](srv.Client(), srv.URL, ServiceName, "GetCountryByName")
	list := rpc.NewClient[rpc.ListRequest, ListCountriesResponse](srv.Client(), srv.URL, ServiceName, "ListCountries")
	update := rpc.NewClient[UpdateCountryMessage, CountryResponse](srv.Client(), srv.URL, ServiceName, "UpdateCountry")
	del := rpc.NewClient[rpc.IDRequest, rpc.DeleteResponse](srv.Client(), srv.URL, ServiceName, "DeleteCountry")
	teams := rpc.NewClient[rpc.IDRequest, ListTeamsResponse](srv.Client(), srv.URL, ServiceName, "ListCountryTeams")

	created, err := create.CallUnary(ctx, connect.NewRequest(&CreateCountryRequest{Name: "Brazil"}))
	require.NoError(t, err)
	id := created.Msg.Country.ID

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateCountryRequest{Name: "Brazil"}))
	assert.Equal(t, connect.CodeFailedPrecondition, connectCode(t, err))

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateCountryRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connectCode(t, err))

	got, err := get.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.Equal(t, "Brazil", got.Msg.Country.Name)

	named, err := byName.CallUnary(ctx, connect.NewRequest(&rpc.NameRequest{Name: "Brazil"}))
	require.NoError(t, err)
	assert.Equal(t, id, named.Msg.Country.ID)

	all, err := list.CallUnary(ctx, connect.NewRequest(&rpc.ListRequest{}))
	require.NoError(t, err)
	assert.Len(t, all.Msg.Countries, 1)

	name := "Brasil"
	updated, err := update.CallUnary(ctx, connect.NewRequest(&UpdateCountryMessage{ID: id, UpdateCountryRequest: UpdateCountryRequest{Name: &name}}))
	require.NoError(t, err)
	assert.Equal(t, "Brasil", updated.Msg.Country.Name)

	clubs, err := teams.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.Len(t, clubs.Msg.Teams, 1)

	_, err = teams.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id + 1}))
	assert.Equal(t, connect.CodeNotFound, connectCode(t, err))

	removed, err := del.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.True(t, removed.Msg.Success)

	_, err = get.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	assert.Equal(t, connect.CodeNotFound, connectCode(t, err))
}

func TestService_EmptyRelationsAreLists(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	create := rpc.NewClient[CreateCountryRequest, CountryResponse](srv.Client(), srv.URL, ServiceName, "CreateCountry")
	stadiums := rpc.NewClient[rpc.IDRequest, ListStadiumsResponse](srv.Client(), srv.URL, ServiceName, "ListCountryStadiums")

	created, err := create.CallUnary(ctx, connect.NewRequest(&CreateCountryRequest{Name: "Chile"}))
	require.NoError(t, err)

	res, err := stadiums.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: created.Msg.Country.ID}))
	require.NoError(t, err)
	assert.NotNil(t, res.Msg.Stadiums)
	assert.Empty(t, res.Msg.Stadiums)
}
