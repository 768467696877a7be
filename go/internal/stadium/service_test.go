package stadium

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

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

type stubMatches struct{ app *App }

func (s stubMatches) ListMatchesByStadium(ctx context.Context, stadiumID int64) ([]models.Match, error) {
	if err := s.app.Exists(ctx, stadiumID); err != nil {
		return nil, err
	}
	return []models.Match{}, nil
}

func newTestServer(t *testing.T) (*httptest.Server, fixture) {
	t.Helper()
	f := newFixture(t)

	mux := http.NewServeMux()
	path, handler := NewService(f.stadiums, stubMatches{app: f.stadiums}).Handler()
	mux.Handle(path, handler)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, f
}

func TestService_StadiumLifecycle(t *testing.T) {
	srv, f := newTestServer(t)
	ctx := context.Background()

	create := rpc.NewClient[CreateStadiumRequest, StadiumResponse](srv.Client(), srv.URL, ServiceName, "CreateStadium")
	list := rpc.NewClient[rpc.ListRequest, ListStadiumsResponse](srv.Client(), srv.URL, ServiceName, "ListStadiums")
	matches := rpc.NewClient[rpc.IDRequest, ListMatchesResponse](srv.Client(), srv.URL, ServiceName, "ListStadiumMatches")
	del := rpc.NewClient[rpc.IDRequest, rpc.DeleteResponse](srv.Client(), srv.URL, ServiceName, "DeleteStadium")

	created, err := create.CallUnary(ctx, connect.NewRequest(&CreateStadiumRequest{Name: "Pacaembu", CountryID: f.brazil.ID}))
	require.NoError(t, err)
	id := created.Msg.Stadium.ID

	_, err = create.CallUnary(ctx, connect.NewRequest(&CreateStadiumRequest{Name: "Pacaembu", CountryID: f.brazil.ID}))
	assert.Equal(t, connect.CodeFailedPrecondition, connect.CodeOf(err))

	all, err := list.CallUnary(ctx, connect.NewRequest(&rpc.ListRequest{}))
	require.NoError(t, err)
	assert.Len(t, all.Msg.Stadiums, 1)

	hosted, err := matches.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.NotNil(t, hosted.Msg.Matches)

	removed, err := del.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	require.NoError(t, err)
	assert.True(t, removed.Msg.Success)

	_, err = matches.CallUnary(ctx, connect.NewRequest(&rpc.IDRequest{ID: id}))
	assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))
}

func TestService_CapacityMustBeANumber(t *testing.T) {
	srv, f := newTestServer(t)

	body := `{"name":"Castelão","country_id":` + strconv.FormatInt(f.brazil.ID, 10) + `,"capacity":"big"}`
	res, err := srv.Client().Post(srv.URL+rpc.Procedure(ServiceName, "CreateStadium"), "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
