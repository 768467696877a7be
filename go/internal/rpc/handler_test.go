package rpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/footballdb/go/internal/apperr"
)

type echoResponse struct {
	ID int64 `json:"id"`
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	Handle(mux, "EchoService", "Echo", func(_ context.Context, req *connect.Request[IDRequest]) (*connect.Response[echoResponse], error) {
		if req.Msg.ID < 1 {
			return nil, Error(apperr.Validation("Echo", "id", "Echo ID must be a positive integer."))
		}
		if req.Msg.ID == 2 {
			return nil, Error(apperr.Duplicate("Echo", "Echo with this name already exists."))
		}
		return connect.NewResponse(&echoResponse{ID: req.Msg.ID}), nil
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHandle_RoundTrip(t *testing.T) {
	srv := newEchoServer(t)
	client := NewClient[IDRequest, echoResponse](srv.Client(), srv.URL, "EchoService", "Echo")

	res, err := client.CallUnary(context.Background(), connect.NewRequest(&IDRequest{ID: 7}))
	require.NoError(t, err)
	assert.Equal(t, int64(7), res.Msg.ID)

	_, err = client.CallUnary(context.Background(), connect.NewRequest(&IDRequest{}))
	var connectErr *connect.Error
	require.True(t, errors.As(err, &connectErr))
	assert.Equal(t, connect.CodeInvalidArgument, connectErr.Code())
	assert.Equal(t, "Echo ID must be a positive integer.", connectErr.Message())
	assert.Equal(t, "id", connectErr.Meta().Get(HeaderErrorField))
}

func TestHandle_PlainHTTP(t *testing.T) {
	srv := newEchoServer(t)

	res, err := srv.Client().Post(srv.URL+"/football.v1.EchoService/Echo", "application/json", strings.NewReader(`{"id":5}`))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	bad, err := srv.Client().Post(srv.URL+"/football.v1.EchoService/Echo", "application/json", strings.NewReader(`{"id":"five"}`))
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusBadRequest, bad.StatusCode)

	dup, err := srv.Client().Post(srv.URL+"/football.v1.EchoService/Echo", "application/json", strings.NewReader(`{"id":2}`))
	require.NoError(t, err)
	defer dup.Body.Close()
	assert.Equal(t, http.StatusBadRequest, dup.StatusCode)
	assert.Equal(t, "duplicate", dup.Header.Get(HeaderErrorKind))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/football.v1.CountryService/GetCountry", Procedure("CountryService", "GetCountry"))
	assert.Equal(t, "/football.v1.CountryService/", ServicePath("CountryService"))
}
