package rpc

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// Procedure returns the full procedure path, e.g. "/football.v1.CountryService/GetCountry"
func Procedure(service, method string) string {
	return "/" + Package + "." + service + "/" + method
}

// ServicePath returns the mount path of a service, e.g. "/football.v1.CountryService/"
func ServicePath(service string) string {
	return "/" + Package + "." + service + "/"
}

// HandlerOptions are applied to every unary handler
func HandlerOptions(opts ...connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{
		connect.WithCodec(JSON),
		connect.WithCodec(JSONCharsetUTF8),
	}, opts...)
}

// Handle registers fn on mux under its procedure path
func Handle[Req, Res any](mux *http.ServeMux, service, method string, fn func(context.Context, *connect.Request[Req]) (*connect.Response[Res], error), opts ...connect.HandlerOption) {
	procedure := Procedure(service, method)
	mux.Handle(procedure, connect.NewUnaryHandler[Req, Res](procedure, fn, HandlerOptions(opts...)...))
}

// NewClient returns a JSON connect client for one procedure
func NewClient[Req, Res any](httpClient connect.HTTPClient, baseURL, service, method string, opts ...connect.ClientOption) *connect.Client[Req, Res] {
	opts = append([]connect.ClientOption{connect.WithCodec(JSON)}, opts...)
	return connect.NewClient[Req, Res](httpClient, baseURL+Procedure(service, method), opts...)
}
