package stadium

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "StadiumService"

// StadiumApp defines what the service layer needs from the stadium application
type StadiumApp interface {
	CreateStadium(ctx context.Context, req CreateStadiumRequest) (*models.Stadium, error)
	GetStadium(ctx context.Context, id int64) (*models.Stadium, error)
	GetStadiumByName(ctx context.Context, name string) (*models.Stadium, error)
	ListStadiums(ctx context.Context) ([]models.Stadium, error)
	UpdateStadium(ctx context.Context, id int64, req UpdateStadiumRequest) (*models.Stadium, error)
	DeleteStadium(ctx context.Context, id int64) (bool, error)
}

// MatchLister lists the matches hosted by a stadium
type MatchLister interface {
	ListMatchesByStadium(ctx context.Context, stadiumID int64) ([]models.Match, error)
}

// UpdateStadiumMessage carries the id alongside the fields to change
type UpdateStadiumMessage struct {
	ID int64 `json:"id"`
	UpdateStadiumRequest
}

// StadiumResponse wraps a single stadium
type StadiumResponse struct {
	Stadium *models.Stadium `json:"stadium"`
}

// ListStadiumsResponse wraps a list of stadiums
type ListStadiumsResponse struct {
	Stadiums []models.Stadium `json:"stadiums"`
}

// ListMatchesResponse wraps the matches hosted by a stadium
type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// Service implements the StadiumService connect procedures
type Service struct {
	app     StadiumApp
	matches MatchLister
}

// NewService creates a new stadium service
func NewService(app StadiumApp, matches MatchLister) *Service {
	return &Service{
		app:     app,
		matches: matches,
	}
}

// Handler returns the mount path and handler for every StadiumService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreateStadium", s.CreateStadium, opts...)
	rpc.Handle(mux, ServiceName, "GetStadium", s.GetStadium, opts...)
	rpc.Handle(mux, ServiceName, "GetStadiumByName", s.GetStadiumByName, opts...)
	rpc.Handle(mux, ServiceName, "ListStadiums", s.ListStadiums, opts...)
	rpc.Handle(mux, ServiceName, "UpdateStadium", s.UpdateStadium, opts...)
	rpc.Handle(mux, ServiceName, "DeleteStadium", s.DeleteStadium, opts...)
	rpc.Handle(mux, ServiceName, "ListStadiumMatches", s.ListStadiumMatches, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreateStadium creates a new stadium
func (s *Service) CreateStadium(ctx context.Context, req *connect.Request[CreateStadiumRequest]) (*connect.Response[StadiumResponse], error) {
	stadium, err := s.app.CreateStadium(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&StadiumResponse{Stadium: stadium}), nil
}

// GetStadium retrieves a stadium by ID
func (s *Service) GetStadium(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[StadiumResponse], error) {
	stadium, err := s.app.GetStadium(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&StadiumResponse{Stadium: stadium}), nil
}

// GetStadiumByName retrieves a stadium by name
func (s *Service) GetStadiumByName(ctx context.Context, req *connect.Request[rpc.NameRequest]) (*connect.Response[StadiumResponse], error) {
	stadium, err := s.app.GetStadiumByName(ctx, req.Msg.Name)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&StadiumResponse{Stadium: stadium}), nil
}

// ListStadiums retrieves all stadiums
func (s *Service) ListStadiums(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListStadiumsResponse], error) {
	stadiums, err := s.app.ListStadiums(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListStadiumsResponse{Stadiums: stadiums}), nil
}

// UpdateStadium updates an existing stadium
func (s *Service) UpdateStadium(ctx context.Context, req *connect.Request[UpdateStadiumMessage]) (*connect.Response[StadiumResponse], error) {
	stadium, err := s.app.UpdateStadium(ctx, req.Msg.ID, req.Msg.UpdateStadiumRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&StadiumResponse{Stadium: stadium}), nil
}

// DeleteStadium deletes a stadium by ID
func (s *Service) DeleteStadium(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeleteStadium(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// ListStadiumMatches retrieves the matches hosted by a stadium
func (s *Service) ListStadiumMatches(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListMatchesResponse], error) {
	matches, err := s.matches.ListMatchesByStadium(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListMatchesResponse{Matches: matches}), nil
}
