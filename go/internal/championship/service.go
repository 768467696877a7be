package championship

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "ChampionshipService"

// ChampionshipApp defines what the service layer needs from the championship application
type ChampionshipApp interface {
	CreateChampionship(ctx context.Context, req CreateChampionshipRequest) (*models.Championship, error)
	GetChampionship(ctx context.Context, id int64) (*models.Championship, error)
	GetChampionshipByName(ctx context.Context, name string) (*models.Championship, error)
	ListChampionships(ctx context.Context) ([]models.Championship, error)
	UpdateChampionship(ctx context.Context, id int64, req UpdateChampionshipRequest) (*models.Championship, error)
	DeleteChampionship(ctx context.Context, id int64) (bool, error)
}

// ParticipationLister lists the teams taking part in a championship
type ParticipationLister interface {
	ListParticipationsByChampionship(ctx context.Context, championshipID int64) ([]models.ChampionshipParticipation, error)
}

// MatchLister lists the matches of a championship
type MatchLister interface {
	ListMatchesByChampionship(ctx context.Context, championshipID int64) ([]models.Match, error)
}

// Relations are the child listers behind the championship relationship endpoints
type Relations struct {
	Participations ParticipationLister
	Matches        MatchLister
}

// UpdateChampionshipMessage carries the id alongside the fields to change
type UpdateChampionshipMessage struct {
	ID int64 `json:"id"`
	UpdateChampionshipRequest
}

// ChampionshipResponse wraps a single championship
type ChampionshipResponse struct {
	Championship *models.Championship `json:"championship"`
}

// ListChampionshipsResponse wraps every championship
type ListChampionshipsResponse struct {
	Championships []models.Championship `json:"championships"`
}

// ListParticipationsResponse wraps the participations of a championship
type ListParticipationsResponse struct {
	Participations []models.ChampionshipParticipation `json:"participations"`
}

// ListMatchesResponse wraps the matches of a championship
type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// Service implements the ChampionshipService connect procedures
type Service struct {
	app       ChampionshipApp
	relations Relations
}

// NewService creates a new championship service
func NewService(app ChampionshipApp, relations Relations) *Service {
	return &Service{
		app:       app,
		relations: relations,
	}
}

// Handler returns the mount path and handler for every ChampionshipService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreateChampionship", s.CreateChampionship, opts...)
	rpc.Handle(mux, ServiceName, "GetChampionship", s.GetChampionship, opts...)
	rpc.Handle(mux, ServiceName, "GetChampionshipByName", s.GetChampionshipByName, opts...)
	rpc.Handle(mux, ServiceName, "ListChampionships", s.ListChampionships, opts...)
	rpc.Handle(mux, ServiceName, "UpdateChampionship", s.UpdateChampionship, opts...)
	rpc.Handle(mux, ServiceName, "DeleteChampionship", s.DeleteChampionship, opts...)
	rpc.Handle(mux, ServiceName, "ListChampionshipParticipations", s.ListChampionshipParticipations, opts...)
	rpc.Handle(mux, ServiceName, "ListChampionshipMatches", s.ListChampionshipMatches, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreateChampionship creates a new championship
func (s *Service) CreateChampionship(ctx context.Context, req *connect.Request[CreateChampionshipRequest]) (*connect.Response[ChampionshipResponse], error) {
	championship, err := s.app.CreateChampionship(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ChampionshipResponse{Championship: championship}), nil
}

// GetChampionship retrieves a championship by ID
func (s *Service) GetChampionship(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ChampionshipResponse], error) {
	championship, err := s.app.GetChampionship(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ChampionshipResponse{Championship: championship}), nil
}

// GetChampionshipByName retrieves a championship by name
func (s *Service) GetChampionshipByName(ctx context.Context, req *connect.Request[rpc.NameRequest]) (*connect.Response[ChampionshipResponse], error) {
	championship, err := s.app.GetChampionshipByName(ctx, req.Msg.Name)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ChampionshipResponse{Championship: championship}), nil
}

// ListChampionships retrieves all championships
func (s *Service) ListChampionships(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListChampionshipsResponse], error) {
	championships, err := s.app.ListChampionships(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListChampionshipsResponse{Championships: championships}), nil
}

// UpdateChampionship updates an existing championship
func (s *Service) UpdateChampionship(ctx context.Context, req *connect.Request[UpdateChampionshipMessage]) (*connect.Response[ChampionshipResponse], error) {
	championship, err := s.app.UpdateChampionship(ctx, req.Msg.ID, req.Msg.UpdateChampionshipRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ChampionshipResponse{Championship: championship}), nil
}

// DeleteChampionship deletes a championship by ID
func (s *Service) DeleteChampionship(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeleteChampionship(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// ListChampionshipParticipations retrieves the teams registered in a championship
func (s *Service) ListChampionshipParticipations(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListParticipationsResponse], error) {
	participations, err := s.relations.Participations.ListParticipationsByChampionship(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListParticipationsResponse{Participations: participations}), nil
}

// ListChampionshipMatches retrieves the matches of a championship
func (s *Service) ListChampionshipMatches(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListMatchesResponse], error) {
	matches, err := s.relations.Matches.ListMatchesByChampionship(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListMatchesResponse{Matches: matches}), nil
}
