package teams

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "TeamService"

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error)
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	GetTeamByName(ctx context.Context, name string) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int64, req UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int64) (bool, error)
}

// ParticipationsApp defines what the service layer needs for championship participations
type ParticipationsApp interface {
	CreateParticipation(ctx context.Context, req CreateParticipationRequest) (*models.ChampionshipParticipation, error)
	GetParticipation(ctx context.Context, id int64) (*models.ChampionshipParticipation, error)
	ListParticipations(ctx context.Context) ([]models.ChampionshipParticipation, error)
	UpdateParticipation(ctx context.Context, id int64, req UpdateParticipationRequest) (*models.ChampionshipParticipation, error)
	DeleteParticipation(ctx context.Context, id int64) (bool, error)
	ListParticipationsByTeam(ctx context.Context, teamID int64) ([]models.ChampionshipParticipation, error)
}

// PlayerLister lists the squad of a team
type PlayerLister interface {
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]models.Player, error)
}

// MatchLister lists the home and away matches of a team
type MatchLister interface {
	ListMatchesByTeam(ctx context.Context, teamID int64) ([]models.Match, error)
}

// Relations are the child listers behind the team relationship endpoints
type Relations struct {
	Players PlayerLister
	Matches MatchLister
}

// UpdateTeamMessage carries the id alongside the fields to change
type UpdateTeamMessage struct {
	ID int64 `json:"id"`
	UpdateTeamRequest
}

// UpdateParticipationMessage carries the id alongside the new season
type UpdateParticipationMessage struct {
	ID int64 `json:"id"`
	UpdateParticipationRequest
}

// TeamResponse wraps a single team
type TeamResponse struct {
	Team *models.Team `json:"team"`
}

// ListTeamsResponse wraps a list of teams
type ListTeamsResponse struct {
	Teams []models.Team `json:"teams"`
}

// ParticipationResponse wraps a single participation
type ParticipationResponse struct {
	Participation *models.ChampionshipParticipation `json:"participation"`
}

// ListParticipationsResponse wraps a list of participations
type ListParticipationsResponse struct {
	Participations []models.ChampionshipParticipation `json:"participations"`
}

// ListPlayersResponse wraps the squad of a team
type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

// ListMatchesResponse wraps the matches of a team
type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// Service implements the TeamService connect procedures
type Service struct {
	app            TeamsApp
	participations ParticipationsApp
	relations      Relations
}

// NewService creates a new teams service
func NewService(app TeamsApp, participations ParticipationsApp, relations Relations) *Service {
	return &Service{
		app:            app,
		participations: participations,
		relations:      relations,
	}
}

// Handler returns the mount path and handler for every TeamService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreateTeam", s.CreateTeam, opts...)
	rpc.Handle(mux, ServiceName, "GetTeam", s.GetTeam, opts...)
	rpc.Handle(mux, ServiceName, "GetTeamByName", s.GetTeamByName, opts...)
	rpc.Handle(mux, ServiceName, "ListAllTeams", s.ListAllTeams, opts...)
	rpc.Handle(mux, ServiceName, "UpdateTeam", s.UpdateTeam, opts...)
	rpc.Handle(mux, ServiceName, "DeleteTeam", s.DeleteTeam, opts...)
	rpc.Handle(mux, ServiceName, "ListTeamPlayers", s.ListTeamPlayers, opts...)
	rpc.Handle(mux, ServiceName, "ListTeamMatches", s.ListTeamMatches, opts...)
	rpc.Handle(mux, ServiceName, "ListTeamParticipations", s.ListTeamParticipations, opts...)
	rpc.Handle(mux, ServiceName, "CreateParticipation", s.CreateParticipation, opts...)
	rpc.Handle(mux, ServiceName, "GetParticipation", s.GetParticipation, opts...)
	rpc.Handle(mux, ServiceName, "ListParticipations", s.ListParticipations, opts...)
	rpc.Handle(mux, ServiceName, "UpdateParticipation", s.UpdateParticipation, opts...)
	rpc.Handle(mux, ServiceName, "DeleteParticipation", s.DeleteParticipation, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreateTeam creates a new team
func (s *Service) CreateTeam(ctx context.Context, req *connect.Request[CreateTeamRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.app.CreateTeam(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// GetTeam retrieves a team by ID
func (s *Service) GetTeam(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.app.GetTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// GetTeamByName retrieves a team by name
func (s *Service) GetTeamByName(ctx context.Context, req *connect.Request[rpc.NameRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.app.GetTeamByName(ctx, req.Msg.Name)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// ListAllTeams retrieves all teams
func (s *Service) ListAllTeams(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListTeamsResponse], error) {
	teams, err := s.app.ListAllTeams(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListTeamsResponse{Teams: teams}), nil
}

// UpdateTeam updates an existing team
func (s *Service) UpdateTeam(ctx context.Context, req *connect.Request[UpdateTeamMessage]) (*connect.Response[TeamResponse], error) {
	team, err := s.app.UpdateTeam(ctx, req.Msg.ID, req.Msg.UpdateTeamRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// DeleteTeam deletes a team by ID
func (s *Service) DeleteTeam(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeleteTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// ListTeamPlayers retrieves the players of a team
func (s *Service) ListTeamPlayers(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.relations.Players.ListPlayersByTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}

// ListTeamMatches retrieves the home and away matches of a team
func (s *Service) ListTeamMatches(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListMatchesResponse], error) {
	matches, err := s.relations.Matches.ListMatchesByTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListMatchesResponse{Matches: matches}), nil
}

// ListTeamParticipations retrieves the championships a team takes part in
func (s *Service) ListTeamParticipations(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListParticipationsResponse], error) {
	participations, err := s.participations.ListParticipationsByTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListParticipationsResponse{Participations: participations}), nil
}

// CreateParticipation registers a team in a championship
func (s *Service) CreateParticipation(ctx context.Context, req *connect.Request[CreateParticipationRequest]) (*connect.Response[ParticipationResponse], error) {
	participation, err := s.participations.CreateParticipation(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ParticipationResponse{Participation: participation}), nil
}

// GetParticipation retrieves a participation by ID
func (s *Service) GetParticipation(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ParticipationResponse], error) {
	participation, err := s.participations.GetParticipation(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ParticipationResponse{Participation: participation}), nil
}

// ListParticipations retrieves every participation
func (s *Service) ListParticipations(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListParticipationsResponse], error) {
	participations, err := s.participations.ListParticipations(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListParticipationsResponse{Participations: participations}), nil
}

// UpdateParticipation changes the season of a participation
func (s *Service) UpdateParticipation(ctx context.Context, req *connect.Request[UpdateParticipationMessage]) (*connect.Response[ParticipationResponse], error) {
	participation, err := s.participations.UpdateParticipation(ctx, req.Msg.ID, req.Msg.UpdateParticipationRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ParticipationResponse{Participation: participation}), nil
}

// DeleteParticipation removes a participation
func (s *Service) DeleteParticipation(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.participations.DeleteParticipation(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}
