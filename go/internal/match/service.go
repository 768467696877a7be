package match

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "MatchService"

// MatchesApp defines what the service layer needs from the match application
type MatchesApp interface {
	CreateMatch(ctx context.Context, req CreateMatchRequest) (*models.Match, error)
	GetMatch(ctx context.Context, id int64) (*models.Match, error)
	ListMatches(ctx context.Context) ([]models.Match, error)
	FindMatchesByTeams(ctx context.Context, homeTeamID, awayTeamID int64) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int64, req UpdateMatchRequest) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int64) (bool, error)
}

// LineupsApp defines what the service layer needs for lineups
type LineupsApp interface {
	CreateLineup(ctx context.Context, req CreateLineupRequest) (*models.Lineup, error)
	GetLineup(ctx context.Context, id int64) (*models.Lineup, error)
	ListLineupsByMatch(ctx context.Context, matchID int64) ([]models.Lineup, error)
	UpdateLineup(ctx context.Context, id int64, req UpdateLineupRequest) (*models.Lineup, error)
	DeleteLineup(ctx context.Context, id int64) (bool, error)
}

// SubstitutionsApp defines what the service layer needs for substitutions
type SubstitutionsApp interface {
	CreateSubstitution(ctx context.Context, req CreateSubstitutionRequest) (*models.Substitution, error)
	GetSubstitution(ctx context.Context, id int64) (*models.Substitution, error)
	ListSubstitutionsByMatch(ctx context.Context, matchID int64) ([]models.Substitution, error)
	UpdateSubstitution(ctx context.Context, id int64, req UpdateSubstitutionRequest) (*models.Substitution, error)
	DeleteSubstitution(ctx context.Context, id int64) (bool, error)
}

// FindMatchesByTeamsRequest selects matches by their home and away team
type FindMatchesByTeamsRequest struct {
	HomeTeamID int64 `json:"home_team_id"`
	AwayTeamID int64 `json:"away_team_id"`
}

// UpdateMatchMessage carries the id alongside the fields to change
type UpdateMatchMessage struct {
	ID int64 `json:"id"`
	UpdateMatchRequest
}

// UpdateLineupMessage carries the id alongside the new position
type UpdateLineupMessage struct {
	ID int64 `json:"id"`
	UpdateLineupRequest
}

// UpdateSubstitutionMessage carries the id alongside the corrected minute
type UpdateSubstitutionMessage struct {
	ID int64 `json:"id"`
	UpdateSubstitutionRequest
}

// MatchResponse wraps a single match
type MatchResponse struct {
	Match *models.Match `json:"match"`
}

// ListMatchesResponse wraps a list of matches
type ListMatchesResponse struct {
	Matches []models.Match `json:"matches"`
}

// LineupResponse wraps a single lineup entry
type LineupResponse struct {
	Lineup *models.Lineup `json:"lineup"`
}

// ListLineupsResponse wraps the lineups of a match
type ListLineupsResponse struct {
	Lineups []models.Lineup `json:"lineups"`
}

// SubstitutionResponse wraps a single substitution
type SubstitutionResponse struct {
	Substitution *models.Substitution `json:"substitution"`
}

// ListSubstitutionsResponse wraps the substitutions of a match
type ListSubstitutionsResponse struct {
	Substitutions []models.Substitution `json:"substitutions"`
}

// Service implements the MatchService connect procedures
type Service struct {
	app           MatchesApp
	lineups       LineupsApp
	substitutions SubstitutionsApp
}

// NewService creates a new match service
func NewService(app MatchesApp, lineups LineupsApp, substitutions SubstitutionsApp) *Service {
	return &Service{
		app:           app,
		lineups:       lineups,
		substitutions: substitutions,
	}
}

// Handler returns the mount path and handler for every MatchService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreateMatch", s.CreateMatch, opts...)
	rpc.Handle(mux, ServiceName, "GetMatch", s.GetMatch, opts...)
	rpc.Handle(mux, ServiceName, "ListMatches", s.ListMatches, opts...)
	rpc.Handle(mux, ServiceName, "FindMatchesByTeams", s.FindMatchesByTeams, opts...)
	rpc.Handle(mux, ServiceName, "UpdateMatch", s.UpdateMatch, opts...)
	rpc.Handle(mux, ServiceName, "DeleteMatch", s.DeleteMatch, opts...)
	rpc.Handle(mux, ServiceName, "CreateLineup", s.CreateLineup, opts...)
	rpc.Handle(mux, ServiceName, "GetLineup", s.GetLineup, opts...)
	rpc.Handle(mux, ServiceName, "ListMatchLineups", s.ListMatchLineups, opts...)
	rpc.Handle(mux, ServiceName, "UpdateLineup", s.UpdateLineup, opts...)
	rpc.Handle(mux, ServiceName, "DeleteLineup", s.DeleteLineup, opts...)
	rpc.Handle(mux, ServiceName, "CreateSubstitution", s.CreateSubstitution, opts...)
	rpc.Handle(mux, ServiceName, "GetSubstitution", s.GetSubstitution, opts...)
	rpc.Handle(mux, ServiceName, "ListMatchSubstitutions", s.ListMatchSubstitutions, opts...)
	rpc.Handle(mux, ServiceName, "UpdateSubstitution", s.UpdateSubstitution, opts...)
	rpc.Handle(mux, ServiceName, "DeleteSubstitution", s.DeleteSubstitution, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreateMatch schedules a new match
func (s *Service) CreateMatch(ctx context.Context, req *connect.Request[CreateMatchRequest]) (*connect.Response[MatchResponse], error) {
	m, err := s.app.CreateMatch(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&MatchResponse{Match: m}), nil
}

// GetMatch retrieves a match by ID
func (s *Service) GetMatch(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[MatchResponse], error) {
	m, err := s.app.GetMatch(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&MatchResponse{Match: m}), nil
}

// ListMatches retrieves all matches
func (s *Service) ListMatches(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListMatchesResponse], error) {
	matches, err := s.app.ListMatches(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListMatchesResponse{Matches: matches}), nil
}

// FindMatchesByTeams retrieves the matches between a home and an away team
func (s *Service) FindMatchesByTeams(ctx context.Context, req *connect.Request[FindMatchesByTeamsRequest]) (*connect.Response[ListMatchesResponse], error) {
	matches, err := s.app.FindMatchesByTeams(ctx, req.Msg.HomeTeamID, req.Msg.AwayTeamID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListMatchesResponse{Matches: matches}), nil
}

// UpdateMatch updates an existing match
func (s *Service) UpdateMatch(ctx context.Context, req *connect.Request[UpdateMatchMessage]) (*connect.Response[MatchResponse], error) {
	m, err := s.app.UpdateMatch(ctx, req.Msg.ID, req.Msg.UpdateMatchRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&MatchResponse{Match: m}), nil
}

// DeleteMatch deletes a match by ID
func (s *Service) DeleteMatch(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeleteMatch(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// CreateLineup adds a player to a lineup
func (s *Service) CreateLineup(ctx context.Context, req *connect.Request[CreateLineupRequest]) (*connect.Response[LineupResponse], error) {
	lineup, err := s.lineups.CreateLineup(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&LineupResponse{Lineup: lineup}), nil
}

// GetLineup retrieves a lineup entry by ID
func (s *Service) GetLineup(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[LineupResponse], error) {
	lineup, err := s.lineups.GetLineup(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&LineupResponse{Lineup: lineup}), nil
}

// ListMatchLineups retrieves both lineups of a match
func (s *Service) ListMatchLineups(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListLineupsResponse], error) {
	lineups, err := s.lineups.ListLineupsByMatch(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListLineupsResponse{Lineups: lineups}), nil
}

// UpdateLineup changes the position of a lineup entry
func (s *Service) UpdateLineup(ctx context.Context, req *connect.Request[UpdateLineupMessage]) (*connect.Response[LineupResponse], error) {
	lineup, err := s.lineups.UpdateLineup(ctx, req.Msg.ID, req.Msg.UpdateLineupRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&LineupResponse{Lineup: lineup}), nil
}

// DeleteLineup removes a lineup entry
func (s *Service) DeleteLineup(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.lineups.DeleteLineup(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// CreateSubstitution records a player change
func (s *Service) CreateSubstitution(ctx context.Context, req *connect.Request[CreateSubstitutionRequest]) (*connect.Response[SubstitutionResponse], error) {
	sub, err := s.substitutions.CreateSubstitution(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&SubstitutionResponse{Substitution: sub}), nil
}

// GetSubstitution retrieves a substitution by ID
func (s *Service) GetSubstitution(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[SubstitutionResponse], error) {
	sub, err := s.substitutions.GetSubstitution(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&SubstitutionResponse{Substitution: sub}), nil
}

// ListMatchSubstitutions retrieves the substitutions of a match
func (s *Service) ListMatchSubstitutions(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListSubstitutionsResponse], error) {
	subs, err := s.substitutions.ListSubstitutionsByMatch(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListSubstitutionsResponse{Substitutions: subs}), nil
}

// UpdateSubstitution corrects the minute of a substitution
func (s *Service) UpdateSubstitution(ctx context.Context, req *connect.Request[UpdateSubstitutionMessage]) (*connect.Response[SubstitutionResponse], error) {
	sub, err := s.substitutions.UpdateSubstitution(ctx, req.Msg.ID, req.Msg.UpdateSubstitutionRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&SubstitutionResponse{Substitution: sub}), nil
}

// DeleteSubstitution removes a substitution
func (s *Service) DeleteSubstitution(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.substitutions.DeleteSubstitution(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}
