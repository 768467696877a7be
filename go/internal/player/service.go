package player

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "PlayerService"

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error)
	CreatePlayers(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error)
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	GetPlayerByName(ctx context.Context, name string) (*models.Player, error)
	ListPlayers(ctx context.Context) ([]models.Player, error)
	GetPlayerCountry(ctx context.Context, id int64) (*models.Country, error)
	GetPlayerTeam(ctx context.Context, id int64) (*models.Team, error)
	UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int64) (bool, error)
}

// CreatePlayersRequest carries a batch of players created together
type CreatePlayersRequest struct {
	Players []CreatePlayerRequest `json:"players"`
}

// UpdatePlayerMessage carries the id alongside the fields to change
type UpdatePlayerMessage struct {
	ID int64 `json:"id"`
	UpdatePlayerRequest
}

// PlayerResponse wraps a single player
type PlayerResponse struct {
	Player *models.Player `json:"player"`
}

// ListPlayersResponse wraps a list of players
type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

// CountryResponse wraps the nationality of a player
type CountryResponse struct {
	Country *models.Country `json:"country"`
}

// TeamResponse wraps the club of a player; team is null for free agents
type TeamResponse struct {
	Team *models.Team `json:"team"`
}

// Service implements the PlayerService connect procedures
type Service struct {
	app PlayerApp
}

// NewService creates a new player service
func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler returns the mount path and handler for every PlayerService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreatePlayer", s.CreatePlayer, opts...)
	rpc.Handle(mux, ServiceName, "CreatePlayers", s.CreatePlayers, opts...)
	rpc.Handle(mux, ServiceName, "GetPlayer", s.GetPlayer, opts...)
	rpc.Handle(mux, ServiceName, "GetPlayerByName", s.GetPlayerByName, opts...)
	rpc.Handle(mux, ServiceName, "ListPlayers", s.ListPlayers, opts...)
	rpc.Handle(mux, ServiceName, "GetPlayerCountry", s.GetPlayerCountry, opts...)
	rpc.Handle(mux, ServiceName, "GetPlayerTeam", s.GetPlayerTeam, opts...)
	rpc.Handle(mux, ServiceName, "UpdatePlayer", s.UpdatePlayer, opts...)
	rpc.Handle(mux, ServiceName, "DeletePlayer", s.DeletePlayer, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreatePlayer creates a new player
func (s *Service) CreatePlayer(ctx context.Context, req *connect.Request[CreatePlayerRequest]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.CreatePlayer(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// CreatePlayers creates a batch of players atomically
func (s *Service) CreatePlayers(ctx context.Context, req *connect.Request[CreatePlayersRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.app.CreatePlayers(ctx, req.Msg.Players)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}

// GetPlayer retrieves a player by ID
func (s *Service) GetPlayer(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.GetPlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// GetPlayerByName retrieves the first player registered under a name
func (s *Service) GetPlayerByName(ctx context.Context, req *connect.Request[rpc.NameRequest]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.GetPlayerByName(ctx, req.Msg.Name)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// ListPlayers retrieves all players
func (s *Service) ListPlayers(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.app.ListPlayers(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}

// GetPlayerCountry retrieves the nationality of a player
func (s *Service) GetPlayerCountry(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[CountryResponse], error) {
	country, err := s.app.GetPlayerCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&CountryResponse{Country: country}), nil
}

// GetPlayerTeam retrieves the club of a player
func (s *Service) GetPlayerTeam(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[TeamResponse], error) {
	team, err := s.app.GetPlayerTeam(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&TeamResponse{Team: team}), nil
}

// UpdatePlayer updates an existing player
func (s *Service) UpdatePlayer(ctx context.Context, req *connect.Request[UpdatePlayerMessage]) (*connect.Response[PlayerResponse], error) {
	player, err := s.app.UpdatePlayer(ctx, req.Msg.ID, req.Msg.UpdatePlayerRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&PlayerResponse{Player: player}), nil
}

// DeletePlayer deletes a player by ID
func (s *Service) DeletePlayer(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeletePlayer(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}
