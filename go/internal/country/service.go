package country

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/rpc"
)

// ServiceName is the connect service name
const ServiceName = "CountryService"

// CountryApp defines what the service layer needs from the country application
type CountryApp interface {
	CreateCountry(ctx context.Context, req CreateCountryRequest) (*models.Country, error)
	GetCountry(ctx context.Context, id int64) (*models.Country, error)
	GetCountryByName(ctx context.Context, name string) (*models.Country, error)
	ListCountries(ctx context.Context) ([]models.Country, error)
	UpdateCountry(ctx context.Context, id int64, req UpdateCountryRequest) (*models.Country, error)
	DeleteCountry(ctx context.Context, id int64) (bool, error)
}

// TeamLister lists the teams of a country
type TeamLister interface {
	ListTeamsByCountry(ctx context.Context, countryID int64) ([]models.Team, error)
}

// PlayerLister lists the players of a country
type PlayerLister interface {
	ListPlayersByCountry(ctx context.Context, countryID int64) ([]models.Player, error)
}

// StadiumLister lists the stadiums of a country
type StadiumLister interface {
	ListStadiumsByCountry(ctx context.Context, countryID int64) ([]models.Stadium, error)
}

// ChampionshipLister lists the championships of a country
type ChampionshipLister interface {
	ListChampionshipsByCountry(ctx context.Context, countryID int64) ([]models.Championship, error)
}

// Relations are the child listers behind the country relationship endpoints
type Relations struct {
	Teams         TeamLister
	Players       PlayerLister
	Stadiums      StadiumLister
	Championships ChampionshipLister
}

// UpdateCountryMessage carries the id alongside the fields to change
type UpdateCountryMessage struct {
	ID int64 `json:"id"`
	UpdateCountryRequest
}

// CountryResponse wraps a single country
type CountryResponse struct {
	Country *models.Country `json:"country"`
}

// ListCountriesResponse wraps every country
type ListCountriesResponse struct {
	Countries []models.Country `json:"countries"`
}

// ListTeamsResponse wraps the teams of a country
type ListTeamsResponse struct {
	Teams []models.Team `json:"teams"`
}

// ListPlayersResponse wraps the players of a country
type ListPlayersResponse struct {
	Players []models.Player `json:"players"`
}

// ListStadiumsResponse wraps the stadiums of a country
type ListStadiumsResponse struct {
	Stadiums []models.Stadium `json:"stadiums"`
}

// ListChampionshipsResponse wraps the championships of a country
type ListChampionshipsResponse struct {
	Championships []models.Championship `json:"championships"`
}

// Service implements the CountryService connect procedures
type Service struct {
	app       CountryApp
	relations Relations
}

// NewService creates a new country service
func NewService(app CountryApp, relations Relations) *Service {
	return &Service{
		app:       app,
		relations: relations,
	}
}

// Handler returns the mount path and handler for every CountryService procedure
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	rpc.Handle(mux, ServiceName, "CreateCountry", s.CreateCountry, opts...)
	rpc.Handle(mux, ServiceName, "GetCountry", s.GetCountry, opts...)
	rpc.Handle(mux, ServiceName, "GetCountryByName", s.GetCountryByName, opts...)
	rpc.Handle(mux, ServiceName, "ListCountries", s.ListCountries, opts...)
	rpc.Handle(mux, ServiceName, "UpdateCountry", s.UpdateCountry, opts...)
	rpc.Handle(mux, ServiceName, "DeleteCountry", s.DeleteCountry, opts...)
	rpc.Handle(mux, ServiceName, "ListCountryTeams", s.ListCountryTeams, opts...)
	rpc.Handle(mux, ServiceName, "ListCountryPlayers", s.ListCountryPlayers, opts...)
	rpc.Handle(mux, ServiceName, "ListCountryStadiums", s.ListCountryStadiums, opts...)
	rpc.Handle(mux, ServiceName, "ListCountryChampionships", s.ListCountryChampionships, opts...)
	return rpc.ServicePath(ServiceName), mux
}

// CreateCountry creates a new country
func (s *Service) CreateCountry(ctx context.Context, req *connect.Request[CreateCountryRequest]) (*connect.Response[CountryResponse], error) {
	country, err := s.app.CreateCountry(ctx, *req.Msg)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&CountryResponse{Country: country}), nil
}

// GetCountry retrieves a country by ID
func (s *Service) GetCountry(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[CountryResponse], error) {
	country, err := s.app.GetCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&CountryResponse{Country: country}), nil
}

// GetCountryByName retrieves a country by name
func (s *Service) GetCountryByName(ctx context.Context, req *connect.Request[rpc.NameRequest]) (*connect.Response[CountryResponse], error) {
	country, err := s.app.GetCountryByName(ctx, req.Msg.Name)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&CountryResponse{Country: country}), nil
}

// ListCountries retrieves all countries
func (s *Service) ListCountries(ctx context.Context, _ *connect.Request[rpc.ListRequest]) (*connect.Response[ListCountriesResponse], error) {
	countries, err := s.app.ListCountries(ctx)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListCountriesResponse{Countries: countries}), nil
}

// UpdateCountry updates an existing country
func (s *Service) UpdateCountry(ctx context.Context, req *connect.Request[UpdateCountryMessage]) (*connect.Response[CountryResponse], error) {
	country, err := s.app.UpdateCountry(ctx, req.Msg.ID, req.Msg.UpdateCountryRequest)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&CountryResponse{Country: country}), nil
}

// DeleteCountry deletes a country by ID
func (s *Service) DeleteCountry(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[rpc.DeleteResponse], error) {
	deleted, err := s.app.DeleteCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&rpc.DeleteResponse{Success: deleted}), nil
}

// ListCountryTeams retrieves the teams of a country
func (s *Service) ListCountryTeams(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListTeamsResponse], error) {
	teams, err := s.relations.Teams.ListTeamsByCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListTeamsResponse{Teams: teams}), nil
}

// ListCountryPlayers retrieves the players of a country
func (s *Service) ListCountryPlayers(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListPlayersResponse], error) {
	players, err := s.relations.Players.ListPlayersByCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListPlayersResponse{Players: players}), nil
}

// ListCountryStadiums retrieves the stadiums of a country
func (s *Service) ListCountryStadiums(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListStadiumsResponse], error) {
	stadiums, err := s.relations.Stadiums.ListStadiumsByCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListStadiumsResponse{Stadiums: stadiums}), nil
}

// ListCountryChampionships retrieves the championships of a country
func (s *Service) ListCountryChampionships(ctx context.Context, req *connect.Request[rpc.IDRequest]) (*connect.Response[ListChampionshipsResponse], error) {
	championships, err := s.relations.Championships.ListChampionshipsByCountry(ctx, req.Msg.ID)
	if err != nil {
		return nil, rpc.Error(err)
	}

	return connect.NewResponse(&ListChampionshipsResponse{Championships: championships}), nil
}
