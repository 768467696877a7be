package player

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// Entity is the display name used in messages
const Entity = "Player"

// PlayerRepository defines what the app layer needs from the repository
type PlayerRepository interface {
	crud.Repository[models.Player, CreatePlayerRequest, UpdatePlayerRequest]
	CreateMany(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, int, error)
	GetByName(ctx context.Context, name string) (*models.Player, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.Player, error)
	ListByTeam(ctx context.Context, teamID int64) ([]models.Player, error)
}

// CountryReader resolves the nationality of a player
type CountryReader interface {
	crud.Existence
	GetCountry(ctx context.Context, id int64) (*models.Country, error)
}

// TeamReader resolves the club of a player
type TeamReader interface {
	crud.Existence
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
}

// App handles player business logic
type App struct {
	core      *crud.App[models.Player, CreatePlayerRequest, UpdatePlayerRequest]
	repo      PlayerRepository
	countries CountryReader
	teams     TeamReader
	v         *validation.Validator
}

// NewApp creates a new player App
func NewApp(repo PlayerRepository, countries CountryReader, teams TeamReader, v *validation.Validator, feed changefeed.Publisher) *App {
	a := &App{
		repo:      repo,
		countries: countries,
		teams:     teams,
		v:         v,
	}

	rules := crud.Rules[models.Player, CreatePlayerRequest, UpdatePlayerRequest]{
		Entity:         Entity,
		ID:             func(p *models.Player) int64 { return p.ID },
		ValidateCreate: a.validateCreate,
		ValidateUpdate: a.validateUpdate,
		ForeignKeys: map[string]string{
			"players_country_id_fkey": "country_id",
			"players_team_id_fkey":    "team_id",
		},
	}

	a.core = crud.New[models.Player, CreatePlayerRequest, UpdatePlayerRequest](repo, rules, feed, v.Clock())
	return a
}

func (a *App) validateCreate(ctx context.Context, req *CreatePlayerRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Position = validation.TrimOptional(req.Position)
	if err := a.v.Struct(Entity, req); err != nil {
		return err
	}
	if err := crud.Reference(ctx, Entity, "country_id", a.countries, req.CountryID); err != nil {
		return err
	}
	if req.TeamID != nil {
		return crud.Reference(ctx, Entity, "team_id", a.teams, *req.TeamID)
	}
	return nil
}

func (a *App) validateUpdate(ctx context.Context, _ *models.Player, req *UpdatePlayerRequest) error {
	req.Name = validation.TrimRequired(req.Name)
	req.Position = validation.TrimField(req.Position)
	if err := a.v.Struct(Entity, req); err != nil {
		return err
	}
	if req.CountryID != nil {
		if err := crud.Reference(ctx, Entity, "country_id", a.countries, *req.CountryID); err != nil {
			return err
		}
	}
	if teamID, ok := req.TeamID.Get(); ok {
		return crud.Reference(ctx, Entity, "team_id", a.teams, teamID)
	}
	return nil
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the player exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreatePlayer creates a new player with validation
func (a *App) CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*models.Player, error) {
	return a.core.Create(ctx, req)
}

// CreatePlayers validates every item, then stores them all or none.
// Errors name the position of the offending item.
func (a *App) CreatePlayers(ctx context.Context, reqs []CreatePlayerRequest) ([]models.Player, error) {
	if len(reqs) == 0 {
		return nil, apperr.Validation(Entity, "players", "Player list cannot be empty.")
	}

	items := slices.Clone(reqs)
	for i := range items {
		if err := a.validateCreate(ctx, &items[i]); err != nil {
			return nil, apperr.WithIndex(a.core.Fail("create", err), i)
		}
	}

	players, failed, err := a.repo.CreateMany(ctx, items)
	if err != nil {
		translated := a.core.Translate("create", 0, err)
		if failed >= 0 {
			translated = apperr.WithIndex(translated, failed)
		}
		return nil, translated
	}

	log.Info().Str("entity", Entity).Int("count", len(players)).Msg("created batch")
	for _, p := range players {
		a.core.Notify(ctx, changefeed.OpCreated, p.ID)
	}
	return players, nil
}

// GetPlayer retrieves a player by ID
func (a *App) GetPlayer(ctx context.Context, id int64) (*models.Player, error) {
	return a.core.Get(ctx, id)
}

// GetPlayerByName retrieves the first player registered under name
func (a *App) GetPlayerByName(ctx context.Context, name string) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(Entity, "name", "Player name cannot be empty.")
	}

	player, err := a.repo.GetByName(ctx, name)
	if err != nil {
		return nil, a.core.Fail("get", err)
	}
	if player == nil {
		return nil, apperr.NotFoundByName(Entity, name)
	}
	return player, nil
}

// ListPlayers retrieves all players
func (a *App) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return a.core.List(ctx)
}

// ListPlayersByCountry retrieves the players of an existing country
func (a *App) ListPlayersByCountry(ctx context.Context, countryID int64) ([]models.Player, error) {
	return crud.Children(ctx, a.countries, countryID, Entity, a.repo.ListByCountry)
}

// ListPlayersByTeam retrieves the squad of an existing team
func (a *App) ListPlayersByTeam(ctx context.Context, teamID int64) ([]models.Player, error) {
	return crud.Children(ctx, a.teams, teamID, Entity, a.repo.ListByTeam)
}

// GetPlayerCountry retrieves the nationality of a player
func (a *App) GetPlayerCountry(ctx context.Context, id int64) (*models.Country, error) {
	player, err := a.core.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return a.countries.GetCountry(ctx, player.CountryID)
}

// GetPlayerTeam retrieves the club of a player; nil when the player is a free agent
func (a *App) GetPlayerTeam(ctx context.Context, id int64) (*models.Team, error) {
	player, err := a.core.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if player.TeamID == nil {
		return nil, nil
	}
	return a.teams.GetTeam(ctx, *player.TeamID)
}

// UpdatePlayer updates an existing player with validation
func (a *App) UpdatePlayer(ctx context.Context, id int64, req UpdatePlayerRequest) (*models.Player, error) {
	return a.core.Update(ctx, id, req)
}

// DeletePlayer deletes a player by ID
func (a *App) DeletePlayer(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
