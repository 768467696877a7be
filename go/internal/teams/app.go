package teams

import (
	"context"
	"strings"

	"github.com/mcdev12/footballdb/go/internal/apperr"
	"github.com/mcdev12/footballdb/go/internal/changefeed"
	"github.com/mcdev12/footballdb/go/internal/crud"
	"github.com/mcdev12/footballdb/go/internal/models"
	"github.com/mcdev12/footballdb/go/internal/validation"
)

// Entity is the display name used in messages
const Entity = "Team"

// DuplicateNameMessage is returned whenever a team name is already taken
const DuplicateNameMessage = "Team with this name already exists."

// TeamsRepository defines what the app layer needs from the repository
type TeamsRepository interface {
	crud.Repository[models.Team, CreateTeamRequest, UpdateTeamRequest]
	GetByName(ctx context.Context, name string) (*models.Team, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.Team, error)
}

// App handles teams business logic
type App struct {
	core      *crud.App[models.Team, CreateTeamRequest, UpdateTeamRequest]
	repo      TeamsRepository
	countries crud.Existence
}

// NewApp creates a new teams App
func NewApp(repo TeamsRepository, countries crud.Existence, v *validation.Validator, feed changefeed.Publisher) *App {
	a := &App{
		repo:      repo,
		countries: countries,
	}

	rules := crud.Rules[models.Team, CreateTeamRequest, UpdateTeamRequest]{
		Entity: Entity,
		ID:     func(t *models.Team) int64 { return t.ID },
		ValidateCreate: func(ctx context.Context, req *CreateTeamRequest) error {
			req.Name = strings.TrimSpace(req.Name)
			req.Nickname = validation.TrimOptional(req.Nickname)
			req.City = validation.TrimOptional(req.City)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}
			return crud.Reference(ctx, Entity, "country_id", a.countries, req.CountryID)
		},
		ValidateUpdate: func(ctx context.Context, _ *models.Team, req *UpdateTeamRequest) error {
			req.Name = validation.TrimRequired(req.Name)
			req.Nickname = validation.TrimField(req.Nickname)
			req.City = validation.TrimField(req.City)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}
			if req.CountryID != nil {
				return crud.Reference(ctx, Entity, "country_id", a.countries, *req.CountryID)
			}
			return nil
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateTeamRequest) (bool, error) {
			existing, err := repo.GetByName(ctx, req.Name)
			return existing != nil, err
		},
		DuplicateOnUpdate: func(ctx context.Context, current *models.Team, req UpdateTeamRequest) (bool, error) {
			if req.Name == nil || *req.Name == current.Name {
				return false, nil
			}
			existing, err := repo.GetByName(ctx, *req.Name)
			return existing != nil && existing.ID != current.ID, err
		},
		DuplicateMessage: DuplicateNameMessage,
		ForeignKeys: map[string]string{
			"teams_country_id_fkey": "country_id",
		},
	}

	a.core = crud.New[models.Team, CreateTeamRequest, UpdateTeamRequest](repo, rules, feed, v.Clock())
	return a
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the team exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreateTeam creates a new team with validation
func (a *App) CreateTeam(ctx context.Context, req CreateTeamRequest) (*models.Team, error) {
	return a.core.Create(ctx, req)
}

// GetTeam retrieves a team by ID
func (a *App) GetTeam(ctx context.Context, id int64) (*models.Team, error) {
	return a.core.Get(ctx, id)
}

// GetTeamByName retrieves a team by its exact name
func (a *App) GetTeamByName(ctx context.Context, name string) (*models.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(Entity, "name", "Team name cannot be empty.")
	}

	team, err := a.repo.GetByName(ctx, name)
	if err != nil {
		return nil, a.core.Fail("get", err)
	}
	if team == nil {
		return nil, apperr.NotFoundByName(Entity, name)
	}
	return team, nil
}

// ListAllTeams retrieves all teams
func (a *App) ListAllTeams(ctx context.Context) ([]models.Team, error) {
	return a.core.List(ctx)
}

// ListTeamsByCountry retrieves the teams of an existing country
func (a *App) ListTeamsByCountry(ctx context.Context, countryID int64) ([]models.Team, error) {
	return crud.Children(ctx, a.countries, countryID, Entity, a.repo.ListByCountry)
}

// UpdateTeam updates an existing team with validation
func (a *App) UpdateTeam(ctx context.Context, id int64, req UpdateTeamRequest) (*models.Team, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteTeam deletes a team by ID
func (a *App) DeleteTeam(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
