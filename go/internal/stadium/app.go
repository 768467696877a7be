package stadium

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
const Entity = "Stadium"

// DuplicateNameMessage is returned whenever a stadium name is already taken
const DuplicateNameMessage = "Stadium with this name already exists."

// StadiumRepository defines what the app layer needs from the repository
type StadiumRepository interface {
	crud.Repository[models.Stadium, CreateStadiumRequest, UpdateStadiumRequest]
	GetByName(ctx context.Context, name string) (*models.Stadium, error)
	ListByCountry(ctx context.Context, countryID int64) ([]models.Stadium, error)
}

// App handles stadium business logic
type App struct {
	core      *crud.App[models.Stadium, CreateStadiumRequest, UpdateStadiumRequest]
	repo      StadiumRepository
	countries crud.Existence
}

// NewApp creates a new stadium App
func NewApp(repo StadiumRepository, countries crud.Existence, v *validation.Validator, feed changefeed.Publisher) *App {
	a := &App{
		repo:      repo,
		countries: countries,
	}

	rules := crud.Rules[models.Stadium, CreateStadiumRequest, UpdateStadiumRequest]{
		Entity: Entity,
		ID:     func(s *models.Stadium) int64 { return s.ID },
		ValidateCreate: func(ctx context.Context, req *CreateStadiumRequest) error {
			req.Name = strings.TrimSpace(req.Name)
			req.City = validation.TrimOptional(req.City)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}
			return crud.Reference(ctx, Entity, "country_id", a.countries, req.CountryID)
		},
		ValidateUpdate: func(ctx context.Context, _ *models.Stadium, req *UpdateStadiumRequest) error {
			req.Name = validation.TrimRequired(req.Name)
			req.City = validation.TrimField(req.City)
			if err := v.Struct(Entity, req); err != nil {
				return err
			}
			if req.CountryID != nil {
				return crud.Reference(ctx, Entity, "country_id", a.countries, *req.CountryID)
			}
			return nil
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateStadiumRequest) (bool, error) {
			existing, err := repo.GetByName(ctx, req.Name)
			return existing != nil, err
		},
		DuplicateOnUpdate: func(ctx context.Context, current *models.Stadium, req UpdateStadiumRequest) (bool, error) {
			if req.Name == nil || *req.Name == current.Name {
				return false, nil
			}
			existing, err := repo.GetByName(ctx, *req.Name)
			return existing != nil && existing.ID != current.ID, err
		},
		DuplicateMessage: DuplicateNameMessage,
		ForeignKeys: map[string]string{
			"stadiums_country_id_fkey": "country_id",
		},
	}

	a.core = crud.New[models.Stadium, CreateStadiumRequest, UpdateStadiumRequest](repo, rules, feed, v.Clock())
	return a
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the stadium exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreateStadium creates a new stadium with validation
func (a *App) CreateStadium(ctx context.Context, req CreateStadiumRequest) (*models.Stadium, error) {
	return a.core.Create(ctx, req)
}

// GetStadium retrieves a stadium by ID
func (a *App) GetStadium(ctx context.Context, id int64) (*models.Stadium, error) {
	return a.core.Get(ctx, id)
}

// GetStadiumByName retrieves a stadium by its unique name
func (a *App) GetStadiumByName(ctx context.Context, name string) (*models.Stadium, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(Entity, "name", "Stadium name cannot be empty.")
	}

	stadium, err := a.repo.GetByName(ctx, name)
	if err != nil {
		return nil, a.core.Fail("get", err)
	}
	if stadium == nil {
		return nil, apperr.NotFoundByName(Entity, name)
	}
	return stadium, nil
}

// ListStadiums retrieves all stadiums
func (a *App) ListStadiums(ctx context.Context) ([]models.Stadium, error) {
	return a.core.List(ctx)
}

// ListStadiumsByCountry retrieves the stadiums of an existing country
func (a *App) ListStadiumsByCountry(ctx context.Context, countryID int64) ([]models.Stadium, error) {
	return crud.Children(ctx, a.countries, countryID, Entity, a.repo.ListByCountry)
}

// UpdateStadium updates an existing stadium with validation
func (a *App) UpdateStadium(ctx context.Context, id int64, req UpdateStadiumRequest) (*models.Stadium, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteStadium deletes a stadium by ID
func (a *App) DeleteStadium(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
