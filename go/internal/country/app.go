package country

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
const Entity = "Country"

// DuplicateNameMessage is returned whenever a country name is already taken
const DuplicateNameMessage = "Country with this name already exists."

// CountryRepository defines what the app layer needs from the repository
type CountryRepository interface {
	crud.Repository[models.Country, CreateCountryRequest, UpdateCountryRequest]
	GetByName(ctx context.Context, name string) (*models.Country, error)
}

// App handles country business logic
type App struct {
	core *crud.App[models.Country, CreateCountryRequest, UpdateCountryRequest]
	repo CountryRepository
}

// NewApp creates a new country App
func NewApp(repo CountryRepository, v *validation.Validator, feed changefeed.Publisher) *App {
	rules := crud.Rules[models.Country, CreateCountryRequest, UpdateCountryRequest]{
		Entity: Entity,
		ID:     func(c *models.Country) int64 { return c.ID },
		ValidateCreate: func(_ context.Context, req *CreateCountryRequest) error {
			req.Name = strings.TrimSpace(req.Name)
			return v.Struct(Entity, req)
		},
		ValidateUpdate: func(_ context.Context, _ *models.Country, req *UpdateCountryRequest) error {
			if req.Name != nil {
				name := strings.TrimSpace(*req.Name)
				req.Name = &name
			}
			return v.Struct(Entity, req)
		},
		DuplicateOnCreate: func(ctx context.Context, req CreateCountryRequest) (bool, error) {
			existing, err := repo.GetByName(ctx, req.Name)
			return existing != nil, err
		},
		DuplicateOnUpdate: func(ctx context.Context, current *models.Country, req UpdateCountryRequest) (bool, error) {
			if req.Name == nil || *req.Name == current.Name {
				return false, nil
			}
			existing, err := repo.GetByName(ctx, *req.Name)
			return existing != nil && existing.ID != current.ID, err
		},
		DuplicateMessage: DuplicateNameMessage,
	}

	return &App{
		core: crud.New[models.Country, CreateCountryRequest, UpdateCountryRequest](repo, rules, feed, v.Clock()),
		repo: repo,
	}
}

// Entity returns the display name of the entity
func (a *App) Entity() string {
	return Entity
}

// Exists returns a not-found error unless the country exists
func (a *App) Exists(ctx context.Context, id int64) error {
	return a.core.Exists(ctx, id)
}

// CreateCountry creates a new country with validation
func (a *App) CreateCountry(ctx context.Context, req CreateCountryRequest) (*models.Country, error) {
	return a.core.Create(ctx, req)
}

// GetCountry retrieves a country by ID
func (a *App) GetCountry(ctx context.Context, id int64) (*models.Country, error) {
	return a.core.Get(ctx, id)
}

// GetCountryByName retrieves a country by its exact name
func (a *App) GetCountryByName(ctx context.Context, name string) (*models.Country, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation(Entity, "name", "Country name cannot be empty.")
	}

	country, err := a.repo.GetByName(ctx, name)
	if err != nil {
		return nil, a.core.Fail("get", err)
	}
	if country == nil {
		return nil, apperr.NotFoundByName(Entity, name)
	}
	return country, nil
}

// ListCountries retrieves all countries
func (a *App) ListCountries(ctx context.Context) ([]models.Country, error) {
	return a.core.List(ctx)
}

// UpdateCountry updates an existing country with validation
func (a *App) UpdateCountry(ctx context.Context, id int64, req UpdateCountryRequest) (*models.Country, error) {
	return a.core.Update(ctx, id, req)
}

// DeleteCountry deletes a country by ID
func (a *App) DeleteCountry(ctx context.Context, id int64) (bool, error) {
	return a.core.Delete(ctx, id)
}
